// Package catalog holds the static clinical reference tables: the symptom
// taxonomy, the category→specialization mapping and the per-urgency advice
// text. All of it is immutable configuration data loaded once at compile
// time; runtime code only reads it.
package catalog

import "github.com/medibook/appointment-engine/models"

// DefaultSpecialization is the fallback when no category maps to anything.
const DefaultSpecialization = "General Physician"

// Symptoms is the full taxonomy, grouped by body-system category.
var Symptoms = []models.Symptom{
	{ID: "chest_pain", Name: "Chest Pain", Category: models.CategoryCardiovascular, Severity: models.SeverityHigh},
	{ID: "palpitations", Name: "Palpitations", Category: models.CategoryCardiovascular, Severity: models.SeverityMedium},
	{ID: "high_blood_pressure", Name: "High Blood Pressure", Category: models.CategoryCardiovascular, Severity: models.SeverityMedium},
	{ID: "swollen_ankles", Name: "Swollen Ankles", Category: models.CategoryCardiovascular, Severity: models.SeverityLow},

	{ID: "shortness_of_breath", Name: "Shortness of Breath", Category: models.CategoryRespiratory, Severity: models.SeverityHigh},
	{ID: "persistent_cough", Name: "Persistent Cough", Category: models.CategoryRespiratory, Severity: models.SeverityMedium},
	{ID: "wheezing", Name: "Wheezing", Category: models.CategoryRespiratory, Severity: models.SeverityMedium},
	{ID: "sore_throat", Name: "Sore Throat", Category: models.CategoryRespiratory, Severity: models.SeverityLow},
	{ID: "runny_nose", Name: "Runny Nose", Category: models.CategoryRespiratory, Severity: models.SeverityLow},

	{ID: "severe_abdominal_pain", Name: "Severe Abdominal Pain", Category: models.CategoryDigestive, Severity: models.SeverityHigh},
	{ID: "nausea", Name: "Nausea", Category: models.CategoryDigestive, Severity: models.SeverityMedium},
	{ID: "vomiting", Name: "Vomiting", Category: models.CategoryDigestive, Severity: models.SeverityMedium},
	{ID: "diarrhea", Name: "Diarrhea", Category: models.CategoryDigestive, Severity: models.SeverityMedium},
	{ID: "heartburn", Name: "Heartburn", Category: models.CategoryDigestive, Severity: models.SeverityLow},
	{ID: "bloating", Name: "Bloating", Category: models.CategoryDigestive, Severity: models.SeverityLow},

	{ID: "sudden_weakness", Name: "Sudden Weakness or Numbness", Category: models.CategoryNeurological, Severity: models.SeverityHigh},
	{ID: "severe_headache", Name: "Severe Headache", Category: models.CategoryNeurological, Severity: models.SeverityHigh},
	{ID: "dizziness", Name: "Dizziness", Category: models.CategoryNeurological, Severity: models.SeverityMedium},
	{ID: "headache", Name: "Headache", Category: models.CategoryNeurological, Severity: models.SeverityLow},
	{ID: "tingling", Name: "Tingling Sensation", Category: models.CategoryNeurological, Severity: models.SeverityLow},

	{ID: "joint_pain", Name: "Joint Pain", Category: models.CategoryMusculoskeletal, Severity: models.SeverityMedium},
	{ID: "back_pain", Name: "Back Pain", Category: models.CategoryMusculoskeletal, Severity: models.SeverityMedium},
	{ID: "muscle_ache", Name: "Muscle Ache", Category: models.CategoryMusculoskeletal, Severity: models.SeverityLow},
	{ID: "stiffness", Name: "Stiffness", Category: models.CategoryMusculoskeletal, Severity: models.SeverityLow},

	{ID: "skin_rash", Name: "Skin Rash", Category: models.CategoryDermatological, Severity: models.SeverityMedium},
	{ID: "itching", Name: "Itching", Category: models.CategoryDermatological, Severity: models.SeverityLow},
	{ID: "acne", Name: "Acne", Category: models.CategoryDermatological, Severity: models.SeverityLow},

	{ID: "severe_anxiety", Name: "Severe Anxiety or Panic", Category: models.CategoryMental, Severity: models.SeverityHigh},
	{ID: "low_mood", Name: "Persistent Low Mood", Category: models.CategoryMental, Severity: models.SeverityMedium},
	{ID: "insomnia", Name: "Insomnia", Category: models.CategoryMental, Severity: models.SeverityMedium},

	{ID: "high_fever", Name: "High Fever", Category: models.CategoryGeneral, Severity: models.SeverityHigh},
	{ID: "fever", Name: "Mild Fever", Category: models.CategoryGeneral, Severity: models.SeverityMedium},
	{ID: "fatigue", Name: "Fatigue", Category: models.CategoryGeneral, Severity: models.SeverityLow},
	{ID: "weight_loss", Name: "Unexplained Weight Loss", Category: models.CategoryGeneral, Severity: models.SeverityMedium},
}

// CategorySpecializations maps a body-system category to the practice
// areas that cover it. Many-to-many: a category can recommend several
// specializations and a specialization serves several categories.
var CategorySpecializations = map[models.Category][]string{
	models.CategoryCardiovascular:  {"Cardiology", "Internal Medicine"},
	models.CategoryRespiratory:     {"Pulmonology", "Internal Medicine"},
	models.CategoryDigestive:       {"Gastroenterology", "Internal Medicine"},
	models.CategoryNeurological:    {"Neurology"},
	models.CategoryMusculoskeletal: {"Orthopedics", "Rheumatology"},
	models.CategoryDermatological:  {"Dermatology"},
	models.CategoryMental:          {"Psychiatry"},
	models.CategoryGeneral:         {DefaultSpecialization},
}

// DiagnosisLabels gives the human-readable preliminary label shown per
// category present in the selection.
var DiagnosisLabels = map[models.Category]string{
	models.CategoryCardiovascular:  "Possible cardiovascular condition",
	models.CategoryRespiratory:     "Possible respiratory condition",
	models.CategoryDigestive:       "Possible digestive disorder",
	models.CategoryNeurological:    "Possible neurological condition",
	models.CategoryMusculoskeletal: "Possible musculoskeletal issue",
	models.CategoryDermatological:  "Possible skin condition",
	models.CategoryMental:          "Possible mental health concern",
	models.CategoryGeneral:         "General condition requiring evaluation",
}

// UrgencyAdvice is the static advisory text keyed by triage tier.
var UrgencyAdvice = map[models.Urgency][]string{
	models.UrgencyHigh: {
		"Seek immediate medical attention",
		"Do not delay — visit the nearest emergency department if symptoms worsen",
		"Avoid physical exertion until seen by a doctor",
	},
	models.UrgencyMedium: {
		"Book an appointment within the next few days",
		"Monitor your symptoms and note any changes",
	},
	models.UrgencyLow: {
		"Schedule a routine visit at your convenience",
		"Rest and stay hydrated in the meantime",
	},
}

// ByID returns the taxonomy symptom with the given id.
func ByID(id string) (models.Symptom, bool) {
	for _, s := range Symptoms {
		if s.ID == id {
			return s, true
		}
	}
	return models.Symptom{}, false
}
