package models

// Severity is the intrinsic severity tag carried by every catalog symptom.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Category groups symptoms by body system.
type Category string

const (
	CategoryCardiovascular  Category = "cardiovascular"
	CategoryRespiratory     Category = "respiratory"
	CategoryDigestive       Category = "digestive"
	CategoryNeurological    Category = "neurological"
	CategoryMusculoskeletal Category = "musculoskeletal"
	CategoryDermatological  Category = "dermatological"
	CategoryMental          Category = "mental"
	CategoryGeneral         Category = "general"
)

// Symptom is immutable reference data from the taxonomy. Instances are
// selected or deselected by the user, never created at runtime.
type Symptom struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
}

// SelectedSymptom is a taxonomy symptom plus the user-supplied details
// collected in the booking flow.
type SelectedSymptom struct {
	Symptom
	Duration  string `json:"duration,omitempty"`
	Intensity string `json:"intensity,omitempty"`
}

// Urgency is the coarse triage tier derived from selected severities.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// AnalysisResult is derived fresh from the current selection; it is never
// mutated in place, only regenerated.
type AnalysisResult struct {
	Urgency                  Urgency  `json:"urgency"`
	SuggestedSpecializations []string `json:"suggested_specializations"`
	PreliminaryDiagnosis     []string `json:"preliminary_diagnosis"`
	Recommendations          []string `json:"recommendations"`
	Confidence               int      `json:"confidence"`
}
