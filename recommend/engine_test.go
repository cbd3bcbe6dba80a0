package recommend

import (
	"errors"
	"testing"

	"github.com/medibook/appointment-engine/catalog"
	"github.com/medibook/appointment-engine/models"
)

func sel(id string, cat models.Category, sev models.Severity) models.SelectedSymptom {
	return models.SelectedSymptom{Symptom: models.Symptom{ID: id, Name: id, Category: cat, Severity: sev}}
}

func TestAnalyze_EmptySelection(t *testing.T) {
	_, err := Analyze(nil)
	if !errors.Is(err, ErrNoSymptoms) {
		t.Fatalf("expected ErrNoSymptoms, got %v", err)
	}
}

func TestAnalyze_UrgencyDerivation(t *testing.T) {
	tests := []struct {
		name     string
		selected []models.SelectedSymptom
		want     models.Urgency
	}{
		{
			name:     "single high dominates",
			selected: []models.SelectedSymptom{sel("chest_pain", models.CategoryCardiovascular, models.SeverityHigh)},
			want:     models.UrgencyHigh,
		},
		{
			name: "high dominates regardless of count",
			selected: []models.SelectedSymptom{
				sel("headache", models.CategoryNeurological, models.SeverityLow),
				sel("fatigue", models.CategoryGeneral, models.SeverityLow),
				sel("chest_pain", models.CategoryCardiovascular, models.SeverityHigh),
			},
			want: models.UrgencyHigh,
		},
		{
			name: "more than two mediums",
			selected: []models.SelectedSymptom{
				sel("nausea", models.CategoryDigestive, models.SeverityMedium),
				sel("dizziness", models.CategoryNeurological, models.SeverityMedium),
				sel("fever", models.CategoryGeneral, models.SeverityMedium),
			},
			want: models.UrgencyMedium,
		},
		{
			name: "exactly two mediums stays low",
			selected: []models.SelectedSymptom{
				sel("nausea", models.CategoryDigestive, models.SeverityMedium),
				sel("dizziness", models.CategoryNeurological, models.SeverityMedium),
			},
			want: models.UrgencyLow,
		},
		{
			name:     "all low",
			selected: []models.SelectedSymptom{sel("headache", models.CategoryNeurological, models.SeverityLow)},
			want:     models.UrgencyLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Analyze(tt.selected)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Urgency != tt.want {
				t.Errorf("urgency = %s, want %s", got.Urgency, tt.want)
			}
		})
	}
}

func TestAnalyze_SpecializationsDedupedAndOrdered(t *testing.T) {
	// Cardiovascular and respiratory both map to Internal Medicine; it must
	// appear once, at the position its first category contributed it.
	res, err := Analyze([]models.SelectedSymptom{
		sel("chest_pain", models.CategoryCardiovascular, models.SeverityHigh),
		sel("wheezing", models.CategoryRespiratory, models.SeverityMedium),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Cardiology", "Internal Medicine", "Pulmonology"}
	if len(res.SuggestedSpecializations) != len(want) {
		t.Fatalf("specializations = %v, want %v", res.SuggestedSpecializations, want)
	}
	for i, s := range want {
		if res.SuggestedSpecializations[i] != s {
			t.Errorf("specializations[%d] = %s, want %s", i, res.SuggestedSpecializations[i], s)
		}
	}

	seen := map[string]bool{}
	for _, s := range res.SuggestedSpecializations {
		if seen[s] {
			t.Errorf("duplicate specialization %s", s)
		}
		seen[s] = true
	}
}

func TestAnalyze_FallbackSpecialization(t *testing.T) {
	// A category with no mapping falls back to the default.
	res, err := Analyze([]models.SelectedSymptom{
		sel("mystery", models.Category("unknown"), models.SeverityLow),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.SuggestedSpecializations) != 1 || res.SuggestedSpecializations[0] != catalog.DefaultSpecialization {
		t.Errorf("specializations = %v, want fallback %q", res.SuggestedSpecializations, catalog.DefaultSpecialization)
	}
}

func TestAnalyze_DiagnosisPerCategory(t *testing.T) {
	res, err := Analyze([]models.SelectedSymptom{
		sel("nausea", models.CategoryDigestive, models.SeverityMedium),
		sel("vomiting", models.CategoryDigestive, models.SeverityMedium),
		sel("headache", models.CategoryNeurological, models.SeverityLow),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.PreliminaryDiagnosis) != 2 {
		t.Fatalf("diagnosis = %v, want one label per distinct category", res.PreliminaryDiagnosis)
	}
	if res.PreliminaryDiagnosis[0] != catalog.DiagnosisLabels[models.CategoryDigestive] {
		t.Errorf("diagnosis[0] = %s, want digestive label first", res.PreliminaryDiagnosis[0])
	}
}

func TestAnalyze_ConfidenceInRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		res, err := Analyze([]models.SelectedSymptom{sel("fatigue", models.CategoryGeneral, models.SeverityLow)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Confidence < 70 || res.Confidence > 100 {
			t.Fatalf("confidence %d out of [70,100]", res.Confidence)
		}
	}
}

func TestAnalyze_RecommendationsMatchUrgency(t *testing.T) {
	res, err := Analyze([]models.SelectedSymptom{sel("chest_pain", models.CategoryCardiovascular, models.SeverityHigh)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Recommendations) == 0 {
		t.Fatal("expected advisory text for high urgency")
	}
	if res.Recommendations[0] != catalog.UrgencyAdvice[models.UrgencyHigh][0] {
		t.Errorf("recommendations = %v, want high-urgency advice", res.Recommendations)
	}
}

func TestAnalyze_ChestPainScenario(t *testing.T) {
	res, err := Analyze([]models.SelectedSymptom{sel("chest_pain", models.CategoryCardiovascular, models.SeverityHigh)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Urgency != models.UrgencyHigh {
		t.Errorf("urgency = %s, want high", res.Urgency)
	}
	found := false
	for _, s := range res.SuggestedSpecializations {
		if s == "Cardiology" {
			found = true
		}
	}
	if !found {
		t.Errorf("specializations %v do not include Cardiology", res.SuggestedSpecializations)
	}
}
