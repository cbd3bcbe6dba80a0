package catalog

import (
	"testing"

	"github.com/medibook/appointment-engine/models"
)

func TestSymptoms_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Symptoms {
		if seen[s.ID] {
			t.Errorf("duplicate symptom id %s", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestSymptoms_EveryCategoryCovered(t *testing.T) {
	for _, s := range Symptoms {
		if _, ok := CategorySpecializations[s.Category]; !ok {
			t.Errorf("category %s of %s has no specialization mapping", s.Category, s.ID)
		}
		if _, ok := DiagnosisLabels[s.Category]; !ok {
			t.Errorf("category %s of %s has no diagnosis label", s.Category, s.ID)
		}
	}
}

func TestUrgencyAdvice_AllTiers(t *testing.T) {
	for _, u := range []models.Urgency{models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh} {
		advice := UrgencyAdvice[u]
		if len(advice) < 2 || len(advice) > 3 {
			t.Errorf("urgency %s has %d advisory strings, want 2-3", u, len(advice))
		}
	}
}

func TestByID(t *testing.T) {
	s, ok := ByID("chest_pain")
	if !ok || s.Severity != models.SeverityHigh || s.Category != models.CategoryCardiovascular {
		t.Fatalf("chest_pain lookup wrong: %+v ok=%v", s, ok)
	}
	if _, ok := ByID("not_a_symptom"); ok {
		t.Error("unknown id must not resolve")
	}
}
