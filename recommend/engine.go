// Package recommend maps a selected symptom set to an urgency tier and a
// ranked set of medical specializations. Analysis is a pure function over
// the catalog tables so it can be unit-tested against literal inputs.
package recommend

import (
	"errors"
	"math/rand"

	"github.com/medibook/appointment-engine/catalog"
	"github.com/medibook/appointment-engine/models"
)

// ErrNoSymptoms is returned when analysis is invoked on an empty
// selection. Callers must not ask for an analysis before the user has
// picked at least one symptom.
var ErrNoSymptoms = errors.New("no symptoms selected")

// Analyze derives an AnalysisResult from the current selection.
//
// Urgency: a single high-severity symptom always dominates; otherwise more
// than two medium symptoms raise the tier to medium. The thresholds mirror
// the original triage heuristic and are deliberately not tuned here.
func Analyze(selected []models.SelectedSymptom) (models.AnalysisResult, error) {
	if len(selected) == 0 {
		return models.AnalysisResult{}, ErrNoSymptoms
	}

	urgency := deriveUrgency(selected)

	specializations := make([]string, 0, 4)
	seenSpec := make(map[string]bool)
	diagnosis := make([]string, 0, 4)
	seenCat := make(map[models.Category]bool)

	for _, s := range selected {
		if seenCat[s.Category] {
			continue
		}
		seenCat[s.Category] = true

		if label, ok := catalog.DiagnosisLabels[s.Category]; ok {
			diagnosis = append(diagnosis, label)
		}
		for _, spec := range catalog.CategorySpecializations[s.Category] {
			if !seenSpec[spec] {
				seenSpec[spec] = true
				specializations = append(specializations, spec)
			}
		}
	}
	if len(specializations) == 0 {
		specializations = append(specializations, catalog.DefaultSpecialization)
	}

	return models.AnalysisResult{
		Urgency:                  urgency,
		SuggestedSpecializations: specializations,
		PreliminaryDiagnosis:     diagnosis,
		Recommendations:          catalog.UrgencyAdvice[urgency],
		Confidence:               70 + rand.Intn(31),
	}, nil
}

func deriveUrgency(selected []models.SelectedSymptom) models.Urgency {
	medium := 0
	for _, s := range selected {
		switch s.Severity {
		case models.SeverityHigh:
			return models.UrgencyHigh
		case models.SeverityMedium:
			medium++
		}
	}
	if medium > 2 {
		return models.UrgencyMedium
	}
	return models.UrgencyLow
}
