// Package match filters and ranks the doctor directory using the
// recommendation engine's output plus user-entered filters.
package match

import (
	"sort"
	"strings"

	"github.com/medibook/appointment-engine/catalog"
	"github.com/medibook/appointment-engine/models"
)

// Filters are the user-controlled inputs. Analysis is optional; nil means
// no symptom-driven restriction.
type Filters struct {
	Analysis       *models.AnalysisResult
	Search         string // case-insensitive substring over name or specialization
	Specialization string // exact match
}

// Filter returns the doctors matching the filters, sorted by rating
// descending. The sort is stable, so directory order breaks ties.
func Filter(directory []models.Doctor, f Filters) []models.Doctor {
	out := make([]models.Doctor, 0, len(directory))

	var wanted map[string]bool
	if f.Analysis != nil {
		specs := f.Analysis.SuggestedSpecializations
		if len(specs) == 0 {
			specs = []string{catalog.DefaultSpecialization}
		}
		wanted = make(map[string]bool, len(specs))
		for _, s := range specs {
			wanted[s] = true
		}
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, d := range directory {
		if wanted != nil && !wanted[d.Specialization] {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Specialization), search) {
			continue
		}
		if f.Specialization != "" && d.Specialization != f.Specialization {
			continue
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out
}
