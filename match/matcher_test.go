package match

import (
	"testing"

	"github.com/medibook/appointment-engine/models"
)

func directory() []models.Doctor {
	return []models.Doctor{
		{ID: "d1", Name: "Dr. Asha Rao", Specialization: "Cardiology", Rating: 4.8},
		{ID: "d2", Name: "Dr. Ben Carter", Specialization: "Dermatology", Rating: 4.5},
		{ID: "d3", Name: "Dr. Carla Mendes", Specialization: "Cardiology", Rating: 4.5},
		{ID: "d4", Name: "Dr. David Osei", Specialization: "General Physician", Rating: 4.9},
		{ID: "d5", Name: "Dr. Elena Petrova", Specialization: "Neurology", Rating: 4.2},
	}
}

func TestFilter_NoFilters_SortedByRating(t *testing.T) {
	got := Filter(directory(), Filters{})
	if len(got) != 5 {
		t.Fatalf("got %d doctors, want 5", len(got))
	}
	if got[0].ID != "d4" || got[1].ID != "d1" {
		t.Errorf("order = %s,%s want d4,d1 first", got[0].ID, got[1].ID)
	}
}

func TestFilter_StableSortTiebreak(t *testing.T) {
	// d2 and d3 share a 4.5 rating; directory order must be preserved.
	got := Filter(directory(), Filters{})
	i2, i3 := -1, -1
	for i, d := range got {
		if d.ID == "d2" {
			i2 = i
		}
		if d.ID == "d3" {
			i3 = i
		}
	}
	if i2 == -1 || i3 == -1 || i2 > i3 {
		t.Errorf("equal-rating doctors reordered: d2 at %d, d3 at %d", i2, i3)
	}
}

func TestFilter_AnalysisRestriction(t *testing.T) {
	analysis := &models.AnalysisResult{SuggestedSpecializations: []string{"Cardiology"}}
	got := Filter(directory(), Filters{Analysis: analysis})
	if len(got) != 2 {
		t.Fatalf("got %d doctors, want 2 cardiologists", len(got))
	}
	for _, d := range got {
		if d.Specialization != "Cardiology" {
			t.Errorf("unexpected specialization %s", d.Specialization)
		}
	}
}

func TestFilter_AnalysisEmptySpecsFallsBack(t *testing.T) {
	analysis := &models.AnalysisResult{}
	got := Filter(directory(), Filters{Analysis: analysis})
	if len(got) != 1 || got[0].ID != "d4" {
		t.Fatalf("got %v, want only the general physician", got)
	}
}

func TestFilter_SearchOrSemantics(t *testing.T) {
	// "card" matches specialization, "petrova" matches name.
	got := Filter(directory(), Filters{Search: "card"})
	if len(got) != 2 {
		t.Errorf("search=card: got %d, want 2", len(got))
	}
	got = Filter(directory(), Filters{Search: "PETROVA"})
	if len(got) != 1 || got[0].ID != "d5" {
		t.Errorf("search is not case-insensitive over names: %v", got)
	}
}

func TestFilter_SpecializationAndSearchCombined(t *testing.T) {
	got := Filter(directory(), Filters{Search: "dr", Specialization: "Dermatology"})
	if len(got) != 1 || got[0].ID != "d2" {
		t.Errorf("combined filters: got %v, want d2 only", got)
	}
}
