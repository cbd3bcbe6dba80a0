package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/medibook/appointment-engine/catalog"
	"github.com/medibook/appointment-engine/match"
	"github.com/medibook/appointment-engine/models"
	"github.com/medibook/appointment-engine/recommend"
	"github.com/medibook/appointment-engine/remote"
	"github.com/medibook/appointment-engine/utils"
)

// ListDoctors returns the ranked directory. When ?symptoms=id,id is given
// the recommendation engine restricts the result to the suggested
// specializations; ?search= and ?specialization= narrow further.
func (h *Handler) ListDoctors(c *fiber.Ctx) error {
	directory, stale := h.Directory.Doctors(c.Context(), remote.DoctorFilter{})

	filters := match.Filters{
		Search:         c.Query("search"),
		Specialization: c.Query("specialization"),
	}

	if raw := strings.TrimSpace(c.Query("symptoms")); raw != "" {
		selected := make([]models.SelectedSymptom, 0, 4)
		for _, id := range strings.Split(raw, ",") {
			sym, ok := catalog.ByID(strings.TrimSpace(id))
			if !ok {
				return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
					Message: "Unknown symptom id: " + id,
				})
			}
			selected = append(selected, models.SelectedSymptom{Symptom: sym})
		}
		analysis, err := recommend.Analyze(selected)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Analysis failed",
				Error:   err.Error(),
			})
		}
		filters.Analysis = &analysis
	}

	return c.JSON(fiber.Map{
		"doctors": match.Filter(directory, filters),
		"stale":   stale,
	})
}
