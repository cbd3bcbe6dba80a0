package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/medibook/appointment-engine/catalog"
	"github.com/medibook/appointment-engine/models"
	"github.com/medibook/appointment-engine/recommend"
	"github.com/medibook/appointment-engine/utils"
)

// GetSymptoms returns the full taxonomy for the selection screen.
func (h *Handler) GetSymptoms(c *fiber.Ctx) error {
	return c.JSON(catalog.Symptoms)
}

type analyzeRequest struct {
	Symptoms []selectedSymptomInput `json:"symptoms"`
}

type selectedSymptomInput struct {
	ID        string `json:"id"`
	Duration  string `json:"duration,omitempty"`
	Intensity string `json:"intensity,omitempty"`
}

// AnalyzeSymptoms runs the recommendation engine over the user's current
// selection.
func (h *Handler) AnalyzeSymptoms(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	selected, err := resolveSelection(req.Symptoms)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown symptom",
			Error:   err.Error(),
		})
	}

	result, err := recommend.Analyze(selected)
	if errors.Is(err, recommend.ErrNoSymptoms) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Select at least one symptom before requesting an analysis",
			Error:   err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Analysis failed",
			Error:   err.Error(),
		})
	}
	return c.JSON(result)
}

func resolveSelection(inputs []selectedSymptomInput) ([]models.SelectedSymptom, error) {
	selected := make([]models.SelectedSymptom, 0, len(inputs))
	for _, in := range inputs {
		sym, ok := catalog.ByID(in.ID)
		if !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest, "unknown symptom id: "+in.ID)
		}
		selected = append(selected, models.SelectedSymptom{
			Symptom:   sym,
			Duration:  in.Duration,
			Intensity: in.Intensity,
		})
	}
	return selected, nil
}
