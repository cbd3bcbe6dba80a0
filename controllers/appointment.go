package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/medibook/appointment-engine/middleware"
	"github.com/medibook/appointment-engine/models"
	"github.com/medibook/appointment-engine/recommend"
	"github.com/medibook/appointment-engine/reconcile"
	"github.com/medibook/appointment-engine/remote"
	"github.com/medibook/appointment-engine/store"
	"github.com/medibook/appointment-engine/syncer"
	"github.com/medibook/appointment-engine/utils"
)

// appointmentListResponse carries the offline flag alongside the data so
// the UI can tell "offline — showing cached data" from a genuinely empty
// list.
type appointmentListResponse struct {
	Appointments []models.AppointmentRecord `json:"appointments"`
	IsLocal      bool                       `json:"is_local"`
}

// ListAppointments fetches the remote view and reconciles it with the
// local queue. A failed fetch degrades to local records, never an error.
func (h *Handler) ListAppointments(c *fiber.Ctx) error {
	session, ok := middleware.Session(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	order := reconcile.Ascending
	if c.Query("order") == "desc" {
		order = reconcile.Descending
	}

	view := remote.View{Role: session.Role, UserID: session.UserID}
	remoteRecs, err := h.Source.FetchAppointments(c.Context(), view)
	isLocal := false
	if err != nil {
		h.Log.Warn().Err(err).Msg("remote fetch failed, serving local records")
		remoteRecs = nil
		isLocal = true
	}

	merged := reconcile.Merge(remoteRecs, h.Store.All(), session, order)
	return c.JSON(appointmentListResponse{Appointments: merged, IsLocal: isLocal})
}

type bookRequest struct {
	DoctorID       string                 `json:"doctor_id"`
	DoctorName     string                 `json:"doctor_name"`
	Specialization string                 `json:"specialization,omitempty"`
	Date           string                 `json:"date"`
	Time           string                 `json:"time"`
	PatientPhone   string                 `json:"patient_phone,omitempty"`
	PatientEmail   string                 `json:"patient_email,omitempty"`
	Symptoms       []selectedSymptomInput `json:"symptoms,omitempty"`
}

// BookAppointment performs the two-phase booking unit: write the local
// record first, then submit to the system of record. A failed submit
// leaves a pending local record that the syncer retries; the booking
// itself always succeeds from the user's point of view.
func (h *Handler) BookAppointment(c *fiber.Ctx) error {
	session, ok := middleware.Session(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var req bookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Date == "" || req.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date and time are required",
		})
	}

	selected, err := resolveSelection(req.Symptoms)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown symptom",
			Error:   err.Error(),
		})
	}
	var urgency models.Urgency
	if len(selected) > 0 {
		if analysis, aerr := recommend.Analyze(selected); aerr == nil {
			urgency = analysis.Urgency
		}
	}

	rec := models.AppointmentRecord{
		PatientID:      session.UserID,
		PatientName:    session.DisplayName,
		PatientPhone:   req.PatientPhone,
		PatientEmail:   req.PatientEmail,
		DoctorID:       req.DoctorID,
		DoctorName:     req.DoctorName,
		Specialization: req.Specialization,
		Date:           models.NormalizeDate(req.Date),
		Time:           req.Time,
		Symptoms:       selected,
		Urgency:        urgency,
	}

	saved, err := h.Store.Append(c.Context(), rec)
	durable := true
	if err != nil {
		if !errors.Is(err, store.ErrStorageUnavailable) {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to save appointment",
				Error:   err.Error(),
			})
		}
		durable = false
	}

	offline := false
	if id, serr := h.Source.Submit(c.Context(), saved); serr != nil {
		if !errors.Is(serr, remote.ErrNetwork) {
			// The server refused the booking outright (slot taken). The
			// local record is withdrawn by cancelling it.
			_ = h.Store.UpdateStatus(c.Context(), saved.Key(), models.StatusCancelled)
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Booking rejected by the scheduling service",
				Error:   serr.Error(),
			})
		}
		h.Log.Warn().Err(serr).Msg("remote unreachable, booking kept local for later sync")
		offline = true
	} else {
		if perr := h.Store.Promote(c.Context(), saved.LocalID, id); perr != nil {
			h.Log.Warn().Err(perr).Msg("promotion not persisted")
		}
		saved.ID = id
	}

	if h.Trigger != nil {
		h.Trigger.Notify(syncer.ReasonMutation)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"appointment": saved,
		"offline":     offline,
		"durable":     durable,
	})
}

type cancelRequest struct {
	ID   string `json:"id,omitempty"` // server identity, when known
	Date string `json:"date"`
	Time string `json:"time"`
}

// CancelAppointment updates the local status immediately so the UI never
// blocks on the network; the remote cancel runs out of band and its
// result is ignored if it loses the race.
func (h *Handler) CancelAppointment(c *fiber.Ctx) error {
	session, ok := middleware.Session(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var req cancelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	key := models.ReconKey{
		PatientName: session.DisplayName,
		Date:        models.NormalizeDate(req.Date),
		Time:        req.Time,
	}
	if err := h.Store.UpdateStatus(c.Context(), key, models.StatusCancelled); err != nil {
		h.Log.Warn().Err(err).Msg("cancellation persisted in memory only")
	}

	if req.ID != "" {
		go func(id string) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := h.Source.Cancel(ctx, id); err != nil {
				h.Log.Warn().Err(err).Str("id", id).Msg("remote cancel failed, will reconcile later")
			}
		}(req.ID)
	}

	if h.Trigger != nil {
		h.Trigger.Notify(syncer.ReasonMutation)
	}
	return c.JSON(fiber.Map{"status": models.StatusCancelled})
}

// RefreshSync is the explicit user-initiated refresh trigger.
func (h *Handler) RefreshSync(c *fiber.Ctx) error {
	if h.Trigger != nil {
		h.Trigger.Notify(syncer.ReasonRefresh)
	}
	return c.SendStatus(fiber.StatusAccepted)
}
