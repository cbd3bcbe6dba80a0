package sor

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/medibook/appointment-engine/models"
	"github.com/medibook/appointment-engine/utils"
)

// Service exposes the system-of-record HTTP contract.
type Service struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewService(db *gorm.DB, log zerolog.Logger) *Service {
	return &Service{db: db, log: log}
}

// RegisterRoutes mounts the contract under /sor.
func (s *Service) RegisterRoutes(app *fiber.App) {
	g := app.Group("/sor")
	g.Get("/health", s.Health)
	g.Get("/doctors", s.ListDoctors)
	g.Get("/appointments", s.ListAppointments)
	g.Post("/appointments", s.CreateAppointment)
	g.Post("/appointments/:id/cancel", s.CancelAppointment)
}

func (s *Service) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ListDoctors returns the directory, optionally narrowed server-side.
func (s *Service) ListDoctors(c *fiber.Ctx) error {
	q := s.db.Model(&Doctor{})
	if spec := c.Query("specialization"); spec != "" {
		q = q.Where("specialization = ?", spec)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(specialization) LIKE ?", like, like)
	}

	var rows []Doctor
	if err := q.Order("rating DESC").Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}
	out := make([]models.Doctor, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDirectory())
	}
	return c.JSON(out)
}

// ListAppointments returns the records for a patient's or a doctor's view.
func (s *Service) ListAppointments(c *fiber.Ctx) error {
	q := s.db.Model(&Appointment{})
	userID := c.Query("user_id")
	switch c.Query("role") {
	case "doctor":
		q = q.Where("doctor_id = ?", userID)
	default:
		q = q.Where("patient_id = ?", userID)
	}

	var rows []Appointment
	if err := q.Order("date, time").Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	out := make([]models.AppointmentRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toRecord())
	}
	return c.JSON(out)
}

// CreateAppointment accepts a submitted booking after checking the slot is
// not already taken for that doctor.
func (s *Service) CreateAppointment(c *fiber.Ctx) error {
	var rec models.AppointmentRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	doctorID, _ := strconv.ParseUint(rec.DoctorID, 10, 64)
	available, err := s.checkAvailability(uint(doctorID), models.NormalizeDate(rec.Date), rec.Time)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error checking availability",
			Error:   err.Error(),
		})
	}
	if !available {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available",
		})
	}

	status := string(rec.Status)
	if status == "" {
		status = string(models.StatusPending)
	}
	row := Appointment{
		PatientID:   rec.PatientID,
		PatientName: rec.PatientName,
		DoctorID:    uint(doctorID),
		DoctorName:  rec.DoctorName,
		Date:        models.NormalizeDate(rec.Date),
		Time:        rec.Time,
		Status:      status,
		Urgency:     string(rec.Urgency),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	s.log.Info().Uint("id", row.ID).Str("patient", row.PatientName).Msg("appointment accepted")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": strconv.FormatUint(uint64(row.ID), 10)})
}

// CancelAppointment updates status in place; the row is never deleted.
func (s *Service) CancelAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	res := s.db.Model(&Appointment{}).Where("id = ?", id).Update("status", string(models.StatusCancelled))
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   res.Error.Error(),
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}
	return c.JSON(fiber.Map{"status": "cancelled"})
}

// checkAvailability reports whether the doctor's slot is still free. Same
// conflict rule the booking flow enforces client-side: one appointment per
// doctor per date and time, cancelled rows do not block.
func (s *Service) checkAvailability(doctorID uint, date, tm string) (bool, error) {
	var count int64
	err := s.db.Model(&Appointment{}).
		Where("doctor_id = ? AND date = ? AND time = ? AND status <> ?", doctorID, date, tm, string(models.StatusCancelled)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
