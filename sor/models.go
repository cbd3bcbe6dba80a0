package sor

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/medibook/appointment-engine/models"
)

// Doctor is the directory row.
type Doctor struct {
	gorm.Model
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	Rating          float64 `json:"rating"`
	ReviewCount     int     `json:"review_count"`
	Location        string  `json:"location"`
	ConsultationFee float64 `json:"consultation_fee"`
	Slots           string  `json:"slots"` // comma-separated HH:MM values
}

// Appointment is the system-of-record row. Note what is missing compared
// to models.AppointmentRecord: no contact details, no symptom objects.
type Appointment struct {
	gorm.Model
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DoctorID    uint   `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Urgency     string `json:"urgency"`
}

func (d Doctor) toDirectory() models.Doctor {
	var slots []string
	if d.Slots != "" {
		slots = strings.Split(d.Slots, ",")
	}
	return models.Doctor{
		ID:              fmt.Sprintf("%d", d.ID),
		Name:            d.Name,
		Specialization:  d.Specialization,
		Rating:          d.Rating,
		ReviewCount:     d.ReviewCount,
		Location:        d.Location,
		ConsultationFee: d.ConsultationFee,
		AvailableSlots:  slots,
	}
}

func (a Appointment) toRecord() models.AppointmentRecord {
	return models.AppointmentRecord{
		ID:          fmt.Sprintf("%d", a.ID),
		PatientID:   a.PatientID,
		PatientName: a.PatientName,
		DoctorID:    fmt.Sprintf("%d", a.DoctorID),
		DoctorName:  a.DoctorName,
		Date:        a.Date,
		Time:        a.Time,
		Status:      models.AppointmentStatus(a.Status),
		Urgency:     models.Urgency(a.Urgency),
		Provenance:  models.ProvenanceRemote,
		CreatedAt:   a.CreatedAt,
	}
}
