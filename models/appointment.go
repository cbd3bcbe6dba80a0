package models

import (
	"strings"
	"time"
)

// AppointmentStatus tracks the appointment lifecycle.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Provenance tags where an appointment record came from.
type Provenance string

const (
	ProvenanceRemote Provenance = "remote"
	ProvenanceLocal  Provenance = "local"
)

// AppointmentRecord is the central entity. Records are created either by
// the system of record (fetched on demand, read-only here) or locally at
// booking time with a client-generated temporary identity. A local record
// is never deleted on promotion; it stays the detail-holder for its key
// because it carries fields the remote schema does not model.
type AppointmentRecord struct {
	ID      string `json:"id,omitempty"`       // server identity, empty until accepted
	LocalID string `json:"local_id,omitempty"` // client temporary identity

	PatientID    string `json:"patient_id,omitempty"`
	PatientName  string `json:"patient_name"`
	PatientPhone string `json:"patient_phone,omitempty"`
	PatientEmail string `json:"patient_email,omitempty"`

	DoctorID       string `json:"doctor_id,omitempty"`
	DoctorName     string `json:"doctor_name,omitempty"`
	Specialization string `json:"specialization,omitempty"`

	Date string `json:"date"` // YYYY-MM-DD, or a timestamp normalized on keying
	Time string `json:"time"` // HH:MM, 24h

	Status   AppointmentStatus `json:"status"`
	Symptoms []SelectedSymptom `json:"symptoms,omitempty"`
	Urgency  Urgency           `json:"urgency,omitempty"`

	Provenance Provenance `json:"provenance"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Identity returns the server id when the record has one, otherwise the
// client temporary id.
func (a AppointmentRecord) Identity() string {
	if a.ID != "" {
		return a.ID
	}
	return a.LocalID
}

// ReconKey is the composite fallback identity used across the two
// appointment sources, which never share a primary key. Two records with
// equal keys describe the same real-world appointment.
type ReconKey struct {
	PatientName string
	Date        string
	Time        string
}

// Key derives the record's reconciliation key, truncating the date to
// calendar-day granularity.
func (a AppointmentRecord) Key() ReconKey {
	return ReconKey{
		PatientName: a.PatientName,
		Date:        NormalizeDate(a.Date),
		Time:        a.Time,
	}
}

// NormalizeDate truncates a date or timestamp string to YYYY-MM-DD. Both
// sources are sloppy about this: the remote side returns RFC3339
// timestamps, the local side stores plain dates.
func NormalizeDate(s string) string {
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}
	return s
}

// SessionContext identifies the active user for ownership filtering.
type SessionContext struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Owns reports whether a local record belongs to this session's user.
// Records written before patient ids were stamped carry only the display
// name, so the name is accepted as a fallback match.
func (s SessionContext) Owns(rec AppointmentRecord) bool {
	if rec.PatientID != "" {
		return rec.PatientID == s.UserID
	}
	return rec.PatientName == s.DisplayName
}
