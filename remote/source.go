// Package remote defines the contracts for the appointment system of
// record and the doctor directory, plus the HTTP implementations. The
// transport is plain request/response; no push channel is assumed.
package remote

import (
	"context"
	"errors"

	"github.com/medibook/appointment-engine/models"
)

// ErrNetwork marks transient transport failures. Callers degrade to
// local-only data instead of failing hard.
var ErrNetwork = errors.New("remote unreachable")

// View identifies whose appointments to fetch: a patient's own, or the
// appointments assigned to a doctor.
type View struct {
	Role   string // "patient" or "doctor"
	UserID string
}

// Source is the appointment system of record.
type Source interface {
	FetchAppointments(ctx context.Context, view View) ([]models.AppointmentRecord, error)
	Submit(ctx context.Context, rec models.AppointmentRecord) (string, error)
	Cancel(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// DoctorFilter narrows a directory fetch server-side.
type DoctorFilter struct {
	Specialization string
	Search         string
}

// DoctorSource is the doctor directory service.
type DoctorSource interface {
	FetchDoctors(ctx context.Context, filter DoctorFilter) ([]models.Doctor, error)
}
