package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medibook/appointment-engine/models"
)

const appointmentsKey = "local_appointments"

// LocalStore is the ordered, durable queue of provenance-local
// appointment records. The in-memory slice is authoritative for the
// session; the KV gives durability across restarts. When the KV fails the
// store keeps serving from memory and reports ErrStorageUnavailable so the
// caller can surface the degradation.
type LocalStore struct {
	kv  KV
	log zerolog.Logger

	mu   sync.Mutex
	recs []models.AppointmentRecord
}

// Open hydrates the queue from the KV. A missing key is a fresh install; a
// failing KV starts the session empty and non-durable rather than failing
// the whole app.
func Open(ctx context.Context, kv KV, log zerolog.Logger) *LocalStore {
	s := &LocalStore{kv: kv, log: log}

	raw, err := kv.Get(ctx, appointmentsKey)
	switch {
	case errors.Is(err, ErrNotFound):
		return s
	case err != nil:
		log.Warn().Err(err).Msg("local store unavailable, starting with empty session state")
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s.recs); err != nil {
		log.Warn().Err(err).Msg("discarding corrupt local appointment data")
		s.recs = nil
	}
	return s
}

// Append adds a new local record, assigning a temporary identity and
// defaulting lifecycle fields. The record is always kept for the session;
// ErrStorageUnavailable reports that durability was lost.
func (s *LocalStore) Append(ctx context.Context, rec models.AppointmentRecord) (models.AppointmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.LocalID == "" {
		rec.LocalID = fmt.Sprintf("local-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	}
	if rec.Status == "" {
		rec.Status = models.StatusPending
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	rec.Provenance = models.ProvenanceLocal

	s.recs = append(s.recs, rec)
	return rec, s.persist(ctx)
}

// UpdateStatus finds a record by reconciliation key and mutates its status
// in place. A missing key is a no-op, not an error — callers may race with
// reconciliation.
func (s *LocalStore) UpdateStatus(ctx context.Context, key models.ReconKey, status models.AppointmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.recs {
		if s.recs[i].Key() == key {
			s.recs[i].Status = status
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.persist(ctx)
}

// Promote stamps the server identity onto the local record once the
// system of record has accepted it. The record is not removed; it remains
// the detail-holder for its reconciliation key.
func (s *LocalStore) Promote(ctx context.Context, localID, serverID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recs {
		if s.recs[i].LocalID == localID {
			s.recs[i].ID = serverID
			return s.persist(ctx)
		}
	}
	return nil
}

// All returns a copy of the full ordered sequence.
func (s *LocalStore) All() []models.AppointmentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.AppointmentRecord, len(s.recs))
	copy(out, s.recs)
	return out
}

// Pending returns local records the system of record has not accepted yet.
func (s *LocalStore) Pending() []models.AppointmentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.AppointmentRecord
	for _, r := range s.recs {
		if r.ID == "" && r.Status != models.StatusCancelled {
			out = append(out, r)
		}
	}
	return out
}

func (s *LocalStore) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.recs)
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}
	if err := s.kv.Set(ctx, appointmentsKey, string(raw)); err != nil {
		s.log.Warn().Err(err).Msg("appointment persisted in memory only")
		if errors.Is(err, ErrStorageUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
