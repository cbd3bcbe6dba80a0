package controllers

import (
	"context"

	"github.com/medibook/appointment-engine/remote"
	"github.com/medibook/appointment-engine/syncer"
)

// SyncRun is the trigger callback: it retries pending local submissions
// (the second half of the two-phase booking unit) and refreshes the
// directory cache. List views recompute their merge per request, so no
// merged state is cached here.
func (h *Handler) SyncRun(ctx context.Context, reason syncer.Reason) {
	for _, rec := range h.Store.Pending() {
		id, err := h.Source.Submit(ctx, rec)
		if err != nil {
			h.Log.Debug().Err(err).Str("local_id", rec.LocalID).Msg("pending upload still failing")
			continue
		}
		if err := h.Store.Promote(ctx, rec.LocalID, id); err != nil {
			h.Log.Warn().Err(err).Str("local_id", rec.LocalID).Msg("promotion not persisted")
		}
		h.Log.Info().Str("local_id", rec.LocalID).Str("id", id).Str("reason", string(reason)).
			Msg("pending booking promoted")
	}

	h.Directory.Doctors(ctx, remote.DoctorFilter{})
}
