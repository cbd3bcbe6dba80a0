// Package reconcile merges the two divergent appointment sources — the
// system of record and the local offline queue — into one de-duplicated,
// self-consistent list. The sources share no primary key; identity is the
// composite reconciliation key (patient name, calendar day, time of day).
package reconcile

import (
	"errors"
	"sort"

	"github.com/medibook/appointment-engine/models"
)

// Order selects the chronological direction of the merged list.
type Order int

const (
	Ascending  Order = iota // chronological views
	Descending              // "most recent first" views
)

// ErrConflict is reserved for the case where two distinct local records
// map to one reconciliation key. It is currently never returned: the
// conflict resolves deterministically, later record wins.
var ErrConflict = errors.New("conflicting local records for one reconciliation key")

// Merge produces the display list from a freshly fetched remote list and
// the current local queue. Pure and deterministic: no I/O, single pass
// over each input via a key-indexed map.
//
// Rules: locals not owned by the session user are excluded; a local record
// shadows its remote counterpart (the local copy is the richer source),
// backfilling only the server identity and a missing status; unmatched
// records from either side pass through. The output never contains two
// records with the same key.
func Merge(remote, local []models.AppointmentRecord, session models.SessionContext, order Order) []models.AppointmentRecord {
	type indexed struct {
		rec  models.AppointmentRecord
		used bool
	}

	index := make(map[models.ReconKey]*indexed, len(local))
	keys := make([]models.ReconKey, 0, len(local))
	for _, l := range local {
		if !session.Owns(l) {
			continue
		}
		k := l.Key()
		if _, dup := index[k]; !dup {
			keys = append(keys, k)
		}
		// Later local wins when two map to one key.
		index[k] = &indexed{rec: l}
	}

	out := make([]models.AppointmentRecord, 0, len(remote)+len(keys))
	seen := make(map[models.ReconKey]bool, len(remote))
	for _, r := range remote {
		k := r.Key()
		if seen[k] {
			continue
		}
		seen[k] = true

		if l, ok := index[k]; ok {
			l.used = true
			merged := l.rec
			if merged.ID == "" {
				merged.ID = r.ID
			}
			if merged.Status == "" {
				merged.Status = r.Status
			}
			out = append(out, merged)
			continue
		}
		out = append(out, r)
	}

	// Locals still pending upload, or booked against directory entries the
	// server will never know about.
	for _, k := range keys {
		if l := index[k]; !l.used && !seen[k] {
			out = append(out, l.rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := models.NormalizeDate(out[i].Date), models.NormalizeDate(out[j].Date)
		if di != dj {
			if order == Descending {
				return di > dj
			}
			return di < dj
		}
		if order == Descending {
			return out[i].Time > out[j].Time
		}
		return out[i].Time < out[j].Time
	})
	return out
}
