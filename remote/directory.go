package remote

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/medibook/appointment-engine/models"
)

// Directory wraps a DoctorSource and keeps the last successful result. A
// failed fetch means "no change to the previously known directory", never
// an empty list.
type Directory struct {
	source DoctorSource
	log    zerolog.Logger

	mu   sync.Mutex
	last []models.Doctor
}

func NewDirectory(source DoctorSource, log zerolog.Logger) *Directory {
	return &Directory{source: source, log: log}
}

// Doctors returns the current directory view. The second result reports
// whether the data is stale (served from cache after a failed fetch).
func (d *Directory) Doctors(ctx context.Context, filter DoctorFilter) ([]models.Doctor, bool) {
	docs, err := d.source.FetchDoctors(ctx, filter)
	if err != nil {
		d.log.Warn().Err(err).Msg("doctor directory fetch failed, serving cached copy")
		d.mu.Lock()
		defer d.mu.Unlock()
		return d.last, true
	}

	// Only an unfiltered fetch replaces the cache; filtered results are a
	// subset and would shrink the fallback view.
	if filter == (DoctorFilter{}) {
		d.mu.Lock()
		d.last = docs
		d.mu.Unlock()
	}
	return docs, false
}
