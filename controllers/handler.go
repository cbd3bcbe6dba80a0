// Package controllers exposes the engine over HTTP. Handlers hang off an
// explicit Handler struct so every dependency is visible at the wiring
// point; there are no package-level singletons.
package controllers

import (
	"github.com/rs/zerolog"

	"github.com/medibook/appointment-engine/remote"
	"github.com/medibook/appointment-engine/store"
	"github.com/medibook/appointment-engine/syncer"
)

type Handler struct {
	Store     *store.LocalStore
	Source    remote.Source
	Directory *remote.Directory
	Trigger   *syncer.Trigger
	Log       zerolog.Logger
}

func New(s *store.LocalStore, src remote.Source, dir *remote.Directory, log zerolog.Logger) *Handler {
	return &Handler{Store: s, Source: src, Directory: dir, Log: log}
}
