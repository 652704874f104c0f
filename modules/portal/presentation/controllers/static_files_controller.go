package controllers

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"

	"github.com/iota-uz/billing-portal/pkg/application"
	"github.com/iota-uz/billing-portal/pkg/configuration"
)

type StaticFilesController struct {
	fsInstances []*hashfs.FS
	handlers    []http.Handler
}

func (s *StaticFilesController) Key() string {
	return "/assets"
}

func (s *StaticFilesController) Register(r *mux.Router) {
	production := configuration.Use().GoAppEnvironment == configuration.Production
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/assets/")
		for i, fsys := range s.fsInstances {
			if _, err := fs.Stat(fsys, name); err != nil {
				continue
			}
			if !production {
				w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			}
			http.StripPrefix("/assets", s.handlers[i]).ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
	r.PathPrefix("/assets/").Handler(handler).Methods(http.MethodGet, http.MethodHead)
}

// NewStaticFilesController serves every registered hashfs. The first file
// system holding the requested name wins.
func NewStaticFilesController(fsInstances []*hashfs.FS) application.Controller {
	handlers := make([]http.Handler, len(fsInstances))
	for i, fsys := range fsInstances {
		handlers[i] = hashfs.FileServer(fsys)
	}
	return &StaticFilesController{
		fsInstances: fsInstances,
		handlers:    handlers,
	}
}
