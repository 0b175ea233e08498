package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	rootPath    = "/"
	logoutPath  = "/logout"
	sessionPath = "/api/session"
	versionPath = "/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)

	// surfaces resolved by the bootstrapper
	for _, path := range h.surfacePaths() {
		router.Get(path, h.visit)
	}

	router.Get(logoutPath, h.logout)
	router.Get(sessionPath, h.sessionInfo)
	router.Get(versionPath, h.version)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) surfacePaths() []string {
	paths := []string{h.cfg.LoginPath, h.cfg.MainPath}
	if h.cfg.LoginPath != rootPath && h.cfg.MainPath != rootPath {
		paths = append(paths, rootPath)
	}
	return paths
}
