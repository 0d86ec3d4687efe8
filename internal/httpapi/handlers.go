package httpapi

import (
	"net/http"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	home, err := s.catalog.Home(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.renderer.Render(w, r, http.StatusOK, home); err != nil {
		s.logger.Error("rendering home", "error", err)
	}
}

func (s *Server) handleFilterEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("month") {
		s.respond(w, http.StatusBadRequest, errorBody{Error: "month query parameter is required"})
		return
	}

	events, err := s.catalog.EventsByMonth(r.Context(), query.Get("month"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, events)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("handling request", "path", r.URL.Path, "error", err)
	s.respond(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}
