package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/zeusync/narrowphase/internal/core/observability/log"
)

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.requests.Add(1)

	q, err := decodeQuery(http.MaxBytesReader(w, r.Body, s.config.MaxMessageSize))
	if err != nil {
		s.logger.Debug("Bad detect request", log.String("remote", r.RemoteAddr), log.Error(err))
		writeJSON(w, http.StatusBadRequest, Response{Error: err.Error()})
		return
	}

	resp, err := s.answer(q)
	if err != nil {
		resp.Error = err.Error()
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidQuery) {
			status = http.StatusUnprocessableEntity
		}
		s.logger.Debug("Rejected query", log.String("id", resp.ID), log.Error(err))
		writeJSON(w, status, resp)
		return
	}

	s.logger.Debug("Answered query",
		log.String("id", resp.ID),
		log.Bool("intersects", resp.Intersects),
		log.Duration("elapsed", time.Since(start)))
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	stats := s.detector.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"queries": stats.Queries,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
