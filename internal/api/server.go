package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Vishnupradeep-dot/police-log/internal/catalog"
	"github.com/Vishnupradeep-dot/police-log/internal/reports"
	"github.com/Vishnupradeep-dot/police-log/internal/stops"
	"github.com/Vishnupradeep-dot/police-log/internal/store"
	"github.com/Vishnupradeep-dot/police-log/internal/table"
)

type Server struct {
	svc    *reports.Service
	router chi.Router
	port   int
}

func NewServer(svc *reports.Service, port int) *Server {
	srv := &Server{svc: svc, port: port}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", srv.handleHealth)
		r.Get("/kpis", srv.handleKPIs)
		r.Get("/stops", srv.handleListStops)
		r.Get("/stops/summary", srv.handleStopSummary)
		r.Get("/queries", srv.handleQueryNames)
		r.Get("/queries/run", srv.handleRunQuery)
		r.Get("/violations/top", srv.handleTopViolations)
		r.Get("/vehicles/high-risk", srv.handleHighRisk)
		r.Post("/logs", srv.handleIntakeLog)
	})

	srv.router = r
	return srv
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("starting HTTP API", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "securecheck",
		"queries": len(s.svc.QueryNames()),
	})
}

func (s *Server) handleKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := s.svc.KPIs(r.Context())
	if err != nil {
		slog.Error("kpi summary failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, kpis)
}

func (s *Server) handleListStops(w http.ResponseWriter, r *http.Request) {
	f := stops.Filters{
		Country:   r.URL.Query().Get("country"),
		Violation: r.URL.Query().Get("violation"),
		Vehicle:   r.URL.Query().Get("vehicle"),
	}
	t, err := s.svc.ListStops(r.Context(), f)
	s.writeTable(w, t, err)
}

func (s *Server) handleStopSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.LatestStopSummary(r.Context())
	if err != nil {
		if errors.Is(err, reports.ErrNoStops) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		slog.Error("stop summary failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Server) handleQueryNames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"queries": s.svc.QueryNames()})
}

func (s *Server) handleRunQuery(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	t, err := s.svc.Run(r.Context(), name)
	s.writeTable(w, t, err)
}

func (s *Server) handleTopViolations(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.TopViolations(r.Context())
	s.writeTable(w, t, err)
}

func (s *Server) handleHighRisk(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.HighRiskVehicles(r.Context())
	s.writeTable(w, t, err)
}

func (s *Server) handleIntakeLog(w http.ResponseWriter, r *http.Request) {
	var l reports.NewLog
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	receipt, err := s.svc.IntakeLog(l)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

// writeTable renders a query result. A store-level failure is not a server
// error: the message is surfaced alongside an empty table so the dashboard
// stays interactive.
func (s *Server) writeTable(w http.ResponseWriter, t table.Table, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, t)
	case errors.Is(err, catalog.ErrUnknownQuery):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case store.IsQueryError(err):
		writeJSON(w, http.StatusOK, map[string]any{
			"error":   err.Error(),
			"columns": []string{},
			"rows":    []table.Row{},
		})
	default:
		slog.Error("query handler failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
