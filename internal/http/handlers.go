package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"wardview/internal/core"
	"wardview/internal/notes"
	"wardview/internal/store"
	"wardview/pkg"
)

// Server bundles the dependencies behind the JSON API. It implements
// http.Handler so it can be passed straight to http.ListenAndServe.
type Server struct {
	Patients *store.MemoryStore
	Notes    notes.Store
	Assist   *core.AssistService
	// DB, when non-nil, receives best-effort write-through of added
	// patients so they survive a restart.
	DB     *sql.DB
	Logger *zap.Logger

	router chi.Router
}

// NewServer constructs the API server and mounts its routes.
func NewServer(patients *store.MemoryStore, noteStore notes.Store, assist *core.AssistService, db *sql.DB, logger *zap.Logger) *Server {
	s := &Server{
		Patients: patients,
		Notes:    noteStore,
		Assist:   assist,
		DB:       db,
		Logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/assist", s.handleAssist)
		r.Get("/patients", s.handleListPatients)
		r.Post("/patients", s.handleAddPatient)
		r.Get("/patients/{id}", s.handleGetPatient)
		r.Get("/patients/{id}/notes", s.handleListNotes)
		r.Post("/patients/{id}/notes", s.handleAddNote)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAssist runs the classifier/completion pipeline. The response is
// always 200 with a display string; completion failures were already
// absorbed by the assist service.
func (s *Server) handleAssist(w http.ResponseWriter, r *http.Request) {
	var req pkg.AssistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}
	answer := s.Assist.Answer(r.Context(), req.Question, req.PatientID)
	writeJSON(w, http.StatusOK, pkg.AssistResponse{Answer: answer})
}

func (s *Server) handleListPatients(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Patients.Snapshot())
}

func (s *Server) handleGetPatient(w http.ResponseWriter, r *http.Request) {
	p, ok := s.Patients.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "patient not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleAddPatient(w http.ResponseWriter, r *http.Request) {
	var p pkg.Patient
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	created := s.Patients.Add(p)

	if s.DB != nil {
		go func(p pkg.Patient) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.InsertPatient(ctx, s.DB, p); err != nil {
				s.Logger.Warn("patient write-through failed",
					zap.String("patient_id", p.ID), zap.Error(err))
			}
		}(created)
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.Patients.Get(id); !ok {
		writeError(w, http.StatusNotFound, "patient not found")
		return
	}
	list, err := s.Notes.List(r.Context(), id)
	if err != nil {
		s.Logger.Error("list notes failed", zap.String("patient_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load notes")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleAddNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.Patients.Get(id); !ok {
		writeError(w, http.StatusNotFound, "patient not found")
		return
	}
	var req pkg.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	note, err := s.Notes.Append(r.Context(), id, req.Text)
	if err != nil {
		s.Logger.Error("append note failed", zap.String("patient_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not save note")
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, pkg.ErrorResponse{Error: msg})
}
