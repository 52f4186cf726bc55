// ABOUTME: HTTP server exposing the extraction endpoint and read-only contact views
// ABOUTME: POST /api/extract backs remote capture clients; contact endpoints serve the local store
package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/harperreed/snapcard/extract"
	"github.com/harperreed/snapcard/models"
	"github.com/harperreed/snapcard/store"
	"github.com/harperreed/snapcard/vcard"
)

type Server struct {
	store     *store.Store
	extractor extract.Client
}

// NewServer wires the local store and the extraction client. extractor may
// be nil when no provider credential is configured; /api/extract then
// reports a processing failure and remote clients take their fallback path.
func NewServer(st *store.Store, extractor extract.Client) *Server {
	return &Server{store: st, extractor: extractor}
}

func (s *Server) Start(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/extract", s.handleExtract)
	mux.HandleFunc("/api/contacts", s.handleContacts)
	mux.HandleFunc("/api/contacts/vcard", s.handleVCard)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting snapcard server at http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	reqID := uuid.NewString()

	var req extract.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !models.HasTranscript(req.Transcript) {
		writeError(w, http.StatusBadRequest, "transcript is required")
		return
	}

	if s.extractor == nil {
		log.Printf("extract %s: no extraction client configured", reqID)
		writeError(w, http.StatusInternalServerError, "extraction unavailable")
		return
	}

	result, err := s.extractor.Extract(r.Context(), req.Transcript, req.FormData)
	if err != nil {
		log.Printf("extract %s: %v", reqID, err)
		writeError(w, http.StatusInternalServerError, "failed to process notes")
		return
	}

	log.Printf("extract %s: ok", reqID)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleContacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	contacts := s.store.List()
	if contacts == nil {
		contacts = []models.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (s *Server) handleVCard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	contact := s.store.Get(id)
	if contact == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}

	w.Header().Set("Content-Type", vcard.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", vcard.Filename(*contact)))
	if _, err := w.Write([]byte(vcard.Encode(*contact))); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
