// Package web serves the local watch-mode API: health, run status,
// archived postings, and an SSE event stream.
package web

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"job-monitor/internal/archive"
	"job-monitor/internal/events"
)

// Status is watch mode's view of the last pipeline pass.
type Status struct {
	mu   sync.Mutex
	view StatusView
}

// StatusView is the JSON shape served by /status.
type StatusView struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastNew   int    `json:"last_new"`
	Runs      int    `json:"runs"`
}

func (s *Status) Record(newCount int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().Format(time.RFC3339)
	s.view.LastRunAt = now
	s.view.Runs++
	if err != nil {
		s.view.LastError = err.Error()
		return
	}
	s.view.LastOkAt = now
	s.view.LastError = ""
	s.view.LastNew = newCount
}

func (s *Status) snapshot() StatusView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

type Server struct {
	db     *archive.DB // nil when no archive is configured
	hub    *events.Hub
	status *Status
}

func NewServer(db *archive.DB, hub *events.Hub, status *Status) *Server {
	return &Server{db: db, hub: hub, status: status}
}

// Listen binds addr and serves until the listener dies.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.Serve(ln)
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/jobs", s.handleJobs)
	mux.HandleFunc("/events", s.handleEvents)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"ok": true, "time": time.Now().Format(time.RFC3339)})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		StatusView
		Archived int `json:"archived"`
	}{StatusView: s.status.snapshot()}
	if s.db != nil {
		if n, err := s.db.Count(r.Context()); err == nil {
			resp.Archived = n
		}
	}
	writeJSON(w, resp)
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		http.Error(w, "archive not configured", http.StatusNotFound)
		return
	}
	opts := archive.ListOpts{
		Sort:   r.URL.Query().Get("sort"),
		Window: r.URL.Query().Get("window"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		opts.Limit = n
	}
	rows, err := s.db.List(r.Context(), opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, rows)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	// Server-Sent Events
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch := s.hub.Subscribe()
	defer s.hub.Unsubscribe(ch)

	// initial ping
	fmt.Fprintf(w, "event: ping\ndata: %s\n\n", `{"type":"ping"}`)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-ch:
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
