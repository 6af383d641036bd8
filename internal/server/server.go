// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/persist"
	"github.com/jonathan/resume-builder/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *store.Store
	exporter   *export.Exporter
	persister  persist.Store
	saveMu     sync.Mutex
}

// New creates a new server instance. Saved working state is loaded if any
// exists; every later mutation is persisted through a store subscription.
func New(cfg config.Config) (*Server, error) {
	persister, err := openPersistence(cfg)
	if err != nil {
		return nil, err
	}

	st, err := loadStore(persister, cfg)
	if err != nil {
		persister.Close()
		return nil, err
	}

	renderer := export.NewChromeRenderer(cfg.ChromePath)
	exporter := export.NewExporter(renderer,
		export.WithTimeout(time.Duration(cfg.RenderTimeout)*time.Second),
		export.WithMaxConcurrent(int64(cfg.MaxRenders)),
	)

	s := &Server{
		store:     st,
		exporter:  exporter,
		persister: persister,
	}

	s.persistOnChange()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF rendering can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// persistOnChange saves the working state after every successful mutation.
// Saves are serialized and always write a fresh snapshot, so two concurrent
// mutations can never overwrite a newer save with an older one.
func (s *Server) persistOnChange() {
	s.store.Subscribe(func(store.Snapshot) {
		s.saveMu.Lock()
		defer s.saveMu.Unlock()

		snap := s.store.Snapshot()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		state := persist.State{
			Document:      snap.Document,
			Sections:      snap.Sections,
			StyleSettings: snap.StyleSettings,
		}
		if err := s.persister.Save(ctx, state); err != nil {
			log.Printf("Failed to persist state: %v", err)
			return
		}
		s.store.MarkCleanVersion(snap.Version)
	})
}

// routes wires every endpoint onto a fresh mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Document endpoints
	mux.HandleFunc("GET /document", s.handleGetDocument)
	mux.HandleFunc("POST /document/import", s.handleImportDocument)
	mux.HandleFunc("GET /document/export", s.handleExportDocument)
	mux.HandleFunc("POST /document/reset", s.handleResetDocument)
	mux.HandleFunc("PUT /document/personal-details", s.handleUpdatePersonalDetails)
	mux.HandleFunc("PUT /document/profile", s.handleUpdateProfile)
	mux.HandleFunc("PUT /document/footer", s.handleUpdateFooter)

	// Collection entry endpoints
	mux.HandleFunc("POST /collections/{collection}/entries", s.handleAddEntry)
	mux.HandleFunc("PUT /collections/{collection}/entries/{id}", s.handleUpdateEntry)
	mux.HandleFunc("DELETE /collections/{collection}/entries/{id}", s.handleDeleteEntry)
	mux.HandleFunc("POST /collections/{collection}/reorder", s.handleReorderEntries)

	// Hobby endpoints (index-addressed, no identifiers)
	mux.HandleFunc("POST /hobbies", s.handleAddHobby)
	mux.HandleFunc("PUT /hobbies/{index}", s.handleUpdateHobby)
	mux.HandleFunc("DELETE /hobbies/{index}", s.handleDeleteHobby)

	// Section registry endpoints
	mux.HandleFunc("POST /sections/reorder", s.handleReorderSections)
	mux.HandleFunc("POST /sections/{type}/toggle", s.handleToggleSection)
	mux.HandleFunc("DELETE /sections/{type}", s.handleRemoveSection)
	mux.HandleFunc("PUT /sections/{id}/title", s.handleRenameSection)
	mux.HandleFunc("POST /sections/{id}/page-break", s.handleTogglePageBreak)

	// Style and template endpoints
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("PUT /style", s.handleUpdateStyle)
	mux.HandleFunc("POST /style/template", s.handleSetTemplate)

	// Rendering endpoints
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /export/html", s.handleExportHTML)
	mux.HandleFunc("GET /export/pdf", s.handleExportPDF)
	mux.HandleFunc("POST /render/pdf", s.handleRenderPDF)

	return mux
}

func openPersistence(cfg config.Config) (persist.Store, error) {
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return persist.ConnectPostgres(ctx, cfg.DatabaseURL)
	}
	return persist.NewFileStore(cfg.StateDir)
}

func loadStore(persister persist.Store, cfg config.Config) (*store.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	state, ok, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved state: %w", err)
	}
	if ok {
		return store.NewFromSnapshot(store.Snapshot{
			Document:      state.Document,
			Sections:      state.Sections,
			StyleSettings: state.StyleSettings,
		}), nil
	}

	st := store.New()
	if cfg.DefaultTemplate != "" {
		if err := st.SetTemplate(cfg.DefaultTemplate); err != nil {
			return nil, err
		}
		st.MarkClean()
	}
	return st, nil
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.persister.Close()
	log.Println("Server stopped")
	return nil
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
