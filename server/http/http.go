package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/reportsext/agent"
	"github.com/reportsext/agent/server"
)

type httpServer struct {
	options server.Options
	agent   *agent.Agent
	srv     *http.Server
}

func (s *httpServer) Run() error {
	slog.InfoContext(s.options.Context, "http server listening", "address", s.options.Address)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *httpServer) handleQuestion(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(strings.TrimSpace(body.Question)) == 0 {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	answer, err := s.agent.Answer(r.Context(), body.Question)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to answer question", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func (s *httpServer) handleDocument(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Kind    string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(strings.TrimSpace(body.Title)) == 0 || len(strings.TrimSpace(body.Content)) == 0 {
		writeError(w, http.StatusBadRequest, "title and content are required")
		return
	}

	stored := s.agent.AddDocument(r.Context(), body.Title, body.Content, body.Kind)

	writeJSON(w, http.StatusOK, map[string]bool{"stored": stored})
}

func (s *httpServer) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.agent.Stats(r.Context()))
}

func (s *httpServer) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	partial := r.URL.Query().Get("q")
	if len(strings.TrimSpace(partial)) == 0 {
		writeError(w, http.StatusBadRequest, "q parameter is required")
		return
	}

	suggestions := s.agent.Suggestions(r.Context(), partial)
	if suggestions == nil {
		suggestions = []string{}
	}

	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

func (s *httpServer) handleTables(w http.ResponseWriter, r *http.Request) {
	tables, err := s.agent.Tables(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list tables", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"tables": tables})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"error": detail})
}

func NewServer(a *agent.Agent, opts ...server.Option) server.Server {
	options := server.NewOptions(opts...)

	s := &httpServer{
		options: options,
		agent:   a,
	}

	router := mux.NewRouter()
	router.HandleFunc("/v1/questions", s.handleQuestion).Methods(http.MethodPost)
	router.HandleFunc("/v1/documents", s.handleDocument).Methods(http.MethodPost)
	router.HandleFunc("/v1/stats", s.handleStats).Methods(http.MethodGet)
	router.HandleFunc("/v1/suggestions", s.handleSuggestions).Methods(http.MethodGet)
	router.HandleFunc("/v1/tables", s.handleTables).Methods(http.MethodGet)

	var handler http.Handler = router
	if ms, ok := MiddlewareFrom(options.Context); ok {
		for i := len(ms) - 1; i >= 0; i-- {
			handler = ms[i](handler)
		}
	}

	s.srv = &http.Server{
		Addr:              options.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}
