package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/keyword-scout/internal/config"
	"github.com/jonathan/keyword-scout/internal/pipeline"
)

// AnalyzeRequest is the request body for POST /analyze
type AnalyzeRequest struct {
	URL                string `json:"url"`
	BusinessType       string `json:"business_type"`
	LocationCode       int    `json:"location_code,omitempty"`
	LanguageCode       string `json:"language_code,omitempty"`
	MinExpansionVolume int    `json:"min_expansion_volume,omitempty"`
	MinClusterVolume   int    `json:"min_cluster_volume,omitempty"`
	Markdown           bool   `json:"markdown,omitempty"`
}

// AnalyzeResponse is the response body for POST /analyze
type AnalyzeResponse struct {
	RunID        string `json:"run_id"`
	Report       any    `json:"report"`
	JSONPath     string `json:"json_path"`
	MarkdownPath string `json:"markdown_path,omitempty"`
}

func (s *Server) parseAnalyzeRequest(r *http.Request) (pipeline.RunOptions, error) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return pipeline.RunOptions{}, fmt.Errorf("invalid request body: %w", err)
	}
	if req.URL == "" {
		return pipeline.RunOptions{}, fmt.Errorf("url is required")
	}
	if req.BusinessType == "" {
		return pipeline.RunOptions{}, fmt.Errorf("business_type is required")
	}

	cfg := config.Config{
		WebsiteURL:         req.URL,
		BusinessType:       req.BusinessType,
		LocationCode:       req.LocationCode,
		LanguageCode:       req.LanguageCode,
		MinExpansionVolume: req.MinExpansionVolume,
		MinClusterVolume:   req.MinClusterVolume,
		Markdown:           req.Markdown,
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return pipeline.RunOptions{}, err
	}

	return pipeline.RunOptions{
		Config:      cfg,
		Credentials: s.credentials,
	}, nil
}

// handleAnalyze runs a full analysis and returns the report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseAnalyzeRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.runPipeline(r.Context(), opts)
	if err != nil {
		log.Printf("analysis failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("analysis failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		RunID:        result.RunID,
		Report:       result.Report,
		JSONPath:     result.JSONPath,
		MarkdownPath: result.MarkdownPath,
	})
}

// handleAnalyzeStream runs an analysis with progress streamed over SSE.
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseAnalyzeRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	opts.OnProgress = func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent("step", event); err != nil {
			log.Printf("failed to write SSE event: %v", err)
		}
	}

	result, err := s.runPipeline(r.Context(), opts)
	if err != nil {
		log.Printf("analysis failed: %v", err)
		_ = sse.WriteError(fmt.Sprintf("analysis failed: %v", err))
		return
	}

	_ = sse.WriteComplete(AnalyzeResponse{
		RunID:        result.RunID,
		Report:       result.Report,
		JSONPath:     result.JSONPath,
		MarkdownPath: result.MarkdownPath,
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
