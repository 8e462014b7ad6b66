package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/ledwire/pkg/buildinfo"
	"github.com/matzehuels/ledwire/pkg/errors"
	"github.com/matzehuels/ledwire/pkg/pipeline"
	"github.com/matzehuels/ledwire/pkg/plan"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatYAML: "application/yaml",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",

	pipeline.FormatChain: "image/svg+xml",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	opts, err := parseOptions(r.URL.Query(), s.defaults)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	p, hit, err := s.runner.PlanWithCacheInfo(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := plan.Marshal(p, plan.EncodingJSON)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.setPlanHeaders(w, opts, hit)
	w.Header().Set("Content-Type", contentTypes[pipeline.FormatJSON])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.fail(w, r, err)
		return
	}

	opts, err := parseOptions(r.URL.Query(), s.defaults)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.setPlanHeaders(w, opts, result.CacheInfo.PlanHit)
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Plan-Hash", result.PlanHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func (s *Server) setPlanHeaders(w http.ResponseWriter, opts pipeline.Options, hit bool) {
	w.Header().Set("X-Cache", cacheHeader(hit))
	if opts.WideWall() {
		w.Header().Set("Warning", fmt.Sprintf(`299 ledwire "%d columns exceeds the recommended maximum of %d"`,
			opts.Cols, pipeline.RecommendedMaxCols))
	}
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// fail maps validation errors to 400 and everything else to 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case code == errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	case code == "":
		code = errors.ErrCodeInternal
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", RequestID(r.Context()))
	}
	respondError(w, status, string(code), errors.UserMessage(err))
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorBody{Code: code, Message: message})
}
