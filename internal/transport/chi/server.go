package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jaundice/internal/domain"
	"github.com/kailas-cloud/jaundice/internal/domain/article"
	"github.com/kailas-cloud/jaundice/internal/version"
	analyzeuc "github.com/kailas-cloud/jaundice/internal/usecase/analyze"
	healthuc "github.com/kailas-cloud/jaundice/internal/usecase/health"
)

// maxRequestBody caps the POST /analyze body.
const maxRequestBody = 1 << 20

const usage = "/analyze?urls=https://inosmi.ru/...,https://inosmi.ru/..."

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers of the API.
type Server struct {
	analyze       *analyzeuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(analyze *analyzeuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		analyze: analyze,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		tooManyURLsHandler,
		sentinelHandler(domain.ErrNoURLs, http.StatusBadRequest, ErrorCodeBadRequest),
	}
	return s
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, UsageResponse{
		OK:      true,
		Usage:   usage,
		MaxURLs: s.analyze.MaxURLs(),
		Version: version.String(),
	})
}

// AnalyzeQuery handles GET /analyze?urls=a,b,c.
func (s *Server) AnalyzeQuery(w http.ResponseWriter, r *http.Request) {
	var raw []string
	if err := runtime.BindQueryParameter("form", false, true, "urls", r.URL.Query(), &raw); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "query parameter 'urls' is required")
		return
	}

	urls := cleanURLs(raw)
	if len(urls) == 0 {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "query parameter 'urls' is required")
		return
	}

	s.runAnalysis(w, r, urls)
}

// AnalyzeBody handles POST /analyze with an AnalyzeRequest body.
func (s *Server) AnalyzeBody(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.runAnalysis(w, r, cleanURLs(req.URLs))
}

func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request, urls []string) {
	results, err := s.analyze.Analyze(r.Context(), urls)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]ArticleResult, len(results))
	for i, res := range results {
		items[i] = resultToDTO(res)
	}
	writeJSON(w, http.StatusOK, items)
}

// HealthCheck handles GET /health and GET /healthz.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:       string(report.Status),
		Checks:       checks,
		ChargedWords: report.Words,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// cleanURLs trims every URL and drops empty entries.
func cleanURLs(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, u := range raw {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}

func resultToDTO(r article.Result) ArticleResult {
	out := ArticleResult{URL: r.URL(), Status: r.Status().String()}
	if title, ok := r.Title(); ok {
		out.Title = &title
	}
	if score, ok := r.Score(); ok {
		out.Score = &score
	}
	if n, ok := r.WordCount(); ok {
		out.WordCount = &n
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNoURLs,
		domain.ErrTooManyURLs,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// tooManyURLsHandler handles ErrTooManyURLs, reporting the limit when known.
func tooManyURLsHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrTooManyURLs) {
		return false
	}
	var tme *domain.TooManyURLsError
	if errors.As(err, &tme) {
		msg = tme.Error()
	}
	writeError(w, http.StatusBadRequest, ErrorCodeTooManyURLs, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
