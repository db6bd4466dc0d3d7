package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/spektr-org/prism/engine"
	"github.com/spektr-org/prism/internal/logging"
	"github.com/spektr-org/prism/internal/metrics"
	"github.com/spektr-org/prism/internal/render"
	"github.com/spektr-org/prism/schema"
)

// ============================================================================
// HTTP API — record store, field lists and charts over JSON
// ============================================================================
//   GET /api/jsondata                       record store as a JSON array
//   GET /api/fields                         analysis / secondary fields + profile
//   GET /api/chart?variable=V&filter=F      result, chart config, table, summary
//   GET /api/chart.svg?variable=V&filter=F  rendered chart
//   GET /metrics, GET /healthz
//
// The record store is read-only once the server starts; handlers share it
// without locking.
// ============================================================================

const shutdownTimeout = 5 * time.Second

// Server serves one record store.
type Server struct {
	view     engine.RecordView
	profile  schema.Config
	opts     []engine.Option // builders
	execOpts []engine.Option // Execute, with the server logger
	logger   *slog.Logger
	handler  http.Handler
	limiter  *rate.Limiter // nil: unlimited
}

// New builds a Server over view. Engine options apply to every chart.
func New(view engine.RecordView, opts ...engine.Option) *Server {
	if view == nil {
		view = engine.NewSliceView(nil)
	}
	s := &Server{
		view:    view,
		profile: engine.Describe(view),
		opts:    opts,
		logger:  logging.New("server"),
	}
	s.execOpts = append(slices.Clone(opts), engine.WithLogger(s.logger))
	metrics.SetRecords(view.Len())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/jsondata", s.handleJSONData)
	mux.HandleFunc("GET /api/fields", s.handleFields)
	mux.HandleFunc("GET /api/chart", s.handleChart)
	mux.HandleFunc("GET /api/chart.svg", s.handleChartSVG)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.handler = s.withMiddleware(mux)
	return s
}

// LimitRate caps chart computations across both chart routes at perSecond
// with the given burst. Requests over the limit get 429. perSecond <= 0
// removes the limit. Call before serving.
func (s *Server) LimitRate(perSecond float64, burst int) *Server {
	if perSecond <= 0 {
		s.limiter = nil
		return s
	}
	s.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	return s
}

// Handler returns the root handler (for httptest).
func (s *Server) Handler() http.Handler { return s.handler }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", ln.Addr().String(), "records", s.view.Len())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ============================================================================
// HANDLERS
// ============================================================================

func (s *Server) handleJSONData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, engine.Materialize(s.view))
}

type fieldInfo struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Role        schema.Role `json:"role"`
}

type fieldsResponse struct {
	Analysis  []fieldInfo   `json:"analysis"`
	Secondary []fieldInfo   `json:"secondary"`
	Profile   schema.Config `json:"profile"`
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fieldsResponse{
		Analysis:  describeFields(schema.AnalysisFields()),
		Secondary: describeFields(schema.SecondaryFields()),
		Profile:   s.profile,
	})
}

func describeFields(names []string) []fieldInfo {
	out := make([]fieldInfo, len(names))
	for i, n := range names {
		role, _ := schema.Classify(n)
		out[i] = fieldInfo{Name: n, DisplayName: schema.DisplayName(n), Role: role}
	}
	return out
}

type chartResponse struct {
	Result  *engine.Result      `json:"result"`
	Chart   *engine.ChartConfig `json:"chart"`
	Table   *engine.TableData   `json:"table"`
	Summary string              `json:"summary"`
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	result, ok := s.compute(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, chartResponse{
		Result:  result,
		Chart:   engine.BuildChart(result, s.opts...),
		Table:   engine.BuildTable(result, s.opts...),
		Summary: engine.Summarize(result),
	})
}

func (s *Server) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	result, ok := s.compute(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.SVG(w, result, render.Options{Engine: s.opts}); err != nil {
		s.logger.Error("render failed", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "records": s.view.Len()})
}

// compute resolves the selection in the query string and runs it.
// Validation failures are answered with 400, throttled requests with 429.
func (s *Server) compute(w http.ResponseWriter, r *http.Request) (*engine.Result, bool) {
	if s.limiter != nil && !s.limiter.Allow() {
		writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return nil, false
	}

	q := r.URL.Query()
	req, err := engine.FromSelection(q.Get("variable"), q.Get("filter"))
	if err != nil {
		metrics.ObserveRejected()
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	start := time.Now()
	result, err := engine.Execute(req, s.view, s.execOpts...)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	metrics.ObserveChart(result, time.Since(start))
	return result, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
