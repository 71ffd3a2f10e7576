package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/akhenakh/kepler"
	"github.com/akhenakh/kepler/internal/metrics"
)

const (
	maxBodyBytes = 1 << 20
	maxBatchSize = 10000
)

// ErrNotConverged reports a Newton-Raphson run that exhausted its budget.
var ErrNotConverged = errors.New("solver did not converge")

// Solver method names accepted by POST /v1/solve.
const (
	MethodAuto      = "auto"
	MethodNewton    = "newton"
	MethodBisection = "bisection"
	MethodHighEcc   = "high-ecc"
)

// SolveRequest is the body of POST /v1/solve. Zero-valued optional fields
// fall back to the server's solver configuration.
type SolveRequest struct {
	MeanAnomaly  *float64 `json:"mean_anomaly"`
	Eccentricity *float64 `json:"eccentricity"`
	MaxIter      int      `json:"max_iter,omitempty"`
	Tolerance    float64  `json:"tolerance,omitempty"`
	Method       string   `json:"method,omitempty"`
}

// SolveResponse is the body of a single solve. Single-solver runs fill it
// like a dispatcher result, with Fallback always false.
type SolveResponse struct {
	kepler.Result
}

// BatchRequest is the body of POST /v1/solve/batch.
type BatchRequest struct {
	Problems  []kepler.Problem `json:"problems"`
	MaxIter   int              `json:"max_iter,omitempty"`
	Tolerance float64          `json:"tolerance,omitempty"`
}

// BatchResponse holds results in request order.
type BatchResponse struct {
	Results []kepler.Result `json:"results"`
}

// Handler wires the solver endpoints.
type Handler struct {
	solver  kepler.SolverConfig
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler constructs a handler. solver supplies the defaults for requests
// that leave max_iter or tolerance unset.
func NewHandler(solver kepler.SolverConfig, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{solver: solver, logger: logger, metrics: m}
}

// Register mounts the solver endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/solve", h.HandleSolve)
	r.Post("/v1/solve/batch", h.HandleSolveBatch)
	r.Get("/v1/hohmann", h.HandleHohmann)
}

func (h *Handler) config(maxIter int, tolerance float64) *kepler.SolverConfig {
	return SolveOptions{MaxIter: maxIter, Tolerance: tolerance}.config(h.solver)
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %w", ErrBadRequest, err)
	}
	return nil
}

// HandleSolve handles POST /v1/solve.
func (h *Handler) HandleSolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SolveRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.MeanAnomaly == nil || req.Eccentricity == nil {
		writeError(w, fmt.Errorf("%w: mean_anomaly and eccentricity are required", ErrBadRequest))
		return
	}

	opts := SolveOptions{Method: req.Method, MaxIter: req.MaxIter, Tolerance: req.Tolerance}
	resp, err := Solve(*req.MeanAnomaly, *req.Eccentricity, opts, h.solver, h.metrics)
	if err != nil {
		h.logger.InfoContext(ctx, "solve rejected",
			"request_id", middleware.GetReqID(ctx),
			"method", req.Method,
			"error", err,
		)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SolveOptions selects a solver and overrides its budget. Zero MaxIter and
// Tolerance keep the defaults.
type SolveOptions struct {
	Method    string
	MaxIter   int
	Tolerance float64
}

func (o SolveOptions) config(defaults kepler.SolverConfig) *kepler.SolverConfig {
	cfg := defaults
	if o.MaxIter != 0 {
		cfg.MaxIter = o.MaxIter
	}
	if o.Tolerance != 0 {
		cfg.Tolerance = o.Tolerance
	}
	return &cfg
}

// Solve runs the solver named by opts.Method (auto, newton, bisection or
// high-ecc) and records it on m, which may be nil. A Newton run that does not
// converge fails with ErrNotConverged.
func Solve(M, e float64, opts SolveOptions, defaults kepler.SolverConfig, m *metrics.Metrics) (SolveResponse, error) {
	switch opts.Method {
	case "", MethodAuto:
		res, err := kepler.SolveDetailed(M, e, opts.config(defaults))
		if err != nil {
			return SolveResponse{}, err
		}
		m.ObserveResult(res)
		return SolveResponse{Result: res}, nil

	case MethodNewton:
		sol, err := kepler.SolveNewtonRaphson(M, e, opts.config(defaults))
		if err != nil {
			return SolveResponse{}, err
		}
		m.ObserveSolution(kepler.MethodNewtonRaphson, sol)
		if !sol.Converged {
			return SolveResponse{}, fmt.Errorf("%w: newton-raphson after %d iterations", ErrNotConverged, sol.Iterations)
		}
		return solutionResponse(kepler.MethodNewtonRaphson, sol), nil

	case MethodBisection:
		sol, err := kepler.SolveBisection(M, e, opts.config(defaults))
		if err != nil {
			return SolveResponse{}, err
		}
		m.ObserveSolution(kepler.MethodBisection, sol)
		return solutionResponse(kepler.MethodBisection, sol), nil

	case MethodHighEcc:
		// An unset budget keeps the mean-anomaly dependent default.
		cfg := &kepler.SolverConfig{MaxIter: opts.MaxIter, Tolerance: defaults.Tolerance}
		if opts.Tolerance != 0 {
			cfg.Tolerance = opts.Tolerance
		}
		sol, err := kepler.SolveHighEccentricity(M, e, cfg)
		if err != nil {
			return SolveResponse{}, err
		}
		m.ObserveSolution(kepler.MethodHighEccentricity, sol)
		return solutionResponse(kepler.MethodHighEccentricity, sol), nil

	default:
		return SolveResponse{}, fmt.Errorf("%w: unknown method %q", ErrBadRequest, opts.Method)
	}
}

func solutionResponse(method kepler.Method, sol kepler.Solution) SolveResponse {
	return SolveResponse{
		Result: kepler.Result{E: sol.E, Method: method, Iterations: sol.Iterations, Converged: sol.Converged},
	}
}

// HandleSolveBatch handles POST /v1/solve/batch.
func (h *Handler) HandleSolveBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BatchRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if len(req.Problems) > maxBatchSize {
		writeError(w, fmt.Errorf("%w: %d problems exceeds the limit of %d", ErrBadRequest, len(req.Problems), maxBatchSize))
		return
	}

	results, err := kepler.SolveBatch(ctx, req.Problems, h.config(req.MaxIter, req.Tolerance))
	if err != nil {
		h.logger.InfoContext(ctx, "batch rejected",
			"request_id", middleware.GetReqID(ctx),
			"problems", len(req.Problems),
			"error", err,
		)
		writeError(w, err)
		return
	}
	for _, res := range results {
		h.metrics.ObserveResult(res)
	}
	writeJSON(w, http.StatusOK, BatchResponse{Results: results})
}

// HandleHohmann handles GET /v1/hohmann?r1=&r2=&mu=. mu defaults to Earth's.
func (h *Handler) HandleHohmann(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	r1, err := queryFloat(q.Get("r1"), "r1")
	if err != nil {
		writeError(w, err)
		return
	}
	r2, err := queryFloat(q.Get("r2"), "r2")
	if err != nil {
		writeError(w, err)
		return
	}
	mu := kepler.MuEarth
	if s := q.Get("mu"); s != "" {
		if mu, err = queryFloat(s, "mu"); err != nil {
			writeError(w, err)
			return
		}
	}

	res, err := kepler.HohmannTransfer(r1, r2, mu)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func queryFloat(s, name string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrBadRequest, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrBadRequest, name, err)
	}
	return v, nil
}
