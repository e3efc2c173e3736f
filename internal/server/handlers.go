package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gauss/matrix"
)

// Reduction modes accepted by POST /v1/reduce.
const (
	ModeREF   = "ref"
	ModeRREF  = "rref"
	ModeRank  = "rank"
	ModeSteps = "steps"
)

var (
	errUnknownMode  = errors.New("unknown mode")
	errBadTolerance = errors.New("tolerance must be finite and >= 0")
	errTooLarge     = errors.New("matrix too large")
	errMissingRHS   = errors.New("rhs is required")
	errBadBody      = errors.New("malformed request body")
)

// Request is the body of every /v1 endpoint. Mode is read by /v1/reduce only,
// RHS by /v1/solve only.
type Request struct {
	Rows      [][]float64 `json:"rows"`
	RHS       []float64   `json:"rhs,omitempty"`
	Mode      string      `json:"mode,omitempty"`
	Tolerance float64     `json:"tolerance,omitempty"`
}

// ReduceResponse is returned by /v1/reduce. Matrix is set for ref, rref and
// steps (the row-echelon form), Rank for rank, Steps for steps.
type ReduceResponse struct {
	ID     string            `json:"id"`
	Mode   string            `json:"mode"`
	Matrix *matrix.Dense     `json:"matrix,omitempty"`
	Rank   *int              `json:"rank,omitempty"`
	Steps  []matrix.Snapshot `json:"steps,omitempty"`
}

// SolveResponse is returned by /v1/solve.
type SolveResponse struct {
	ID      string        `json:"id"`
	Kind    string        `json:"kind"`
	X       []float64     `json:"x"`
	Free    []int         `json:"free"`
	Reduced *matrix.Dense `json:"reduced"`
}

// InverseResponse is returned by /v1/inverse.
type InverseResponse struct {
	ID      string        `json:"id"`
	Inverse *matrix.Dense `json:"inverse"`
}

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
	ID    string `json:"id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReduce(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	req, a, opts, err := s.decode(w, r)
	if err != nil {
		s.fail(w, id, err)
		return
	}
	mode := req.Mode
	if mode == "" {
		mode = ModeRREF
	}
	resp := ReduceResponse{ID: id, Mode: mode}

	start := time.Now()
	switch mode {
	case ModeREF:
		resp.Matrix, err = matrix.RowReduce(a, opts...)
	case ModeRREF:
		resp.Matrix, err = matrix.RREF(a, opts...)
	case ModeRank:
		var rank int
		if rank, err = matrix.Rank(a, opts...); err == nil {
			resp.Rank = &rank
		}
	case ModeSteps:
		if a.Rows() > s.maxStepsDim || a.Cols() > s.maxStepsDim {
			s.fail(w, id, fmt.Errorf("steps mode is limited to %d×%d: %w", s.maxStepsDim, s.maxStepsDim, errTooLarge))
			return
		}
		resp.Steps, resp.Matrix, err = s.steps(r, a, opts)
	default:
		s.fail(w, id, fmt.Errorf("%q: %w", mode, errUnknownMode))
		return
	}
	s.metrics.observe(mode, start, err)
	if err != nil {
		s.fail(w, id, err)
		return
	}

	s.logger.Info("reduced", "id", id, "mode", mode, "rows", a.Rows(), "cols", a.Cols())
	writeJSON(w, http.StatusOK, resp)
}

// steps pulls every operation, stopping early when the client goes away.
func (s *Server) steps(r *http.Request, a *matrix.Dense, opts []matrix.Option) ([]matrix.Snapshot, *matrix.Dense, error) {
	e, err := matrix.NewEliminator(a, opts...)
	if err != nil {
		return nil, nil, err
	}
	out := []matrix.Snapshot{}
	for step, snap := range e.All() {
		if err = r.Context().Err(); err != nil {
			return nil, nil, err
		}
		out = append(out, matrix.Snapshot{Step: step, Matrix: snap})
	}
	if err = e.Err(); err != nil {
		return nil, nil, err
	}

	return out, e.Result(), nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	req, a, opts, err := s.decode(w, r)
	if err != nil {
		s.fail(w, id, err)
		return
	}
	if req.RHS == nil {
		s.fail(w, id, errMissingRHS)
		return
	}

	start := time.Now()
	sol, err := matrix.Solve(a, req.RHS, opts...)
	s.metrics.observe("solve", start, err)
	if err != nil {
		s.fail(w, id, err)
		return
	}

	s.logger.Info("solved", "id", id, "kind", sol.Kind, "free", len(sol.Free))
	writeJSON(w, http.StatusOK, SolveResponse{
		ID:      id,
		Kind:    sol.Kind.String(),
		X:       sol.X,
		Free:    sol.Free,
		Reduced: sol.Reduced,
	})
}

func (s *Server) handleInverse(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	_, a, opts, err := s.decode(w, r)
	if err != nil {
		s.fail(w, id, err)
		return
	}

	start := time.Now()
	inv, err := matrix.Inverse(a, opts...)
	s.metrics.observe("inverse", start, err)
	if err != nil {
		s.fail(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, InverseResponse{ID: id, Inverse: inv})
}

// decode reads and validates the request body and builds the matrix and engine options.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*Request, *matrix.Dense, []matrix.Option, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req Request
	if err := dec.Decode(&req); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", errBadBody, err)
	}
	if len(req.Rows) > s.maxDim {
		return nil, nil, nil, fmt.Errorf("%d rows (max %d): %w", len(req.Rows), s.maxDim, errTooLarge)
	}
	for _, row := range req.Rows {
		if len(row) > s.maxDim {
			return nil, nil, nil, fmt.Errorf("%d columns (max %d): %w", len(row), s.maxDim, errTooLarge)
		}
	}
	if req.Tolerance < 0 || math.IsNaN(req.Tolerance) || math.IsInf(req.Tolerance, 0) {
		return nil, nil, nil, errBadTolerance
	}

	a, err := matrix.NewFromRows(req.Rows)
	if err != nil {
		return nil, nil, nil, err
	}
	opts := []matrix.Option{s.metrics.stepCounter()}
	if req.Tolerance > 0 {
		opts = append(opts, matrix.WithPivotTolerance(req.Tolerance))
	}

	return &req, a, opts, nil
}

// fail writes err with the status statusOf picks.
func (s *Server) fail(w http.ResponseWriter, id string, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", id, "err", err)
	} else {
		s.logger.Debug("request rejected", "id", id, "status", status, "err", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), ID: id})
}

// statusOf maps an error to an HTTP status code.
func statusOf(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes), errors.Is(err, errTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, matrix.ErrSingular):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errBadBody),
		errors.Is(err, errUnknownMode),
		errors.Is(err, errBadTolerance),
		errors.Is(err, errMissingRHS),
		errors.Is(err, matrix.ErrBadShape),
		errors.Is(err, matrix.ErrInvalidDimensions),
		errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrNonSquare),
		errors.Is(err, matrix.ErrNaNInf),
		errors.Is(err, matrix.ErrNilMatrix):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
