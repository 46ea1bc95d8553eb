// Package http exposes tree generation and evaluation over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ayeganov/gptree/internal/presentation/tree"
	"github.com/ayeganov/gptree/pkg/gen"
	"github.com/ayeganov/gptree/pkg/node"
)

// GenerateRequest is the wire form of a generation request.
type GenerateRequest struct {
	NumParams int       `json:"num_params"`
	MaxDepth  int       `json:"max_depth"`
	Method    string    `json:"method"`
	Functions []string  `json:"functions,omitempty"` // empty selects all operators
	Terminals []float64 `json:"terminals,omitempty"`
	Seed      *uint64   `json:"seed,omitempty"`
	ParamBias *float64  `json:"param_bias,omitempty"`
}

// GenerateResponse carries the generated tree plus its textual dump.
type GenerateResponse struct {
	Tree  json.RawMessage `json:"tree"`
	Text  string          `json:"text"`
	Nodes int             `json:"nodes"`
	Depth int             `json:"depth"`
}

// EvalRequest asks for a serialized tree to be evaluated against a context.
type EvalRequest struct {
	Tree    json.RawMessage `json:"tree"`
	Context []float64       `json:"context"`
}

// EvalResponse carries the computed value.
type EvalResponse struct {
	Value float64 `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server wires the generator core to HTTP handlers.
type Server struct {
	logger  *slog.Logger
	metrics *metrics
}

// NewHandler creates the HTTP handler for the service.
func NewHandler(logger *slog.Logger) http.Handler {
	s := &Server{
		logger:  logger,
		metrics: newMetrics(),
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	r.Post("/generate", s.handleGenerate)
	r.Post("/eval", s.handleEval)
	return enableCORS(r)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	funcNames := req.Functions
	funcs := gen.DefaultFunctions()
	if len(funcNames) > 0 {
		var err error
		funcs, err = gen.Functions(funcNames...)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	seed := rand.Uint64()
	if req.Seed != nil {
		seed = *req.Seed
	}
	opts := []gen.Option{gen.WithLogger(s.logger)}
	if req.ParamBias != nil {
		opts = append(opts, gen.WithParamBias(*req.ParamBias))
	}
	g := gen.New(rand.New(rand.NewPCG(seed, seed)), opts...)

	generated, err := g.Generate(gen.Request{
		NumParams: req.NumParams,
		Functions: funcs,
		Terminals: req.Terminals,
		MaxDepth:  req.MaxDepth,
		Method:    gen.Method(req.Method),
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	encoded, err := node.Encode(generated)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.metrics.treesGenerated.WithLabelValues(req.Method).Inc()
	s.metrics.treeNodes.Observe(float64(node.Count(generated)))
	s.logger.Info("tree generated",
		"method", req.Method, "max_depth", req.MaxDepth, "nodes", node.Count(generated), "seed", seed)

	writeJSON(w, http.StatusOK, GenerateResponse{
		Tree:  encoded,
		Text:  tree.Sprint(generated),
		Nodes: node.Count(generated),
		Depth: node.Depth(generated),
	})
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req EvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	decoded, err := node.Decode(req.Tree)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	value, err := decoded.Evaluate(node.Context(req.Context))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	s.metrics.evaluations.Inc()
	writeJSON(w, http.StatusOK, EvalResponse{Value: value})
}

// statusFor maps domain errors to HTTP statuses. Configuration and argument
// errors are the caller's fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, gen.ErrInvalidArgument),
		errors.Is(err, gen.ErrEmptyCatalog),
		errors.Is(err, node.ErrIndexOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
