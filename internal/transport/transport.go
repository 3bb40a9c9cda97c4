package transport

import (
	"errors"

	"bithacks/internal/eval"
)

// ErrClosed is returned by Send after Close.
var ErrClosed = errors.New("transport closed")

// Transport defines a generic interface for pushing messages to clients.
// Implementations should be thread-safe.
type Transport interface {
	Send(data any) error
	Close() error
}

// Request is one evaluation request frame.
type Request struct {
	ID     string   `json:"id,omitempty"`
	Op     string   `json:"op"`
	Args   []string `json:"args"`
	Format string   `json:"format,omitempty"` // dec, hex or bin; server default if empty
}

// Response answers a Request with the same ID.
type Response struct {
	ID     string `json:"id,omitempty"`
	Op     string `json:"op,omitempty"`
	Value  string `json:"value,omitempty"`
	Caveat string `json:"caveat,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Evaluator turns requests into responses. It never fails; problems are
// reported in Response.Error.
type Evaluator struct {
	Format eval.Format
	Width  int
}

// Handle evaluates one request.
func (e Evaluator) Handle(req Request) Response {
	resp := Response{ID: req.ID, Op: req.Op}

	format := e.Format
	if req.Format != "" {
		f, err := eval.ParseFormat(req.Format)
		if err != nil {
			resp.Error = err.Error()
			return resp
		}
		format = f
	}

	r, err := eval.Evaluate(req.Op, req.Args)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.Op = r.Op
	resp.Value = r.Render(format, e.Width)
	resp.Caveat = r.Caveat
	return resp
}
