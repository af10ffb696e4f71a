package engine

import (
	"fmt"
	"sync"

	"github.com/ernestoCruz05/ligna/pkg/cabinet"
)

// Result bundles the full output of a calculation for use by UI bindings.
type Result struct {
	Parts    []cabinet.CutPart `json:"parts"`
	Warnings []Warning         `json:"warnings"`
}

// Engine wraps the pure calculation pipeline for interactive use. It is
// safe for concurrent use; each call runs independently on the request's
// own data.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Calculate runs the part rule processor on the request.
//
// Return semantics:
//   - On success: a Result with the (possibly empty) cut list plus any
//     non-fatal warnings, and a nil error.
//   - On fatal failure (panic, timeout, superseded by a newer request):
//     nil Result and an error.
//
// The UI recalculates on every drag tick; the generation counter lets a
// stale in-flight calculation be discarded when a newer one has started.
func (e *Engine) Calculate(req Request) (*Result, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan calcResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- calcResult{err: fmt.Errorf("panic during calculation: %v", r)}
			}
		}()

		parts, warnings := CalculateParts(req)
		ch <- calcResult{result: &Result{Parts: parts, Warnings: warnings}}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}
