// Package hook runs best-effort side effects after a primary write succeeded.
// A failing hook never undoes the write; it is reported as a warning instead.
package hook

import (
	"context"

	"github.com/rs/zerolog/log"
)

type Failure struct {
	Hook    string `json:"hook"`
	Message string `json:"message"`
}

type Hook struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner collects hooks for one mutation and executes them in order.
type Runner struct {
	hooks []Hook
}

func (r *Runner) Add(name string, run func(ctx context.Context) error) {
	r.hooks = append(r.hooks, Hook{Name: name, Run: run})
}

func (r *Runner) Len() int {
	return len(r.hooks)
}

// Run executes every hook even when an earlier one failed.
func (r *Runner) Run(ctx context.Context) []Failure {
	var failures []Failure

	for _, h := range r.hooks {
		if err := h.Run(ctx); err != nil {
			log.Warn().Err(err).Str("hook", h.Name).Msg("post-commit hook failed")

			failures = append(failures, Failure{Hook: h.Name, Message: err.Error()})
		}
	}

	return failures
}

// Warn builds a failure entry for a side effect handled outside a Runner.
func Warn(name string, err error) Failure {
	log.Warn().Err(err).Str("hook", name).Msg("side effect failed")

	return Failure{Hook: name, Message: err.Error()}
}
