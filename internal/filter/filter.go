// Package filter selects records with CEL predicates evaluated over their
// wire form. The record is bound to the variable r, so field names are the
// API's own keys:
//
//	r.status == "downloading" && r.sizeleft > 1073741824
//	r.seasons.exists(s, s.monitored) && timestamp(r.added) > timestamp("2020-01-01T00:00:00Z")
package filter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/reoring/goarr/record"
)

const costLimit = 1_000_000

var baseEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(cel.Variable("r", cel.DynType))
})

// Filter is a compiled predicate. A nil *Filter matches everything.
type Filter struct {
	expr string
	prog cel.Program
}

// Compile parses and checks expr. An empty expression yields a nil Filter.
func Compile(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	env, err := baseEnv()
	if err != nil {
		return nil, fmt.Errorf("filter: environment: %w", err)
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("filter: compile %q: %w", expr, iss.Err())
	}
	if t := ast.OutputType(); !t.IsExactType(cel.BoolType) && !t.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("filter: %q yields %s, not bool", expr, t)
	}
	prog, err := env.Program(ast, cel.CostLimit(costLimit))
	if err != nil {
		return nil, fmt.Errorf("filter: program: %w", err)
	}
	return &Filter{expr: expr, prog: prog}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.expr
}

// Match encodes v and evaluates the predicate against it.
func (f *Filter) Match(ctx context.Context, v any) (bool, error) {
	if f == nil {
		return true, nil
	}
	wire, err := record.Encode(ctx, v)
	if err != nil {
		return false, fmt.Errorf("filter: %w", err)
	}
	out, _, err := f.prog.ContextEval(ctx, map[string]any{"r": wire})
	if err != nil {
		return false, fmt.Errorf("filter: eval %q: %w", f.expr, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter: %q yielded %v, not bool", f.expr, out.Type())
	}
	return b, nil
}

// Select keeps the items f matches, in order.
func Select[T any](ctx context.Context, f *Filter, items []T) ([]T, error) {
	if f == nil {
		return items, nil
	}
	out := items[:0:0]
	for i := range items {
		ok, err := f.Match(ctx, items[i])
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, items[i])
		}
	}
	return out, nil
}
