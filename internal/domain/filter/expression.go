// Package filter evaluates list filters written in CEL against record field maps.
//
// A filter sees one variable, item, holding the record's JSON fields:
//
//	item.status == "completed" && item.amount > 100.0
//	item.category in ["Electronics", "Books"]
package filter

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"shopadmin/internal/core/apperror"
)

// ItemVar is the variable name records are bound to.
const ItemVar = "item"

var (
	envOnce sync.Once
	env     *cel.Env
	envErr  error
)

func environment() (*cel.Env, error) {
	envOnce.Do(func() {
		env, envErr = cel.NewEnv(
			cel.Variable(ItemVar, cel.MapType(cel.StringType, cel.DynType)),
		)
	})
	return env, envErr
}

// Expression is a compiled filter. A nil Expression matches everything.
type Expression struct {
	source  string
	program cel.Program
}

// Compile parses and type-checks source. An empty source yields a nil Expression.
func Compile(source string) (*Expression, error) {
	if source == "" {
		return nil, nil
	}

	e, err := environment()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("filter environment: %w", err))
	}

	ast, iss := e.Compile(source)
	if iss != nil && iss.Err() != nil {
		return nil, apperror.NewValidation("invalid filter expression").
			WithDetail("filter", source).
			WithDetail("error", iss.Err().Error())
	}

	out := ast.OutputType()
	if !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, apperror.NewValidation("filter expression must evaluate to bool").
			WithDetail("filter", source).
			WithDetail("type", out.String())
	}

	prg, err := e.Program(ast)
	if err != nil {
		return nil, apperror.NewValidation("invalid filter expression").
			WithDetail("filter", source).
			WithDetail("error", err.Error())
	}

	return &Expression{source: source, program: prg}, nil
}

// Match evaluates the expression against one record.
// A missing field or a non-bool result is reported as a validation error.
func (x *Expression) Match(fields map[string]any) (bool, error) {
	if x == nil {
		return true, nil
	}

	out, _, err := x.program.Eval(map[string]any{ItemVar: fields})
	if err != nil {
		return false, apperror.NewValidation("filter evaluation failed").
			WithDetail("filter", x.source).
			WithDetail("error", err.Error())
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, apperror.NewValidation("filter expression must evaluate to bool").
			WithDetail("filter", x.source)
	}
	return matched, nil
}

// Apply keeps the items whose fields match. fieldsOf converts one item.
func Apply[T any](x *Expression, items []T, fieldsOf func(T) map[string]any) ([]T, error) {
	if x == nil {
		return items, nil
	}

	kept := make([]T, 0, len(items))
	for _, item := range items {
		ok, err := x.Match(fieldsOf(item))
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, item)
		}
	}
	return kept, nil
}
