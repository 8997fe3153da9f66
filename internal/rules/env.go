// Package rules evaluates luck predicates written as CEL expressions.
package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// DefaultExpression is the classic rule: a roll is lucky when it sums to 7.
const DefaultExpression = "total == 7"

// Registry manages the CEL environment luck rules are compiled against.
type Registry struct {
	env *cel.Env
}

// NewRegistry initializes the CEL environment with the roll variables.
func NewRegistry() (*Registry, error) {
	env, err := cel.NewEnv(
		cel.Variable("rolls", cel.ListType(cel.IntType)),
		cel.Variable("total", cel.IntType),
		cel.Variable("pips", cel.IntType),
		cel.Variable("count", cel.IntType),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

// Rule is a compiled luck predicate.
type Rule struct {
	expr string
	prg  cel.Program
}

// Compile checks expression and prepares it for repeated evaluation.
func (r *Registry) Compile(expression string) (*Rule, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, fmt.Errorf("failed to compile luck rule %q: %w", expression, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("luck rule %q must evaluate to bool, got %s", expression, ast.OutputType())
	}
	prg, err := r.env.Program(ast)
	if err != nil {
		return nil, err
	}
	return &Rule{expr: expression, prg: prg}, nil
}

// Default compiles DefaultExpression.
func Default() (*Rule, error) {
	reg, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	return reg.Compile(DefaultExpression)
}

// String returns the source expression.
func (r *Rule) String() string {
	return r.expr
}

// Match evaluates the rule against one rolled set.
func (r *Rule) Match(rolls []int, pips int) (bool, error) {
	total := 0
	values := make([]int64, len(rolls))
	for i, v := range rolls {
		total += v
		values[i] = int64(v)
	}

	out, _, err := r.prg.Eval(map[string]any{
		"rolls": values,
		"total": int64(total),
		"pips":  int64(pips),
		"count": int64(len(rolls)),
	})
	if err != nil {
		return false, fmt.Errorf("failed to evaluate luck rule %q: %w", r.expr, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("luck rule %q returned %T, not bool", r.expr, out.Value())
	}
	return b, nil
}
