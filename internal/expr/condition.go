package expr

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Condition is a compiled boolean expression. The zero value and an empty
// source always evaluate to true.
type Condition struct {
	source  string
	program *vm.Program
}

// Compile parses src against the Context environment.
func Compile(src string) (*Condition, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return &Condition{}, nil
	}

	program, err := expr.Compile(src,
		expr.Env(&Context{}),
		expr.AsBool(),
		expr.Function("oneOf", oneOfFunc, new(func(string, ...string) bool)),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid condition %q: %w", src, err)
	}
	return &Condition{source: src, program: program}, nil
}

func (c *Condition) String() string {
	return c.source
}

// Eval runs the condition against ctx.
func (c *Condition) Eval(ctx *Context) (bool, error) {
	if c == nil || c.program == nil {
		return true, nil
	}

	out, err := expr.Run(c.program, ctx)
	if err != nil {
		return false, fmt.Errorf("evaluate %q: %w", c.source, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("evaluate %q: expected bool, got %T", c.source, out)
	}
	return ok, nil
}

// oneOf reports whether the first argument equals any of the rest.
// Usage: oneOf(weekday, "Saturday", "Sunday")
func oneOfFunc(params ...any) (any, error) {
	if len(params) < 1 {
		return nil, fmt.Errorf("oneOf: expected at least 1 argument, got %d", len(params))
	}
	needle, ok := params[0].(string)
	if !ok {
		return nil, fmt.Errorf("oneOf: expected string, got %T", params[0])
	}
	for _, p := range params[1:] {
		if s, ok := p.(string); ok && s == needle {
			return true, nil
		}
	}
	return false, nil
}
