// Package expr evaluates item conditions written in expr-lang.
package expr

import (
	"os"
	"strings"
	"time"
)

// Context holds the values an item condition can reference.
type Context struct {
	Weekday string `expr:"weekday"` // "Monday" ... "Sunday"
	Hour    int    `expr:"hour"`
	Month   string `expr:"month"`
	Day     int    `expr:"day"`
	Date    string `expr:"date"` // YYYY-MM-DD

	// Environment variables, accessed as env.NAME
	Env map[string]string `expr:"env"`
}

// NewContext creates a Context for the given moment.
func NewContext(now time.Time) *Context {
	return &Context{
		Weekday: now.Weekday().String(),
		Hour:    now.Hour(),
		Month:   now.Month().String(),
		Day:     now.Day(),
		Date:    now.Format(time.DateOnly),
		Env:     envToMap(os.Environ()),
	}
}

// WithEnv returns a copy of the context with env replaced.
func (c *Context) WithEnv(env map[string]string) *Context {
	cp := *c
	cp.Env = env
	return &cp
}

func envToMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}
	return env
}
