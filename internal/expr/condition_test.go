package expr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-16 is a Friday.
var friday = time.Date(2026, 10, 16, 18, 30, 0, 0, time.UTC)

func TestNewContext(t *testing.T) {
	ctx := NewContext(friday)

	assert.Equal(t, "Friday", ctx.Weekday)
	assert.Equal(t, 18, ctx.Hour)
	assert.Equal(t, "October", ctx.Month)
	assert.Equal(t, 16, ctx.Day)
	assert.Equal(t, "2026-10-16", ctx.Date)
	assert.NotNil(t, ctx.Env)
}

func TestCondition_Eval(t *testing.T) {
	ctx := NewContext(friday).WithEnv(map[string]string{"TEAM": "backend"})

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{name: "empty is always true", src: "", want: true},
		{name: "weekday match", src: `weekday == "Friday"`, want: true},
		{name: "weekday mismatch", src: `weekday == "Tuesday"`, want: false},
		{name: "hour comparison", src: "hour >= 17", want: true},
		{name: "env lookup", src: `env.TEAM == "backend"`, want: true},
		{name: "oneOf weekend", src: `oneOf(weekday, "Saturday", "Sunday")`, want: false},
		{name: "oneOf weekday", src: `oneOf(weekday, "Thursday", "Friday")`, want: true},
		{name: "combined", src: `month == "October" && day > 10`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := Compile(tt.src)
			require.NoError(t, err)

			got, err := cond.Eval(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.src, cond.String())
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "syntax error", src: `weekday ==`, wantErr: "invalid condition"},
		{name: "unknown variable", src: `season == "winter"`, wantErr: "invalid condition"},
		{name: "non-bool result", src: `hour + 1`, wantErr: "invalid condition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCondition_NilEvaluatesTrue(t *testing.T) {
	var c *Condition

	ok, err := c.Eval(NewContext(friday))

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEnvToMap(t *testing.T) {
	env := envToMap([]string{"A=1", "B=x=y", "broken"})

	assert.Equal(t, map[string]string{"A": "1", "B": "x=y"}, env)
}
