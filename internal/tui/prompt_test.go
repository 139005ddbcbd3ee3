package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitItems(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"simple list", "Pizza,Sushi,Tacos", []string{"Pizza", "Sushi", "Tacos"}},
		{"surrounding spaces", "  Pizza ,  Sushi  ", []string{"Pizza", "Sushi"}},
		{"blank entries dropped", "Pizza,, ,Sushi,", []string{"Pizza", "Sushi"}},
		{"duplicates kept", "Pizza,Pizza", []string{"Pizza", "Pizza"}},
		{"empty input", "", nil},
		{"only separators", " , ,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitItems(tt.raw))
		})
	}
}

func TestItemCollector_AccessibleInput(t *testing.T) {
	items, err := NewItemCollector().
		WithInput(strings.NewReader("Pizza, Sushi ,Tacos\n")).
		Collect()

	require.NoError(t, err)
	assert.Equal(t, []string{"Pizza", "Sushi", "Tacos"}, items)
}
