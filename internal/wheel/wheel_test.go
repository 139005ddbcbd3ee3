package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWheel(t *testing.T, labels ...string) *Model {
	t.Helper()

	m := New()
	for _, l := range labels {
		_, err := m.AddItem(l)
		require.NoError(t, err)
	}
	return m
}

func TestModel_AddItem(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLabel string
		wantErr   error
	}{
		{name: "plain label", input: "Pizza", wantLabel: "Pizza"},
		{name: "trims surrounding whitespace", input: "  Sushi \t", wantLabel: "Sushi"},
		{name: "keeps inner whitespace", input: "Pad Thai", wantLabel: "Pad Thai"},
		{name: "rejects empty", input: "", wantErr: ErrEmptyLabel},
		{name: "rejects whitespace only", input: "  \n ", wantErr: ErrEmptyLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()

			item, err := m.AddItem(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, m.Len())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, item.Label)
			assert.Equal(t, []string{tt.wantLabel}, m.Labels())
		})
	}
}

func TestModel_AddItem_AllowsDuplicates(t *testing.T) {
	m := newWheel(t, "Tacos", "Tacos")

	items := m.Items()
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID, "duplicates are distinct items")
}

func TestModel_RemoveItem(t *testing.T) {
	m := newWheel(t, "A", "B", "C", "D")

	require.NoError(t, m.RemoveItem(1))
	assert.Equal(t, []string{"A", "C", "D"}, m.Labels())

	err := m.RemoveItem(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "remove item 3 of 3")

	require.ErrorIs(t, m.RemoveItem(-1), ErrIndexOutOfRange)
	assert.Equal(t, []string{"A", "C", "D"}, m.Labels(), "failed removal leaves items untouched")
}

func TestModel_RemoveID(t *testing.T) {
	m := newWheel(t, "A", "B", "C")
	b := m.Items()[1]

	require.NoError(t, m.RemoveItem(0))
	assert.Equal(t, 0, m.IndexOf(b.ID), "index shifts after earlier removal")

	assert.True(t, m.RemoveID(b.ID))
	assert.Equal(t, []string{"C"}, m.Labels())
	assert.False(t, m.RemoveID(b.ID), "second removal is a no-op")
}

func TestModel_Clear(t *testing.T) {
	m := newWheel(t, "A", "B")

	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.Equal(t, -1, m.SectorAt())

	item, err := m.AddItem("C")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), item.ID, "ids are not reused after clear")
}

func TestModel_At(t *testing.T) {
	m := newWheel(t, "A", "B")

	item, err := m.At(1)
	require.NoError(t, err)
	assert.Equal(t, "B", item.Label)

	_, err = m.At(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestModel_SubscribeNotifiesOnEveryMutation(t *testing.T) {
	m := New()
	calls := 0
	m.Subscribe(func() { calls++ })

	_, _ = m.AddItem("A")
	_, _ = m.AddItem("B")
	_, _ = m.AddItem("   ")
	m.Advance(0.2)
	m.SetAngle(1)
	_ = m.RemoveItem(0)
	_ = m.RemoveItem(7)
	m.Clear()

	assert.Equal(t, 6, calls, "rejected mutations do not redraw")
}

func TestModel_AdvanceDoesNotNormalize(t *testing.T) {
	m := newWheel(t, "A", "B")

	for range 100 {
		m.Advance(0.2)
	}

	assert.InDelta(t, 20.0, m.Angle(), 1e-9)
}

func TestWithPalette(t *testing.T) {
	m := New(WithPalette([]string{"#000000"}))
	assert.Equal(t, []string{"#000000"}, m.Palette())

	m = New(WithPalette(nil))
	assert.Equal(t, DefaultPalette, m.Palette())
}
