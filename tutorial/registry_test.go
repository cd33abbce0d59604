package tutorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(Env) error { return nil }

func ids(ts []Tutorial) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"4.11", "heightmap", "1.2", "4.2", "1.10", "2.1", "1.1"} {
		r.Register(Tutorial{ID: id, Title: "t" + id, Run: noop})
	}

	assert.Equal(t, []string{"1.1", "1.2", "1.10", "2.1", "4.2", "4.11", "heightmap"}, ids(r.All()))

	got, err := r.Lookup("4.2")
	require.NoError(t, err)
	assert.Equal(t, "t4.2", got.Title)

	_, err = r.Lookup("9.9")
	require.ErrorIs(t, err, ErrUnknown)
	assert.Contains(t, err.Error(), `"9.9"`)
}

func TestRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.Register(Tutorial{ID: "1.1", Run: noop})

	assert.Panics(t, func() { r.Register(Tutorial{ID: "1.1", Run: noop}) })
	assert.Panics(t, func() { r.Register(Tutorial{ID: "", Run: noop}) })
	assert.Panics(t, func() { r.Register(Tutorial{ID: "1.3"}) })
}

func TestCompareIDs(t *testing.T) {
	assert.Negative(t, CompareIDs("1.2", "1.10"))
	assert.Positive(t, CompareIDs("2", "1.9"))
	assert.Negative(t, CompareIDs("1", "1.1"))
	assert.Zero(t, CompareIDs("3.1", "3.1"))
	assert.Negative(t, CompareIDs("9.9", "abc"))
	assert.Negative(t, CompareIDs("abc", "abd"))
	assert.Positive(t, CompareIDs("1.-1", "1.1"))
}
