package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatcherDefaultsToQuerierMax(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	d := NewDispatcher(fixedQuerier{max: Level32})
	a.Equal(Level32, d.Level())
}

func TestNewDispatcherNilQuerierUsesDefault(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	d := NewDispatcher(nil)
	a.Equal(Level64, d.Level())
}

func TestDispatcherThreadOverrideWinsOverGlobal(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)

	SetGlobalOverride(Level64)
	defer ClearGlobalOverride()

	d := NewDispatcher(fixedQuerier{max: Level64})
	d.SetOverride(Level16)
	a.Equal(Level16, d.Level())

	SetGlobalOverride(Level32)
	a.Equal(Level16, d.Level(), "thread override is never invalidated by the global epoch")

	d.ClearOverride()
	a.Equal(Level32, d.Level(), "falls back to the now-current global override")
	r.NotNil(d)
}

func TestDispatcherOverrideClampedToQuerierMax(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	d := NewDispatcher(fixedQuerier{max: Level16})
	d.SetOverride(Level64)
	a.Equal(Level16, d.Level())
}

func TestDispatcherRebindsOnGlobalEpochAdvance(t *testing.T) {
	a := assert.New(t)

	ClearGlobalOverride()
	d := NewDispatcher(fixedQuerier{max: Level64})
	a.Equal(Level64, d.Level())

	SetGlobalOverride(Level16)
	defer ClearGlobalOverride()
	a.Equal(Level16, d.Level())
}
