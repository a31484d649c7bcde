package scan

import "sync/atomic"

// globalOverride and globalEpoch implement a process-wide SIMD
// override: a relaxed atomic pair where writing the override always
// bumps the epoch, and dispatchers notice their snapshot has lagged on
// their next use and rebind lazily.
var (
	globalOverride atomic.Int32 // holds int32(level)+1; 0 means unset
	globalEpoch    atomic.Uint64
)

// SetGlobalOverride sets the process-wide SIMD level override, capped at
// the widest level the default querier supports, and bumps the epoch so
// every [Dispatcher] rebinds on next use.
func SetGlobalOverride(level Level) {
	level = clampLevel(level, DefaultQuerier)
	globalOverride.Store(int32(level) + 1)
	globalEpoch.Add(1)
}

// ClearGlobalOverride removes the process-wide override and bumps the
// epoch.
func ClearGlobalOverride() {
	globalOverride.Store(0)
	globalEpoch.Add(1)
}

func globalOverrideLevel() (Level, bool) {
	v := globalOverride.Load()
	if v == 0 {
		return 0, false
	}
	return Level(v - 1), true
}

// Dispatcher binds the quote-find and digit-scan operations to a
// concrete [Level] and rebinds lazily when the process-wide override
// epoch advances. The conceptual model is per-thread state; cppon
// scopes one Dispatcher to each explicit execution context (typically
// one per parse call), matching how [value.RootStack] is scoped — see
// that type's doc comment for the rationale.
type Dispatcher struct {
	querier  CPUQuerier
	override Level
	hasOverr bool

	epochSnapshot uint64
	bound         Level
}

// NewDispatcher returns a Dispatcher that queries q for its maximum
// supported level. A nil q uses [DefaultQuerier].
func NewDispatcher(q CPUQuerier) *Dispatcher {
	if q == nil {
		q = DefaultQuerier
	}
	d := &Dispatcher{querier: q}
	d.rebind()
	return d
}

// SetOverride sets this dispatcher's thread-local override, which wins
// over the global override. Idempotent; an unsupported level is
// silently capped at the querier's maximum.
func (d *Dispatcher) SetOverride(level Level) {
	d.override = clampLevel(level, d.querier)
	d.hasOverr = true
	d.rebind()
}

// ClearOverride removes this dispatcher's thread-local override,
// falling back to the global override (if set) or detection.
func (d *Dispatcher) ClearOverride() {
	d.hasOverr = false
	d.rebind()
}

// effectiveLevel resolves the dispatch policy: thread override wins over
// global override wins over detection, each capped at the querier's max.
func (d *Dispatcher) effectiveLevel() Level {
	if d.hasOverr {
		return d.override
	}
	if lvl, ok := globalOverrideLevel(); ok {
		return clampLevel(lvl, d.querier)
	}
	return d.querier.MaxSupportedLevel()
}

func (d *Dispatcher) rebind() {
	d.bound = d.effectiveLevel()
	d.epochSnapshot = globalEpoch.Load()
}

// sync checks whether the global epoch has advanced since this
// dispatcher last bound, and rebinds if so. Thread-local overrides are
// never invalidated by the global epoch (they always win), but the
// effective level is recomputed anyway since clamping depends on the
// querier, which does not change at runtime.
func (d *Dispatcher) sync() {
	if !d.hasOverr && globalEpoch.Load() != d.epochSnapshot {
		d.rebind()
	}
}

// Level returns the level this dispatcher is currently bound to.
func (d *Dispatcher) Level() Level {
	d.sync()
	return d.bound
}
