package lgr

// DiscardSink drops everything. It is the default for every level until a
// default sink is configured, and always the resolved sink of LVL_OFF unless
// LVL_OFF is bound explicitly.
func DiscardSink(string) {}

// NewSinkMap creates a table with deflt as the fallback of every level
// (nil means DiscardSink).
func NewSinkMap(deflt Sink) *SinkMap {
	m := &SinkMap{}
	m.SetDefault(deflt)
	return m
}

// SetDefault changes the fallback sink without touching explicit overrides.
func (m *SinkMap) SetDefault(deflt Sink) {
	m.deflt = deflt
}

// Default returns the fallback sink (never nil).
func (m *SinkMap) Default() Sink {
	if m.deflt == nil {
		return DiscardSink
	}
	return m.deflt
}

// Reset drops every explicit override and installs deflt as the fallback.
func (m *SinkMap) Reset(deflt Sink) {
	m.entries = [_LEVEL_SLOTS]sinkEntry{}
	m.SetDefault(deflt)
}

// Bind sets an explicit override for a valid level. A nil sink unbinds it.
func (m *SinkMap) Bind(level LogLevel, sink Sink) error {
	slot, ok := levelSlot(level)
	if !ok {
		return &ValidationError{Value: Stringify(level)}
	}
	if sink == nil {
		m.entries[slot] = sinkEntry{state: sinkUnset}
	} else {
		m.entries[slot] = sinkEntry{sink: sink, state: sinkBound}
	}
	return nil
}

// Unbind marks the level as explicitly unset so that it resolves to the default.
func (m *SinkMap) Unbind(level LogLevel) error {
	return m.Bind(level, nil)
}

// Bound reports whether the level has an explicit override.
func (m *SinkMap) Bound(level LogLevel) bool {
	slot, ok := levelSlot(level)
	return ok && m.entries[slot].state == sinkBound
}

// Unset reports whether the level's override was removed explicitly (as
// opposed to never having been set). Reset clears the mark.
func (m *SinkMap) Unset(level LogLevel) bool {
	slot, ok := levelSlot(level)
	return ok && m.entries[slot].state == sinkUnset
}

// Resolve returns the sink for a level and never returns nil. Precedence is
// explicit override, then DiscardSink for LVL_OFF, then the default sink.
// Invalid levels resolve to DiscardSink.
func (m *SinkMap) Resolve(level LogLevel) Sink {
	slot, ok := levelSlot(level)
	if !ok {
		return DiscardSink
	}
	if e := m.entries[slot]; e.state == sinkBound {
		return e.sink
	}
	if level == LVL_OFF {
		return DiscardSink
	}
	return m.Default()
}

// Snapshot returns the resolved sink of every valid level.
func (m *SinkMap) Snapshot() map[LogLevel]Sink {
	out := make(map[LogLevel]Sink, _LEVEL_SLOTS)
	for _, level := range AllLevels() {
		out[level] = m.Resolve(level)
	}
	return out
}
