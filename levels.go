package lgr

/*
Level registry: the closed set of valid LogLevel values, their ordering and the
sentinel levels that bypass the threshold comparison.

Standard levels form a totally ordered range LVL_OFF..LVL_TRACE where a larger
value is more verbose. Sentinel levels live outside that range, each with its own
dispatch rule (see Logger.ShouldOutput):
  - LVL_VERBOSE: emitted only while the verbose flag is on, whatever the threshold
  - LVL_FORCE_OUTPUT: always emitted
  - LVL_LOG, LVL_DEFAULT: always emitted and rendered without a level label
*/

import (
	"strconv"
	"strings"
)

// LogLevel is a severity/verbosity value. Only the LVL_* constants are valid.
type LogLevel int

const (
	// Standard levels. The trailing _LVL_STD_MAX_for_checks_only is used as an
	// exclusive upper bound for range checks.
	LVL_OFF LogLevel = iota
	LVL_FATAL
	LVL_ERROR
	LVL_WARN
	LVL_INFO
	LVL_DEBUG
	LVL_TRACE
	_LVL_STD_MAX_for_checks_only
)

const (
	// Sentinel levels. Values are kept clear of the standard range so that
	// neighbours like 7 or -1 are never mistaken for a level.
	LVL_VERBOSE LogLevel = iota + 10
	LVL_FORCE_OUTPUT
	LVL_LOG
	LVL_DEFAULT
	_LVL_MAX_for_checks_only
)

// Number of slots in per-level tables (standard levels followed by sentinels).
const _LEVEL_SLOTS = int(_LVL_STD_MAX_for_checks_only) + int(_LVL_MAX_for_checks_only-LVL_VERBOSE)

// LevelMap is a fixed-size array with one entry per valid level, indexed by
// level slot (see levelSlot). Used for level names and colors.
type LevelMap [_LEVEL_SLOTS]string

// Predefined log level full names map (canonical labels)
var LevelFullNames = &LevelMap{
	"OFF",          //LVL_OFF
	"FATAL",        //LVL_FATAL
	"ERROR",        //LVL_ERROR
	"WARN",         //LVL_WARN
	"INFO",         //LVL_INFO
	"DEBUG",        //LVL_DEBUG
	"TRACE",        //LVL_TRACE
	"VERBOSE",      //LVL_VERBOSE
	"FORCE_OUTPUT", //LVL_FORCE_OUTPUT
	"LOG",          //LVL_LOG
	"DEFAULT",      //LVL_DEFAULT
}

// Predefined log level short names map
var LevelShortNames = &LevelMap{
	"OFF", //LVL_OFF
	"FTL", //LVL_FATAL
	"ERR", //LVL_ERROR
	"WRN", //LVL_WARN
	"INF", //LVL_INFO
	"DBG", //LVL_DEBUG
	"TRC", //LVL_TRACE
	"VRB", //LVL_VERBOSE
	"!!!", //LVL_FORCE_OUTPUT
	"LOG", //LVL_LOG
	"DEF", //LVL_DEFAULT
}

// Predefined color map for ANSI terminal (used by ColorFormatter)
var LevelColorOnBlackMap = &LevelMap{
	"9;90",     //LVL_OFF
	"101;1;33", //LVL_FATAL
	"0;91",     //LVL_ERROR
	"0;33",     //LVL_WARN
	"0;97",     //LVL_INFO
	"0;90",     //LVL_DEBUG
	"2;90",     //LVL_TRACE
	"3;36",     //LVL_VERBOSE
	"107;1;31", //LVL_FORCE_OUTPUT
	"0",        //LVL_LOG
	"0",        //LVL_DEFAULT
}

// Extra spellings accepted by LevelFromLabel.
var levelAliases = map[string]LogLevel{
	"WARNING": LVL_WARN,
	"ERR":     LVL_ERROR,
	"FORCE":   LVL_FORCE_OUTPUT,
	"NONE":    LVL_OFF,
}

// levelSlot maps a valid level to its index in per-level tables.
func levelSlot(level LogLevel) (int, bool) {
	switch {
	case level >= LVL_OFF && level < _LVL_STD_MAX_for_checks_only:
		return int(level), true
	case level >= LVL_VERBOSE && level < _LVL_MAX_for_checks_only:
		return int(_LVL_STD_MAX_for_checks_only) + int(level-LVL_VERBOSE), true
	}
	return -1, false
}

// slotLevel is the inverse of levelSlot.
func slotLevel(slot int) LogLevel {
	if slot < int(_LVL_STD_MAX_for_checks_only) {
		return LogLevel(slot)
	}
	return LVL_VERBOSE + LogLevel(slot-int(_LVL_STD_MAX_for_checks_only))
}

// Known reports whether the level is one of the LVL_* constants.
func (l LogLevel) Known() bool {
	_, ok := levelSlot(l)
	return ok
}

// Standard reports whether the level belongs to the LVL_OFF..LVL_TRACE range.
func (l LogLevel) Standard() bool {
	return l >= LVL_OFF && l < _LVL_STD_MAX_for_checks_only
}

// Unlabelled levels are rendered without a level tag.
func (l LogLevel) Unlabelled() bool {
	return l == LVL_LOG || l == LVL_DEFAULT
}

// String implements fmt.Stringer. Unknown values are printed as numbers.
func (l LogLevel) String() string {
	if name, ok := LabelFromLevel(l); ok {
		return name
	}
	return strconv.Itoa(int(l))
}

// StandardLevels returns LVL_OFF..LVL_TRACE in ascending order.
func StandardLevels() []LogLevel {
	levels := make([]LogLevel, 0, _LVL_STD_MAX_for_checks_only)
	for l := LVL_OFF; l < _LVL_STD_MAX_for_checks_only; l++ {
		levels = append(levels, l)
	}
	return levels
}

// AllLevels returns every valid level: standard ones first, then sentinels.
func AllLevels() []LogLevel {
	levels := make([]LogLevel, 0, _LEVEL_SLOTS)
	for slot := 0; slot < _LEVEL_SLOTS; slot++ {
		levels = append(levels, slotLevel(slot))
	}
	return levels
}

// LabelFromLevel returns the canonical uppercase label of a valid level.
func LabelFromLevel(level LogLevel) (string, bool) {
	slot, ok := levelSlot(level)
	if !ok {
		return "", false
	}
	return LevelFullNames[slot], true
}

// LevelFromLabel parses a level label case-insensitively. Unknown labels are
// reported with ok == false, never with an error.
func LevelFromLabel(label string) (level LogLevel, ok bool) {
	label = strings.ToUpper(strings.TrimSpace(label))
	for slot, name := range LevelFullNames {
		if name == label {
			return slotLevel(slot), true
		}
	}
	level, ok = levelAliases[label]
	return level, ok
}
