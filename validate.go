package lgr

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

// IsValid reports whether x is a number with no fractional part that equals a
// standard level or a sentinel level.
func IsValid(x any) bool {
	_, ok := asLevel(x)
	return ok
}

// IsStandard reports whether x is a valid level within LVL_OFF..LVL_TRACE.
// Sentinels and invalid values give false.
func IsStandard(x any) bool {
	level, ok := asLevel(x)
	return ok && level.Standard()
}

// Validate returns x as a LogLevel if it is valid, otherwise a *ValidationError
// embedding the canonical stringification of x (see Stringify).
func Validate(x any) (LogLevel, error) {
	level, ok := asLevel(x)
	if !ok {
		return 0, &ValidationError{Value: Stringify(x)}
	}
	return level, nil
}

// asLevel converts any numeric kind to a known LogLevel.
func asLevel(x any) (LogLevel, bool) {
	if x == nil {
		return 0, false
	}
	var n int64
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > uint64(_LVL_MAX_for_checks_only) {
			return 0, false
		}
		n = int64(u)
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
			return 0, false
		}
		if f < 0 || f > float64(_LVL_MAX_for_checks_only) {
			return 0, false
		}
		n = int64(f)
	default:
		return 0, false
	}
	if n < 0 || n >= int64(_LVL_MAX_for_checks_only) {
		return 0, false
	}
	level := LogLevel(n)
	return level, level.Known()
}

// Stringify renders any value the way it is quoted in validation errors:
//   - untyped nil: undefined
//   - nil pointer, map, slice, func, chan or interface: null
//   - strings: double-quoted
//   - slices and arrays: comma-joined and bracketed
//   - maps, structs and other references: object
//   - functions: "function" or "function <name>"
//   - other primitives: their literal form (NaN, Infinity and -Infinity for floats)
func Stringify(x any) string {
	if x == nil {
		return "undefined"
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		if v.IsNil() {
			return "null"
		}
	}
	switch v.Kind() {
	case reflect.String:
		return `"` + v.String() + `"`
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return formatFloat(v.Float(), 32)
	case reflect.Float64:
		return formatFloat(v.Float(), 64)
	case reflect.Slice, reflect.Array:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(v.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ",") + "]"
	case reflect.Func:
		if name := funcName(v); name != "" {
			return "function " + name
		}
		return "function"
	case reflect.Map, reflect.Struct, reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return "object"
	}
	return fmt.Sprint(x)
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

// Compiler-generated names of anonymous functions, e.g. "pkg.Outer.func1.2".
var closureName = regexp.MustCompile(`\.func\d+(\.\d+)*$`)

// funcName returns the short name of a function value, e.g. "lgr.DiscardSink".
// Anonymous functions have no name.
func funcName(v reflect.Value) string {
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return ""
	}
	name := fn.Name()
	if closureName.MatchString(name) {
		return ""
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
