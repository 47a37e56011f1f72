package lgr

import (
	"reflect"
	"strings"
	"time"
)

// NewLogMessage folds msg and the leading primitive args (strings, numbers,
// booleans and nil) into Message, separated by single spaces. The first
// structured argument and everything after it are kept verbatim in Args.
func NewLogMessage(level LogLevel, ts time.Time, msg string, args ...any) LogMessage {
	m := LogMessage{Level: level, Timestamp: ts}
	split := len(args)
	for i, arg := range args {
		if !isPrimitive(arg) {
			split = i
			break
		}
	}
	if split == 0 {
		m.Message = msg
	} else {
		var sb strings.Builder
		sb.WriteString(msg)
		for _, arg := range args[:split] {
			sb.WriteByte(' ')
			sb.WriteString(primitiveText(arg))
		}
		m.Message = sb.String()
	}
	if split < len(args) {
		m.Args = append([]any(nil), args[split:]...)
	}
	return m
}

// Primitives are folded into the message text, anything else is structured.
func isPrimitive(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func primitiveText(v any) string {
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	}
	return Stringify(v)
}
