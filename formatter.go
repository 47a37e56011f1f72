package lgr

import (
	"bytes"
	"encoding/json"
)

// Layout of the JSON timestamp (UTC, milliseconds).
const JSON_TIME_FORMAT = "2006-01-02T15:04:05.000Z"

// PlainFormatter renders
//
//	2006-01-02T15:04:05Z [LEVEL] message arg1 arg2...
//
// with the timestamp in UTC and every structured argument JSON-encoded.
// LVL_LOG and LVL_DEFAULT messages carry no "[LEVEL] " tag.
func PlainFormatter(msg LogMessage) (string, error) {
	return buildTextMessage(msg, nil)
}

// ColorFormatter returns a formatter with the PlainFormatter layout where the
// level tag is wrapped in ANSI color fragments from colormap
// (LevelColorOnBlackMap when nil).
func ColorFormatter(colormap *LevelMap) Formatter {
	if colormap == nil {
		colormap = LevelColorOnBlackMap
	}
	return func(msg LogMessage) (string, error) {
		return buildTextMessage(msg, colormap)
	}
}

// buildTextMessage constructs the textual representation for a message.
func buildTextMessage(msg LogMessage, colormap *LevelMap) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(msg.Timestamp.UTC().Format(DEFAULT_TIME_FORMAT))
	buf.WriteByte(' ')
	if label, ok := LabelFromLevel(msg.Level); ok && !msg.Level.Unlabelled() {
		slot, _ := levelSlot(msg.Level)
		if colormap != nil {
			buf.WriteString(ANSI_COL_PRFX + colormap[slot] + ANSI_COL_SUFX)
		}
		buf.WriteString("[" + label + "]")
		if colormap != nil {
			buf.WriteString(ANSI_COL_RESET)
		}
		buf.WriteByte(' ')
	}
	buf.WriteString(msg.Message)
	for _, arg := range msg.Args {
		data, err := json.Marshal(jsonArg(arg))
		if err != nil {
			return "", err
		}
		buf.WriteByte(' ')
		buf.Write(data)
	}
	return buf.String(), nil
}

type jsonRecord struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
	Args      []any  `json:"args,omitempty"`
}

// JSONFormatter renders {"timestamp","level","message","args"}; level is
// omitted for LVL_LOG/LVL_DEFAULT and args when there are none.
func JSONFormatter(msg LogMessage) (string, error) {
	rec := jsonRecord{
		Timestamp: msg.Timestamp.UTC().Format(JSON_TIME_FORMAT),
		Message:   msg.Message,
	}
	if !msg.Level.Unlabelled() {
		rec.Level = msg.Level.String()
	}
	if len(msg.Args) > 0 {
		rec.Args = make([]any, len(msg.Args))
		for i, arg := range msg.Args {
			rec.Args[i] = jsonArg(arg)
		}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// errors marshal to {} otherwise
func jsonArg(arg any) any {
	if err, ok := arg.(error); ok && err != nil {
		if _, custom := arg.(json.Marshaler); !custom {
			return err.Error()
		}
	}
	return arg
}
