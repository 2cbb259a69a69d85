package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset  = "\x1b[0m"
	colorBold   = "\x1b[1m"
	colorTime   = "\x1b[38;5;107m" // everforest mid green
	colorName   = "\x1b[38;5;208m" // everforest orange
	colorKey    = "\x1b[38;5;109m" // everforest aqua
	colorWarn   = "\x1b[38;5;179m"
	colorError  = "\x1b[38;5;167m"
	colorWarnBg = "\x1b[48;5;58m"
	colorErrBg  = "\x1b[48;5;52m"
)

var bufferPool = buffer.NewPool()

// consoleEncoder writes one calm line per entry:
// "13:04:35  typegen  Wrote artifact  file=types/protocol.d.ts bytes=81234"
// Every entry field is printed; nothing is filtered by key.
type consoleEncoder struct {
	zapcore.Encoder
}

func newConsoleEncoder() *consoleEncoder {
	return &consoleEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *consoleEncoder) Clone() zapcore.Encoder {
	return &consoleEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *consoleEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := bufferPool.Get()

	line.AppendString(colorTime)
	line.AppendString(ent.Time.Format("15:04:05"))
	line.AppendString(colorReset)

	if lvl := levelLabel(ent.Level); lvl != "" {
		line.AppendString("  ")
		line.AppendString(lvl)
	}

	if ent.LoggerName != "" {
		line.AppendString("  ")
		line.AppendString(colorName)
		line.AppendString(ent.LoggerName)
		line.AppendString(colorReset)
	}

	line.AppendString("  ")
	line.AppendString(ent.Message)

	if len(fields) > 0 {
		line.AppendString("  ")
		line.AppendString(formatFields(fields))
	}

	line.AppendString("\n")
	return line, nil
}

// levelLabel is empty for info and debug; warnings and errors stand out.
func levelLabel(level zapcore.Level) string {
	switch {
	case level == zapcore.WarnLevel:
		return colorBold + colorWarnBg + colorWarn + "WARN" + colorReset
	case level >= zapcore.ErrorLevel:
		return colorBold + colorErrBg + colorError + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// formatFields renders fields as key=value in the order they were logged.
func formatFields(fields []zapcore.Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, colorKey+f.Key+colorReset+"="+fieldValue(f))
	}
	return strings.Join(parts, " ")
}

// fieldValue lets zap resolve the field so every field type round-trips.
func fieldValue(f zapcore.Field) string {
	m := zapcore.NewMapObjectEncoder()
	f.AddTo(m)
	v, ok := m.Fields[f.Key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
