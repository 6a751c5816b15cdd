package console

import (
	"strings"

	"github.com/rs/zerolog"
)

var _ zerolog.LevelWriter = Writer{}

// Writer is a zerolog.LevelWriter that forwards each record to the browser console,
// picking console.error, console.warn or console.log from the record's level.
type Writer struct{}

// Write implements io.Writer for records without a level.
func (w Writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter.
func (Writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	switch {
	case level >= zerolog.ErrorLevel && level != zerolog.NoLevel:
		Error(line)
	case level == zerolog.WarnLevel:
		Warn(line)
	default:
		Log(line)
	}
	return len(p), nil
}
