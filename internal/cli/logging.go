// logging.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
package cli

import (
	"fmt"
	"io"
	stdlog "log"
	"log/syslog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/journald"
	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/config"
)

const (
	logFormatConsole  = "console"
	logFormatLogfmt   = "logfmt"
	logFormatJSON     = "json"
	logFormatSyslog   = "syslog"
	logFormatJournald = "journald"
)

//nolint:gochecknoglobals
var logFormats = []string{logFormatConsole, logFormatLogfmt, logFormatJSON, logFormatSyslog, logFormatJournald}

// initializeLogger configure global logger. Unknown level fall back to debug; unknown or empty
// format to console/logfmt depending on stderr is terminal or not.
func initializeLogger(level, format string) error {
	zerolog.ErrorMarshalFunc = aerr.ErrorMarshalFunc //nolint:reassign

	format = resolveLogFormat(format, isTerminal(os.Stderr))

	writer, err := newLogWriter(format, os.Stderr)
	if err != nil {
		return err
	}

	lctx := log.Output(writer).With().Timestamp().Caller()

	// logs collected by external systems carry version of dashboard
	if logFormatCollected(format) {
		lctx = lctx.Str("version", config.Version)
	}

	log.Logger = lctx.Logger()

	if l, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(l)
	} else {
		log.Error().Msgf("logger: unknown log level %q; using debug", level)
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	return nil
}

func resolveLogFormat(format string, terminal bool) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if slices.Contains(logFormats, format) {
		return format
	}

	if format != "" {
		log.Error().Msgf("logger: unknown log format %q; using default", format)
	}

	if terminal {
		return logFormatConsole
	}

	return logFormatLogfmt
}

func logFormatCollected(format string) bool {
	return format == logFormatJSON || format == logFormatJournald || format == logFormatSyslog
}

func newLogWriter(format string, out *os.File) (io.Writer, error) {
	switch format {
	case logFormatJSON:
		return out, nil

	case logFormatSyslog:
		w, err := syslog.New(syslog.LOG_USER, "goytdash")
		if err != nil {
			return nil, fmt.Errorf("init syslog error: %w", err)
		}

		return zerolog.SyslogLevelWriter(w), nil

	case logFormatJournald:
		return journald.NewJournalDWriter(), nil

	case logFormatLogfmt:
		return newLogfmtWriter(out), nil

	default:
		return newConsoleWriter(out, isTerminal(out)), nil
	}
}

// newConsoleWriter create human-readable writer; colors and short time only on terminal.
func newConsoleWriter(out io.Writer, terminal bool) zerolog.ConsoleWriter {
	w := zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:        out,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}

	if terminal {
		w.NoColor = false
		w.TimeFormat = time.TimeOnly
	}

	return w
}

func isTerminal(f *os.File) bool {
	fileInfo, _ := f.Stat()

	return fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0
}

// newLogfmtWriter create writer producing logfmt lines (all fields in form key=val).
func newLogfmtWriter(out io.Writer) zerolog.ConsoleWriter {
	quoted := func(i any) string {
		return strconv.Quote(fmt.Sprint(i))
	}

	return zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:        out,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i any) string {
			if i == nil {
				return ""
			}

			return fmt.Sprintf("level=%s", i)
		},
		FormatTimestamp: func(i any) string { return fmt.Sprintf("ts=%s", i) },
		FormatMessage: func(i any) string {
			if i == nil {
				return "msg=<nil>"
			}

			return "msg=" + quoted(i)
		},
		FormatCaller: func(i any) string {
			if i == nil {
				return "caller=UNKNOWN"
			}

			c := fmt.Sprint(i)
			if strings.ContainsAny(c, " \"") {
				c = strconv.Quote(c)
			}

			return "caller=" + c
		},
		FormatErrFieldValue: func(i any) string {
			if i == nil {
				return "<nil>"
			}

			return quoted(i)
		},
	}
}
