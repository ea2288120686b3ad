// Package output provides a service for writing results and diagnostics.
package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
	"github.com/thirukguru/rstr/shared/ansi"
	"github.com/thirukguru/rstr/shared/console"
)

// NewService creates an output service. Diagnostics are coloured only when
// stderr is a terminal.
func NewService(stdout, stderr io.Writer) Service {
	s := &service{stdout: stdout, stderr: stderr}

	if f, ok := console.Terminal(stderr); ok {
		ansi.EnableANSI(f)
		s.color = true
		s.blueBG = console.IsBlueBackground(f)
	}

	s.logger = zerolog.New(zerolog.ConsoleWriter{
		Out:          stderr,
		NoColor:      !s.color,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})

	return s
}

// PrintResult writes s as a single line to stdout.
func (s *service) PrintResult(str string) error {
	if _, err := fmt.Fprintln(s.stdout, str); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (s *service) ReportInvalidArguments() {
	msg := InvalidArgumentsMessage
	if s.color {
		// red is unreadable on blue consoles
		c := text.Colors{text.FgHiRed}
		if s.blueBG {
			c = text.Colors{text.FgHiYellow}
		}
		msg = c.Sprint(msg)
	}

	_, _ = fmt.Fprintln(s.stderr, msg)
}

func (s *service) ReportFatal(err error) {
	s.logger.Error().Err(err).Msg("rstr: unable to generate random string")
}
