package tui

import (
	"io"

	"github.com/goliatone/go-orderviewer/pkg/i18n"
)

// OutputFormat controls how a fetched order is printed.
type OutputFormat string

const (
	// OutputFormatPrettyText prints the heading and indented JSON.
	OutputFormatPrettyText OutputFormat = "pretty"
	// OutputFormatJSON prints the order body exactly as received.
	OutputFormatJSON OutputFormat = "json"
)

// Theme captures optional formatting hints the driver can apply when printing
// messages. Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Option configures the terminal session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sends the default driver's messages to out instead of stdout.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		s.out = out
	}
}

// WithOutputFormat selects how results are printed.
func WithOutputFormat(format OutputFormat) Option {
	return func(s *Session) {
		if format != "" {
			s.outputFormat = format
		}
	}
}

func WithLocale(locale string) Option {
	return func(s *Session) {
		if locale != "" {
			s.locale = locale
		}
	}
}

func WithTranslator(translator i18n.Translator) Option {
	return func(s *Session) {
		if translator != nil {
			s.translator = translator
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}
