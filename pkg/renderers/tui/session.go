// Package tui drives an order viewer from an interactive terminal prompt.
package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/goliatone/go-orderviewer/components/orderviewer"
	"github.com/goliatone/go-orderviewer/pkg/i18n"
)

// Viewer is the part of orderviewer.Viewer the session needs.
type Viewer interface {
	SetIdentifier(identifier string)
	Identifier() string
	Submit(ctx context.Context) orderviewer.State
}

// Session asks for order identifiers and prints each result until the
// operator aborts.
type Session struct {
	driver       PromptDriver
	out          io.Writer
	outputFormat OutputFormat
	locale       string
	translator   i18n.Translator
	theme        Theme
}

// New constructs a terminal session with defaults (survey driver, pretty
// output, built-in catalog).
func New(options ...Option) *Session {
	s := &Session{
		outputFormat: OutputFormatPrettyText,
		locale:       i18n.DefaultLocale,
		translator:   i18n.DefaultCatalog(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = newSurveyDriver(s.out)
	}
	return s
}

// Run loops prompt, submit, print. It returns nil when the operator aborts
// and any other driver or context error as is.
func (s *Session) Run(ctx context.Context, viewer Viewer) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if viewer == nil {
		return ErrNoViewer
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := s.Once(ctx, viewer)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Once runs a single prompt and submission. done reports that the operator
// aborted the prompt.
func (s *Session) Once(ctx context.Context, viewer Viewer) (done bool, err error) {
	identifier, err := s.driver.Input(ctx, InputConfig{
		Message:   s.theme.PromptPrefix + s.translate(i18n.KeyPlaceholder, "Введите ID заказа"),
		Default:   viewer.Identifier(),
		Validator: s.validateIdentifier,
	})
	if errors.Is(err, ErrAborted) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	viewer.SetIdentifier(identifier)
	state := viewer.Submit(ctx)
	return false, s.print(ctx, state)
}

func (s *Session) print(ctx context.Context, state orderviewer.State) error {
	if msg, ok := state.Message(); ok {
		return s.driver.Info(ctx, s.theme.ErrorPrefix+msg)
	}

	switch s.outputFormat {
	case OutputFormatJSON:
		data, _ := state.Data()
		return s.driver.Info(ctx, string(data))
	default:
		heading := s.translate(i18n.KeyResultHeading, "Данные заказа:")
		return s.driver.Info(ctx, s.theme.InfoPrefix+heading+"\n"+state.Pretty())
	}
}

func (s *Session) validateIdentifier(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(s.translate(i18n.KeyRequired, "ID заказа обязателен"))
	}
	return nil
}

func (s *Session) translate(key, fallback string) string {
	return i18n.Translate(s.translator, s.locale, key, fallback)
}
