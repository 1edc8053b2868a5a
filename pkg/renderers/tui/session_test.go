package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-orderviewer/components/orderviewer"
)

type stubDriver struct {
	inputs       []string
	inputPos     int
	configs      []InputConfig
	infoMessages []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.configs = append(s.configs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", ErrAborted
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func stubViewer() *orderviewer.Viewer {
	return orderviewer.NewViewer(orderviewer.WithFetcher(orderviewer.FetcherFunc(
		func(_ context.Context, id string) (json.RawMessage, error) {
			if id == "1234" {
				return json.RawMessage(`{"status":"shipped"}`), nil
			}
			return nil, errors.New("not found")
		},
	)))
}

func TestSession_RunPrintsResultsUntilAborted(t *testing.T) {
	driver := &stubDriver{inputs: []string{"1234", "9999"}}
	session := New(WithPromptDriver(driver))

	if err := session.Run(context.Background(), stubViewer()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{
		"Данные заказа:\n{\n  \"status\": \"shipped\"\n}",
		"Ошибка при получении данных заказа. Проверьте ID и попробуйте снова.",
	}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if len(driver.configs) != 3 {
		t.Fatalf("expected three prompts, got %d", len(driver.configs))
	}
	if driver.configs[1].Default != "1234" {
		t.Fatalf("expected previous identifier as default, got %q", driver.configs[1].Default)
	}
}

func TestSession_JSONOutputAndTheme(t *testing.T) {
	driver := &stubDriver{inputs: []string{"1234"}}
	session := New(
		WithPromptDriver(driver),
		WithOutputFormat(OutputFormatJSON),
		WithLocale("en"),
		WithTheme(Theme{PromptPrefix: "> "}),
	)

	if err := session.Run(context.Background(), stubViewer()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if diff := cmp.Diff([]string{`{"status":"shipped"}`}, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if got := driver.configs[0].Message; got != "> Enter order ID" {
		t.Fatalf("unexpected prompt %q", got)
	}
}

func TestSession_ValidatorRejectsBlank(t *testing.T) {
	driver := &stubDriver{}
	session := New(WithPromptDriver(driver), WithLocale("en"))
	if err := session.Run(context.Background(), stubViewer()); err != nil {
		t.Fatalf("run: %v", err)
	}

	validate := driver.configs[0].Validator
	if err := validate("  "); err == nil || err.Error() != "Order ID is required" {
		t.Fatalf("unexpected validation error %v", err)
	}
	if err := validate("1"); err != nil {
		t.Fatalf("expected valid identifier, got %v", err)
	}
}

func TestSession_RunRequiresViewer(t *testing.T) {
	if err := New(WithPromptDriver(&stubDriver{})).Run(context.Background(), nil); !errors.Is(err, ErrNoViewer) {
		t.Fatalf("expected ErrNoViewer, got %v", err)
	}
}

func TestSession_RunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(WithPromptDriver(&stubDriver{inputs: []string{"1234"}})).Run(ctx, stubViewer())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
