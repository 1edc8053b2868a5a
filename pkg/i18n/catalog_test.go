package i18n_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-orderviewer/pkg/i18n"
)

func TestDefaultCatalog_FetchErrorCopy(t *testing.T) {
	catalog := i18n.DefaultCatalog()

	en, err := catalog.Translate("en", i18n.KeyFetchError)
	if err != nil {
		t.Fatalf("translate en: %v", err)
	}
	if en != "Error retrieving order data. Check the ID and try again." {
		t.Fatalf("unexpected en message %q", en)
	}

	ru, err := catalog.Translate("ru", i18n.KeyFetchError)
	if err != nil {
		t.Fatalf("translate ru: %v", err)
	}
	if ru != "Ошибка при получении данных заказа. Проверьте ID и попробуйте снова." {
		t.Fatalf("unexpected ru message %q", ru)
	}

	for _, locale := range []string{"en", "ru"} {
		for _, key := range []string{i18n.KeyHeading, i18n.KeyPlaceholder, i18n.KeySubmit, i18n.KeyResultHeading} {
			if _, err := catalog.Translate(locale, key); err != nil {
				t.Fatalf("translate %s/%s: %v", locale, key, err)
			}
		}
	}
}

func TestCatalog_FallsBackToBaseLanguageThenDefault(t *testing.T) {
	catalog := i18n.NewCatalog("en")
	catalog.Add(i18n.Messages{
		"en": {"greeting": "Hello", "farewell": "Bye"},
		"es": {"greeting": "Hola"},
	})

	got, err := catalog.Translate("es-MX", "greeting")
	if err != nil || got != "Hola" {
		t.Fatalf("expected base language match, got %q (%v)", got, err)
	}
	got, err = catalog.Translate("es-MX", "farewell")
	if err != nil || got != "Bye" {
		t.Fatalf("expected fallback locale match, got %q (%v)", got, err)
	}
	if _, err := catalog.Translate("es", "missing"); !errors.Is(err, i18n.ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
}

func TestCatalog_TranslateFormatsArgs(t *testing.T) {
	catalog := i18n.NewCatalog("en")
	catalog.Add(i18n.Messages{"en": {"count": "%d orders"}})

	got, err := catalog.Translate("en", "count", 3)
	if err != nil || got != "3 orders" {
		t.Fatalf("unexpected result %q (%v)", got, err)
	}
}

func TestCatalog_LoadFileYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	payload := "en:\n  orderviewer.heading: \"Orders\"\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	catalog := i18n.DefaultCatalog()
	if err := catalog.LoadFile(path); err != nil {
		t.Fatalf("load file: %v", err)
	}
	got, _ := catalog.Translate("en", i18n.KeyHeading)
	if got != "Orders" {
		t.Fatalf("expected override, got %q", got)
	}
	got, _ = catalog.Translate("en", i18n.KeySubmit)
	if got != "Get order" {
		t.Fatalf("expected untouched key, got %q", got)
	}
}

func TestParseMessages_JSON(t *testing.T) {
	messages, err := i18n.ParseMessages([]byte(`{"de":{"k":"v"}}`), "inline.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if messages["de"]["k"] != "v" {
		t.Fatalf("unexpected messages %#v", messages)
	}
}

func TestParseMessages_Invalid(t *testing.T) {
	if _, err := i18n.ParseMessages([]byte("  "), "empty"); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if _, err := i18n.ParseMessages([]byte("- just\n- a list\n"), "list.yaml"); err == nil {
		t.Fatalf("expected error for list payload")
	}
}

func TestTranslateHelper_Fallbacks(t *testing.T) {
	if got := i18n.Translate(nil, "en", "k", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := i18n.Translate(nil, "en", "k", ""); got != "k" {
		t.Fatalf("expected key, got %q", got)
	}
	if got := i18n.Translate(i18n.DefaultCatalog(), "en", i18n.KeySubmit, "x"); got != "Get order" {
		t.Fatalf("expected catalog message, got %q", got)
	}
}
