package orderviewer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const indentUnit = "  "

// FormatJSON renders raw the way a browser's JSON.stringify(value, null, 2)
// would after JSON.parse: two-space indent, escapes decoded, numbers in their
// shortest form, no trailing newline. Object keys keep the order they were
// sent in. Input that is not a single JSON value is returned trimmed.
func FormatJSON(raw []byte) string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var b strings.Builder
	if err := writeValue(&b, dec, 0); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return string(bytes.TrimSpace(raw))
	}
	return b.String()
}

func writeValue(b *strings.Builder, dec *json.Decoder, depth int) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return writeObject(b, dec, depth)
		case '[':
			return writeArray(b, dec, depth)
		}
		return fmt.Errorf("unexpected delimiter %q", v)
	case string:
		writeString(b, v)
	case json.Number:
		b.WriteString(formatNumber(v))
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case nil:
		b.WriteString("null")
	default:
		return fmt.Errorf("unexpected token %T", tok)
	}
	return nil
}

func writeObject(b *strings.Builder, dec *json.Decoder, depth int) error {
	if !dec.More() {
		b.WriteString("{}")
		_, err := dec.Token()
		return err
	}
	b.WriteByte('{')
	for first := true; dec.More(); first = false {
		if !first {
			b.WriteByte(',')
		}
		newline(b, depth+1)
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %T", tok)
		}
		writeString(b, key)
		b.WriteString(": ")
		if err := writeValue(b, dec, depth+1); err != nil {
			return err
		}
	}
	newline(b, depth)
	b.WriteByte('}')
	_, err := dec.Token()
	return err
}

func writeArray(b *strings.Builder, dec *json.Decoder, depth int) error {
	if !dec.More() {
		b.WriteString("[]")
		_, err := dec.Token()
		return err
	}
	b.WriteByte('[')
	for first := true; dec.More(); first = false {
		if !first {
			b.WriteByte(',')
		}
		newline(b, depth+1)
		if err := writeValue(b, dec, depth+1); err != nil {
			return err
		}
	}
	newline(b, depth)
	b.WriteByte(']')
	_, err := dec.Token()
	return err
}

func newline(b *strings.Builder, depth int) {
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(indentUnit, depth))
}

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

// formatNumber follows the ECMAScript Number-to-String rules: plain decimals
// for 1e-6 <= |x| < 1e21, exponent form otherwise, and null for values that
// overflow a float64.
func formatNumber(n json.Number) string {
	f, err := strconv.ParseFloat(n.String(), 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null"
	}
	if err != nil {
		return n.String()
	}
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
