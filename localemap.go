package businesscomms

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LocaleEntry pairs a locale tag with its configured value.
type LocaleEntry[T any] struct {
	Locale string
	Value  T
}

// LocaleMap is an ordered sequence of locale-keyed entries. The wire format
// is a JSON object, so keys stay explicitly paired with their values; entry
// order is preserved through marshal and unmarshal. Lookups go through Get
// and Set by locale tag, never by position.
type LocaleMap[T any] []LocaleEntry[T]

// Get returns the value for the locale and whether it was present.
func (m LocaleMap[T]) Get(locale string) (T, bool) {
	for _, entry := range m {
		if entry.Locale == locale {
			return entry.Value, true
		}
	}
	var zero T
	return zero, false
}

// Set replaces the value for the locale in place, or appends a new entry.
// Other locale entries are untouched.
func (m *LocaleMap[T]) Set(locale string, value T) {
	for i, entry := range *m {
		if entry.Locale == locale {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, LocaleEntry[T]{Locale: locale, Value: value})
}

// Locales returns the locale tags in entry order.
func (m LocaleMap[T]) Locales() []string {
	out := make([]string, len(m))
	for i, entry := range m {
		out[i] = entry.Locale
	}
	return out
}

// MarshalJSON renders the entries as a JSON object in entry order.
func (m LocaleMap[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Locale)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving the server's key order.
func (m *LocaleMap[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("locale map: expected JSON object, got %v", tok)
	}
	var out LocaleMap[T]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("locale map: expected string key, got %v", keyTok)
		}
		var value T
		if err := dec.Decode(&value); err != nil {
			return err
		}
		out = append(out, LocaleEntry[T]{Locale: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}
