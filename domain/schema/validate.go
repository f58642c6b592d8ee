package schema

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ValidationError reports the first schema constraint violated by a write
// payload, naming the offending field.
type ValidationError struct {
	Model   string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s %s", e.Model, e.Field, e.Message)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// Validate checks a write payload against the model's field definitions and
// returns the normalized document to persist. Payload keys that are not
// declared fields are dropped. String values are trimmed of surrounding
// whitespace before any check — the one normalization rule in the system.
//
// applyDefaults substitutes field defaults for absent values; it is on for
// create and off for update, where the payload replaces the declared fields
// wholesale.
func (m Model) Validate(payload map[string]any, applyDefaults bool) (map[string]any, error) {
	values := make(map[string]any, len(m.Fields))

	for name, field := range m.Fields {
		raw, present := payload[name]
		if !present || raw == nil {
			if applyDefaults && field.Default != nil {
				raw = field.Default
			} else if field.Required {
				return nil, m.fail(name, "is required")
			} else {
				continue
			}
		}

		value, err := m.normalize(name, field, raw)
		if err != nil {
			return nil, err
		}
		if value == nil {
			// Required text that trimmed down to nothing.
			if field.Required {
				return nil, m.fail(name, "is required")
			}
			continue
		}
		values[name] = value
	}

	return values, nil
}

func (m Model) normalize(name string, field Field, raw any) (any, error) {
	switch field.Kind {
	case FieldText:
		return m.normalizeText(name, field, raw)
	case FieldNumber:
		return m.normalizeNumber(name, field, raw)
	case FieldBoolean:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
		return nil, m.fail(name, "must be a boolean")
	case FieldDate:
		return m.normalizeDate(name, raw)
	default:
		// Unknown declared kinds fall back to unconstrained text storage.
		s, ok := raw.(string)
		if !ok {
			s = fmt.Sprint(raw)
		}
		return strings.TrimSpace(s), nil
	}
}

func (m Model) normalizeText(name string, field Field, raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, m.fail(name, "must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	length := utf8.RuneCountInString(s)
	if field.MinLength != nil && length < *field.MinLength {
		return nil, m.fail(name, fmt.Sprintf("must be at least %d characters", *field.MinLength))
	}
	if field.MaxLength != nil && length > *field.MaxLength {
		return nil, m.fail(name, fmt.Sprintf("must be at most %d characters", *field.MaxLength))
	}
	if len(field.Options) > 0 {
		for _, option := range field.Options {
			if s == option {
				return s, nil
			}
		}
		return nil, m.fail(name, fmt.Sprintf("must be one of [%s]", strings.Join(field.Options, ", ")))
	}
	return s, nil
}

func (m Model) normalizeNumber(name string, field Field, raw any) (any, error) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil, m.fail(name, "must be a number")
		}
		n = parsed
	default:
		return nil, m.fail(name, "must be a number")
	}

	if field.Min != nil && n < *field.Min {
		return nil, m.fail(name, fmt.Sprintf("must be at least %v", *field.Min))
	}
	if field.Max != nil && n > *field.Max {
		return nil, m.fail(name, fmt.Sprintf("must be at most %v", *field.Max))
	}
	return n, nil
}

func (m Model) normalizeDate(name string, raw any) (any, error) {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC().Format(time.RFC3339), nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC().Format(time.RFC3339), nil
			}
		}
	}
	return nil, m.fail(name, "must be a valid date")
}

func (m Model) fail(field, message string) *ValidationError {
	return &ValidationError{Model: m.Name, Field: field, Message: message}
}
