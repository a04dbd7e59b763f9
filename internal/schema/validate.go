package schema

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/generative-ai-go/genai"
)

// ErrMalformed is wrapped by every validation failure.
var ErrMalformed = errors.New("malformed response")

// ShapeError reports the first place where a response departs from its contract.
type ShapeError struct {
	Path   string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMalformed, e.Path, e.Reason)
}

func (e *ShapeError) Unwrap() error { return ErrMalformed }

// Decode parses raw against c and returns a fully populated T, or the zero value and an
// error wrapping ErrMalformed. Nothing is coerced: a response either matches or is rejected.
func Decode[T any](raw string, c Contract) (T, error) {
	var zero T
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return zero, &ShapeError{Path: "$", Reason: "empty document"}
	}

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return zero, fmt.Errorf("%w: invalid JSON: %v", ErrMalformed, err)
	}
	if err := Check(doc, c); err != nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return zero, fmt.Errorf("%w: decode: %v", ErrMalformed, err)
	}
	return out, nil
}

// Check walks a generic JSON value (as produced by json.Unmarshal into any) against c.
func Check(doc any, c Contract) error {
	return check("$", doc, c)
}

func check(path string, v any, s *genai.Schema) error {
	if s == nil {
		return nil
	}
	if v == nil {
		if s.Nullable {
			return nil
		}
		return &ShapeError{Path: path, Reason: "null value"}
	}

	switch s.Type {
	case genai.TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return typeMismatch(path, "object", v)
		}
		for _, name := range s.Required {
			if _, present := obj[name]; !present {
				return &ShapeError{Path: path + "." + name, Reason: "required field missing"}
			}
		}
		names := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		// Typed decoding folds case, so a near-duplicate key would shadow the checked one.
		keys := make([]string, 0, len(obj))
		for key := range obj {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if _, declared := s.Properties[key]; declared {
				continue
			}
			for _, name := range names {
				if strings.EqualFold(key, name) {
					return &ShapeError{Path: path + "." + key, Reason: fmt.Sprintf("key differs from %q only by case", name)}
				}
			}
		}
		for _, name := range names {
			field, present := obj[name]
			if !present {
				continue
			}
			if err := check(path+"."+name, field, s.Properties[name]); err != nil {
				return err
			}
		}
	case genai.TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return typeMismatch(path, "array", v)
		}
		for i, item := range arr {
			if err := check(fmt.Sprintf("%s[%d]", path, i), item, s.Items); err != nil {
				return err
			}
		}
	case genai.TypeString:
		str, ok := v.(string)
		if !ok {
			return typeMismatch(path, "string", v)
		}
		if len(s.Enum) > 0 && !inEnum(s.Enum, str) {
			return &ShapeError{Path: path, Reason: fmt.Sprintf("value %q not in %v", str, s.Enum)}
		}
	case genai.TypeNumber:
		if _, ok := v.(float64); !ok {
			return typeMismatch(path, "number", v)
		}
	case genai.TypeInteger:
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			return typeMismatch(path, "integer", v)
		}
	case genai.TypeBoolean:
		if _, ok := v.(bool); !ok {
			return typeMismatch(path, "boolean", v)
		}
	}
	return nil
}

func typeMismatch(path, want string, got any) error {
	return &ShapeError{Path: path, Reason: fmt.Sprintf("expected %s, got %s", want, jsonKind(got))}
}

func jsonKind(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func inEnum(enum []string, v string) bool {
	for _, e := range enum {
		if e == v {
			return true
		}
	}
	return false
}
