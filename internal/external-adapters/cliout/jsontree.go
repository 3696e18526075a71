package cliout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var errTrailingData = errors.New("unexpected data after top-level JSON value")

// decodeDocument parses raw as exactly one JSON document.
// Numbers are kept as json.Number so integer fields are not rounded through float64.
func decodeDocument(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return root, nil
}

// shape is the top-level kind of a payload, decided from its first character
type shape int

const (
	shapeInvalid shape = iota
	shapeArray
	shapeObject
)

func classifyShape(trimmed string) shape {
	if trimmed == "" {
		return shapeInvalid
	}
	switch trimmed[0] {
	case '[':
		return shapeArray
	case '{':
		return shapeObject
	default:
		return shapeInvalid
	}
}

// object is a decoded JSON object with strict, case-sensitive accessors.
// Absent keys and explicit nulls read as zero values; wrong types are errors.
type object map[string]any

func asObject(v any) (object, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected object, got %s", kindOf(v))
	}
	return object(m), nil
}

func (o object) str(key string) (string, error) {
	switch v := o[key].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("field %q: expected string, got %s", key, kindOf(v))
	}
}

func (o object) integer(key string) (int, error) {
	switch v := o[key].(type) {
	case nil:
		return 0, nil
	case json.Number:
		return numberToInt(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", key, err)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("field %q: expected integer, got %s", key, kindOf(v))
	}
}

func (o object) list(key string) ([]any, error) {
	switch v := o[key].(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	default:
		return nil, fmt.Errorf("field %q: expected array, got %s", key, kindOf(v))
	}
}

// objects converts every element of a list. Each element must be an object.
func objects[T any](elems []any, conv func(object) (T, error)) ([]T, error) {
	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		obj, err := asObject(elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		item, err := conv(obj)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// field decodes o[key] as a list of objects
func field[T any](o object, key string, conv func(object) (T, error)) ([]T, error) {
	elems, err := o.list(key)
	if err != nil || elems == nil {
		return nil, err
	}
	items, err := objects(elems, conv)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	return items, nil
}

// items decodes a top-level payload that is either an array of objects or a
// single bare object, unifying both into a slice
func items[T any](root any, s shape, conv func(object) (T, error)) ([]T, error) {
	switch s {
	case shapeArray:
		elems, ok := root.([]any)
		if !ok {
			return nil, fmt.Errorf("expected array, got %s", kindOf(root))
		}
		return objects(elems, conv)
	case shapeObject:
		obj, err := asObject(root)
		if err != nil {
			return nil, err
		}
		item, err := conv(obj)
		if err != nil {
			return nil, err
		}
		return []T{item}, nil
	default:
		return nil, errors.New("payload is neither an array nor an object")
	}
}

// numberToInt accepts integers and truncated floats within the 32-bit range
// the CLI emits; anything larger is a decode failure
func numberToInt(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return checkIntRange(float64(i), n.String())
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("invalid number %q", n.String())
	}
	return checkIntRange(math.Trunc(f), n.String())
}

func checkIntRange(f float64, raw string) (int, error) {
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("number %s out of range", raw)
	}
	return int(f), nil
}

// text is the lenient scalar reading used by the mask decoder
func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// intOrZero is the lenient integer reading used by the mask decoder
func intOrZero(v any) int {
	switch t := v.(type) {
	case json.Number:
		n, err := numberToInt(t)
		if err != nil {
			return 0
		}
		return n
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 32)
		if err != nil {
			return 0
		}
		return int(n)
	default:
		return 0
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
