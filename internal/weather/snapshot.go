package weather

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Snapshot is one successfully fetched provider payload. A nil *Snapshot
// means no payload is available.
type Snapshot struct {
	data map[string]interface{}
}

// NewSnapshot wraps an already decoded payload.
func NewSnapshot(data map[string]interface{}) *Snapshot {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &Snapshot{data: data}
}

// ParseSnapshot decodes a provider body. Anything other than a JSON object is rejected.
func ParseSnapshot(body []byte) (*Snapshot, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode weather payload: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("decode weather payload: not a JSON object")
	}
	return &Snapshot{data: data}, nil
}

// Lookup walks a dotted path such as "weather.0.main". Numeric segments
// index into arrays.
func (s *Snapshot) Lookup(path string) (interface{}, error) {
	if s == nil {
		return nil, &MissingFieldError{Path: path}
	}

	var current interface{} = s.data
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok || value == nil {
				return nil, &MissingFieldError{Path: path}
			}
			current = value
		case []interface{}:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) || node[idx] == nil {
				return nil, &MissingFieldError{Path: path}
			}
			current = node[idx]
		default:
			return nil, &MissingFieldError{Path: path}
		}
	}

	return current, nil
}

// Float looks up path and requires a JSON number.
func (s *Snapshot) Float(path string) (float64, error) {
	value, err := s.Lookup(path)
	if err != nil {
		return 0, err
	}

	switch n := value.(type) {
	case float64:
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, &FieldTypeError{Path: path, Want: "number", Got: value}
		}
		return f, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, &FieldTypeError{Path: path, Want: "number", Got: value}
	}
}

// Text looks up path and requires a JSON string.
func (s *Snapshot) Text(path string) (string, error) {
	value, err := s.Lookup(path)
	if err != nil {
		return "", err
	}

	str, ok := value.(string)
	if !ok {
		return "", &FieldTypeError{Path: path, Want: "string", Got: value}
	}
	return str, nil
}
