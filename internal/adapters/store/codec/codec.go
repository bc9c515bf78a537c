// Package codec encodes store payloads with msgpack. Field names follow the
// json tags of the domain types so payloads stay readable with any msgpack
// tool. Free-form values (metadata, attribute defaults) come back with
// integers as int and floats as float64.
package codec

import (
	"bytes"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bnema/umlgen/internal/domain"
)

func EncodeModel(model domain.SystemModel) ([]byte, error) {
	data, err := encode(model)
	if err != nil {
		return nil, fmt.Errorf("encode model: %w", err)
	}
	return data, nil
}

func DecodeModel(data []byte) (domain.SystemModel, error) {
	var model domain.SystemModel
	if err := decode(data, &model); err != nil {
		return domain.SystemModel{}, fmt.Errorf("decode model: %w", err)
	}

	if model.System.Metadata != nil {
		for key, value := range model.System.Metadata {
			model.System.Metadata[key] = normalizeValue(value)
		}
	}
	for i := range model.Entities {
		for j := range model.Entities[i].Attributes {
			attr := &model.Entities[i].Attributes[j]
			attr.Default = normalizeValue(attr.Default)
		}
	}
	return model, nil
}

func EncodeHistory(entries []domain.HistoryEntry) ([]byte, error) {
	data, err := encode(entries)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	return data, nil
}

// DecodeHistory returns timestamps in UTC regardless of the local zone the
// decoder picks.
func DecodeHistory(data []byte) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	if err := decode(data, &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	for i := range entries {
		entries[i].Timestamp = entries[i].Timestamp.UTC()
	}
	return entries, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	dec.UseLooseInterfaceDecoding(true)
	return dec.Decode(v)
}

// normalizeValue maps loosely decoded integers back to int, recursing into
// maps and slices.
func normalizeValue(v any) any {
	switch value := v.(type) {
	case int64:
		if value >= math.MinInt && value <= math.MaxInt {
			return int(value)
		}
		return value
	case uint64:
		if value <= math.MaxInt {
			return int(value)
		}
		return value
	case map[string]any:
		for key, item := range value {
			value[key] = normalizeValue(item)
		}
		return value
	case []any:
		for i, item := range value {
			value[i] = normalizeValue(item)
		}
		return value
	default:
		return v
	}
}
