package plantuml

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
)

// encoding is base64 over the PlantUML alphabet: digits, upper, lower, '-' and '_'.
var encoding = base64.NewEncoding("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_").WithPadding(base64.NoPadding)

// Encode compresses markup with raw deflate and encodes it for a PlantUML
// server URL.
func Encode(markup string) (string, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("create deflate writer: %w", err)
	}
	if _, err := w.Write([]byte(markup)); err != nil {
		return "", fmt.Errorf("deflate markup: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("deflate markup: %w", err)
	}
	return encoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode.
func Decode(encoded string) (string, error) {
	compressed, err := encoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode plantuml text: %w", err)
	}

	r := flate.NewReader(bytes.NewReader(compressed))
	defer func() { _ = r.Close() }()

	var out bytes.Buffer
	if _, err := out.ReadFrom(r); err != nil {
		return "", fmt.Errorf("inflate plantuml text: %w", err)
	}
	return out.String(), nil
}
