package display

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/tongshu/errors"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// MarshalJSON marshals JSON with pretty formatting
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// MarshalYAML marshals YAML with two-space indentation
func MarshalYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalTOML marshals TOML. Only structs with toml tags (config, monthly
// and yearly reports) render meaningfully.
func MarshalTOML(v interface{}) ([]byte, error) {
	return toml.Marshal(v)
}

// Encode writes v to w in a structured format
func Encode(w io.Writer, format string, v interface{}) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err = MarshalJSON(v)
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = MarshalYAML(v)
	case FormatTOML:
		data, err = MarshalTOML(v)
	default:
		return errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "output format %q", format),
			"use json, yaml or toml")
	}
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", format)
	}
	_, err = w.Write(data)
	return err
}

