package fortune

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/tongshu/errors"
)

// Input formats accepted by the report loaders.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// FormatFromPath picks the input format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "report file %s", path),
			"use a .toml, .yaml or .yml file")
	}
}

func decode(r io.Reader, format string, v interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read report")
	}

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(v)
		if err != nil {
			return errors.Wrap(err, "decode TOML report")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return errors.NewInvalidInputError("unknown keys in report: %v", undecoded)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && err != io.EOF {
			return errors.Wrap(err, "decode YAML report")
		}
	default:
		return errors.Wrapf(errors.ErrUnsupportedFormat, "report format %q", format)
	}
	return nil
}

// DecodeMonthly reads a monthly report, fills missing translations and
// validates it. Omitted luck_index keeps the default of 3.
func DecodeMonthly(r io.Reader, format string) (Monthly, error) {
	m := NewMonthly()
	if err := decode(r, format, &m); err != nil {
		return Monthly{}, err
	}
	m.Complete()
	if err := m.Validate(); err != nil {
		return Monthly{}, err
	}
	return m, nil
}

// DecodeYearly reads a yearly report, fills missing translations and
// validates it. Omitted luck_index keeps the default of 4.
func DecodeYearly(r io.Reader, format string) (Yearly, error) {
	y := NewYearly()
	if err := decode(r, format, &y); err != nil {
		return Yearly{}, err
	}
	y.Complete()
	if err := y.Validate(); err != nil {
		return Yearly{}, err
	}
	return y, nil
}

// LoadMonthly reads a monthly report from a .toml or .yaml file.
func LoadMonthly(path string) (Monthly, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Monthly{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Monthly{}, errors.Wrapf(err, "open monthly report %s", path)
	}
	defer f.Close()

	m, err := DecodeMonthly(f, format)
	return m, errors.Wrapf(err, "load monthly report %s", path)
}

// LoadYearly reads a yearly report from a .toml or .yaml file.
func LoadYearly(path string) (Yearly, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Yearly{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Yearly{}, errors.Wrapf(err, "open yearly report %s", path)
	}
	defer f.Close()

	y, err := DecodeYearly(f, format)
	return y, errors.Wrapf(err, "load yearly report %s", path)
}
