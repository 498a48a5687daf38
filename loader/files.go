package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cityroute/core"
)

// DecodeYAML reads a Definition from YAML. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*Definition, error) {
	var d Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode yaml network: %w", err)
	}

	return &d, nil
}

// DecodeTOML reads a Definition from TOML. Unknown keys are rejected.
func DecodeTOML(r io.Reader) (*Definition, error) {
	var d Definition
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, fmt.Errorf("decode toml network: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode toml network: unknown keys %v", undecoded)
	}

	return &d, nil
}

// EncodeYAML writes d as YAML.
func EncodeYAML(w io.Writer, d *Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode yaml network: %w", err)
	}

	return enc.Close()
}

// LoadYAML reads a YAML network file.
func LoadYAML(path string) (*Definition, error) {
	return decodeFile(path, DecodeYAML)
}

// LoadTOML reads a TOML network file.
func LoadTOML(path string) (*Definition, error) {
	return decodeFile(path, DecodeTOML)
}

// Load reads a network file, choosing the decoder by extension
// (.yaml, .yml, .toml, .osm), and builds the graph.
func Load(path string) (*Definition, *core.Graph, error) {
	var decode func(io.Reader) (*Definition, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = DecodeYAML
	case ".toml":
		decode = DecodeTOML
	case ".osm":
		decode = func(r io.Reader) (*Definition, error) { return DecodeOSM(r, OSMOptions{}) }
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	d, err := decodeFile(path, decode)
	if err != nil {
		return nil, nil, err
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	g, err := d.Graph()
	if err != nil {
		return nil, nil, err
	}

	return d, g, nil
}

func decodeFile(path string, decode func(io.Reader) (*Definition, error)) (*Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network %s: %w", path, err)
	}
	d, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}
