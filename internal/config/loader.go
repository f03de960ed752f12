package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type LoadResult struct {
	Config  *Config
	Sources map[string]Source // YAML key -> where it was set
	File    string            // empty when no file was found
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "termwin", "config.yaml"), nil
}

// Load reads the configuration from the standard location.
func Load() (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path over the defaults. A missing file is not an
// error.
func LoadFromPath(path string) (*LoadResult, error) {
	cfg := DefaultConfig()
	res := &LoadResult{Config: cfg, Sources: map[string]Source{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return res, cfg.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to parse yaml: %w", path, err)
	}
	var raw RawConfig
	if err := decodeStrictYAML(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	raw.apply(cfg)
	res.Sources = collectSources(&doc, path)
	res.File = path

	if err := cfg.Validate(); err != nil {
		return nil, attachSourceContext(err, res.Sources)
	}
	return res, nil
}

// Override records a setting that came from the command line and
// re-validates.
func (r *LoadResult) Override(path string, set func(*Config)) error {
	set(r.Config)
	r.Sources[path] = Source{Kind: SourceFlag}
	if err := r.Config.Validate(); err != nil {
		return attachSourceContext(err, r.Sources)
	}
	return nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

func collectSources(doc *yaml.Node, file string) map[string]Source {
	out := make(map[string]Source)
	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return out
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		val := node.Content[i+1]
		out[node.Content[i].Value] = Source{
			Kind:   SourceFile,
			File:   file,
			Line:   val.Line,
			Column: val.Column,
		}
	}
	return out
}

func attachSourceContext(err error, sources map[string]Source) error {
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path == "" {
		return err
	}
	if src, ok := sources[verr.Path]; ok {
		verr.Source = src
	}
	return verr
}
