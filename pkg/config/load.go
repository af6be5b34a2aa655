package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound   = errors.New("config file not found")
	ErrParse      = errors.New("invalid config document")
	ErrNotMapping = errors.New("config document is not a mapping")
)

// Load reads and decodes the site config. It re-reads from disk on every
// call; the returned value is never cached or mutated after decode.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (run \"linkbio start\" first)", ErrNotFound, path)
		}
		return nil, err
	}

	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Parse decodes a single YAML document into a Site. The document must be a
// mapping; null, sequences and scalars are rejected. Missing keys are
// tolerated and surface later as empty template values.
func Parse(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrNotMapping)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w: unexpected extra YAML document", ErrParse)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	root := documentRoot(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top-level value must be a key/value mapping", ErrNotMapping)
	}

	var site Site
	if err := root.Decode(&site); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	raw := make(map[string]any)
	if err := root.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	site.Extra = make(map[string]any)
	for key, value := range raw {
		if !knownKeys[key] {
			site.Extra[key] = value
		}
	}
	site.bindings = raw

	return &site, nil
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc == nil {
		return nil
	}
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		return doc.Content[0]
	}
	return doc
}
