// Package manifest reads the source declarations of a title from JSON, YAML or TOML files.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anisan-cli/dvs/filesystem"
	"github.com/anisan-cli/dvs/source"
	"github.com/anisan-cli/dvs/util"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"gopkg.in/yaml.v3"
)

// Format is a manifest encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ErrNoSources is returned for a manifest without any source.
var ErrNoSources = errors.New("manifest declares no sources")

// Manifest is a title with its playable sources, in declaration order.
type Manifest struct {
	Title   string
	Poster  string
	Sources []source.Descriptor
}

// Document is the on-disk shape of a manifest.
type Document struct {
	Title   string  `json:"title" yaml:"title" toml:"title" jsonschema:"description=Title shown by the player."`
	Poster  string  `json:"poster,omitempty" yaml:"poster,omitempty" toml:"poster,omitempty" jsonschema:"description=Text shown until playback starts."`
	Sources []Entry `json:"sources" yaml:"sources" toml:"sources" jsonschema:"minItems=1,description=Playable sources. Sources sharing a described value form one variant."`
}

// Entry is one declared source.
type Entry struct {
	Src       string `json:"src" yaml:"src" toml:"src" jsonschema:"required,description=URL or path. Relative paths resolve against the manifest directory."`
	Type      string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty" jsonschema:"description=Media type such as video/mp4."`
	Described any    `json:"described,omitempty" yaml:"described,omitempty" toml:"described,omitempty" jsonschema:"description=Absent for the base variant. Empty or false for an unlabeled described variant. Any other value labels the variant."`
}

// raw keeps sources as maps so an absent attribute can be told apart from null.
type raw struct {
	Title   string           `json:"title" yaml:"title" toml:"title"`
	Poster  string           `json:"poster" yaml:"poster" toml:"poster"`
	Sources []map[string]any `json:"sources" yaml:"sources" toml:"sources"`
}

// FormatOf detects the format from a file extension, defaulting to JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return JSON
	}
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, d := range m.Sources {
		m.Sources[i].URL = resolve(dir, d.URL)
	}

	if m.Title == "" {
		m.Title = util.FileStem(path)
	}

	return m, nil
}

// Parse decodes a manifest. Relative paths are kept as declared.
func Parse(data []byte, format Format) (*Manifest, error) {
	var doc raw

	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	case TOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	if len(doc.Sources) == 0 {
		return nil, ErrNoSources
	}

	sources := make([]source.Descriptor, 0, len(doc.Sources))
	for i, entry := range doc.Sources {
		d, err := descriptor(entry)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i+1, err)
		}
		sources = append(sources, d)
	}

	return &Manifest{
		Title:   doc.Title,
		Poster:  doc.Poster,
		Sources: sources,
	}, nil
}

func descriptor(entry map[string]any) (source.Descriptor, error) {
	src, ok := entry["src"].(string)
	if !ok || strings.TrimSpace(src) == "" {
		return source.Descriptor{}, errors.New("missing src")
	}

	var mediaType string
	if t, ok := entry["type"]; ok {
		if mediaType, ok = t.(string); !ok {
			return source.Descriptor{}, fmt.Errorf("type must be a string, got %T", t)
		}
	}

	described := mo.None[any]()
	if v, ok := entry["described"]; ok {
		described = mo.Some(v)
	}

	return source.Descriptor{
		URL:  strings.TrimSpace(src),
		Type: mediaType,
		Key:  source.Normalize(described),
	}, nil
}

func resolve(dir, src string) string {
	if strings.Contains(src, "://") || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(dir, src)
}

// Document returns the declarations of m in their on-disk shape.
func (m *Manifest) Document() Document {
	return Document{
		Title:  m.Title,
		Poster: m.Poster,
		Sources: lo.Map(m.Sources, func(d source.Descriptor, _ int) Entry {
			e := Entry{Src: d.URL, Type: d.Type}
			if d.Key != source.Base {
				e.Described = string(d.Key)
			}
			return e
		}),
	}
}
