// Package source defines playable source descriptors and the variant keys that group them.
package source

import (
	"fmt"
	"strconv"

	"github.com/samber/mo"
)

// Key identifies a variant. Two descriptors belong to the same variant iff their keys are equal.
type Key string

const (
	// Base is the rendition without audio description.
	Base Key = "false"
	// Described is a described rendition declared without a label.
	Described Key = "true"
)

// Label is the human readable caption of a key: On, Off, or the label itself.
func (k Key) Label() string {
	switch k {
	case Described:
		return "On"
	case Base:
		return "Off"
	default:
		return string(k)
	}
}

// Descriptor is one concrete playable resource belonging to exactly one variant.
type Descriptor struct {
	URL  string `json:"src"`
	Type string `json:"type,omitempty"`
	Key  Key    `json:"described"`
}

// String returns the URL with its media type.
func (d Descriptor) String() string {
	if d.Type == "" {
		return d.URL
	}
	return fmt.Sprintf("%s (%s)", d.URL, d.Type)
}

// Normalize maps a raw description attribute to a key.
//
// An absent attribute is Base. A present but falsy value ("", false, 0, null)
// is Described. A truthy string is used verbatim; other truthy scalars use
// their string form.
func Normalize(raw mo.Option[any]) Key {
	v, present := raw.Get()
	if !present {
		return Base
	}

	switch v := v.(type) {
	case nil:
		return Described
	case string:
		if v == "" {
			return Described
		}
		return Key(v)
	case bool:
		if !v {
			return Described
		}
		return Key(strconv.FormatBool(v))
	case int:
		if v == 0 {
			return Described
		}
		return Key(strconv.Itoa(v))
	case int64:
		if v == 0 {
			return Described
		}
		return Key(strconv.FormatInt(v, 10))
	case uint64:
		if v == 0 {
			return Described
		}
		return Key(strconv.FormatUint(v, 10))
	case float64:
		if v == 0 {
			return Described
		}
		return Key(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return Key(fmt.Sprint(v))
	}
}
