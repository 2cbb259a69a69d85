package schema

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/teranos/protodts/errors"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of a schema document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from a file extension; anything that is not
// .yaml/.yml is treated as JSON, the reference form of the protocol schema.
func FormatFromPath(path string) Format {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// wireDocument mirrors the loosely-typed schema document. Every nested type
// position uses wireType, where $ref/type/items/properties/enum are probed
// once in toShape and never again.
type wireDocument struct {
	Version wireVersion  `json:"version" yaml:"version"`
	Domains []wireDomain `json:"domains" yaml:"domains"`
}

type wireVersion struct {
	Major flexString `json:"major" yaml:"major"`
	Minor flexString `json:"minor" yaml:"minor"`
}

type wireDomain struct {
	Domain       string        `json:"domain" yaml:"domain"`
	Description  string        `json:"description" yaml:"description"`
	Experimental bool          `json:"experimental" yaml:"experimental"`
	Deprecated   bool          `json:"deprecated" yaml:"deprecated"`
	Dependencies []string      `json:"dependencies" yaml:"dependencies"`
	Types        []wireType    `json:"types" yaml:"types"`
	Commands     []wireCommand `json:"commands" yaml:"commands"`
	Events       []wireEvent   `json:"events" yaml:"events"`
}

type wireCommand struct {
	Name         string     `json:"name" yaml:"name"`
	Description  string     `json:"description" yaml:"description"`
	Experimental bool       `json:"experimental" yaml:"experimental"`
	Deprecated   bool       `json:"deprecated" yaml:"deprecated"`
	Parameters   []wireType `json:"parameters" yaml:"parameters"`
	Returns      []wireType `json:"returns" yaml:"returns"`
}

type wireEvent struct {
	Name         string     `json:"name" yaml:"name"`
	Description  string     `json:"description" yaml:"description"`
	Experimental bool       `json:"experimental" yaml:"experimental"`
	Deprecated   bool       `json:"deprecated" yaml:"deprecated"`
	Parameters   []wireType `json:"parameters" yaml:"parameters"`
}

// wireType covers type definitions, property definitions and array items.
type wireType struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Description  string     `json:"description" yaml:"description"`
	Optional     bool       `json:"optional" yaml:"optional"`
	Experimental bool       `json:"experimental" yaml:"experimental"`
	Deprecated   bool       `json:"deprecated" yaml:"deprecated"`
	Ref          string     `json:"$ref" yaml:"$ref"`
	Type         string     `json:"type" yaml:"type"`
	Items        *wireType  `json:"items" yaml:"items"`
	Properties   []wireType `json:"properties" yaml:"properties"`
	Enum         []string   `json:"enum" yaml:"enum"`
}

// flexString accepts both "1" and 1, since version fields are written either way.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return errors.Wrapf(err, "expected string or number, got %s", string(data))
	}
	*s = flexString(num.String())
	return nil
}

func (s *flexString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Newf("line %d: expected scalar, got %v", node.Line, node.Kind)
	}
	*s = flexString(node.Value)
	return nil
}

// Decode parses one schema document.
func Decode(data []byte, format Format) (*Document, error) {
	var wire wireDocument
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &wire); err != nil {
			return nil, errors.Wrap(errors.Wrap(ErrDecode, err.Error()), "failed to decode YAML schema")
		}
	case FormatJSON, "":
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, errors.Wrap(errors.Wrap(ErrDecode, err.Error()), "failed to decode JSON schema")
		}
	default:
		return nil, errors.Newf("unknown schema format %q", format)
	}
	return wire.toDocument(), nil
}

// ErrDecode marks input that is not a well-formed schema document.
var ErrDecode = errors.Wrap(errors.ErrInvalidSchema, "malformed document")

func (w wireDocument) toDocument() *Document {
	doc := &Document{
		Version: Version{Major: string(w.Version.Major), Minor: string(w.Version.Minor)},
		Domains: make([]Domain, 0, len(w.Domains)),
	}
	for _, wd := range w.Domains {
		doc.Domains = append(doc.Domains, wd.toDomain())
	}
	return doc
}

func (w wireDomain) toDomain() Domain {
	d := Domain{
		Name:         w.Domain,
		Description:  w.Description,
		Experimental: w.Experimental,
		Deprecated:   w.Deprecated,
		Dependencies: w.Dependencies,
	}
	for _, wt := range w.Types {
		d.Types = append(d.Types, TypeDef{
			ID:           wt.ID,
			Description:  wt.Description,
			Experimental: wt.Experimental,
			Deprecated:   wt.Deprecated,
			Shape:        wt.toShape(),
		})
	}
	for _, wc := range w.Commands {
		d.Commands = append(d.Commands, Command{
			Name:         wc.Name,
			Description:  wc.Description,
			Experimental: wc.Experimental,
			Deprecated:   wc.Deprecated,
			Parameters:   toProperties(wc.Parameters),
			Returns:      toProperties(wc.Returns),
		})
	}
	for _, we := range w.Events {
		d.Events = append(d.Events, Event{
			Name:         we.Name,
			Description:  we.Description,
			Experimental: we.Experimental,
			Deprecated:   we.Deprecated,
			Parameters:   toProperties(we.Parameters),
		})
	}
	return d
}

// toProperties keeps the nil/empty distinction of the input list.
func toProperties(wire []wireType) []PropertyDef {
	if wire == nil {
		return nil
	}
	props := make([]PropertyDef, 0, len(wire))
	for _, wp := range wire {
		props = append(props, PropertyDef{
			Name:         wp.Name,
			Description:  wp.Description,
			Optional:     wp.Optional,
			Experimental: wp.Experimental,
			Deprecated:   wp.Deprecated,
			Shape:        wp.toShape(),
		})
	}
	return props
}

// toShape is the single place where the loose input grammar is dispatched.
// Records with neither $ref nor type degrade to the "any" primitive.
func (w wireType) toShape() Shape {
	switch {
	case w.Ref != "":
		return Reference{Target: w.Ref}
	case w.Type == KindArray:
		if w.Items == nil {
			return Array{Items: Primitive{Kind: KindAny}}
		}
		return Array{Items: w.Items.toShape()}
	case w.Type == KindObject:
		return Object{Properties: toProperties(w.Properties)}
	case w.Type != "":
		return Primitive{Kind: w.Type, Enum: w.Enum}
	default:
		return Primitive{Kind: KindAny}
	}
}
