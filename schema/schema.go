// Package schema is the in-memory model of a protocol schema: domains that
// declare types, commands and events, each built from property definitions
// whose shapes form a small closed grammar (see Shape).
//
// A Schema is built once by Load and never mutated afterwards. Ordering of
// domains, types, commands, events and properties is preserved from input,
// because generated declarations follow it.
package schema

// Document is one decoded schema input.
type Document struct {
	// Source is where the document was loaded from (path or URL), empty when decoded from memory
	Source  string
	Version Version
	Domains []Domain
}

// Schema is the concatenation of every loaded document, in source order.
type Schema struct {
	Documents []*Document
	Domains   []Domain
}

// New concatenates the domain lists of docs. Duplicate domain names are kept
// in first-seen order; no conflict resolution is attempted.
func New(docs ...*Document) *Schema {
	s := &Schema{Documents: docs}
	for _, doc := range docs {
		s.Domains = append(s.Domains, doc.Domains...)
	}
	return s
}

// Domain returns the first domain with the given name.
func (s *Schema) Domain(name string) (Domain, bool) {
	for _, d := range s.Domains {
		if d.Name == name {
			return d, true
		}
	}
	return Domain{}, false
}

// Domain groups related types, commands and events.
type Domain struct {
	Name         string
	Description  string
	Experimental bool
	Deprecated   bool
	Dependencies []string
	Types        []TypeDef
	Commands     []Command
	Events       []Event
}

// TypeDef is a named type declared by a domain.
type TypeDef struct {
	ID           string
	Description  string
	Experimental bool
	Deprecated   bool
	Shape        Shape
}

// IsObject reports whether the type declares an object shape.
func (t TypeDef) IsObject() bool {
	_, ok := t.Shape.(Object)
	return ok
}

// PropertyDef is a named, possibly optional, member of an object, a command
// parameter list, a command return list or an event parameter list.
type PropertyDef struct {
	Name         string
	Description  string
	Optional     bool
	Experimental bool
	Deprecated   bool
	Shape        Shape
}

// Command is a request/response pair. Parameters and Returns are nil when the
// schema does not declare them and non-nil (possibly empty) when it does.
type Command struct {
	Name         string
	Description  string
	Experimental bool
	Deprecated   bool
	Parameters   []PropertyDef
	Returns      []PropertyDef
}

// HasParameters reports whether the command declares a parameter list.
func (c Command) HasParameters() bool { return c.Parameters != nil }

// HasReturns reports whether the command declares a return list.
func (c Command) HasReturns() bool { return c.Returns != nil }

// WeakParameters reports whether every declared parameter is optional, in
// which case callers may omit the parameters object entirely.
func (c Command) WeakParameters() bool {
	for _, p := range c.Parameters {
		if !p.Optional {
			return false
		}
	}
	return true
}

// Event is a notification with an optional payload.
type Event struct {
	Name         string
	Description  string
	Experimental bool
	Deprecated   bool
	Parameters   []PropertyDef
}

// HasParameters reports whether the event declares a payload.
func (e Event) HasParameters() bool { return e.Parameters != nil }
