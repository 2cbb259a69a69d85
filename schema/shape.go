package schema

// Shape is the structural description of a value's type. It is a closed
// variant: Reference, Array, Object and Primitive are the only
// implementations, and consumers switch over them exhaustively.
type Shape interface {
	isShape()
}

// Reference names another TypeDef, either by bare id within the same domain
// or domain-qualified ("Network.LoaderId") across domains.
type Reference struct {
	Target string
}

// Array is a homogeneous list of Items.
type Array struct {
	Items Shape
}

// Object is a structural record. A nil Properties slice means the schema did
// not declare any, which consumers treat as an open/unknown shape.
type Object struct {
	Properties []PropertyDef
}

// Open reports whether the object has no declared properties.
func (o Object) Open() bool { return o.Properties == nil }

// Primitive is any other declared kind ("string", "integer", "number",
// "boolean", "any", ...). Kind is kept verbatim, unknown kinds included.
type Primitive struct {
	Kind string
	Enum []string
}

func (Reference) isShape() {}
func (Array) isShape()     {}
func (Object) isShape()    {}
func (Primitive) isShape() {}

// Primitive kinds understood by strict validation.
const (
	KindString  = "string"
	KindInteger = "integer"
	KindNumber  = "number"
	KindBoolean = "boolean"
	KindAny     = "any"
	KindObject  = "object"
	KindArray   = "array"
)

// knownKinds lists kinds accepted by Validate.
var knownKinds = map[string]bool{
	KindString:  true,
	KindInteger: true,
	KindNumber:  true,
	KindBoolean: true,
	KindAny:     true,
	KindObject:  true,
	KindArray:   true,
}

// Walk calls fn for shape and every shape nested inside it, depth first,
// in declaration order.
func Walk(shape Shape, fn func(Shape)) {
	if shape == nil {
		return
	}
	fn(shape)
	switch s := shape.(type) {
	case Array:
		Walk(s.Items, fn)
	case Object:
		for _, p := range s.Properties {
			Walk(p.Shape, fn)
		}
	}
}
