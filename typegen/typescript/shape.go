package typescript

import (
	"strings"

	"github.com/teranos/protodts/schema"
	"github.com/teranos/protodts/typegen/util"
)

// anyType is the permissive shape used for objects without declared properties.
const anyType = "any"

// ResolveShape renders the TypeScript type expression of shape. depth is the
// block level the expression is written at: inline object members are
// indented one level deeper and the closing brace returns to depth.
//
// Every variant has a textual form; unknown primitive kinds pass through
// verbatim.
func ResolveShape(shape schema.Shape, depth int) string {
	switch s := shape.(type) {
	case schema.Reference:
		return s.Target

	case schema.Array:
		return ResolveShape(s.Items, depth) + "[]"

	case schema.Object:
		if s.Open() {
			return anyType
		}
		var sb strings.Builder
		sb.WriteString("{\n")
		for _, p := range s.Properties {
			sb.WriteString(indent(depth + 1))
			sb.WriteString(PropertyDef(p, depth+1))
			sb.WriteString(";\n")
		}
		sb.WriteString(indent(depth))
		sb.WriteString("}")
		return sb.String()

	case schema.Primitive:
		if s.Kind == schema.KindString && len(s.Enum) > 0 {
			return enumUnion(s.Enum)
		}
		return s.Kind

	default:
		// nil shape (hand-built model without a type)
		return anyType
	}
}

// PropertyDef renders "name?: type" for one property written at depth.
func PropertyDef(p schema.PropertyDef, depth int) string {
	optional := ""
	if p.Optional {
		optional = "?"
	}
	return util.PropertyKey(p.Name) + optional + ": " + ResolveShape(p.Shape, depth)
}

// enumUnion renders ('a' | 'b') keeping input order.
func enumUnion(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return "(" + strings.Join(quoted, " | ") + ")"
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quote(v string) string {
	return "'" + literalEscaper.Replace(v) + "'"
}
