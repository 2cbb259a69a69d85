package schema

import (
	"fmt"
	"strings"

	"github.com/teranos/protodts/errors"
)

// Validate is the strict-mode check. It reports every Reference that does
// not resolve to a TypeDef and every Primitive kind outside the known set,
// all at once, as details on a single ErrInvalidSchema error.
//
// Lenient generation never calls it: unknown shapes pass through verbatim.
func Validate(s *Schema) error {
	ids := make(map[string]bool)
	for _, d := range s.Domains {
		for _, t := range d.Types {
			ids[d.Name+"."+t.ID] = true
		}
	}

	var problems []string
	check := func(domain, where string, shape Shape) {
		Walk(shape, func(sh Shape) {
			switch v := sh.(type) {
			case Reference:
				target := v.Target
				if !strings.Contains(target, ".") {
					target = domain + "." + target
				}
				if !ids[target] {
					problems = append(problems, fmt.Sprintf("%s: unresolved reference %q", where, v.Target))
				}
			case Primitive:
				if !knownKinds[v.Kind] {
					problems = append(problems, fmt.Sprintf("%s: unknown kind %q", where, v.Kind))
				}
			}
		})
	}
	checkProps := func(domain, where string, props []PropertyDef) {
		for _, p := range props {
			check(domain, where+"."+p.Name, p.Shape)
		}
	}

	for _, d := range s.Domains {
		for _, t := range d.Types {
			check(d.Name, d.Name+"."+t.ID, t.Shape)
		}
		for _, c := range d.Commands {
			checkProps(d.Name, d.Name+"."+c.Name+"(parameters)", c.Parameters)
			checkProps(d.Name, d.Name+"."+c.Name+"(returns)", c.Returns)
		}
		for _, e := range d.Events {
			checkProps(d.Name, d.Name+"."+e.Name, e.Parameters)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	err := errors.NewInvalidSchemaError("%d problem(s) found in schema", len(problems))
	for _, p := range problems {
		err = errors.WithDetail(err, p)
	}
	return errors.WithHint(err, "disable schema.strict to generate declarations anyway")
}
