package typescript

import (
	"github.com/teranos/protodts/schema"
	"github.com/teranos/protodts/typegen/util"
)

// ProtocolPass emits the primary module: one namespace per domain holding
// its types, command request/response interfaces and event payloads.
type ProtocolPass struct {
	File     string
	Annotate bool
}

func (p *ProtocolPass) Name() string     { return "protocol" }
func (p *ProtocolPass) FileName() string { return p.File }

// Emit renders the whole module for domains.
func (p *ProtocolPass) Emit(domains []schema.Domain) string {
	module := util.ModuleName(p.File)

	e := NewEmitter()
	e.Header()
	e.OpenBlock("export namespace " + module)
	e.Blank()
	e.Line("export type integer = number")
	for _, d := range domains {
		p.emitDomain(e, d)
	}
	e.CloseBlock()
	e.Blank()
	e.Line("export default " + module + ";")
	return e.String()
}

func (p *ProtocolPass) emitDomain(e *Emitter, d schema.Domain) {
	e.Blank()
	e.Comment(d.Description, annotations(p.Annotate, d.Experimental, d.Deprecated)...)
	e.OpenBlock("export namespace " + util.DomainName(d.Name))

	for _, t := range d.Types {
		e.Blank()
		e.Comment(t.Description, annotations(p.Annotate, t.Experimental, t.Deprecated)...)
		if obj, ok := t.Shape.(schema.Object); ok {
			emitInterface(e, util.TypeName(t.ID), obj.Properties, p.Annotate)
			continue
		}
		e.Line("export type " + util.TypeName(t.ID) + " = " + ResolveShape(t.Shape, e.Depth()) + ";")
	}

	// Command descriptions belong to the API surface, not the data shapes.
	for _, c := range d.Commands {
		if c.HasParameters() {
			e.Blank()
			emitInterface(e, util.RequestName(c.Name), c.Parameters, p.Annotate)
		}
		if c.HasReturns() {
			e.Blank()
			emitInterface(e, util.ResponseName(c.Name), c.Returns, p.Annotate)
		}
	}

	for _, ev := range d.Events {
		if !ev.HasParameters() {
			continue
		}
		e.Blank()
		e.Comment(ev.Description, annotations(p.Annotate, ev.Experimental, ev.Deprecated)...)
		emitInterface(e, util.EventPayloadName(ev.Name), ev.Parameters, p.Annotate)
	}

	e.CloseBlock()
}

// emitInterface writes one property per line, each after its description.
// A nil property list declares a string-keyed map instead.
func emitInterface(e *Emitter, name string, props []schema.PropertyDef, annotate bool) {
	e.OpenBlock("export interface " + name)
	if props == nil {
		e.Line("[key: string]: string;")
	}
	for _, prop := range props {
		e.Comment(prop.Description, annotations(annotate, prop.Experimental, prop.Deprecated)...)
		e.Line(PropertyDef(prop, e.Depth()) + ";")
	}
	e.CloseBlock()
}

// annotations returns the JSDoc tags for a declaration's status flags.
func annotations(enabled, experimental, deprecated bool) []string {
	if !enabled {
		return nil
	}
	var tags []string
	if experimental {
		tags = append(tags, "experimental")
	}
	if deprecated {
		tags = append(tags, "deprecated")
	}
	return tags
}
