package typescript

import (
	"github.com/teranos/protodts/schema"
	"github.com/teranos/protodts/typegen/util"
)

const mappingDescription = "Mappings from protocol event and command names to the types required for them."

// MappingPass emits the Events and Commands maps keyed by "Domain.member".
// Values are tuple types so callers can spread them as argument lists.
type MappingPass struct {
	File         string
	Module       string
	ProtocolFile string
	Annotate     bool
}

func (p *MappingPass) Name() string     { return "mapping" }
func (p *MappingPass) FileName() string { return p.File }

// Emit renders the mapping module for domains.
func (p *MappingPass) Emit(domains []schema.Domain) string {
	protocol := util.ModuleName(p.ProtocolFile)

	e := NewEmitter()
	e.Header()
	e.Line("import " + protocol + " from '" + util.ImportPath(p.ProtocolFile) + "'")
	e.Blank()
	e.Comment(mappingDescription)
	e.OpenBlock("export namespace " + p.Module)

	events := make([]schema.PropertyDef, 0)
	commands := make([]schema.PropertyDef, 0)
	for _, d := range domains {
		for _, ev := range d.Events {
			events = append(events, eventEntry(protocol, d.Name, ev))
		}
		for _, c := range d.Commands {
			commands = append(commands, commandEntry(protocol, d.Name, c))
		}
	}

	emitInterface(e, "Events", events, p.Annotate)
	e.Blank()
	emitInterface(e, "Commands", commands, p.Annotate)

	e.CloseBlock()
	e.Blank()
	e.Line("export default " + p.Module + ";")
	return e.String()
}

func eventEntry(protocol, domain string, ev schema.Event) schema.PropertyDef {
	payload := "[]"
	if ev.HasParameters() {
		payload = "[" + util.Qualified(protocol, domain, util.EventPayloadName(ev.Name)) + "]"
	}
	return schema.PropertyDef{
		Name:         util.MemberKey(domain, ev.Name),
		Description:  ev.Description,
		Experimental: ev.Experimental,
		Deprecated:   ev.Deprecated,
		Shape:        schema.Reference{Target: payload},
	}
}

// commandEntry describes a command as {paramsType, returnType}. A weak
// parameter list makes the single tuple element optional.
func commandEntry(protocol, domain string, c schema.Command) schema.PropertyDef {
	params := "[]"
	if c.HasParameters() {
		optional := ""
		if c.WeakParameters() {
			optional = "?"
		}
		params = "[" + util.Qualified(protocol, domain, util.RequestName(c.Name)) + optional + "]"
	}
	returns := "void"
	if c.HasReturns() {
		returns = util.Qualified(protocol, domain, util.ResponseName(c.Name))
	}
	return schema.PropertyDef{
		Name:         util.MemberKey(domain, c.Name),
		Description:  c.Description,
		Experimental: c.Experimental,
		Deprecated:   c.Deprecated,
		Shape: schema.Object{Properties: []schema.PropertyDef{
			{Name: "paramsType", Shape: schema.Reference{Target: params}},
			{Name: "returnType", Shape: schema.Reference{Target: returns}},
		}},
	}
}
