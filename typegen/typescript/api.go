package typescript

import (
	"fmt"

	"github.com/teranos/protodts/schema"
	"github.com/teranos/protodts/typegen/util"
)

const apiDescription = "API generated from Protocol commands and events."

// APIPass emits a callable/observable interface per domain plus the
// ProtocolApi aggregate. Events without a payload have nothing to listen
// for and are left out.
type APIPass struct {
	File         string
	Module       string
	ProtocolFile string
	Annotate     bool
}

func (p *APIPass) Name() string     { return "api" }
func (p *APIPass) FileName() string { return p.File }

// Emit renders the API module for domains.
func (p *APIPass) Emit(domains []schema.Domain) string {
	protocol := util.ModuleName(p.ProtocolFile)

	e := NewEmitter()
	e.Header()
	e.Line("import " + protocol + " from '" + util.ImportPath(p.ProtocolFile) + "'")
	e.Blank()
	e.Comment(apiDescription)
	e.OpenBlock("export namespace " + p.Module)

	e.Blank()
	e.OpenBlock("export interface ProtocolApi")
	for _, d := range domains {
		// field keeps the schema spelling, the type is the derived interface
		e.Line(d.Name + ": " + util.DomainAPIName(d.Name) + ";")
		e.Blank()
	}
	e.CloseBlock()
	e.Blank()

	for _, d := range domains {
		p.emitDomain(e, protocol, d)
	}

	e.CloseBlock()
	e.Blank()
	e.Line("export default " + p.Module + ";")
	return e.String()
}

func (p *APIPass) emitDomain(e *Emitter, protocol string, d schema.Domain) {
	e.Blank()
	e.OpenBlock("export interface " + util.DomainAPIName(d.Name))

	for _, c := range d.Commands {
		e.Comment(c.Description, annotations(p.Annotate, c.Experimental, c.Deprecated)...)
		params := ""
		if c.HasParameters() {
			params = "params: " + util.Qualified(protocol, d.Name, util.RequestName(c.Name))
		}
		response := "void"
		if c.HasReturns() {
			response = util.Qualified(protocol, d.Name, util.ResponseName(c.Name))
		}
		e.Line(fmt.Sprintf("%s(%s): Promise<%s>;", c.Name, params, response))
		e.Blank()
	}

	for _, ev := range d.Events {
		if !ev.HasParameters() {
			continue
		}
		e.Comment(ev.Description, annotations(p.Annotate, ev.Experimental, ev.Deprecated)...)
		payload := util.Qualified(protocol, d.Name, util.EventPayloadName(ev.Name))
		e.Line(fmt.Sprintf("on(event: '%s', listener: (params: %s) => void): void;", ev.Name, payload))
		e.Blank()
	}

	e.CloseBlock()
}
