// Package typescript renders a protocol schema as TypeScript declaration
// modules. Three passes share the naming rules of typegen/util and each
// builds its text with a fresh Emitter.
package typescript

import (
	"github.com/teranos/protodts/typegen"
)

// Options names the generated modules.
type Options struct {
	ProtocolFile  string
	MappingFile   string
	APIFile       string
	MappingModule string
	APIModule     string
	// Annotate adds @experimental and @deprecated JSDoc tags.
	Annotate bool
}

// DefaultOptions matches the layout consumers of the published types expect.
func DefaultOptions() Options {
	return Options{
		ProtocolFile:  "protocol.d.ts",
		MappingFile:   "protocol-mapping.d.ts",
		APIFile:       "protocol-proxy-api.d.ts",
		MappingModule: "ProtocolMapping",
		APIModule:     "ProtocolProxyApi",
	}
}

// Generator produces the protocol, mapping and API passes.
type Generator struct {
	opts Options
}

// NewGenerator fills empty options from DefaultOptions.
func NewGenerator(opts Options) *Generator {
	def := DefaultOptions()
	if opts.ProtocolFile == "" {
		opts.ProtocolFile = def.ProtocolFile
	}
	if opts.MappingFile == "" {
		opts.MappingFile = def.MappingFile
	}
	if opts.APIFile == "" {
		opts.APIFile = def.APIFile
	}
	if opts.MappingModule == "" {
		opts.MappingModule = def.MappingModule
	}
	if opts.APIModule == "" {
		opts.APIModule = def.APIModule
	}
	return &Generator{opts: opts}
}

// Options returns the effective options.
func (g *Generator) Options() Options {
	return g.opts
}

// Passes returns the passes in the order they must run.
func (g *Generator) Passes() []typegen.Pass {
	return []typegen.Pass{
		&ProtocolPass{File: g.opts.ProtocolFile, Annotate: g.opts.Annotate},
		&MappingPass{
			File:         g.opts.MappingFile,
			Module:       g.opts.MappingModule,
			ProtocolFile: g.opts.ProtocolFile,
			Annotate:     g.opts.Annotate,
		},
		&APIPass{
			File:         g.opts.APIFile,
			Module:       g.opts.APIModule,
			ProtocolFile: g.opts.ProtocolFile,
			Annotate:     g.opts.Annotate,
		},
	}
}
