package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/protodts/schema"
)

func header() string {
	e := NewEmitter()
	e.Header()
	return e.String()
}

func fooDomain() schema.Domain {
	return schema.Domain{
		Name: "Foo",
		Commands: []schema.Command{{
			Name:       "bar",
			Parameters: []schema.PropertyDef{{Name: "x", Shape: schema.Primitive{Kind: "string"}}},
			Returns:    []schema.PropertyDef{{Name: "y", Shape: schema.Primitive{Kind: "integer"}}},
		}},
	}
}

func TestProtocolPassFooBar(t *testing.T) {
	pass := &ProtocolPass{File: "protocol.d.ts"}

	want := header() +
		"export namespace Protocol {\n" +
		"\n" +
		"    export type integer = number\n" +
		"\n" +
		"    export namespace Foo {\n" +
		"\n" +
		"        export interface BarRequest {\n" +
		"            x: string;\n" +
		"        }\n" +
		"\n" +
		"        export interface BarResponse {\n" +
		"            y: integer;\n" +
		"        }\n" +
		"    }\n" +
		"}\n" +
		"\n" +
		"export default Protocol;\n"
	assert.Equal(t, want, pass.Emit([]schema.Domain{fooDomain()}))
}

func TestMappingPassFooBar(t *testing.T) {
	pass := &MappingPass{File: "protocol-mapping.d.ts", Module: "ProtocolMapping", ProtocolFile: "protocol.d.ts"}

	want := header() +
		"import Protocol from './protocol'\n" +
		"\n" +
		"/**\n" +
		" * Mappings from protocol event and command names to the types required for them.\n" +
		" */\n" +
		"export namespace ProtocolMapping {\n" +
		"    export interface Events {\n" +
		"    }\n" +
		"\n" +
		"    export interface Commands {\n" +
		"        'Foo.bar': {\n" +
		"            paramsType: [Protocol.Foo.BarRequest];\n" +
		"            returnType: Protocol.Foo.BarResponse;\n" +
		"        };\n" +
		"    }\n" +
		"}\n" +
		"\n" +
		"export default ProtocolMapping;\n"
	assert.Equal(t, want, pass.Emit([]schema.Domain{fooDomain()}))
}

func TestAPIPassFooBar(t *testing.T) {
	pass := &APIPass{File: "protocol-proxy-api.d.ts", Module: "ProtocolProxyApi", ProtocolFile: "protocol.d.ts"}

	want := header() +
		"import Protocol from './protocol'\n" +
		"\n" +
		"/**\n" +
		" * API generated from Protocol commands and events.\n" +
		" */\n" +
		"export namespace ProtocolProxyApi {\n" +
		"\n" +
		"    export interface ProtocolApi {\n" +
		"        Foo: FooApi;\n" +
		"\n" +
		"    }\n" +
		"\n" +
		"\n" +
		"    export interface FooApi {\n" +
		"        bar(params: Protocol.Foo.BarRequest): Promise<Protocol.Foo.BarResponse>;\n" +
		"\n" +
		"    }\n" +
		"}\n" +
		"\n" +
		"export default ProtocolProxyApi;\n"
	assert.Equal(t, want, pass.Emit([]schema.Domain{fooDomain()}))
}

func TestProtocolPassTypes(t *testing.T) {
	domain := schema.Domain{
		Name:        "network",
		Description: "Network activity.",
		Types: []schema.TypeDef{
			{ID: "loaderId", Description: "Unique loader identifier.", Shape: schema.Primitive{Kind: "string"}},
			{ID: "Headers", Shape: schema.Object{}},
			{ID: "Request", Shape: schema.Object{Properties: []schema.PropertyDef{
				{Name: "url", Description: "Request URL.", Shape: schema.Primitive{Kind: "string"}},
				{Name: "loader", Optional: true, Shape: schema.Reference{Target: "Page.FrameId"}},
			}}},
			{ID: "Priority", Shape: schema.Primitive{Kind: "string", Enum: []string{"Low", "High"}}},
		},
	}

	got := (&ProtocolPass{File: "protocol.d.ts"}).Emit([]schema.Domain{domain})

	want := "    /**\n" +
		"     * Network activity.\n" +
		"     */\n" +
		"    export namespace Network {\n" +
		"\n" +
		"        /**\n" +
		"         * Unique loader identifier.\n" +
		"         */\n" +
		"        export type LoaderId = string;\n" +
		"\n" +
		"        export interface Headers {\n" +
		"            [key: string]: string;\n" +
		"        }\n" +
		"\n" +
		"        export interface Request {\n" +
		"            /**\n" +
		"             * Request URL.\n" +
		"             */\n" +
		"            url: string;\n" +
		"            loader?: Page.FrameId;\n" +
		"        }\n" +
		"\n" +
		"        export type Priority = ('Low' | 'High');\n" +
		"    }\n"
	assert.Contains(t, got, want)
}

func TestWeakParameters(t *testing.T) {
	tests := []struct {
		name   string
		params []schema.PropertyDef
		want   string
	}{
		{
			name: "all optional",
			params: []schema.PropertyDef{
				{Name: "a", Optional: true, Shape: schema.Primitive{Kind: "string"}},
				{Name: "b", Optional: true, Shape: schema.Primitive{Kind: "number"}},
			},
			want: "paramsType: [Protocol.Foo.BarRequest?];",
		},
		{
			name: "one required",
			params: []schema.PropertyDef{
				{Name: "a", Optional: true, Shape: schema.Primitive{Kind: "string"}},
				{Name: "b", Shape: schema.Primitive{Kind: "number"}},
			},
			want: "paramsType: [Protocol.Foo.BarRequest];",
		},
		{
			name:   "declared empty",
			params: []schema.PropertyDef{},
			want:   "paramsType: [Protocol.Foo.BarRequest?];",
		},
		{
			name:   "not declared",
			params: nil,
			want:   "paramsType: [];",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain := schema.Domain{Name: "Foo", Commands: []schema.Command{{Name: "bar", Parameters: tt.params}}}
			got := (&MappingPass{File: "m.d.ts", Module: "ProtocolMapping", ProtocolFile: "protocol.d.ts"}).
				Emit([]schema.Domain{domain})

			assert.Contains(t, got, "            "+tt.want+"\n")
			assert.Contains(t, got, "            returnType: void;\n")
		})
	}
}

func TestEventsAcrossPasses(t *testing.T) {
	domain := schema.Domain{
		Name: "Foo",
		Events: []schema.Event{
			{Name: "ping", Description: "Keepalive."},
			{Name: "tick", Parameters: []schema.PropertyDef{{Name: "n", Shape: schema.Primitive{Kind: "number"}}}},
		},
	}
	domains := []schema.Domain{domain}
	passes := NewGenerator(Options{}).Passes()
	require.Len(t, passes, 3)

	protocol := passes[0].Emit(domains)
	assert.NotContains(t, protocol, "PingEvent")
	assert.NotContains(t, protocol, "Keepalive.")
	assert.Contains(t, protocol, "        export interface TickEvent {\n            n: number;\n        }\n")

	mapping := passes[1].Emit(domains)
	assert.Contains(t, mapping, "        /**\n         * Keepalive.\n         */\n        'Foo.ping': [];\n")
	assert.Contains(t, mapping, "        'Foo.tick': [Protocol.Foo.TickEvent];\n")

	api := passes[2].Emit(domains)
	assert.NotContains(t, api, "'ping'")
	assert.NotContains(t, api, "Keepalive.")
	assert.Contains(t, api, "        on(event: 'tick', listener: (params: Protocol.Foo.TickEvent) => void): void;\n")
}

func TestAPIPassCommandVariants(t *testing.T) {
	domain := schema.Domain{
		Name: "page",
		Commands: []schema.Command{
			{Name: "enable", Description: "Enables page events."},
			{Name: "getLayout", Returns: []schema.PropertyDef{}},
			{Name: "navigate", Parameters: []schema.PropertyDef{{Name: "url", Shape: schema.Primitive{Kind: "string"}}}},
		},
	}

	got := (&APIPass{File: "api.d.ts", Module: "ProtocolProxyApi", ProtocolFile: "protocol.d.ts"}).
		Emit([]schema.Domain{domain})

	assert.Contains(t, got, "        page: PageApi;\n")
	assert.Contains(t, got, "    export interface PageApi {\n")
	assert.Contains(t, got, "        /**\n         * Enables page events.\n         */\n        enable(): Promise<void>;\n")
	assert.Contains(t, got, "        getLayout(): Promise<Protocol.Page.GetLayoutResponse>;\n")
	assert.Contains(t, got, "        navigate(params: Protocol.Page.NavigateRequest): Promise<void>;\n")
}

func TestAnnotate(t *testing.T) {
	domain := schema.Domain{
		Name:         "Foo",
		Experimental: true,
		Types: []schema.TypeDef{
			{ID: "Old", Deprecated: true, Shape: schema.Primitive{Kind: "string"}},
		},
	}

	plain := (&ProtocolPass{File: "protocol.d.ts"}).Emit([]schema.Domain{domain})
	assert.NotContains(t, plain, "@")

	annotated := (&ProtocolPass{File: "protocol.d.ts", Annotate: true}).Emit([]schema.Domain{domain})
	assert.Contains(t, annotated, "    /**\n     * @experimental\n     */\n    export namespace Foo {\n")
	assert.Contains(t, annotated, "        /**\n         * @deprecated\n         */\n        export type Old = string;\n")
}

func TestNewGeneratorDefaults(t *testing.T) {
	g := NewGenerator(Options{MappingModule: "Mapping"})
	opts := g.Options()

	assert.Equal(t, "protocol.d.ts", opts.ProtocolFile)
	assert.Equal(t, "Mapping", opts.MappingModule)
	assert.Equal(t, "ProtocolProxyApi", opts.APIModule)

	var names, files []string
	for _, p := range g.Passes() {
		names = append(names, p.Name())
		files = append(files, p.FileName())
	}
	assert.Equal(t, []string{"protocol", "mapping", "api"}, names)
	assert.Equal(t, []string{"protocol.d.ts", "protocol-mapping.d.ts", "protocol-proxy-api.d.ts"}, files)
}

func TestGenerationIsDeterministic(t *testing.T) {
	domains := []schema.Domain{
		fooDomain(),
		{
			Name:  "Page",
			Types: []schema.TypeDef{{ID: "FrameId", Shape: schema.Primitive{Kind: "string"}}},
			Events: []schema.Event{
				{Name: "loadEventFired", Parameters: []schema.PropertyDef{{Name: "timestamp", Shape: schema.Primitive{Kind: "number"}}}},
				{Name: "interstitialShown"},
			},
		},
	}

	g := NewGenerator(DefaultOptions())
	for _, pass := range g.Passes() {
		first := pass.Emit(domains)
		second := pass.Emit(domains)
		assert.Equal(t, first, second, pass.Name())
	}
}
