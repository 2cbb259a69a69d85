package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lower first letter", input: "page", want: "Page"},
		{name: "camel case keeps tail", input: "requestWillBeSent", want: "RequestWillBeSent"},
		{name: "already upper", input: "DOM", want: "DOM"},
		{name: "acronym tail untouched", input: "getDOMStorage", want: "GetDOMStorage"},
		{name: "empty string", input: "", want: ""},
		{name: "single rune", input: "x", want: "X"},
		{name: "non-letter first rune", input: "_private", want: "_private"},
		{name: "multibyte first rune", input: "éclair", want: "Éclair"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToTitleCase(tt.input))
		})
	}
}

func TestDerivedNames(t *testing.T) {
	assert.Equal(t, "Foo", DomainName("foo"))
	assert.Equal(t, "FrameId", TypeName("frameId"))
	assert.Equal(t, "BarRequest", RequestName("bar"))
	assert.Equal(t, "BarResponse", ResponseName("bar"))
	assert.Equal(t, "LoadEventFiredEvent", EventPayloadName("loadEventFired"))
	assert.Equal(t, "PageApi", DomainAPIName("page"))
	assert.Equal(t, "PageApi", DomainAPIName("Page"))
}

func TestQualified(t *testing.T) {
	assert.Equal(t, "Protocol.Foo.BarRequest", Qualified("Protocol", "Foo", RequestName("bar")))
	assert.Equal(t, "Protocol.Foo.BarRequest", Qualified("Protocol", "foo", RequestName("bar")))
}

func TestMemberKey(t *testing.T) {
	assert.Equal(t, "Foo.bar", MemberKey("Foo", "bar"))
	assert.Equal(t, "Foo.bar", MemberKey("foo", "bar"))
}

func TestPropertyKey(t *testing.T) {
	assert.Equal(t, "plain", PropertyKey("plain"))
	assert.Equal(t, "'Foo.bar'", PropertyKey("Foo.bar"))
	assert.Equal(t, "with-dash", PropertyKey("with-dash"))
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{file: "protocol.d.ts", want: "Protocol"},
		{file: "types/protocol.d.ts", want: "Protocol"},
		{file: `types\protocol.d.ts`, want: "Protocol"},
		{file: "protocol-mapping.d.ts", want: "Protocol-mapping"},
		{file: "api.ts", want: "Api"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, ModuleName(tt.file))
		})
	}
}

func TestImportPath(t *testing.T) {
	assert.Equal(t, "./protocol", ImportPath("protocol.d.ts"))
	assert.Equal(t, "./protocol", ImportPath("types/protocol.d.ts"))
}
