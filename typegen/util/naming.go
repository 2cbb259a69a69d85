package util

import (
	"path"
	"strings"
)

// Declaration name suffixes shared by every emission pass.
const (
	RequestSuffix  = "Request"
	ResponseSuffix = "Response"
	EventSuffix    = "Event"
	APISuffix      = "Api"

	// DeclarationExt is stripped from output file names to derive module names.
	DeclarationExt = ".d.ts"
)

// DomainName is the namespace identifier of a domain.
func DomainName(domain string) string {
	return ToTitleCase(domain)
}

// TypeName is the declaration identifier of a domain type.
func TypeName(id string) string {
	return ToTitleCase(id)
}

// RequestName is the declaration holding a command's parameters.
func RequestName(command string) string {
	return ToTitleCase(command) + RequestSuffix
}

// ResponseName is the declaration holding a command's return values.
func ResponseName(command string) string {
	return ToTitleCase(command) + ResponseSuffix
}

// EventPayloadName is the declaration holding an event's parameters.
func EventPayloadName(event string) string {
	return ToTitleCase(event) + EventSuffix
}

// DomainAPIName is the API-surface interface of a domain.
func DomainAPIName(domain string) string {
	return ToTitleCase(domain) + APISuffix
}

// Qualified joins a module prefix, a domain namespace and a declaration:
// Qualified("Protocol", "Page", "NavigateRequest") -> "Protocol.Page.NavigateRequest".
// The domain is title-cased; decl is expected to be an already derived name.
func Qualified(module, domain, decl string) string {
	return module + "." + DomainName(domain) + "." + decl
}

// MemberKey is the domain-qualified name of a command or event as used
// outside the protocol module: MemberKey("page", "navigate") -> "Page.navigate".
func MemberKey(domain, member string) string {
	return DomainName(domain) + "." + member
}

// PropertyKey quotes a property name when it is not a plain identifier
// in declaration position (currently: when it contains a dot).
func PropertyKey(name string) string {
	if strings.Contains(name, ".") {
		return "'" + name + "'"
	}
	return name
}

// ModuleName derives the exported namespace of a generated module from its
// file name: "types/protocol.d.ts" -> "Protocol".
func ModuleName(file string) string {
	base := path.Base(strings.ReplaceAll(file, "\\", "/"))
	base = strings.TrimSuffix(base, DeclarationExt)
	base = strings.TrimSuffix(base, ".ts")
	return ToTitleCase(base)
}

// ImportPath is the relative import specifier of a sibling declaration file:
// "protocol.d.ts" -> "./protocol".
func ImportPath(file string) string {
	base := path.Base(strings.ReplaceAll(file, "\\", "/"))
	base = strings.TrimSuffix(base, DeclarationExt)
	base = strings.TrimSuffix(base, ".ts")
	return "./" + base
}
