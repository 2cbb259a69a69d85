package typescript

import (
	"regexp"
	"strings"
)

// Indent is one nesting level of emitted declarations.
const Indent = "    "

// GeneratedNotice is framed into the warning header of every artifact.
const GeneratedNotice = "Auto-generated by protodts, do not edit manually."

var newlinePattern = regexp.MustCompile(`\r\n|\r|\n`)

// Emitter accumulates the text of one emission pass and tracks the current
// block depth. Each pass constructs its own Emitter, so no indentation or
// buffered text can leak from one artifact into the next.
//
// An Emitter is not safe for concurrent use.
type Emitter struct {
	sb    strings.Builder
	depth int
}

// NewEmitter returns an empty emitter at depth 0.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Line writes s at the current indentation followed by a newline.
// An empty s writes a bare newline without indentation.
func (e *Emitter) Line(s string) {
	if s == "" {
		e.sb.WriteString("\n")
		return
	}
	e.sb.WriteString(indent(e.depth))
	e.sb.WriteString(s)
	e.sb.WriteString("\n")
}

// Blank writes a bare separator line.
func (e *Emitter) Blank() {
	e.sb.WriteString("\n")
}

// OpenBlock writes "header {" and nests subsequent lines one level deeper.
func (e *Emitter) OpenBlock(header string) {
	e.Line(header + " {")
	e.depth++
}

// CloseBlock returns to the enclosing level and writes "}".
func (e *Emitter) CloseBlock() {
	if e.depth > 0 {
		e.depth--
	}
	e.Line("}")
}

// Comment writes description as a JSDoc block, one " * " line per input
// line whatever the newline convention. Tags are appended as "@tag" lines.
// Nothing is written when both are empty.
func (e *Emitter) Comment(description string, tags ...string) {
	if description == "" && len(tags) == 0 {
		return
	}
	e.Line("/**")
	if description != "" {
		for _, line := range newlinePattern.Split(description, -1) {
			e.Line(" * " + line)
		}
	}
	for _, tag := range tags {
		e.Line(" * @" + tag)
	}
	e.Line(" */")
}

// Header writes the auto-generation warning that opens every artifact.
func (e *Emitter) Header() {
	inner := " * " + GeneratedNotice + " *"
	stars := strings.Repeat("*", len(inner)-1)
	e.Line("/" + stars)
	e.Line(inner)
	e.Line(" " + stars + "/")
	e.Blank()
}

// Depth is the current block nesting level.
func (e *Emitter) Depth() int {
	return e.depth
}

// String returns everything emitted so far.
func (e *Emitter) String() string {
	return e.sb.String()
}

// Reset clears the text and the depth.
func (e *Emitter) Reset() {
	e.sb.Reset()
	e.depth = 0
}

func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(Indent, depth)
}
