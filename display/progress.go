package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
)

// ProgressEmitter reports what a generation run is doing.
//
// Implementations include:
// - CLIEmitter: pretty-printed terminal output using pterm
// - JSONEmitter: one JSON event per line for scripts and CI
type ProgressEmitter interface {
	// EmitStage announces a step ("load", "validate", "generate")
	EmitStage(stage string, message string)

	// EmitArtifact reports one written declaration file
	EmitArtifact(path string, bytes int)

	// EmitComplete closes a successful run with a summary
	EmitComplete(summary map[string]interface{})

	// EmitError reports a failed stage
	EmitError(stage string, err error)

	// EmitInfo prints an informational message
	EmitInfo(message string)
}

// ProgressEvent is one line of JSONEmitter output
type ProgressEvent struct {
	Type      string                 `json:"type"` // "stage", "artifact", "complete", "error", "info"
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// NewEmitter picks the JSON or terminal emitter
func NewEmitter(jsonOutput bool, verbosity int) ProgressEmitter {
	if jsonOutput {
		return NewJSONEmitter(os.Stdout)
	}
	return NewCLIEmitter(verbosity)
}

// CLIEmitter outputs pretty-printed progress to terminal using pterm
type CLIEmitter struct {
	verbosity int
}

// NewCLIEmitter creates a CLI progress emitter for terminal output
func NewCLIEmitter(verbosity int) *CLIEmitter {
	return &CLIEmitter{verbosity: verbosity}
}

func (e *CLIEmitter) EmitStage(stage string, message string) {
	if e.verbosity >= 1 {
		pterm.Printf("%s: %s\n", pterm.LightCyan(stage), message)
	}
}

func (e *CLIEmitter) EmitArtifact(path string, bytes int) {
	pterm.Printf("✓ Generated %s %s\n", path, pterm.Gray(fmt.Sprintf("(%d bytes)", bytes)))
}

func (e *CLIEmitter) EmitComplete(summary map[string]interface{}) {
	pterm.Success.Println("Declarations up to date")
	if e.verbosity >= 1 {
		for key, value := range summary {
			pterm.Printf("  %s: %v\n", key, value)
		}
	}
}

func (e *CLIEmitter) EmitError(stage string, err error) {
	pterm.Error.Printf("%s failed: %v\n", stage, err)
}

func (e *CLIEmitter) EmitInfo(message string) {
	pterm.Info.Println(message)
}

// JSONEmitter outputs structured JSON events, one per line
type JSONEmitter struct {
	encoder *json.Encoder
}

// NewJSONEmitter creates a JSON progress emitter writing to w
func NewJSONEmitter(w io.Writer) *JSONEmitter {
	return &JSONEmitter{encoder: json.NewEncoder(w)}
}

func (e *JSONEmitter) emit(eventType string, data map[string]interface{}) {
	_ = e.encoder.Encode(ProgressEvent{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	})
}

func (e *JSONEmitter) EmitStage(stage string, message string) {
	e.emit("stage", map[string]interface{}{"stage": stage, "message": message})
}

func (e *JSONEmitter) EmitArtifact(path string, bytes int) {
	e.emit("artifact", map[string]interface{}{"path": path, "bytes": bytes})
}

func (e *JSONEmitter) EmitComplete(summary map[string]interface{}) {
	e.emit("complete", summary)
}

func (e *JSONEmitter) EmitError(stage string, err error) {
	e.emit("error", map[string]interface{}{"stage": stage, "error": err.Error()})
}

func (e *JSONEmitter) EmitInfo(message string) {
	e.emit("info", map[string]interface{}{"message": message})
}
