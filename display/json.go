package display

import (
	"encoding/json"
	"os"
)

// MarshalJSON marshals JSON pretty-printed for terminals and compact when
// PROTODTS_COMPACT_JSON is set (for piping into line-oriented tools).
func MarshalJSON(v interface{}) ([]byte, error) {
	if os.Getenv("PROTODTS_COMPACT_JSON") != "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}
