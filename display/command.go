// Package display renders command results for humans (pterm) or machines
// (JSON), chosen per invocation with --json.
package display

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/teranos/protodts/errors"
)

// ShouldOutputJSON determines if a command should output JSON based on flags
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	// Local --json flag wins when explicitly set
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		v, _ := cmd.Flags().GetBool("json")
		return v
	}

	if f := cmd.Root().PersistentFlags().Lookup("json"); f != nil {
		v, _ := cmd.Root().PersistentFlags().GetBool("json")
		return v
	}
	return false
}

// OutputJSON marshals v with MarshalJSON and writes it to w
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
