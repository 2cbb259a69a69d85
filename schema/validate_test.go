package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/protodts/errors"
)

func TestValidate(t *testing.T) {
	network := Domain{
		Name:  "Network",
		Types: []TypeDef{{ID: "LoaderId", Shape: Primitive{Kind: KindString}}},
	}

	tests := []struct {
		name     string
		domain   Domain
		problems int
	}{
		{
			name: "valid",
			domain: Domain{
				Name:  "Page",
				Types: []TypeDef{{ID: "FrameId", Shape: Primitive{Kind: KindString}}},
				Commands: []Command{{
					Name:       "navigate",
					Parameters: []PropertyDef{{Name: "frameId", Shape: Reference{Target: "FrameId"}}},
					Returns:    []PropertyDef{{Name: "loaderId", Shape: Reference{Target: "Network.LoaderId"}}},
				}},
			},
		},
		{
			name: "unresolved bare reference",
			domain: Domain{
				Name:   "Page",
				Events: []Event{{Name: "frameNavigated", Parameters: []PropertyDef{{Name: "frame", Shape: Reference{Target: "Frame"}}}}},
			},
			problems: 1,
		},
		{
			name: "unresolved qualified reference and unknown kind",
			domain: Domain{
				Name: "Page",
				Types: []TypeDef{{ID: "Frame", Shape: Object{Properties: []PropertyDef{
					{Name: "loader", Shape: Reference{Target: "Network.RequestId"}},
					{Name: "blob", Shape: Array{Items: Primitive{Kind: "binary"}}},
				}}}},
			},
			problems: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(New(&Document{Domains: []Domain{network, tt.domain}}))
			if tt.problems == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidSchema(err))
			assert.Len(t, errors.GetAllDetails(err), tt.problems)
		})
	}
}
