// Package typegen drives declaration generation from a loaded schema.
//
// # Architecture
//
// Generation is split in two layers:
//  1. Passes (see typescript/) turn a domain list into the text of one artifact
//  2. The driver in this package runs passes in order and persists their output
//
// Passes never share state. Each one derives names through typegen/util and
// builds its text in its own emitter, so running them twice over the same
// domains yields byte-identical artifacts. That property is what lets
// `protodts check` compare a fresh generation against committed files.
package typegen

import "github.com/teranos/protodts/schema"

// Pass is one complete traversal of the domain list producing one artifact.
type Pass interface {
	// Name identifies the pass in logs ("protocol", "mapping", "api")
	Name() string

	// FileName is the artifact's file name relative to the output directory
	FileName() string

	// Emit renders the artifact for domains
	Emit(domains []schema.Domain) string
}

// Artifact is the in-memory output of one pass.
type Artifact struct {
	Pass     string
	FileName string
	Content  string
}

// Render runs passes in order without touching the filesystem.
func Render(domains []schema.Domain, passes []Pass) []Artifact {
	artifacts := make([]Artifact, 0, len(passes))
	for _, p := range passes {
		artifacts = append(artifacts, Artifact{
			Pass:     p.Name(),
			FileName: p.FileName(),
			Content:  p.Emit(domains),
		})
	}
	return artifacts
}
