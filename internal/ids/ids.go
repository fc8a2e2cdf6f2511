// Package ids implements the document-lifetime node id generator.
//
// Ids only need to be unique within one document's lifetime and are never
// compared across process boundaries, so a process-local monotonic
// counter prefixed with a per-document nonce is sufficient (see
// spec §9 "Id generation").
package ids

import (
	"fmt"
	"sync/atomic"
)

// Generator produces unique, opaque node ids for a single document.
type Generator struct {
	nonce   string
	counter uint64
}

// NewGenerator creates a Generator for one document, tagging every id it
// produces with nonce so ids minted by different in-memory documents never
// collide if their trees are ever merged.
func NewGenerator(nonce string) *Generator {
	return &Generator{nonce: nonce}
}

// Next returns the next id from the generator.
func (g *Generator) Next() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.nonce == "" {
		return fmt.Sprintf("n%d", n)
	}
	return fmt.Sprintf("%s-n%d", g.nonce, n)
}
