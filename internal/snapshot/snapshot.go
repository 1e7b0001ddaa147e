// Package snapshot persists the result of an analysis run so that tooling
// can answer queries without re-resolving an unchanged design. A snapshot
// records the library names, the diagnostics, and every resolved
// reference pair, keyed by a digest over the file contents.
package snapshot

import (
	"crypto/sha256"

	"govhdl/internal/ast"
	"govhdl/internal/diag"
	"govhdl/internal/search"
	"govhdl/internal/sema"
	"govhdl/internal/source"
)

// Increment when the Payload format changes.
const schemaVersion uint16 = 1

// Digest identifies one concrete set of file contents.
type Digest = [sha256.Size]byte

// DiagRecord is one flattened diagnostic.
type DiagRecord struct {
	Severity uint8
	Code     uint16
	Message  string
	File     uint32
	Start    uint32
	End      uint32
}

// RefRecord is one resolved reference: the span of the name occurrence and
// the span of the declaration it binds to.
type RefRecord struct {
	File      uint32
	Start     uint32
	End       uint32
	DeclFile  uint32
	DeclStart uint32
	DeclEnd   uint32
}

// Payload stores one analysis run for fast reload.
type Payload struct {
	Schema      uint16
	Libraries   []string
	Diagnostics []DiagRecord
	References  []RefRecord
	ContentHash Digest
}

// Capture flattens an analyzed root into a payload.
func Capture(root *sema.DesignRoot, fset *source.FileSet, bag *diag.Bag) *Payload {
	p := &Payload{
		Schema:      schemaVersion,
		ContentHash: ContentDigest(fset),
	}

	for _, lib := range root.Libraries() {
		p.Libraries = append(p.Libraries, lib.Name)
		for _, unit := range lib.Units() {
			search.Unit[struct{}](unit, &refCollector{payload: p})
		}
	}

	for _, d := range bag.Items() {
		p.Diagnostics = append(p.Diagnostics, DiagRecord{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			File:     uint32(d.Primary.File),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	return p
}

// ContentDigest hashes every file's content hash in file order. Any edit to
// any file changes the digest.
func ContentDigest(fset *source.FileSet) Digest {
	h := sha256.New()
	for id := 0; id < fset.Len(); id++ {
		hash := fset.Get(source.FileID(id)).Hash
		h.Write(hash[:])
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

type refCollector struct {
	search.NopSearcher[struct{}]
	payload *Payload
}

func (c *refCollector) SearchDesignatorRef(ref *ast.Ref) search.State[struct{}] {
	if decl, ok := ref.Reference(); ok {
		c.payload.References = append(c.payload.References, RefRecord{
			File:      uint32(ref.Span.File),
			Start:     ref.Span.Start,
			End:       ref.Span.End,
			DeclFile:  uint32(decl.File),
			DeclStart: decl.Start,
			DeclEnd:   decl.End,
		})
	}
	return search.NotFinished[struct{}]()
}
