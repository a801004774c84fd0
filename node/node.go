// Package node implements the compressed-vector node external collaborator:
// it holds the record schema and a back-reference to the destination host
// file, and receives the record count and section start logical offset a
// writer records at close for later reader discovery.
//
// Modeled as shared ownership of the node with a weak/back reference from
// the node to the file (lookup only, not ownership) — the file holds only a
// live-writer counter, never a reference to the node or writer (spec.md §9,
// "Shared references with back-pointer").
package node

import (
	"fmt"

	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/hostfile"
	"github.com/brineflow/cvector/proto"
)

// CompressedVectorNode is the writer's binding point: it carries the
// prototype a writer validates its buffers against, a reference to the host
// file a writer allocates packets in, and — once a writer has closed — the
// section's record count and logical start.
type CompressedVectorNode struct {
	prototype *proto.Prototype
	file      hostfile.File

	bound                     bool
	recordCount               int64
	binarySectionLogicalStart int64
}

// NewNode creates a node over prototype backed by file. Neither prototype
// nor file may be nil.
func NewNode(prototype *proto.Prototype, file hostfile.File) (*CompressedVectorNode, error) {
	if prototype == nil || file == nil {
		return nil, fmt.Errorf("%w: node requires a non-nil prototype and file", errs.ErrBadAPIArgument)
	}

	return &CompressedVectorNode{prototype: prototype, file: file}, nil
}

// Prototype returns the node's schema tree.
func (n *CompressedVectorNode) Prototype() *proto.Prototype {
	return n.prototype
}

// File returns the node's destination host file.
func (n *CompressedVectorNode) File() hostfile.File {
	return n.file
}

// Bind checks that this node can take a new writer. It fails with
// errs.ErrAlreadyWritten if a writer has already closed against this node —
// resolving spec.md §9's open question on detecting repeated writes to an
// already-written compressed vector. Bind records nothing itself: a second
// writer constructed while the first is still open passes the check.
func (n *CompressedVectorNode) Bind() error {
	if n.bound {
		return fmt.Errorf("%w: node already has a binary section recorded", errs.ErrAlreadyWritten)
	}

	return nil
}

// SetRecordCount records the total number of records a closed writer
// ingested.
func (n *CompressedVectorNode) SetRecordCount(count int64) {
	n.recordCount = count
}

// RecordCount returns the record count recorded by the last writer to close
// against this node, or 0 if none has.
func (n *CompressedVectorNode) RecordCount() int64 {
	return n.recordCount
}

// SetBinarySectionLogicalStart records the section header's logical offset
// and marks the node as bound, so a subsequent writer construction against
// it fails via Bind.
func (n *CompressedVectorNode) SetBinarySectionLogicalStart(offset int64) {
	n.binarySectionLogicalStart = offset
	n.bound = true
}

// BinarySectionLogicalStart returns the section header's logical offset, or
// 0 if no writer has closed against this node yet.
func (n *CompressedVectorNode) BinarySectionLogicalStart() int64 {
	return n.binarySectionLogicalStart
}
