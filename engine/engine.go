// Package engine implements the bidirectional edge-maintenance protocol of
// the social graph: follows, like/dislike reactions, post ownership and the
// comment reply tree. Every relationship is stored as a pair of mirrored id
// lists on two independently persisted documents, and the store offers no
// multi-document transactions, so keeping the two halves of each edge in
// agreement is the whole job of this package.
//
// Every operation follows the same shape: resolve both endpoint documents,
// check the current edge state, mutate both in-memory documents, then
// persist each with an independent save. Checks always run before the first
// mutation, so a rejected operation never leaves partial in-memory state. A
// failure between the two saves does leave the stored pair asymmetric; see
// AuditUserEdges for detection.
package engine

import (
	"github.com/tunemesh/tunemesh/store"
)

// Engine executes the edge-maintenance operations against a Store. Every
// mutation locks each document it touches, so two concurrent operations
// with any document in common are serialized and the in-process lost-update
// race is closed.
type Engine struct {
	store store.Store
	locks *keyedMutex
}

// New returns an Engine backed by the given store.
func New(s store.Store) *Engine {
	return &Engine{
		store: s,
		locks: newKeyedMutex(),
	}
}
