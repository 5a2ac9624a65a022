// SPDX-License-Identifier: MIT
// Package suite: the external parameter provider contract.
//
// The benchmark definitions are parameterized by published data: shift
// offsets, rotation matrices, and the auxiliary linear-system data of F5
// and F12. That data is external configuration — this package consumes
// it through the Store interface and never loads, caches, or mutates it
// itself.

package suite

import (
	"fmt"

	"github.com/katalvlaran/cec2005/vec"
)

// Params holds the data one benchmark instance needs at one dimension.
// Which fields are consulted depends on the id:
//
//   - Offset — the shift vector of every single-landscape benchmark
//     (F1–F14); for F12 it is the α vector that doubles as the optimum.
//   - Rotation — the rotation matrix of the rotated single landscapes
//     (F3, F7, F8, F10, F11, F14); nil means no rotation.
//   - Offsets / Rotations — per-component data for the hybrid
//     compositions (F15–F25), exactly hybrid.ComponentCount entries; a
//     nil Rotations slice (or a nil element) means identity.
//   - A, B — the linear system of F5 (Schwefel 2.6): A is dim×dim, B has
//     length dim.
//   - SchwefelA, SchwefelB — the a/b coefficient matrices of F12
//     (Schwefel 2.13), both dim×dim.
//
// Fields irrelevant to an id are ignored.
type Params struct {
	Offset   []float64
	Rotation *vec.Dense[float64]

	Offsets   [][]float64
	Rotations []*vec.Dense[float64]

	A *vec.Dense[float64]
	B []float64

	SchwefelA *vec.Dense[float64]
	SchwefelB *vec.Dense[float64]
}

// Store supplies benchmark parameters keyed by function id and
// dimension. Implementations must be safe for concurrent reads.
type Store interface {
	// Params returns the data for (id, dim) or ErrMissingParams (wrapped)
	// when the pair is not covered.
	Params(id FuncID, dim int) (Params, error)
}

// paramKey indexes a StaticStore entry.
type paramKey struct {
	id  FuncID
	dim int
}

// StaticStore is the in-memory Store implementation: entries are put in
// explicitly, typically once at program start from whatever source the
// caller owns. Reads after the populate phase are lock-free and safe to
// share across goroutines.
type StaticStore struct {
	entries map[paramKey]Params
}

// NewStaticStore returns an empty store.
func NewStaticStore() *StaticStore {
	return &StaticStore{entries: make(map[paramKey]Params)}
}

// Put records the parameters for (id, dim), replacing any previous
// entry. Not safe to call concurrently with Params.
func (s *StaticStore) Put(id FuncID, dim int, p Params) {
	s.entries[paramKey{id: id, dim: dim}] = p
}

// Params returns the stored entry for (id, dim).
func (s *StaticStore) Params(id FuncID, dim int) (Params, error) {
	p, ok := s.entries[paramKey{id: id, dim: dim}]
	if !ok {
		return Params{}, fmt.Errorf("suite.Params: %s dim %d: %w", id, dim, ErrMissingParams)
	}

	return p, nil
}
