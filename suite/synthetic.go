// SPDX-License-Identifier: MIT

// Package suite: reproducible synthetic parameter generation.
//
// The published CEC2005 data files cover dimensions 2, 10, 30, and 50.
// For every other dimension — and for tests that want self-contained
// data — SyntheticStore generates a full parameter set from a seeded
// source: offsets inside the initialization range, Haar-uniform
// orthogonal rotations, and consistent F5/F12 linear-system data whose
// global optimum lands exactly on the generated offset.

package suite

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/cec2005/randx"
	"github.com/katalvlaran/cec2005/vec"
)

// rotatedSingles are the single-landscape ids that carry a rotation.
var rotatedSingles = map[FuncID]bool{
	F3: true, F7: true, F8: true, F10: true, F11: true, F14: true,
}

// SyntheticStore returns a StaticStore covering all twenty-five
// benchmarks at dimension dim, generated deterministically from src
// (nil falls back to the seed-zero stream).
//
// The generated data keeps the published optima structure: every
// benchmark's global optimum sits on its generated offset (α for F12,
// the first component offset for hybrids) with value fbias.
//
// Complexity: O(funcCount·K·dim³) dominated by rotation generation.
func SyntheticStore(dim int, src *rand.Rand) (*StaticStore, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("suite.SyntheticStore: %w", ErrBadDimension)
	}
	if src == nil {
		src = randx.FromSeed(0)
	}

	s := NewStaticStore()
	for id := F1; id <= F25; id++ {
		p, err := syntheticParams(id, dim, src)
		if err != nil {
			return nil, fmt.Errorf("suite.SyntheticStore: %s: %w", id, err)
		}
		s.Put(id, dim, p)
	}

	return s, nil
}

// syntheticParams generates one benchmark's data.
func syntheticParams(id FuncID, dim int, src *rand.Rand) (Params, error) {
	if _, ok := hybridDefs[id]; ok {
		return syntheticHybrid(id, dim, src)
	}

	switch id {
	case F5:
		return syntheticSchwefel26(dim, src)
	case F12:
		return syntheticSchwefel213(dim, src)
	default:
		p := Params{Offset: uniformVec(dim, src, defs[id].boundsView())}
		if rotatedSingles[id] {
			rot, err := vec.RandomOrthogonal(dim, src)
			if err != nil {
				return Params{}, err
			}
			p.Rotation = rot
		}

		return p, nil
	}
}

// syntheticHybrid generates ten component offsets and, for the rotated
// compositions, ten orthogonal matrices. F15 is the unrotated hybrid
// and keeps a nil Rotations table (identity).
func syntheticHybrid(id FuncID, dim int, src *rand.Rand) (Params, error) {
	const k = 10
	b := defs[id].boundsView()

	p := Params{Offsets: make([][]float64, k)}
	for i := range p.Offsets {
		p.Offsets[i] = uniformVec(dim, src, b)
	}
	if id == F15 {
		return p, nil
	}

	p.Rotations = make([]*vec.Dense[float64], k)
	for i := range p.Rotations {
		rot, err := vec.RandomOrthogonal(dim, src)
		if err != nil {
			return Params{}, err
		}
		p.Rotations[i] = rot
	}

	return p, nil
}

// syntheticSchwefel26 generates F5's linear system: integer A entries in
// [-500, 500] and B = A·o, putting the optimum exactly on o.
func syntheticSchwefel26(dim int, src *rand.Rand) (Params, error) {
	offset := uniformVec(dim, src, defs[F5].boundsView())

	rows := make([][]float64, dim)
	for i := range rows {
		rows[i] = make([]float64, dim)
		for j := range rows[i] {
			rows[i][j] = float64(src.Intn(1001) - 500)
		}
	}
	a, err := vec.FromRows(rows)
	if err != nil {
		return Params{}, err
	}
	b, err := vec.Rotate(offset, a)
	if err != nil {
		return Params{}, err
	}

	return Params{Offset: offset, A: a, B: b}, nil
}

// syntheticSchwefel213 generates F12's data: integer a/b entries in
// [-100, 100] and α uniform in [−π, π]. α doubles as the optimum and is
// stored in the Offset field.
func syntheticSchwefel213(dim int, src *rand.Rand) (Params, error) {
	intMatrix := func() [][]float64 {
		rows := make([][]float64, dim)
		for i := range rows {
			rows[i] = make([]float64, dim)
			for j := range rows[i] {
				rows[i][j] = float64(src.Intn(201) - 100)
			}
		}

		return rows
	}

	a, err := vec.FromRows(intMatrix())
	if err != nil {
		return Params{}, err
	}
	b, err := vec.FromRows(intMatrix())
	if err != nil {
		return Params{}, err
	}

	alpha := make([]float64, dim)
	for i := range alpha {
		alpha[i] = (2*src.Float64() - 1) * math.Pi
	}

	return Params{Offset: alpha, SchwefelA: a, SchwefelB: b}, nil
}

// uniformVec draws a vector uniformly from the initialization range.
func uniformVec(dim int, src *rand.Rand, b Bounds) []float64 {
	lo, hi := b.InitLower, b.InitUpper
	v := make([]float64, dim)
	for i := range v {
		v[i] = lo + src.Float64()*(hi-lo)
	}

	return v
}
