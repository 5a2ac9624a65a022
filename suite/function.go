// SPDX-License-Identifier: MIT

// Package suite: deterministic benchmark assembly.
//
// New is the single dispatcher for the twenty-one deterministic
// benchmarks: it validates the request, pulls the published data from
// the store, and wires transform + landscape + bias (or a hybrid
// composer) into one evaluation closure. The closure captures only
// immutable state, so a Function is safe to share.

package suite

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cec2005/basefn"
	"github.com/katalvlaran/cec2005/hybrid"
	"github.com/katalvlaran/cec2005/vec"
)

// Operation tags for error wrapping.
const (
	opNew      = "New"
	opNewNoisy = "NewNoisy"
	opEvaluate = "Evaluate"
)

// suiteErrorf wraps an underlying sentinel with operation and id
// context.
func suiteErrorf(op string, id FuncID, err error) error {
	return fmt.Errorf("suite.%s: %s: %w", op, id, err)
}

// Bounds is the search-domain metadata of a benchmark. Unbounded
// benchmarks (F7, F25) carry only the documented initialization range.
type Bounds struct {
	Lower, Upper float64 // valid when Bounded
	Bounded      bool
	InitLower    float64 // initialization range (equals the bounds when Bounded)
	InitUpper    float64
}

// evalFn is the assembled evaluation closure of one benchmark.
type evalFn func(x []float64) (float64, error)

// Function is one deterministic CEC2005 benchmark, assembled once and
// evaluated arbitrarily often. Immutable; safe for concurrent use.
type Function struct {
	id   FuncID
	dim  int
	def  definition
	eval evalFn
}

// ID returns the benchmark identifier.
func (f *Function) ID() FuncID { return f.id }

// Dim returns the dimension every evaluation point must have.
func (f *Function) Dim() int { return f.dim }

// Name returns the published descriptive name.
func (f *Function) Name() string { return f.def.name }

// Bias returns the published fbias constant: the function value at the
// global optimum.
func (f *Function) Bias() float64 { return f.def.fbias }

// Bounds returns the search-domain metadata.
func (f *Function) Bounds() Bounds { return f.def.boundsView() }

// Evaluate computes the benchmark value at x.
//
// Errors: vec.ErrDimensionMismatch / vec.ErrNilMatrix for a malformed
// point, vec.ErrNaNInf for non-finite entries, hybrid.ErrNumericDegeneracy
// when a composition's weight sum collapses.
func (f *Function) Evaluate(x []float64) (float64, error) {
	return f.eval(x)
}

// New assembles the deterministic benchmark id at dimension dim from
// store-supplied data.
//
// Implementation:
//   - Stage 1 (Validate): id known, deterministic, dim > 0, store
//     non-nil.
//   - Stage 2 (Fetch): store.Params(id, dim); incomplete entries fail
//     with ErrMissingParams or the vec sentinels.
//   - Stage 3 (Assemble): route by id to the matching wiring; hybrid ids
//     construct their composer here, so fmax precompute happens exactly
//     once.
//
// Errors:
//   - ErrUnknownFunction, ErrStochastic, ErrBadDimension, ErrNilStore,
//     ErrMissingParams, plus whatever the store or the hybrid
//     constructor surfaces.
//
// Complexity:
//   - O(dim²) for single landscapes, O(K·dim²) for hybrids.
func New(id FuncID, dim int, store Store) (*Function, error) {
	if !id.Valid() {
		return nil, suiteErrorf(opNew, id, ErrUnknownFunction)
	}
	if id.Stochastic() {
		return nil, suiteErrorf(opNew, id, ErrStochastic)
	}
	if dim <= 0 {
		return nil, suiteErrorf(opNew, id, ErrBadDimension)
	}
	if store == nil {
		return nil, suiteErrorf(opNew, id, ErrNilStore)
	}

	p, err := store.Params(id, dim)
	if err != nil {
		return nil, suiteErrorf(opNew, id, err)
	}

	eval, err := assemble(id, dim, p)
	if err != nil {
		return nil, err
	}

	return &Function{id: id, dim: dim, def: defs[id], eval: eval}, nil
}

// assemble routes a deterministic id to its wiring.
func assemble(id FuncID, dim int, p Params) (evalFn, error) {
	switch id {
	case F1:
		return shifted(id, dim, p, basefn.Sphere)
	case F2:
		return shifted(id, dim, p, basefn.SchwefelDoubleSum)
	case F3:
		return shiftedRotated(id, dim, p, basefn.Elliptic)
	case F5:
		return schwefel26(id, dim, p)
	case F6:
		return shiftedToOnes(id, dim, p, basefn.Rosenbrock)
	case F7:
		return shiftedRotated(id, dim, p, basefn.Griewank)
	case F8:
		return shiftedRotated(id, dim, p, basefn.Ackley)
	case F9:
		return shifted(id, dim, p, basefn.Rastrigin)
	case F10:
		return shiftedRotated(id, dim, p, basefn.Rastrigin)
	case F11:
		return shiftedRotated(id, dim, p, basefn.Weierstrass)
	case F12:
		return schwefel213(id, dim, p)
	case F13:
		return shiftedToOnes(id, dim, p, basefn.ExpandedGriewankRosenbrock)
	case F14:
		return shiftedRotated(id, dim, p, basefn.ExpandedSchafferF6)
	case F15, F16, F18, F19, F20, F21, F22:
		return composed(id, dim, p)
	case F23:
		return composedNonCont(id, dim, p)
	default:
		// Unreachable from New; kept for assemble's own contract.
		return nil, suiteErrorf(opNew, id, ErrUnknownFunction)
	}
}

// validatePoint is the strict input policy shared by every assembled
// landscape: exact dimension, all entries finite.
func validatePoint(id FuncID, dim int, x []float64) error {
	if err := vec.ValidateVecLen(x, dim); err != nil {
		return suiteErrorf(opEvaluate, id, err)
	}
	if err := vec.ValidateFinite(x); err != nil {
		return suiteErrorf(opEvaluate, id, err)
	}

	return nil
}

// transform maps x into the benchmark frame: shift by the offset, then
// rotate when a matrix is present. This is the package's single home
// for the shift → rotate order.
func transform(x, offset []float64, rot *vec.Dense[float64]) ([]float64, error) {
	z, err := vec.Shift(x, offset)
	if err != nil {
		return nil, err
	}
	if rot == nil {
		return z, nil
	}

	return vec.Rotate(z, rot)
}

// requireOffset validates the store-supplied shift vector.
func requireOffset(op string, id FuncID, dim int, offset []float64) error {
	if offset == nil {
		return suiteErrorf(op, id, ErrMissingParams)
	}
	if err := vec.ValidateVecLen(offset, dim); err != nil {
		return suiteErrorf(op, id, err)
	}
	if err := vec.ValidateFinite(offset); err != nil {
		return suiteErrorf(op, id, err)
	}

	return nil
}

// shifted wires z = x − o: F1, F2, F9.
func shifted(id FuncID, dim int, p Params, fn basefn.Func) (evalFn, error) {
	if err := requireOffset(opNew, id, dim, p.Offset); err != nil {
		return nil, err
	}
	offset := cloneVec(p.Offset)
	bias := defs[id].fbias

	return func(x []float64) (float64, error) {
		if err := validatePoint(id, dim, x); err != nil {
			return 0, err
		}
		z, err := transform(x, offset, nil)
		if err != nil {
			return 0, suiteErrorf(opEvaluate, id, err)
		}

		return fn(z) + bias, nil
	}, nil
}

// shiftedRotated wires z = M·(x − o): F3, F7, F8, F10, F11, F14.
func shiftedRotated(id FuncID, dim int, p Params, fn basefn.Func) (evalFn, error) {
	if err := requireOffset(opNew, id, dim, p.Offset); err != nil {
		return nil, err
	}
	if err := vec.ValidateSquare(p.Rotation, dim); err != nil {
		return nil, suiteErrorf(opNew, id, err)
	}
	offset := cloneVec(p.Offset)
	rot := p.Rotation.Clone()
	bias := defs[id].fbias

	return func(x []float64) (float64, error) {
		if err := validatePoint(id, dim, x); err != nil {
			return 0, err
		}
		z, err := transform(x, offset, rot)
		if err != nil {
			return 0, suiteErrorf(opEvaluate, id, err)
		}

		return fn(z) + bias, nil
	}, nil
}

// shiftedToOnes wires z = x − o + 1, placing the Rosenbrock-family
// optimum (all-ones) on the published offset: F6, F13.
func shiftedToOnes(id FuncID, dim int, p Params, fn basefn.Func) (evalFn, error) {
	if err := requireOffset(opNew, id, dim, p.Offset); err != nil {
		return nil, err
	}
	// Folding the +1 into the offset keeps the hot path a single shift.
	offset := make([]float64, dim)
	for i, v := range p.Offset {
		offset[i] = v - 1
	}
	bias := defs[id].fbias

	return func(x []float64) (float64, error) {
		if err := validatePoint(id, dim, x); err != nil {
			return 0, err
		}
		z, err := transform(x, offset, nil)
		if err != nil {
			return 0, suiteErrorf(opEvaluate, id, err)
		}

		return fn(z) + bias, nil
	}, nil
}

// schwefel26 wires F5: max_i |A_i·x − B_i| with the optimum where
// A·o = B.
func schwefel26(id FuncID, dim int, p Params) (evalFn, error) {
	if err := vec.ValidateSquare(p.A, dim); err != nil {
		return nil, suiteErrorf(opNew, id, err)
	}
	if p.B == nil {
		return nil, suiteErrorf(opNew, id, ErrMissingParams)
	}
	if err := vec.ValidateVecLen(p.B, dim); err != nil {
		return nil, suiteErrorf(opNew, id, err)
	}
	a := p.A.Clone()
	b := cloneVec(p.B)
	bias := defs[id].fbias

	return func(x []float64) (float64, error) {
		if err := validatePoint(id, dim, x); err != nil {
			return 0, err
		}
		ax, err := vec.Rotate(x, a)
		if err != nil {
			return 0, suiteErrorf(opEvaluate, id, err)
		}
		var worst float64
		for i := range ax {
			if r := math.Abs(ax[i] - b[i]); r > worst {
				worst = r
			}
		}

		return worst + bias, nil
	}, nil
}

// schwefel213 wires F12: Σ_i (A_i − B_i(x))² with
// A_i = Σ_j (a_ij·sin α_j + b_ij·cos α_j) precomputed at assembly and
// B_i(x) the same form over x. The offset field carries α, which is also
// the global optimum.
func schwefel213(id FuncID, dim int, p Params) (evalFn, error) {
	if err := requireOffset(opNew, id, dim, p.Offset); err != nil {
		return nil, err
	}
	if err := vec.ValidateSquare(p.SchwefelA, dim); err != nil {
		return nil, suiteErrorf(opNew, id, err)
	}
	if err := vec.ValidateSquare(p.SchwefelB, dim); err != nil {
		return nil, suiteErrorf(opNew, id, err)
	}
	a := p.SchwefelA.Clone()
	b := p.SchwefelB.Clone()
	bias := defs[id].fbias

	// Precompute A_i from α once; it never changes per evaluation.
	alphaTarget, err := trigSum(a, b, p.Offset)
	if err != nil {
		return nil, suiteErrorf(opNew, id, err)
	}

	return func(x []float64) (float64, error) {
		if err := validatePoint(id, dim, x); err != nil {
			return 0, err
		}
		bx, err := trigSum(a, b, x)
		if err != nil {
			return 0, suiteErrorf(opEvaluate, id, err)
		}
		var sum float64
		for i := range bx {
			d := alphaTarget[i] - bx[i]
			sum += d * d
		}

		return sum + bias, nil
	}, nil
}

// trigSum returns t with t_i = Σ_j (a_ij·sin v_j + b_ij·cos v_j).
func trigSum(a, b *vec.Dense[float64], v []float64) ([]float64, error) {
	sins := make([]float64, len(v))
	coss := make([]float64, len(v))
	for j, e := range v {
		sins[j] = math.Sin(e)
		coss[j] = math.Cos(e)
	}
	as, err := vec.Rotate(sins, a)
	if err != nil {
		return nil, err
	}
	bc, err := vec.Rotate(coss, b)
	if err != nil {
		return nil, err
	}
	for i := range as {
		as[i] += bc[i]
	}

	return as, nil
}

// composed wires a deterministic hybrid composition: F15, F16, F18–F22.
func composed(id FuncID, dim int, p Params) (evalFn, error) {
	c, err := buildComposer(opNew, id, dim, p)
	if err != nil {
		return nil, err
	}
	bias := defs[id].fbias

	return func(x []float64) (float64, error) {
		v, err := c.Evaluate(x)
		if err != nil {
			return 0, suiteErrorf(opEvaluate, id, err)
		}

		return v + bias, nil
	}, nil
}

// composedNonCont wires F23: the evaluation point is snapped onto the
// half-unit grid relative to the first component's offset before the
// composition runs.
func composedNonCont(id FuncID, dim int, p Params) (evalFn, error) {
	c, err := buildComposer(opNew, id, dim, p)
	if err != nil {
		return nil, err
	}
	anchor := cloneVec(p.Offsets[0])
	bias := defs[id].fbias

	return func(x []float64) (float64, error) {
		if err := validatePoint(id, dim, x); err != nil {
			return 0, err
		}
		v, err := c.Evaluate(snapToward(x, anchor))
		if err != nil {
			return 0, suiteErrorf(opEvaluate, id, err)
		}

		return v + bias, nil
	}, nil
}

// snapToward maps x onto the half-unit grid wherever it is at least 0.5
// away from the anchor, coordinate by coordinate. Fresh slice; inputs
// untouched.
func snapToward(x, anchor []float64) []float64 {
	y := make([]float64, len(x))
	for j, v := range x {
		if math.Abs(v-anchor[j]) < 0.5 {
			y[j] = v
		} else {
			y[j] = basefn.RoundHalf(v)
		}
	}

	return y
}

// buildComposer turns store data plus the id's roster into a hybrid
// composer with deterministic components.
func buildComposer(op string, id FuncID, dim int, p Params) (*hybrid.Composer[float64], error) {
	specs, err := componentSpecs(op, id, dim, p)
	if err != nil {
		return nil, err
	}
	c, err := hybrid.New(specs, dim)
	if err != nil {
		return nil, suiteErrorf(op, id, err)
	}

	return c, nil
}

// componentSpecs expands the id's roster and the store data into the
// composer's component specs. A missing Rotations table (or a nil
// element) means identity rotation.
func componentSpecs(op string, id FuncID, dim int, p Params) ([]hybrid.ComponentSpec[float64], error) {
	h := hybridDefs[id]
	if len(p.Offsets) != hybrid.ComponentCount {
		return nil, suiteErrorf(op, id, ErrMissingParams)
	}
	if p.Rotations != nil && len(p.Rotations) != hybrid.ComponentCount {
		return nil, suiteErrorf(op, id, ErrMissingParams)
	}

	var eye *vec.Dense[float64]
	specs := make([]hybrid.ComponentSpec[float64], hybrid.ComponentCount)
	for i := range specs {
		rot := rotationAt(p, i)
		if rot == nil {
			if eye == nil {
				var err error
				eye, err = vec.Identity[float64](dim)
				if err != nil {
					return nil, suiteErrorf(op, id, err)
				}
			}
			rot = eye
		}
		specs[i] = hybrid.ComponentSpec[float64]{
			Offset:   p.Offsets[i],
			Rotation: rot,
			Fn:       hybrid.Func[float64](h.fns[i]),
			Lambda:   h.lambda[i],
			Sigma:    h.sigma[i],
			Bias:     componentBias(i),
		}
	}

	return specs, nil
}

// rotationAt returns the i-th rotation or nil when absent.
func rotationAt(p Params, i int) *vec.Dense[float64] {
	if p.Rotations == nil {
		return nil
	}

	return p.Rotations[i]
}

// cloneVec copies a float64 slice.
func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
