package suite_test

import (
	"fmt"

	"github.com/katalvlaran/cec2005/randx"
	"github.com/katalvlaran/cec2005/suite"
)

// ExampleNew assembles the shifted sphere from explicit data and
// evaluates it at its optimum and one step away.
func ExampleNew() {
	const dim = 3

	// 1) The caller owns the parameter data; the library only consumes it.
	store := suite.NewStaticStore()
	store.Put(suite.F1, dim, suite.Params{Offset: []float64{1, 2, 3}})

	// 2) Assemble once, evaluate many times.
	f, err := suite.New(suite.F1, dim, store)
	if err != nil {
		fmt.Println("assembly failed:", err)

		return
	}

	atOptimum, _ := f.Evaluate([]float64{1, 2, 3})
	oneAway, _ := f.Evaluate([]float64{2, 2, 3})
	fmt.Println(f.ID(), f.Name())
	fmt.Printf("at optimum: %.0f\n", atOptimum)
	fmt.Printf("one away:   %.0f\n", oneAway)

	// Output:
	// F1 Shifted Sphere Function
	// at optimum: -450
	// one away:   -449
}

// ExampleNewNoisy shows the stochastic surface: evaluation yields a
// pending draw, and identical source states realize identical values.
func ExampleNewNoisy() {
	const dim = 5

	store, err := suite.SyntheticStore(dim, randx.FromSeed(2005))
	if err != nil {
		fmt.Println("store failed:", err)

		return
	}

	f, err := suite.NewNoisy(suite.F4, dim, store, nil)
	if err != nil {
		fmt.Println("assembly failed:", err)

		return
	}

	x := []float64{1, 2, 3, 4, 5}
	d, _ := f.Evaluate(x)
	a := d.Resolve(randx.FromSeed(7))
	b := d.Resolve(randx.FromSeed(7))
	fmt.Println(f.ID(), "reproducible:", a == b)

	// Output:
	// F4 reproducible: true
}

// ExampleEvaluateAll fans a small population out over a worker pool.
func ExampleEvaluateAll() {
	const dim = 2

	store := suite.NewStaticStore()
	store.Put(suite.F1, dim, suite.Params{Offset: []float64{0, 0}})
	f, _ := suite.New(suite.F1, dim, store)

	points := [][]float64{{0, 0}, {1, 0}, {1, 1}, {2, 2}}
	values, err := suite.EvaluateAll(f, points, 2)
	if err != nil {
		fmt.Println("batch failed:", err)

		return
	}
	for i, v := range values {
		fmt.Printf("f(points[%d]) = %.0f\n", i, v)
	}

	// Output:
	// f(points[0]) = -450
	// f(points[1]) = -449
	// f(points[2]) = -448
	// f(points[3]) = -442
}
