// Package mosek provides Go bindings for the MOSEK optimization suite.
//
// MOSEK solves linear, conic (quadratic, power, exponential and
// semidefinite) and mixed-integer problems. This package wraps the task
// oriented C API of MOSEK 10: an Env owns license state, a Task owns one
// problem together with its solutions, parameters and output streams.
//
// # Building
//
// The native binding is compiled only with the mosek build tag. MOSEK is
// not redistributable, so headers and libraries are found through the
// usual cgo variables:
//
//	export CGO_CFLAGS="-I$MOSEK_HOME/h"
//	export CGO_LDFLAGS="-L$MOSEK_HOME/bin -Wl,-rpath,$MOSEK_HOME/bin"
//	go build -tags mosek ./...
//
// Without the tag the package still compiles. Enumerations, errors and
// model assembly work as usual, while NewEnv and NewTask report
// ErrNotLinked.
//
// # High-Level API Example
//
// The high-level API uses the Model struct to define optimization problems:
//
//	model := mosek.Model{
//		ColCosts: []float64{1.0, 1.0},
//		ColLower: []float64{0.0, 0.0},
//		ColUpper: []float64{10.0, 10.0},
//	}
//	model.AddDenseRow(1.0, []float64{1.0, 1.0}, 5.0) // 1 <= x + y <= 5
//
//	solution, err := model.Solve()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Optimal values:", solution.ColValues)
//
// # Low-Level API Example
//
// The low-level API mirrors the C functions one to one:
//
//	task, err := mosek.NewTask(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer task.Close()
//
//	task.AppendVars(2)
//	task.PutCSlice(0, 2, []float64{1, 1})
//	// ... bounds and constraints
//	trm, err := task.Optimize()
//
// # Concurrency
//
// Env and Task values are not safe for concurrent use. Solve independent
// tasks in parallel with Env.OptimizeBatch or use one task per goroutine.
package mosek

// Infinity is the magnitude MOSEK uses for an absent bound.
const Infinity = 1.0e30
