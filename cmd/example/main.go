package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/bartolsthoorn/gomosek/mosek"
)

func main() {
	// Minimize: x + y + t
	// Subject to: x + y >= 1, t >= ||(x, y)||, 0 <= x,y <= 10
	model := mosek.Model{
		Name:     "example",
		ColCosts: []float64{1.0, 1.0, 1.0},
		ColLower: []float64{0.0, 0.0, 0.0},
		ColUpper: []float64{10.0, 10.0, mosek.Inf()},
		ColNames: []string{"x", "y", "t"},
	}
	model.AddDenseRow(1.0, []float64{1.0, 1.0, 0.0}, mosek.Inf()) // x + y >= 1
	model.AddQuadraticCone(2, 0, 1)                               // t >= ||(x, y)||

	solution, err := model.Solve(mosek.WithConsoleOutput(false))
	if errors.Is(err, mosek.ErrNotLinked) {
		log.Fatal("build with -tags mosek to solve: ", err)
	}
	if err != nil {
		log.Fatal(err)
	}

	if solution.IsOptimal() {
		fmt.Printf("x = %.4f, y = %.4f, t = %.4f\n", solution.ColValues[0], solution.ColValues[1], solution.ColValues[2])
		fmt.Printf("Objective = %.4f\n", solution.Objective)
	} else {
		fmt.Println("status:", solution.SolSta, solution.ProSta)
	}
}
