package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bartolsthoorn/gomosek/mosek"
)

var (
	solveSol      string
	solveWriteSol string
	solveParams   []string
)

var solveCmd = &cobra.Command{
	Use:   "solve FILE",
	Short: "Solve a problem file",
	Long: `Solve reads a problem in any format MOSEK understands (LP, MPS, OPF, PTF,
task), optimizes it and prints a solution summary.

Parameters are given by their MOSEK names and accept symbolic values.

Example:
  eitp solve lo1.lp
  eitp solve portfolio.ptf --sol itr --param MSK_IPAR_OPTIMIZER=MSK_OPTIMIZER_INTPNT
  eitp solve milo1.mps --write-solution milo1.sol`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveSol, "sol", "", "solution to report: itr, bas or itg (default: best available)")
	solveCmd.Flags().StringVar(&solveWriteSol, "write-solution", "", "write the reported solution to this file")
	solveCmd.Flags().StringArrayVar(&solveParams, "param", nil, "set a parameter, NAME=VALUE (repeatable)")
}

type param struct{ name, value string }

// parseParams splits NAME=VALUE arguments.
func parseParams(args []string) ([]param, error) {
	out := make([]param, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Errorf("invalid parameter %q (expected NAME=VALUE)", arg)
		}
		out = append(out, param{name: name, value: strings.TrimSpace(value)})
	}
	return out, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	file := args[0]
	params, err := parseParams(solveParams)
	if err != nil {
		return err
	}

	env, err := mosek.NewEnv()
	if err != nil {
		return err
	}
	defer env.Close()
	task, err := mosek.NewTask(env)
	if err != nil {
		return err
	}
	defer task.Close()

	logger := log.WithField("file", filepath.Base(file))
	if cfg.GetBool(cfgKeySolverLog) || flagVerbose {
		if err := task.SetLogger(logger); err != nil {
			return err
		}
	}
	if err := task.ReadData(file); err != nil {
		return err
	}
	if n := cfg.GetInt(cfgKeySolverThreads); n > 0 {
		if err := task.PutIntParam(mosek.IParNumThreads, n); err != nil {
			return err
		}
	}
	for _, p := range params {
		if err := task.SetParam(p.name, p.value); err != nil {
			return errors.Wrapf(err, "parameter %s", p.name)
		}
	}

	trm, err := task.Optimize()
	if err != nil {
		return err
	}
	logger.WithField("termination", trm).Debug("optimizer finished")
	if flagVerbose {
		if err := task.SolutionSummary(mosek.StreamMsg); err != nil {
			return err
		}
	}

	sol, err := reportedSolution(task, solveSol)
	if err != nil {
		return err
	}
	solution, err := task.GetSolution(sol)
	if err != nil {
		return err
	}
	solution.Termination = trm
	printSolution(cmd, task, solution)

	if solveWriteSol != "" {
		if err := task.WriteSolution(sol, solveWriteSol); err != nil {
			return err
		}
		logger.WithField("path", solveWriteSol).Info("solution written")
	}
	return nil
}

// reportedSolution returns the requested solution type or the first one
// defined among integer, basic and interior-point.
func reportedSolution(task *mosek.Task, name string) (mosek.SolType, error) {
	if name != "" {
		sol, err := mosek.ParseSolType(name)
		if err != nil {
			return 0, err
		}
		ok, err := task.SolutionDefined(sol)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, errors.Errorf("solution %s is not defined", sol)
		}
		return sol, nil
	}
	for _, sol := range []mosek.SolType{mosek.SolItg, mosek.SolBas, mosek.SolItr} {
		ok, err := task.SolutionDefined(sol)
		if err != nil {
			return 0, err
		}
		if ok {
			return sol, nil
		}
	}
	return 0, errors.New("optimizer returned no solution")
}

func printSolution(cmd *cobra.Command, task *mosek.Task, s *mosek.Solution) {
	out := cmd.OutOrStdout()
	status := s.SolSta.String()
	switch {
	case s.IsOptimal():
		status = color.GreenString(status)
	case s.IsInfeasible(), s.IsUnbounded():
		status = color.RedString(status)
	default:
		status = color.YellowString(status)
	}
	fmt.Fprintf(out, "termination   %s\n", s.Termination)
	fmt.Fprintf(out, "solution      %s\n", s.SolType)
	fmt.Fprintf(out, "problem       %s\n", s.ProSta)
	fmt.Fprintf(out, "status        %s\n", status)
	fmt.Fprintf(out, "objective     %.10g\n", s.Objective)
	if s.SolType != mosek.SolItg {
		fmt.Fprintf(out, "dual obj.     %.10g\n", s.DualObjective)
	}
	if !flagVerbose {
		return
	}
	for j, x := range s.ColValues {
		name, err := task.GetVarName(j)
		if err != nil || name == "" {
			name = fmt.Sprintf("x%d", j)
		}
		fmt.Fprintf(out, "  %-20s %.10g\n", name, x)
	}
}
