package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bartolsthoorn/gomosek/store"
)

var runsJSON bool

var runsCmd = &cobra.Command{
	Use:   "runs [ID|EXPERIMENT]",
	Short: "List recorded experiment runs",
	Long: `Runs lists the experiment runs of the ledger. With a run ID the run is
shown in full; with an experiment name (experiment1, experiment2) its latest
run is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&runsJSON, "json", false, "output as JSON")
}

func runRuns(cmd *cobra.Command, args []string) error {
	st, err := store.Open(storePath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		var run *store.Run
		if id, perr := uuid.Parse(args[0]); perr == nil {
			run, err = st.Get(id)
		} else {
			run, err = st.Latest(args[0])
		}
		if err == store.ErrNotFound {
			return fmt.Errorf("no run %q", args[0])
		}
		if err != nil {
			return err
		}
		if runsJSON {
			return writeJSON(out, run)
		}
		showRun(out, run)
		return nil
	}

	runs, err := st.List()
	if err != nil {
		return err
	}
	if runsJSON {
		return writeJSON(out, runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs recorded")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EXPERIMENT\tSEQ\tID\tSTARTED\tDURATION\tFILES")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%d\n",
			r.Experiment, r.Sequence, r.ID, r.StartedAt.Local().Format(time.DateTime), duration(r), len(r.Files))
	}
	return w.Flush()
}

func duration(r *store.Run) string {
	if !r.Finished() {
		return color.YellowString("running")
	}
	return r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String()
}

func showRun(out io.Writer, r *store.Run) {
	fmt.Fprintf(out, "%s #%d  %s\n", color.CyanString(r.Experiment), r.Sequence, r.ID)
	fmt.Fprintf(out, "started   %s\n", r.StartedAt.Local().Format(time.DateTime))
	fmt.Fprintf(out, "duration  %s\n", duration(r))

	keys := make([]string, 0, len(r.Parameters))
	for k := range r.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(out, "parameters")
	for _, k := range keys {
		fmt.Fprintf(out, "  %-18s %v\n", k, r.Parameters[k])
	}
	if len(r.Files) > 0 {
		fmt.Fprintf(out, "files\n  %s\n", strings.Join(r.Files, "\n  "))
	}
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
