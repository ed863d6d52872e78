package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vexpr/internal/demo"
)

var rootCmd = newRootCmd()

// newRootCmd builds the command tree; tests build their own copy.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vexpr",
		Short: "Compare eager and lazy fixed-size vector addition",
		Long: `vexpr runs fixed scenarios: eager vector addition, lazy expression
evaluation and a run-time vs compile-time dispatch contrast.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runnerFor(cmd).All()
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Log scenario progress at debug level to stderr")

	root.AddCommand(
		scenarioCmd("eager", "Add three zero vectors eagerly", func(r *demo.Runner) error { return r.Eager() }),
		scenarioCmd("lazy", "Build and materialize lazy sum expressions", func(r *demo.Runner) error { return r.Lazy() }),
		scenarioCmd("dispatch", "Invoke variants via dynamic and static dispatch", func(r *demo.Runner) error { return r.Dispatch() }),
	)

	return root
}

func scenarioCmd(use, short string, run func(*demo.Runner) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(runnerFor(cmd))
		},
	}
}

// runnerFor wires the command's output streams and --verbose flag.
func runnerFor(cmd *cobra.Command) *demo.Runner {
	verbose, _ := cmd.Flags().GetBool("verbose")

	return demo.NewRunner(cmd.OutOrStdout(), demo.NewLogger(cmd.ErrOrStderr(), verbose))
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
