package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/knn-hammer/pkg/config"
	"github.com/Aleph-Alpha/knn-hammer/pkg/hammer"
)

// NewRootCommand returns the knn-hammer command. Response bodies and the
// latency summary are written to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	var flags flagValues

	cmd := &cobra.Command{
		Use:   "knn-hammer <host> [<security_flag>] <case> [<case-args>...]",
		Short: "knn-hammer drives ingest, query and model load against a k-NN search cluster",
		Long:  longHelp(),
		Args:  cobra.MinimumNArgs(2),

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			target, inv, err := ParseInvocation(args)
			if err != nil {
				return usageError(cmd, err)
			}

			cfg, err := config.Load(flags.profile)
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &cfg)
			applyTarget(target, cmd.Flags(), &cfg)
			cfg.Resolve()
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := Execute(cmd.Context(), cfg, inv, out); err != nil {
				if hammer.IsUsageError(err) {
					return usageError(cmd, err)
				}
				return err
			}
			return nil
		},
	}

	cmd.SetOut(out)
	flags.register(cmd.Flags())
	return cmd
}

func usageError(cmd *cobra.Command, err error) error {
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	return err
}

func longHelp() string {
	var b strings.Builder
	b.WriteString("knn-hammer maps one case to a fixed sequence of REST calls against a\n")
	b.WriteString("cluster running the k-NN plugin.\n\n")
	b.WriteString("security_flag is optional: true, false, secure or insecure.\n\n")
	b.WriteString("Cases:\n")
	for _, name := range hammer.Cases() {
		usage, _ := hammer.Usage(name)
		fmt.Fprintf(&b, "  %-20s %s\n", name, usage)
	}
	return b.String()
}
