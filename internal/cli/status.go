package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/binfetch/pkg/fetcher"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether the configured artifact is installed",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	target := cfg.ToTarget()
	probe := target.ProbePath()
	if _, err := os.Stat(probe); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(cmd.OutOrStdout(), "missing: %s\n", probe)
			return nil
		}
		return fmt.Errorf("could not check %s: %w", probe, err)
	}

	// The probe alone is not enough: an older recorded version means the next
	// ensure run would refetch, so report that instead of "installed".
	if !fetcher.Installed(target) {
		fmt.Fprintf(cmd.OutOrStdout(), "outdated: %s (want %s)\n", probe, target.Version)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "installed: %s\n", probe)
	return nil
}
