package cli

import (
	"github.com/spf13/cobra"

	"github.com/glorpus-work/binfetch/pkg/fetcher"
)

// NewEnsureCmd creates the ensure command.
func NewEnsureCmd() *cobra.Command {
	var (
		force   bool
		tempDir string
	)

	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Ensure the configured artifact is present",
		Long: `Check whether the configured binary artifact is already installed in the
host's asset tree, and if not, resolve a download URL, fetch the archive and
extract it into place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnsure(cmd, force, tempDir)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Refetch even if the artifact is already present")
	cmd.Flags().StringVar(&tempDir, "temp-dir", "", "Directory for the transient archive (defaults to the OS temp dir)")

	return cmd
}

func runEnsure(cmd *cobra.Command, force bool, tempDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if tempDir == "" {
		tempDir = cfg.Settings.TempDir
	}

	f := buildFetcher(cfg)
	return f.EnsureArtifact(cmd.Context(), cfg.ToTarget(), fetcher.Options{
		TempDir: tempDir,
		Force:   force,
	})
}
