package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go.driftline.io/pipeline/config"
	"go.driftline.io/pipeline/utils"
)

func init() {
	Register("generate-config", GenerateConfig)
}

// GenerateConfig retrieves the command to write a starter config file.
func GenerateConfig(_ context.Context, p *Provider) *cobra.Command {
	var targetDir string

	cmd := &cobra.Command{
		Use:     "generate-config",
		Short:   "Generate a driftline configuration file with the defaults",
		Example: "driftline generate-config -p .",
		RunE: func(_ *cobra.Command, _ []string) error {
			target := filepath.Join(targetDir, defaultConfigFile)
			if utils.CheckFileExists(target) {
				p.Logger.Warn("config file already exists, not overwriting", zap.String("path", target))
				return nil
			}
			if err := os.WriteFile(target, []byte(config.GetDefaultConfig()), 0o644); err != nil {
				utils.LogError(p.Logger, err, "failed to write the config file", zap.String("path", target))
				return err
			}
			p.Logger.Info("generated the config file", zap.String("path", target))
			return nil
		},
	}
	cmd.Flags().StringVarP(&targetDir, "path", "p", ".", "Directory to place the generated config file in")
	return cmd
}
