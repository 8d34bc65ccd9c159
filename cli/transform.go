package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	transformSvc "go.driftline.io/pipeline/pkg/service/transform"
	"go.driftline.io/pipeline/utils"
)

func init() {
	Register("transform", Transform)
}

// Transform retrieves the command to impute a validated train/test pair and
// persist the numeric matrices.
func Transform(_ context.Context, p *Provider) *cobra.Command {
	var trainPath, testPath string

	cmd := &cobra.Command{
		Use:     "transform",
		Short:   "Impute missing values and persist the transformed matrices",
		Example: "driftline transform --train artifacts/.../validated/train.csv --test artifacts/.../validated/test.csv",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := transformSvc.New(p.Logger, p.Cfg.Transform, newRunPaths(p.Cfg))
			artifact, err := svc.Run(cmd.Context(), trainPath, testPath)
			if err != nil {
				utils.LogError(p.Logger, err, "transformation stage failed")
				return err
			}
			p.Logger.Info("transformation finished",
				zap.String("train", artifact.TransformedTrainPath),
				zap.String("test", artifact.TransformedTestPath),
				zap.String("imputer", artifact.ImputerPath))
			return nil
		},
	}
	cmd.Flags().StringVar(&trainPath, "train", "", "Path to the validated train csv")
	cmd.Flags().StringVar(&testPath, "test", "", "Path to the validated test csv")
	_ = cmd.MarkFlagRequired("train")
	_ = cmd.MarkFlagRequired("test")
	return cmd
}
