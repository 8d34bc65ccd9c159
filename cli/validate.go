package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	validateSvc "go.driftline.io/pipeline/pkg/service/validate"
	"go.driftline.io/pipeline/utils"
)

func init() {
	Register("validate", Validate)
}

// Validate retrieves the command to check an ingested train/test pair
// against the schema and for distributional drift.
func Validate(_ context.Context, p *Provider) *cobra.Command {
	var trainPath, testPath string

	cmd := &cobra.Command{
		Use:     "validate",
		Short:   "Validate a train/test pair: schema column count and drift detection",
		Example: "driftline validate --train artifacts/.../train.csv --test artifacts/.../test.csv",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := validateSvc.New(p.Logger, p.Cfg.Validate, newRunPaths(p.Cfg))
			if err != nil {
				utils.LogError(p.Logger, err, "failed to construct the validation stage")
				return err
			}
			artifact, err := svc.Run(cmd.Context(), trainPath, testPath)
			if err != nil {
				utils.LogError(p.Logger, err, "validation stage failed")
				return err
			}
			p.Logger.Info("validation finished",
				zap.Bool("validationStatus", artifact.ValidationStatus),
				zap.Bool("schemaOk", artifact.SchemaOK),
				zap.Bool("driftOk", artifact.DriftOK),
				zap.String("driftReport", artifact.DriftReportPath))
			return nil
		},
	}
	cmd.Flags().StringVar(&trainPath, "train", "", "Path to the ingested train csv")
	cmd.Flags().StringVar(&testPath, "test", "", "Path to the ingested test csv")
	_ = cmd.MarkFlagRequired("train")
	_ = cmd.MarkFlagRequired("test")
	return cmd
}
