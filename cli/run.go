package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go.driftline.io/pipeline/pkg/models"
	"go.driftline.io/pipeline/pkg/platform/mgo"
	ingestSvc "go.driftline.io/pipeline/pkg/service/ingest"
	transformSvc "go.driftline.io/pipeline/pkg/service/transform"
	validateSvc "go.driftline.io/pipeline/pkg/service/validate"
	"go.driftline.io/pipeline/utils"
)

func init() {
	Register("run", Run)
}

// Run retrieves the command to execute the whole pipeline: ingest, validate
// and transform under one artifact directory. The first failing stage aborts
// the run.
func Run(_ context.Context, p *Provider) *cobra.Command {
	return &cobra.Command{
		Use:     "run",
		Short:   "Run the full data-preparation pipeline",
		Example: "driftline run --mongo-uri mongodb://localhost:27017",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			paths := newRunPaths(p.Cfg)
			pipeline := models.PipelineArtifact{
				RunID:  uuid.NewString(),
				RunDir: paths.RunDir,
			}
			logger := p.Logger.With(zap.String("runId", pipeline.RunID))
			logger.Info("starting the pipeline run", zap.String("runDir", paths.RunDir))

			client, store, err := connectStore(ctx, p)
			if err != nil {
				utils.LogError(logger, err, "failed to connect to the document store")
				return err
			}
			defer mgo.Disconnect(ctx, logger, client)

			ingestion, err := ingestSvc.New(logger, store, p.Cfg.Ingest, paths).Run(ctx)
			if err != nil {
				utils.LogError(logger, err, "ingestion stage failed")
				return err
			}
			pipeline.Ingestion = *ingestion

			validator, err := validateSvc.New(logger, p.Cfg.Validate, paths)
			if err != nil {
				utils.LogError(logger, err, "failed to construct the validation stage")
				return err
			}
			validation, err := validator.Run(ctx, ingestion.TrainPath, ingestion.TestPath)
			if err != nil {
				utils.LogError(logger, err, "validation stage failed")
				return err
			}
			pipeline.Validation = *validation

			transformation, err := transformSvc.New(logger, p.Cfg.Transform, paths).
				Run(ctx, validation.ValidTrainPath, validation.ValidTestPath)
			if err != nil {
				utils.LogError(logger, err, "transformation stage failed")
				return err
			}
			pipeline.Transformation = *transformation

			logger.Info("pipeline run finished",
				zap.Bool("validationStatus", validation.ValidationStatus),
				zap.Bool("schemaOk", validation.SchemaOK),
				zap.Bool("driftOk", validation.DriftOK),
				zap.String("runDir", pipeline.RunDir))
			printVerdict(validation)
			return nil
		},
	}
}

func printVerdict(artifact *models.ValidationArtifact) {
	if artifact.ValidationStatus {
		color.Green("✔ no drift detected between the train and test splits")
	} else {
		color.Red("✘ drift detected, inspect the report: %s", artifact.DriftReportPath)
	}
	if !artifact.SchemaOK {
		color.Yellow("! column count does not match the declared schema")
	}
}
