package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go.driftline.io/pipeline/pkg/platform/mgo"
	ingestSvc "go.driftline.io/pipeline/pkg/service/ingest"
	"go.driftline.io/pipeline/utils"
)

func init() {
	Register("ingest", Ingest)
}

// Ingest retrieves the command to export the source collection and split it
// into train/test files.
func Ingest(_ context.Context, p *Provider) *cobra.Command {
	return &cobra.Command{
		Use:     "ingest",
		Short:   "Export the source collection into the feature store and split it",
		Example: "driftline ingest --mongo-uri mongodb://localhost:27017 --mongo-collection NetworkData",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, store, err := connectStore(ctx, p)
			if err != nil {
				utils.LogError(p.Logger, err, "failed to connect to the document store")
				return err
			}
			defer mgo.Disconnect(ctx, p.Logger, client)

			svc := ingestSvc.New(p.Logger, store, p.Cfg.Ingest, newRunPaths(p.Cfg))
			artifact, err := svc.Run(ctx)
			if err != nil {
				utils.LogError(p.Logger, err, "ingestion stage failed")
				return err
			}
			p.Logger.Info("ingestion finished",
				zap.String("featureStore", artifact.FeatureStorePath),
				zap.String("train", artifact.TrainPath),
				zap.String("test", artifact.TestPath))
			return nil
		},
	}
}
