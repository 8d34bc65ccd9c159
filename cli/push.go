package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"go.driftline.io/pipeline/pkg/platform/mgo"
	"go.driftline.io/pipeline/pkg/platform/tabular"
	"go.driftline.io/pipeline/utils"
)

func init() {
	Register("push", Push)
}

// Push retrieves the command to seed the source collection from a local csv
// file.
func Push(_ context.Context, p *Provider) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:     "push",
		Short:   "Insert the rows of a csv file into the source collection",
		Example: "driftline push --file Network_Data/phishingData.csv",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			frame, err := tabular.ReadCSV(filePath)
			if err != nil {
				utils.LogError(p.Logger, err, "failed to read the csv file", zap.String("path", filePath))
				return err
			}

			client, store, err := connectStore(ctx, p)
			if err != nil {
				utils.LogError(p.Logger, err, "failed to connect to the document store")
				return err
			}
			defer mgo.Disconnect(ctx, p.Logger, client)

			inserted, err := store.InsertMany(ctx, frameToDocuments(frame))
			if err != nil {
				utils.LogError(p.Logger, err, "failed to insert the records")
				return err
			}
			p.Logger.Info("inserted the records",
				zap.Int("count", inserted),
				zap.String("database", p.Cfg.Mongo.Database),
				zap.String("collection", p.Cfg.Mongo.Collection))
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "", "Path to the csv file to push")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// frameToDocuments converts csv rows into ordered documents, keeping numeric
// cells numeric so the collection round-trips through ingestion.
func frameToDocuments(frame *tabular.Frame) []any {
	columns := frame.Columns()
	docs := make([]any, 0, frame.Rows())
	for i := 0; i < frame.Rows(); i++ {
		row := frame.Row(i)
		doc := make(bson.D, 0, len(columns))
		for j, column := range columns {
			doc = append(doc, bson.E{Key: column, Value: cellValue(row[j])})
		}
		docs = append(docs, doc)
	}
	return docs
}

func cellValue(cell string) any {
	if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}
