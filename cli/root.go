package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"go.driftline.io/pipeline/config"
	"go.driftline.io/pipeline/utils"
	"go.driftline.io/pipeline/utils/log"
)

// Provider carries the logger and resolved config into every command. The
// logger is rebuilt after flag/config resolution so --debug takes effect.
type Provider struct {
	Logger *zap.Logger
	Cfg    *config.Config
}

const defaultConfigFile = "driftline.yml"

// Root builds the root command with all registered subcommands attached.
func Root(ctx context.Context, p *Provider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "driftline",
		Short:         "driftline prepares tabular training data: ingest, validate, transform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return preRun(p)
		},
	}

	if err := setFlags(p.Logger, rootCmd, p.Cfg); err != nil {
		utils.LogError(p.Logger, err, "failed to set the root command flags")
		return nil
	}

	for name, factory := range Registered {
		cmd := factory(ctx, p)
		if cmd == nil {
			utils.LogError(p.Logger, nil, "failed to build the command", zap.String("command", name))
			continue
		}
		rootCmd.AddCommand(cmd)
	}
	return rootCmd
}

func setFlags(logger *zap.Logger, cmd *cobra.Command, conf *config.Config) error {
	flags := cmd.PersistentFlags()
	flags.Bool("debug", conf.Debug, "Run in debug mode")
	flags.String("config-path", conf.ConfigPath, "Path to the driftline configuration file")
	flags.String("artifact-dir", conf.ArtifactDir, "Directory where run artifacts are stored")
	flags.String("mongo-uri", conf.Mongo.URI, "Connection string of the document store")
	flags.String("mongo-database", conf.Mongo.Database, "Database holding the source collection")
	flags.String("mongo-collection", conf.Mongo.Collection, "Collection to ingest from / push into")

	bindings := map[string]string{
		"debug":            "debug",
		"config-path":      "configPath",
		"artifact-dir":     "artifactDir",
		"mongo-uri":        "mongo.uri",
		"mongo-database":   "mongo.database",
		"mongo-collection": "mongo.collection",
	}
	for flag, key := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			logger.Error("failed to bind flag to config", zap.String("flag", flag), zap.Error(err))
			return err
		}
	}
	return nil
}

// preRun merges the config file (if any) and bound flags into the provider
// config, then rebuilds the logger at the requested level.
func preRun(p *Provider) error {
	configFile := viper.GetString("configPath")
	if configFile == "" && utils.CheckFileExists(defaultConfigFile) {
		configFile = defaultConfigFile
	}
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.MergeInConfig(); err != nil {
			utils.LogError(p.Logger, err, "failed to read the config file", zap.String("path", configFile))
			return err
		}
	}
	if err := viper.Unmarshal(p.Cfg); err != nil {
		utils.LogError(p.Logger, err, "failed to unmarshal the config")
		return err
	}

	logger, err := log.New(log.Options{Debug: p.Cfg.Debug, FilePath: p.Cfg.LogFile})
	if err != nil {
		return err
	}
	p.Logger = logger
	return nil
}

// Execute runs the CLI and reports whether it succeeded.
func Execute(ctx context.Context, p *Provider) bool {
	rootCmd := Root(ctx, p)
	if rootCmd == nil {
		return false
	}
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		utils.LogError(p.Logger, err, "pipeline command failed")
		os.Stderr.WriteString("driftline: " + err.Error() + "\n")
		return false
	}
	return true
}
