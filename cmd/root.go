/*
Copyright © 2025 TirthAtlas authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tirthatlas/tirthdb/internal/iofs"
	"github.com/tirthatlas/tirthdb/internal/iologger"
	app "github.com/tirthatlas/tirthdb/pkg"
	"github.com/tirthatlas/tirthdb/pkg/config"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "tirthdb",
	Short:   "TirthDB maintains a searchable index of pilgrimage sites",
	Long: `TirthDB builds and serves a hybrid text/geographic index of
pilgrimage sites from knowledge-base exports.

The lifecycle has four phases:
  - create: create the SQLite index schema
  - ingest: normalize source records into the index
  - vocab:  rebuild the fuzzy-lookup vocabulary
  - serve:  expose the search API over HTTP

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (TIRTHDB_*)
  3. Config file (~/.config/tirthdb/config.yaml)
  4. Built-in defaults`,
	PersistentPreRunE: bootstrap,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the
	// log file created above.
	logDir := config.LogDir(cfg.HomeDir)
	if err = iologger.Init(logDir, cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "tirthdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.Flags().BoolP("version", "V", false, "version for tirthdb")

	rootCmd.AddCommand(getCreateCmd())
	rootCmd.AddCommand(getIngestCmd())
	rootCmd.AddCommand(getServeCmd())
	rootCmd.AddCommand(getVocabCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables
	// are allowed. These match the fields included in
	// config.ToOptions(), i.e. persistent configuration that can be
	// stored in config.yaml.
	v.SetEnvPrefix("TIRTHDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.path", "TIRTHDB_DATABASE_PATH")
	v.BindEnv("database.batch_size", "TIRTHDB_DATABASE_BATCH_SIZE")

	// Ingest configuration
	v.BindEnv("ingest.data_dir", "TIRTHDB_INGEST_DATA_DIR")
	v.BindEnv("ingest.file_timeout", "TIRTHDB_INGEST_FILE_TIMEOUT")

	// Server configuration
	v.BindEnv("server.host", "TIRTHDB_SERVER_HOST")
	v.BindEnv("server.port", "TIRTHDB_SERVER_PORT")

	// Search configuration
	v.BindEnv("search.query_timeout", "TIRTHDB_SEARCH_QUERY_TIMEOUT")

	// Log configuration
	v.BindEnv("log.level", "TIRTHDB_LOG_LEVEL")
	v.BindEnv("log.format", "TIRTHDB_LOG_FORMAT")
	v.BindEnv("log.destination", "TIRTHDB_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "TIRTHDB_JOBS_NUMBER")

	v.AutomaticEnv()
}
