// Package cmd provides the rayui command-line interface.
//
// Configuration is read, in order of precedence, from command-line flags,
// RAYUI_-prefixed environment variables (RAYUI_CONTENT_DIR,
// RAYUI_SERVER_PORT, ...), and a `.rayui.yml` file in the working
// directory or the file named by --config or RAYUI_CONFIG_FILE.
package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/rayyanquantum/rayui/internal/config"
	"github.com/rayyanquantum/rayui/internal/errors"
	"github.com/rayyanquantum/rayui/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// rootOptions is shared by every subcommand of one root command.
type rootOptions struct {
	cfgFile string
	viper   *viper.Viper
}

// newRootCmd builds the complete command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{viper: viper.New()}
	config.SetDefaults(opts.viper)

	rootCmd := &cobra.Command{
		Use:   "rayui",
		Short: "Scaffold, export and preview RayUI blocks",
		Long: `rayui manages the RayUI component gallery: copy-paste UI blocks grouped
into categories and listed in content/blocks-metadata.yml.

Quick Start:
  rayui new pricing-card --category stats --register   Scaffold and register a block
  rayui categories                                     Show block counts per category
  rayui export --framework all                         Draft Vue and HTML versions
  rayui serve --watch                                  Browse the gallery with live reload

Documentation: https://github.com/rayyanquantum/rayui`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is .rayui.yml, can also use RAYUI_CONFIG_FILE env var)")
	flags.StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	flags.String("content", "content", "content directory holding the catalog, components and markdown")
	_ = opts.viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = opts.viper.BindPFlag("content.dir", flags.Lookup("content"))

	rootCmd.AddCommand(
		newNewCmd(opts),
		newExportCmd(opts),
		newCategoriesCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// normalizeFlagName accepts config-style spellings such as --log_level.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// Execute runs the CLI and reports a returned error on stderr.
func Execute() error {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// load reads the config file, if any, and decodes the merged configuration.
func (o *rootOptions) load() (*config.Config, error) {
	v := o.viper

	if o.cfgFile != "" {
		v.SetConfigFile(o.cfgFile)
	} else if envConfigFile := os.Getenv("RAYUI_CONFIG_FILE"); envConfigFile != "" {
		v.SetConfigFile(envConfigFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".rayui")
	}

	v.SetEnvPrefix("RAYUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; an explicit or broken one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "failed to read config file")
		}
	}

	return config.LoadFrom(v)
}

func newLogger(cfg *config.Config, w io.Writer) (logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "invalid log level").
			WithSuggestions("debug", "info", "warn", "error")
	}
	return logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    cfg.Log.Format,
		Output:    w,
		Component: "rayui",
	}), nil
}
