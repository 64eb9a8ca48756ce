// Package main provides the pdctag command-line tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/pdctag/internal/pipeline"
	"github.com/inodb/pdctag/internal/viewer"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const configName = ".pdctag"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "pdctag",
		Short: "Parkinson's disease gene mutation overview charts",
		Long: `pdctag builds the illustrative Parkinson's disease mutation table, prints a
genomic report and writes two composite figures:
parkinson_ctag_diagram.png and advanced_parkinson_genomics.png.`,
		Example: `  pdctag                              # full run with defaults
  pdctag --output-dir out --dpi 150   # smaller figures in ./out
  pdctag report                       # text report only
  pdctag query "SELECT * FROM mutation_records WHERE mutation_type = 'Deletion'"`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, false)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default: ~/.pdctag.yaml)")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	_ = viper.BindPFlag("log.verbose", pf.Lookup("verbose"))

	f := cmd.Flags()
	f.String("output-dir", ".", "Directory for generated figures")
	f.Float64("dpi", pipeline.DefaultDPI, "Figure resolution in dots per inch")
	f.Bool("display", false, "Open each figure in an image viewer after writing it")
	f.Uint64("seed", 0, "Seed for heatmap filler values (0 = time-seeded)")
	_ = viper.BindPFlag("output.dir", f.Lookup("output-dir"))
	_ = viper.BindPFlag("output.dpi", f.Lookup("dpi"))
	_ = viper.BindPFlag("display.enabled", f.Lookup("display"))
	_ = viper.BindPFlag("heatmap.seed", f.Lookup("seed"))

	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newTableCmd())
	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func setDefaults() {
	viper.SetDefault("output.dir", ".")
	viper.SetDefault("output.primary", pipeline.DefaultPrimaryName)
	viper.SetDefault("output.advanced", pipeline.DefaultAdvancedName)
	viper.SetDefault("output.dpi", pipeline.DefaultDPI)
	viper.SetDefault("display.enabled", false)
	viper.SetDefault("display.command", "")
	viper.SetDefault("display.timeout", viewer.DefaultTimeout)
	viper.SetDefault("heatmap.seed", 0)
	viper.SetDefault("log.verbose", false)
}

// initConfig loads ~/.pdctag.yaml (or cfgFile) and PDCTAG_* environment
// variables. A missing config file is not an error.
func initConfig(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PDCTAG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func pipelineOptions() pipeline.Options {
	return pipeline.Options{
		OutputDir:    viper.GetString("output.dir"),
		PrimaryName:  viper.GetString("output.primary"),
		AdvancedName: viper.GetString("output.advanced"),
		DPI:          viper.GetFloat64("output.dpi"),
		Seed:         viper.GetUint64("heatmap.seed"),
		Display:      viper.GetBool("display.enabled"),
	}
}

func runPipeline(cmd *cobra.Command, textOnly bool) error {
	logger, err := newLogger(viper.GetBool("log.verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	opts := pipelineOptions()
	opts.SkipFigures = textOnly
	if dir, err := filepath.Abs(opts.OutputDir); err == nil {
		logger.Debug("output directory", zap.String("dir", dir))
	}

	r := pipeline.NewRunner(opts, cmd.OutOrStdout())
	r.SetLogger(logger)
	if opts.Display {
		v := viewer.NewExec(viper.GetString("display.command"), viper.GetDuration("display.timeout"))
		v.SetLogger(logger)
		r.SetViewer(v)
	}

	if _, err := r.Run(cmd.Context()); err != nil {
		return err
	}
	return nil
}
