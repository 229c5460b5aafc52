// Package main provides the CLI entry point for vslplot-go.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/vslplot-go/pkg/logger"
	"github.com/ukaji3/vslplot-go/pkg/vslplot"
	"github.com/ukaji3/vslplot-go/pkg/vslplot/output"
)

var (
	dataPath   string
	layoutPath string
	outputPath string
	jsonPath   string
	configPath string
	pretty     bool
	axes       []string
	keepZero   bool
	workers    int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vslplot",
		Short: "Render VSL plot documents as Excel charts",
		Long: `vslplot-go reads the data and layout documents written by the VSL plot
front-end, normalizes every trace to the Plotly field set, and renders the
figure as native Excel charts. The normalized figure can also be written as
Plotly JSON.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              run,
	}

	rootCmd.Flags().StringVar(&dataPath, "data", "", "Data document path (default: ~/.vmodules/vsl/plot/data.json)")
	rootCmd.Flags().StringVar(&layoutPath, "layout", "", "Layout document path (default: ~/.vmodules/vsl/plot/layout.json)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Workbook output path")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Write the normalized figure as Plotly JSON (\"-\" for stdout)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.Flags().StringSliceVar(&axes, "axes", nil, "Axis names whose range is checked (default: x,y)")
	rootCmd.Flags().BoolVar(&keepZero, "keep-zero", false, "Keep false and zero trace values")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Normalize traces concurrently with this many workers")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	logger.AddFlags(rootCmd)

	rootCmd.AddCommand(newInspectCmd())
	return rootCmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [figure.xlsx]",
		Short: "Describe the charts and data of a rendered workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	return logger.SetupLogger(level, logJSON, logSource)
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := logger.ContextWithLogger(cmd.Context(), logger.GetDefault())

	cfg := &vslplot.Config{}
	if configPath != "" {
		loaded, err := vslplot.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		cfg = loaded
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if level, logJSON, logSource, changed, err := configLogging(cmd, cfg); err != nil {
		return err
	} else if changed {
		if err := logger.SetupLogger(level, logJSON, logSource); err != nil {
			return err
		}
		ctx = logger.ContextWithLogger(ctx, logger.GetDefault())
	}

	if cfg.Data == "" {
		cfg.Data = vslplot.DefaultDataPath()
	}
	if cfg.Layout == "" {
		cfg.Layout = vslplot.DefaultLayoutPath()
	}
	if cfg.Output == "" && cfg.JSON == "" {
		return fmt.Errorf("nothing to write: set --output and/or --json")
	}

	opts := cfg.Options()
	fig, err := vslplot.BuildFiles(ctx, cfg.Data, cfg.Layout, opts)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := vslplot.SaveAs(ctx, fig, cfg.Output, opts); err != nil {
			return err
		}
	}

	if cfg.JSON != "" {
		jsonData, err := output.FigureToJSON(fig, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := writeOutput(ctx, cmd.OutOrStdout(), cfg.JSON, jsonData); err != nil {
			return err
		}
	}
	return nil
}

// configLogging merges the config's log settings under the logging flags.
// changed reports whether the config altered what setupLogging configured.
func configLogging(cmd *cobra.Command, cfg *vslplot.Config) (level string, logJSON, logSource, changed bool, err error) {
	level, logJSON, logSource, err = logger.GetLoggerConfig(cmd)
	if err != nil {
		return "", false, false, false, err
	}
	flags := cmd.Flags()
	if cfg.Log.Level != "" && !flags.Changed("log-level") && cfg.Log.Level != level {
		level = cfg.Log.Level
		changed = true
	}
	if cfg.Log.JSON && !flags.Changed("log-json") && !logJSON {
		logJSON = true
		changed = true
	}
	return level, logJSON, logSource, changed, nil
}

// applyFlags overrides config values with flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *vslplot.Config) {
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data = dataPath
	}
	if flags.Changed("layout") {
		cfg.Layout = layoutPath
	}
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	if flags.Changed("json") {
		cfg.JSON = jsonPath
	}
	if flags.Changed("axes") {
		cfg.Axes = axes
	}
	if flags.Changed("keep-zero") {
		cfg.KeepZero = keepZero
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := logger.ContextWithLogger(cmd.Context(), logger.GetDefault())

	wb, err := vslplot.Inspect(ctx, args[0])
	if err != nil {
		return err
	}

	jsonData, err := output.WorkbookToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func writeOutput(ctx context.Context, stdout io.Writer, path string, data []byte) error {
	if path == "-" {
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.FromContext(ctx).Info("Wrote figure JSON", "path", path)
	return nil
}
