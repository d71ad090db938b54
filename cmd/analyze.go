package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/loglens/loglens/pkg/analyzer"
	"github.com/loglens/loglens/pkg/config"
	"github.com/loglens/loglens/pkg/formatter"
	"github.com/loglens/loglens/pkg/logfile"
)

var (
	filePath     string
	modelName    string
	outputPath   string
	providerName string
	outputFormat string
	maxTokens    int
	timeout      time.Duration
	endpoint     string
	verbose      bool
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a log file with AI assistance",
		Long: `Send a local log file to an LLM completion service and print a JSON
summary of the error types it contains.

Examples:
  # Analyze the bundled sample log
  loglens analyze

  # Analyze a specific file
  loglens analyze -f /var/log/app/error.log

  # Pick the provider and model explicitly
  loglens analyze -f error.log --provider claude -m claude-sonnet-4-20250514

  # Write the JSON document to a file
  loglens analyze -f error.log -o analysis.json

  # Colored terminal summary instead of JSON
  loglens analyze -f error.log --format human`,
		Args: cobra.NoArgs,
		RunE: runAnalyze,
	}

	// Flags
	cmd.Flags().StringVarP(&filePath, "file", "f", "dummy_error.log", "Path to the log file")
	cmd.Flags().StringVarP(&modelName, "model", "m", "", "Model identifier (defaults to the provider's default model)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().StringVar(&providerName, "provider", "", "LLM provider: openai or claude (defaults to $LLM_PROVIDER, then openai)")
	cmd.Flags().StringVar(&outputFormat, "format", "json", "Output format (json, yaml, human)")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", config.DefaultMaxTokens, "Response token limit")
	cmd.Flags().DurationVar(&timeout, "timeout", config.DefaultTimeout, "Timeout for the completion request")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Base URL override for the completion service")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	setupLogging(verbose)

	// Resolve credentials and defaults first so a missing key fails before
	// any file or network work.
	cfg, err := config.Load(config.Options{
		Provider:  providerName,
		Model:     modelName,
		Endpoint:  endpoint,
		MaxTokens: maxTokens,
		Timeout:   timeout,
	})
	if err != nil {
		return err
	}

	lg, err := logfile.Read(filePath)
	if err != nil {
		return err
	}

	printHeader(lg, cfg)

	aiAnalyzer, err := analyzer.New(cfg)
	if err != nil {
		return err
	}

	// Spinner writes to stderr: stdout carries nothing but the result.
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Analyzing with AI..."
	s.Start()

	result, err := aiAnalyzer.Analyze(lg.Text)
	if err != nil {
		s.Stop()
		return fmt.Errorf("AI analysis failed: %w", err)
	}
	s.Stop()
	printSuccess("Analysis complete")

	if outputPath != "" {
		if err := formatter.WriteFile(outputPath, result, outputFormat); err != nil {
			return err
		}
		if outputFormat == "json" {
			printSuccess(fmt.Sprintf("Wrote analysis JSON to: %s", outputPath))
		} else {
			printSuccess(fmt.Sprintf("Wrote analysis to: %s", outputPath))
		}
		return nil
	}

	return formatter.Write(os.Stdout, result, outputFormat)
}

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func printHeader(lg *logfile.Log, cfg config.Config) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(os.Stderr)
	cyan.Fprintln(os.Stderr, "🔍 LLM Log Analyzer")
	fmt.Fprintf(os.Stderr, "📄 File: %s (%d lines, %d bytes)\n", lg.Path, lg.Lines, lg.Bytes)
	fmt.Fprintf(os.Stderr, "🤖 Provider: %s, model: %s\n", cfg.Provider, cfg.Model)
	fmt.Fprintln(os.Stderr)
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(os.Stderr, "✓ %s\n", msg)
}
