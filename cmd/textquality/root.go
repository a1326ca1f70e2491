package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	textquality "github.com/baditaflorin/go_text_quality"
	"github.com/baditaflorin/go_text_quality/internal/adapters/logger"
	"github.com/baditaflorin/go_text_quality/internal/config"
	"github.com/baditaflorin/go_text_quality/internal/ports"
	"github.com/spf13/cobra"
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	text       string
	file       string
	output     string

	cfg      *config.Config
	log      ports.Logger
	logFile  *os.File
	analyzer *textquality.Analyzer
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:           "textquality",
		Short:         "Score text readability and flag weasel words",
		Long:          `Computes an approximate Flesch-Kincaid grade level for a text and lists the vague qualifiers it uses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "Output format: 'text' or 'json'")

	root.AddCommand(
		newGreetCmd(a),
		newReadabilityCmd(a),
		newWeaselCmd(a),
		newAnalyzeCmd(a),
		newReviewPromptCmd(a),
		newSearchCmd(a),
		newOperationsCmd(a),
		newCallCmd(a),
	)
	return root, a
}

// execute runs root and then releases the analyzer and log file, also when
// the command failed.
func execute(root *cobra.Command, a *app) error {
	err := root.Execute()
	if cerr := a.teardown(); err == nil {
		err = cerr
	}
	return err
}

// addTextFlags registers the text input flags on cmd.
func (a *app) addTextFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.text, "text", "t", "", "Text to analyze")
	cmd.Flags().StringVarP(&a.file, "file", "f", "", "Path to a file with the text to analyze")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.output != "text" && a.output != "json" {
		return fmt.Errorf("invalid output format %q, must be 'text' or 'json'", a.output)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, a.logFile, err = createLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	opts := []textquality.Option{
		textquality.WithPortLogger(a.log),
		textquality.WithPrecision(cfg.Readability.Precision),
		textquality.WithMaxGrade(cfg.Readability.MaxGrade),
		textquality.WithVocabulary(cfg.Weasel.Vocabulary),
	}
	if cfg.Catalog.RecordsFile != "" {
		opts = append(opts, textquality.WithRecordsFile(cfg.Catalog.RecordsFile))
	}

	a.analyzer, err = textquality.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}
	a.log.Debug("Analyzer ready", "command", cmd.Name(), "config", a.configPath)
	return nil
}

// teardown closes the analyzer (or the bare logger when setup stopped early)
// and then the log file. It is safe to call more than once.
func (a *app) teardown() error {
	var errs []error
	switch {
	case a.analyzer != nil:
		errs = append(errs, a.analyzer.Close())
	case a.log != nil:
		errs = append(errs, a.log.Close())
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
	}
	a.analyzer, a.log, a.logFile = nil, nil, nil
	return errors.Join(errs...)
}

// createLogger builds the logger described by cfg, writing to stderr unless a
// file is set. The returned file, if any, belongs to the caller.
func createLogger(cfg config.LoggingConfig, stderr io.Writer) (ports.Logger, *os.File, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	output := stderr
	var file *os.File
	if cfg.File != "" {
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	base, err := logger.NewWriterLogger(output, cfg.JSON)
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger.WithLevel(base, level), file, nil
}

// readInput returns the text from --text, --file or stdin, in that order.
func (a *app) readInput(cmd *cobra.Command) (string, error) {
	switch {
	case a.text != "":
		return a.text, nil
	case a.file != "":
		data, err := os.ReadFile(a.file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// render writes v as indented JSON when --output=json, otherwise calls text.
func (a *app) render(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

var errNotFound = errors.New("no record found")
