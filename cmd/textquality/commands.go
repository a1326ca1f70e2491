package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/baditaflorin/go_text_quality/internal/operations"
	"github.com/spf13/cobra"
)

func newGreetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "greet NAME",
		Short: "Print a friendly greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			greeting := a.analyzer.Greet(args[0])
			return a.render(cmd, operations.GreetOutput{Greeting: greeting}, func(w io.Writer) {
				fmt.Fprintln(w, greeting)
			})
		},
	}
}

func newReadabilityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readability",
		Short: "Compute the Flesch-Kincaid grade level of a text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			result := a.analyzer.EvaluateReadability(text)
			return a.render(cmd, result, func(w io.Writer) {
				status := "passed"
				if !result.Passed {
					status = "failed"
				}
				fmt.Fprintf(w, "Readability grade: %.2f (max %.2f, %s)\n", result.Score, result.Threshold, status)
			})
		},
	}
	a.addTextFlags(cmd)
	return cmd
}

func newWeaselCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weasel",
		Short: "List the weasel words used in a text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			words := a.analyzer.CheckForWeaselWords(text).Words()
			return a.render(cmd, operations.WeaselOutput{Words: words}, func(w io.Writer) {
				if len(words) == 0 {
					fmt.Fprintln(w, "No weasel words found.")
					return
				}
				fmt.Fprintf(w, "Weasel words: %s\n", strings.Join(words, ", "))
			})
		},
	}
	a.addTextFlags(cmd)
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report metrics, readability grade and weasel words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			report := a.analyzer.Analyze(text)
			return a.render(cmd, report, func(w io.Writer) {
				fmt.Fprintf(w, "Words: %d\n", report.Metrics.WordCount)
				fmt.Fprintf(w, "Sentences: %d\n", report.Metrics.SentenceCount)
				fmt.Fprintf(w, "Syllables: %d\n", report.Metrics.SyllableCount)
				fmt.Fprintf(w, "Readability grade: %.2f\n", float64(report.Readability))
				if len(report.WeaselWords) == 0 {
					fmt.Fprintln(w, "Weasel words: none")
				} else {
					fmt.Fprintf(w, "Weasel words: %s\n", strings.Join(report.WeaselWords, ", "))
				}
			})
		},
	}
	a.addTextFlags(cmd)
	return cmd
}

func newReviewPromptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review-prompt",
		Short: "Print review instructions for an external editor model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			p := a.analyzer.GenerateReviewPrompt(text)
			return a.render(cmd, p, func(w io.Writer) {
				fmt.Fprint(w, p.Prompt)
			})
		},
	}
	a.addTextFlags(cmd)
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search NAME",
		Short: "Find a catalog record by exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := a.analyzer.SearchByName(args[0])
			out := operations.SearchOutput{Found: ok}
			if ok {
				out.Record = &r
			}
			if err := a.render(cmd, out, func(w io.Writer) {
				if ok {
					fmt.Fprintf(w, "%s (%s): %s\n", r.Name, r.Species, r.Description)
				}
			}); err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w named %q", errNotFound, args[0])
			}
			return nil
		},
	}
}

func newOperationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the operations available to a hosting layer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.analyzer.Operations()
			if err != nil {
				return err
			}
			descriptors := catalog.Descriptors()
			return a.render(cmd, descriptors, func(w io.Writer) {
				for _, d := range descriptors {
					fmt.Fprintf(w, "%-22s %s\n", d.Name, d.Description)
				}
			})
		},
	}
}

func newCallCmd(a *app) *cobra.Command {
	var rawArgs string
	cmd := &cobra.Command{
		Use:   "call OPERATION",
		Short: "Invoke an operation with JSON arguments and print the invocation as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input map[string]interface{}
			if err := json.Unmarshal([]byte(rawArgs), &input); err != nil {
				return fmt.Errorf("invalid --args JSON: %w", err)
			}

			catalog, err := a.analyzer.Operations()
			if err != nil {
				return err
			}
			inv, err := catalog.Call(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(inv)
		},
	}
	cmd.Flags().StringVar(&rawArgs, "args", "{}", "Operation arguments as a JSON object")
	return cmd
}
