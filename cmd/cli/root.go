package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"maya-nlp/config"
	"maya-nlp/internal/nlp"
	"maya-nlp/internal/nlp/usecase"
	"maya-nlp/pkg/log"
)

type analyzeOptions struct {
	backend string
	json    bool
	verbose bool
}

// serviceFactory builds the analysis service. Replaced in tests.
var serviceFactory = func(ctx context.Context, backend string, l log.Logger) (nlp.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if backend != "" {
		cfg.NLP.Implementation = backend
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	backends, err := usecase.InitializeBackends(ctx, cfg, l, nil)
	if err != nil {
		return nil, err
	}
	return usecase.NewManager(backends.List(), usecase.Config{FallbackEnabled: cfg.NLP.FallbackEnabled}, l)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "maya-nlp",
		Short:        "Extract tasks, times and durations from assistant commands",
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <text>",
		Short: "Analyze a command and print its entities",
		Example: `  maya-nlp analyze "Set a timer for 25 minutes to reply to emails"
  maya-nlp analyze --backend duckling --json "Remind me tomorrow at 5pm to call mom"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&opts.backend, "backend", "b", "", "backend to use: "+strings.Join(nlp.KnownBackends, "|"))
	cmd.Flags().BoolVar(&opts.json, "json", false, "print entities as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log backend activity to stderr")
	return cmd
}

func runAnalyze(ctx context.Context, out io.Writer, opts *analyzeOptions, text string) error {
	backend := strings.ToLower(strings.TrimSpace(opts.backend))
	if backend != "" && !nlp.IsKnownBackend(backend) {
		return fmt.Errorf("%w: %s", nlp.ErrUnknownBackend, backend)
	}

	l := log.NewNop()
	if opts.verbose {
		l = log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
	}

	svc, err := serviceFactory(ctx, backend, l)
	if err != nil {
		return err
	}

	output, err := svc.Analyze(ctx, nlp.AnalyzeInput{Text: text, Backend: backend})
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(output.Entities)
	}
	return printTable(out, output)
}

func printTable(out io.Writer, output nlp.AnalyzeOutput) error {
	if len(output.Entities) == 0 {
		_, err := fmt.Fprintf(out, "no entities (backend: %s)\n", output.Backend)
		return err
	}

	width := len("NAME")
	for _, e := range output.Entities {
		width = max(width, len(e.Name))
	}

	fmt.Fprintf(out, "%-*s  %-10s  %s\n", width, "NAME", "TYPE", "SALIENCE")
	for _, e := range output.Entities {
		fmt.Fprintf(out, "%-*s  %-10s  %.2f\n", width, e.Name, e.Type, e.Salience)
	}
	_, err := fmt.Fprintf(out, "backend: %s\n", output.Backend)
	return err
}
