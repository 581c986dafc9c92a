// Package cli builds the authorcheck operator commands
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"authorcheck/internal/adapters/classifier"
	"authorcheck/internal/adapters/paraphraser"
	"authorcheck/internal/core/patterns"
	"authorcheck/internal/core/version"
	"authorcheck/internal/platform/config"
	"authorcheck/internal/services/api"
	ddomain "authorcheck/internal/services/detect/domain"
	dservice "authorcheck/internal/services/detect/service"
	hdomain "authorcheck/internal/services/humanize/domain"
	hservice "authorcheck/internal/services/humanize/service"

	"github.com/spf13/cobra"
)

// Env holds what the commands reach outside the process for
type Env struct {
	Config          config.Conf
	OpenClassifier  func(context.Context, classifier.Options) *classifier.Adapter
	OpenParaphraser func(context.Context, paraphraser.Options) *paraphraser.Adapter
	Serve           func(context.Context, config.Conf) error
}

// DefaultEnv reads configuration from the process environment and opens real backends
func DefaultEnv() Env {
	return Env{
		Config:          config.New(),
		OpenClassifier:  classifier.Open,
		OpenParaphraser: paraphraser.Open,
		Serve:           api.Serve,
	}
}

// NewRoot returns the root command with every subcommand attached
func NewRoot(env Env) *cobra.Command {
	root := &cobra.Command{
		Use:           "authorcheck",
		Short:         "Score text for machine authorship and paraphrase it",
		Version:       version.Info().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		detectCmd(env),
		scanCmd(),
		humanizeCmd(env),
		patternsCmd(),
		serveCmd(env),
	)
	return root
}

func detectCmd(env Env) *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Print the verdict for text from --text or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := readText(cmd, text)
			if err != nil {
				return err
			}
			clf := env.OpenClassifier(cmd.Context(), classifier.FromConfig(env.Config))
			svc := dservice.New(patterns.NewScanner(patterns.Default()), clf)

			v, err := svc.Detect(cmd.Context(), ddomain.DetectInput{Text: in})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to score, read from stdin when unset")
	return cmd
}

func scanCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Print heuristic phrase matches for text, no model needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := readText(cmd, text)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), patterns.NewScanner(patterns.Default()).Scan(in))
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to scan, read from stdin when unset")
	return cmd
}

func humanizeCmd(env Env) *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "humanize",
		Short: "Print a paraphrase of text from --text or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := readText(cmd, text)
			if err != nil {
				return err
			}
			p := env.OpenParaphraser(cmd.Context(), paraphraser.FromConfig(env.Config))

			out, err := hservice.New(p).Humanize(cmd.Context(), hdomain.HumanizeInput{Text: in})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to rewrite, read from stdin when unset")
	return cmd
}

func patternsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the heuristic phrase pack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := patterns.Default()
			w := cmd.OutOrStdout()
			if asJSON {
				return printJSON(w, struct {
					Name      string   `json:"name"`
					Version   int      `json:"version"`
					Increment float64  `json:"increment"`
					Phrases   []string `json:"phrases"`
				}{p.Name, p.Version, p.Increment, p.Phrases()})
			}

			if _, err := fmt.Fprintf(w, "%s v%d, +%g per phrase\n", p.Name, p.Version, p.Increment); err != nil {
				return err
			}
			for _, ph := range p.Phrases() {
				if _, err := fmt.Fprintln(w, ph); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the pack as JSON")
	return cmd
}

func serveCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return env.Serve(cmd.Context(), env.Config)
		},
	}
}

// readText prefers --text, even when set to empty, and otherwise drains stdin minus one trailing newline
func readText(cmd *cobra.Command, text string) (string, error) {
	if cmd.Flags().Changed("text") {
		return text, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
