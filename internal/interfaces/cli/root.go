// Package cli implements the legalaid command-line client.  The commands run
// the analysis engines in-process, so the CLI works without a server.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/casetriage"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/docanalysis"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/lawyermatch"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds global CLI flags.
type RootOptions struct {
	OutputFormat string
	Verbose      bool
}

type engineSet struct {
	classifier casetriage.Classifier
	ranker     lawyermatch.Ranker
	extractor  docanalysis.Extractor
}

func newEngines(verbose bool) *engineSet {
	log := logging.NewNopLogger()
	if verbose {
		if l, err := logging.NewLogger(logging.Config{
			Level:            "debug",
			Format:           "console",
			OutputPaths:      []string{"stderr"},
			ErrorOutputPaths: []string{"stderr"},
		}); err == nil {
			log = l
		}
	}
	return &engineSet{
		classifier: casetriage.NewClassifier(log),
		ranker:     lawyermatch.NewRanker(nil, log),
		extractor:  docanalysis.NewExtractor(log),
	}
}

// NewRootCommand creates the root cobra command with all global flags and
// subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "legalaid",
		Short:   "LegalAid-Intelligence CLI for heuristic legal-aid intake analysis",
		Long:    "LegalAid-Intelligence provides case triage, lawyer matching, and\ndocument analysis for legal-aid intake workflows.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.OutputFormat, "output", "o", "json", "output format (json, table)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose logging to stderr")

	cmd.AddCommand(
		newTriageCmd(opts),
		newMatchCmd(opts),
		newAnalyzeCmd(opts),
	)

	return cmd
}

// Execute runs the CLI and returns the first error encountered.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", err.Error())
		return err
	}
	return nil
}

// printJSON writes data as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, data interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// formatTable renders headers and rows as an aligned ASCII table.
func formatTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(colWidths); i++ {
			if len(row[i]) > colWidths[i] {
				colWidths[i] = len(row[i])
			}
		}
	}

	var sb strings.Builder
	for i, h := range headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(padRight(h, colWidths[i]))
	}
	sb.WriteString("\n")
	for i, w := range colWidths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(strings.Repeat("-", w))
	}
	sb.WriteString("\n")
	for _, row := range rows {
		for i := 0; i < len(headers); i++ {
			if i > 0 {
				sb.WriteString("  ")
			}
			val := ""
			if i < len(row) {
				val = row[i]
			}
			sb.WriteString(padRight(val, colWidths[i]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
