package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

func newAnalyzeCmd(opts *RootOptions) *cobra.Command {
	var (
		file    string
		docID   string
		docType string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Extract entities, key dates, and a summary from a document",
		Example: `  legalaid analyze --file statement.txt
  legalaid analyze --file statement.txt --doc-id doc-42 -o table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read document: %w", err)
			}

			doc := &intake.DocumentInput{
				DocumentID:   docID,
				DocumentType: docType,
				Content:      string(content),
			}

			result, err := newEngines(opts.Verbose).extractor.Extract(cmd.Context(), doc)
			if err != nil {
				return err
			}

			if opts.OutputFormat == "table" {
				rows := [][]string{
					{"category", result.DocumentCategory},
					{"relevance", formatScore(result.RelevanceScore)},
					{"persons", fmt.Sprintf("%d", len(result.ExtractedEntities.Persons))},
					{"organizations", fmt.Sprintf("%d", len(result.ExtractedEntities.Organizations))},
					{"dates", fmt.Sprintf("%d", len(result.ExtractedEntities.Dates))},
					{"key dates", fmt.Sprintf("%d", len(result.KeyDates))},
				}
				cmd.Print(formatTable([]string{"FIELD", "VALUE"}, rows))
				return nil
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the document to analyze (required)")
	cmd.Flags().StringVar(&docID, "doc-id", "", "document identifier")
	cmd.Flags().StringVar(&docType, "doc-type", "", "document type hint")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
