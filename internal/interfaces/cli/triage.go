package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

func newTriageCmd(opts *RootOptions) *cobra.Command {
	var (
		title       string
		description string
		country     string
	)

	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Classify a case narrative into category, urgency, and complexity",
		Example: `  legalaid triage --title "Urgent asylum case" --description "fled persecution, immediate danger"
  legalaid triage --title "Eviction notice" --country Kenya -o table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			narrative := &intake.CaseNarrative{
				Title:       title,
				Description: description,
			}
			if country != "" {
				narrative.Location = intake.Location{"country": country}
			}

			result, err := newEngines(opts.Verbose).classifier.Classify(cmd.Context(), narrative)
			if err != nil {
				return err
			}

			if opts.OutputFormat == "table" {
				out := formatTable(
					[]string{"CASE TYPE", "URGENCY", "JURISDICTION", "CONFIDENCE", "COMPLEXITY"},
					[][]string{{
						string(result.CaseType),
						string(result.Urgency),
						result.Jurisdiction,
						formatScore(result.Confidence),
						string(result.EstimatedComplexity),
					}},
				)
				cmd.Print(out)
				return nil
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "case title")
	cmd.Flags().StringVar(&description, "description", "", "case description")
	cmd.Flags().StringVar(&country, "country", "", "country the case arose in")

	return cmd
}
