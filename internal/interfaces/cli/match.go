package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

func newMatchCmd(opts *RootOptions) *cobra.Command {
	var (
		caseID   string
		caseType string
		urgency  string
		language string
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank candidate lawyers for a case",
		Example: `  legalaid match --case-id case-123 --urgency high
  legalaid match --case-id case-123 --case-type asylum -o table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &intake.MatchRequest{
				CaseID:   caseID,
				CaseType: caseType,
				Urgency:  intake.Urgency(urgency),
				Language: language,
			}

			matches, err := newEngines(opts.Verbose).ranker.Match(cmd.Context(), req)
			if err != nil {
				return err
			}

			if opts.OutputFormat == "table" {
				rows := make([][]string, 0, len(matches))
				for _, m := range matches {
					rows = append(rows, []string{
						m.LawyerID,
						formatScore(m.MatchScore),
						formatScore(m.ExpertiseMatch),
						formatScore(m.AvailabilityScore),
						strconv.FormatBool(m.LanguageCompatibility),
						m.EstimatedResponseTime,
					})
				}
				out := formatTable(
					[]string{"LAWYER", "SCORE", "EXPERTISE", "AVAILABILITY", "LANGUAGE", "RESPONSE"},
					rows,
				)
				cmd.Print(out)
				return nil
			}
			return printJSON(cmd, matches)
		},
	}

	cmd.Flags().StringVar(&caseID, "case-id", "", "case identifier (required)")
	cmd.Flags().StringVar(&caseType, "case-type", "", "case category")
	cmd.Flags().StringVar(&urgency, "urgency", "medium", "case urgency (critical, high, medium, low)")
	cmd.Flags().StringVar(&language, "language", "", "preferred language")
	_ = cmd.MarkFlagRequired("case-id")

	return cmd
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
