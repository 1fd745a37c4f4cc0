package cli

import (
	"errors"
	"fmt"
	"io"

	"jobhunter/internal/analytics"
	"jobhunter/internal/api/repo"
	"jobhunter/internal/api/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Print the analytics report of a user",
	Example: `  jobhunter stats --email jane@example.com --days 14`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		days, _ := cmd.Flags().GetInt("days")

		user, err := repo.NewUserRepository().FindByEmail(email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("no user with email %s", email)
			}
			return err
		}

		report, err := service.NewAnalyticsService().Report(user.ID, analytics.NormalizeDays(days))
		if err != nil {
			return err
		}
		renderReport(cmd.OutOrStdout(), user.Email, report)
		return nil
	},
}

func renderReport(w io.Writer, email string, report analytics.Report) {
	s := report.Summary
	fmt.Fprintln(w, titleStyle.Render("Job search statistics for "+email))

	fmt.Fprintln(w, labelStyle.Render("Overview"))
	fmt.Fprintf(w, "  Total Applications: %d\n", s.TotalApplications)
	fmt.Fprintf(w, "  Applied: %d\n", s.Applied)
	fmt.Fprintf(w, "  Interviewing: %d\n", s.Interviewing)
	fmt.Fprintf(w, "  Offers: %d\n", s.Offers)
	fmt.Fprintf(w, "  Accepted: %d\n", s.Accepted)
	fmt.Fprintf(w, "  Rejected: %d\n", s.Rejected)

	fmt.Fprintf(w, "\n%s\n", labelStyle.Render("Rates"))
	fmt.Fprintf(w, "  Response Rate: %.1f%%\n", s.ResponseRate)
	fmt.Fprintf(w, "  Offer Rate: %.1f%%\n", s.OfferRate)
	fmt.Fprintf(w, "  Accept Rate: %.1f%%\n", s.AcceptRate)

	wc := report.WeeklyComparison
	fmt.Fprintf(w, "\n%s\n", labelStyle.Render("This Week"))
	fmt.Fprintf(w, "  %d applications (%d last week, %+d%%)\n", wc.ThisWeek, wc.LastWeek, wc.ChangePercent)

	if len(report.SourceBreakdown) > 0 {
		fmt.Fprintf(w, "\n%s\n", labelStyle.Render("Sources"))
		for _, src := range report.SourceBreakdown {
			fmt.Fprintf(w, "  %s: %d (%d applied, %d interviewing)\n", src.Source, src.Total, src.Applied, src.Interviewing)
		}
	}

	if len(report.TopCompanies) > 0 {
		fmt.Fprintf(w, "\n%s\n", labelStyle.Render("Top Companies"))
		for _, c := range report.TopCompanies {
			fmt.Fprintf(w, "  %s: %d\n", c.Company, c.Count)
		}
	}

	if s.TotalApplications == 0 {
		fmt.Fprintln(w, mutedStyle.Render("\nNo applications yet."))
	}
}

func init() {
	statsCmd.Flags().String("email", "", "email of the user to report on")
	statsCmd.Flags().Int("days", analytics.DefaultDays, "activity window in days")
	statsCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(statsCmd)
}
