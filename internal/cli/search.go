package cli

import (
	"fmt"
	"io"
	"strings"

	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/service"
	"jobhunter/pkg"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the job aggregator",
	Example: `  jobhunter search "golang backend" --remote
  jobhunter search "data engineer in Berlin" --type FULLTIME --page 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, _ := cmd.Flags().GetBool("remote")
		jobType, _ := cmd.Flags().GetString("type")
		page, _ := cmd.Flags().GetInt("page")

		req := request.SearchJobs{
			Query:  strings.Join(args, " "),
			Page:   page,
			Remote: remote,
			Type:   jobType,
		}
		if err := pkg.Validate(&req); err != nil {
			return err
		}

		result, err := service.NewJobService().Search(cmd.Context(), req)
		if err != nil {
			return err
		}
		renderPostings(cmd.OutOrStdout(), req.Query, result.Data)
		return nil
	},
}

func renderPostings(w io.Writer, query string, postings []pkg.Posting) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Results for %q", query)))
	if len(postings) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No jobs found."))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("TITLE", "COMPANY", "LOCATION", "TYPE", "SALARY")
	for _, p := range postings {
		t.Row(
			p.Title,
			p.Company,
			orDash(p.Location),
			orDash(p.JobType),
			orDash(p.Salary),
		)
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d jobs", len(postings))))
}

func orDash(v *string) string {
	if s := pkg.FromPtr(v); s != "" {
		return s
	}
	return "-"
}

func init() {
	searchCmd.Flags().Bool("remote", false, "remote jobs only")
	searchCmd.Flags().String("type", "", "employment type (FULLTIME, PARTTIME, CONTRACTOR, INTERN)")
	searchCmd.Flags().Int("page", 1, "result page")
	rootCmd.AddCommand(searchCmd)
}
