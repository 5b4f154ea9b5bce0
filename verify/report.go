package verify

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Report is the outcome of a Run.
type Report struct {
	Workload  string
	NumLevels int
	Spaces    []SpaceResult
	Issues    []Issue
}

// OK reports whether no issue was found.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// IssuesOf returns the issues of the given type.
func (r *Report) IssuesOf(t IssueType) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Type == t {
			out = append(out, issue)
		}
	}

	return out
}

// MappingCount returns the product of the space sizes.
func (r *Report) MappingCount() *big.Int {
	total := big.NewInt(1)
	for _, s := range r.Spaces {
		total.Mul(total, s.Size)
	}

	return total
}

// WriteReport writes a formatted report to a writer.
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "MAPSPACE VERIFICATION REPORT: %s, %d levels\n",
		r.Workload, r.NumLevels)
	fmt.Fprintln(w, separator)

	spaces := table.NewWriter()
	spaces.SetTitle("Spaces")
	spaces.AppendHeader(table.Row{"Space", "Size", "Checked", "Coverage"})
	for _, s := range r.Spaces {
		coverage := "sampled"
		if s.Exhaustive {
			coverage = "exhaustive"
		}
		spaces.AppendRow(table.Row{s.Space, s.Size.String(), s.Checked, coverage})
	}
	spaces.AppendFooter(table.Row{"mappings", r.MappingCount().String(), "", ""})
	fmt.Fprintln(w, spaces.Render())

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "ISSUES")
	fmt.Fprintln(w, separator)

	if r.OK() {
		fmt.Fprintln(w, "No issues found.")
		fmt.Fprintln(w)
		return
	}

	for _, t := range []IssueType{IssueCollision, IssueProduct, IssueOrder, IssueSplit} {
		issues := r.IssuesOf(t)
		if len(issues) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s ISSUES (%d):\n", t, len(issues))
		fmt.Fprintln(w, dash)
		for _, issue := range issues {
			fmt.Fprintf(w, "  [%s id=%s] %s\n", issue.Space, issue.ID, issue.Message)
		}
	}

	fmt.Fprintln(w)
}

// SaveReportToFile writes the report to filename.
func (r *Report) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)

	return nil
}
