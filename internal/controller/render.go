package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	m "camelize.dev/pkg/camelize/internal/model"
)

const (
	statusChanged   = "changed"
	statusUnchanged = "unchanged"
	statusFailed    = "failed"

	noRenamesMessage = "No snake_case variables found"
)

// renamesHeading names the rename listing for the mode the UI started in.
func renamesHeading(mode StartMode) string {
	switch mode {
	case ModeRewrite:
		return "Applied renames"
	case ModeView:
		return "Saved report"
	default:
		return "Planned renames"
	}
}

// progressVerb describes the work announced by DisplayConcurrencyInfo.
func progressVerb(mode StartMode) string {
	if mode == ModeRewrite {
		return "Rewriting"
	}

	return "Scanning"
}

// fileStatus labels the outcome of one file.
func fileStatus(result m.FileResult) string {
	switch {
	case result.Err != nil:
		return statusFailed
	case result.Changed():
		return statusChanged
	default:
		return statusUnchanged
	}
}

type summaryTotals struct {
	files   int
	renames int
	changed int
	failed  int
}

func totalsOf(results []m.FileResult) summaryTotals {
	totals := summaryTotals{files: len(results)}

	for _, result := range results {
		totals.renames += len(result.Renames)

		switch fileStatus(result) {
		case statusChanged:
			totals.changed++
		case statusFailed:
			totals.failed++
		}
	}

	return totals
}

func renderRenamesTable(results []m.FileResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Variable", "Renamed To", "Occurrences"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	files := 0
	renames := 0

	for _, result := range results {
		if len(result.Renames) == 0 {
			continue
		}

		files++

		for _, rename := range result.Renames {
			table.Append([]string{
				string(result.Path()),
				"$" + rename.Old,
				"$" + rename.New,
				strconv.Itoa(rename.Occurrences),
			})

			renames++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", files),
		"",
		"",
		strconv.Itoa(renames),
	})

	table.Render()

	return tableBuffer.String()
}

func renderSummaryTable(results []m.FileResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Renames", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, result := range results {
		table.Append([]string{
			string(result.Path()),
			strconv.Itoa(len(result.Renames)),
			fileStatus(result),
		})
	}

	totals := totalsOf(results)
	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", totals.files),
		strconv.Itoa(totals.renames),
		fmt.Sprintf("%d %s", totals.changed, statusChanged),
	})

	table.Render()

	return tableBuffer.String()
}

func hasRenames(results []m.FileResult) bool {
	for _, result := range results {
		if len(result.Renames) > 0 {
			return true
		}
	}

	return false
}
