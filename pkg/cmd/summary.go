package cmd

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/siyuan-infoblox/py-imports-group/pkg/formatter"
)

// renderSummary renders the per-status file counts of a run as a table.
func renderSummary(results []formatter.Result) string {
	counts := make(map[formatter.Status]int)
	for _, res := range results {
		counts[res.Status]++
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Status", "Files"})

	for _, status := range []formatter.Status{
		formatter.StatusRewritten,
		formatter.StatusUnchanged,
		formatter.StatusFailed,
	} {
		tw.AppendRow(table.Row{status.String(), strconv.Itoa(counts[status])})
	}
	tw.AppendFooter(table.Row{"total", strconv.Itoa(len(results))})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}
