package display

import (
	"io"
	"strconv"

	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// SummaryRow is one class line of the end-of-run table.
type SummaryRow struct {
	Class string
	Files int
	Train int
	Val   int
	Bytes int64
}

// PrintSummary renders rows as a table with a totals footer.
func PrintSummary(w io.Writer, rows []SummaryRow) error {
	table := tablewriter.NewWriter(w)
	table.Header("Class", "Files", "Train", "Val", "Size")
	for _, r := range rows {
		if err := table.Append([]string{
			r.Class,
			strconv.Itoa(r.Files),
			strconv.Itoa(r.Train),
			strconv.Itoa(r.Val),
			FormatBytes(r.Bytes),
		}); err != nil {
			return errors.Annotatef(err, "summary row %s", r.Class)
		}
	}
	table.Footer(
		"Total",
		strconv.Itoa(lo.SumBy(rows, func(r SummaryRow) int { return r.Files })),
		strconv.Itoa(lo.SumBy(rows, func(r SummaryRow) int { return r.Train })),
		strconv.Itoa(lo.SumBy(rows, func(r SummaryRow) int { return r.Val })),
		FormatBytes(lo.SumBy(rows, func(r SummaryRow) int64 { return r.Bytes })),
	)
	return errors.Trace(table.Render())
}
