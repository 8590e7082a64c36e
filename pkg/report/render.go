package report

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/psantana5/wmsreport/pkg/wms"
)

// RenderSummary formats summary rows into aligned text lines.
func RenderSummary(rows []SummaryRow) []string {
	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf, tablewriter.WithConfig(tablewriter.Config{
		Header: tw.CellConfig{
			// Keep column names like "%S" verbatim.
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
	}))
	table.Header("X", "STATE", "%S", "ID", "OPERATOR", "PROJECT", "CAMPAIGN", "PAYLOAD", "RUN")
	for _, row := range rows {
		table.Append(row.Flag, row.State, row.PercentSucceeded, row.WmsID,
			row.Operator, row.Project, row.Campaign, row.Payload, row.Run)
	}
	table.Render()
	return splitLines(&buf)
}

// RenderBreakdown formats the per-label breakdown into aligned text lines.
// The TOTAL row renders as its own table so the column headers repeat
// above the per-label detail, separating aggregate from detail.
func RenderBreakdown(b *Breakdown) []string {
	header := breakdownHeader()

	var buf bytes.Buffer
	totalTable := newBreakdownTable(&buf)
	totalTable.Header(header...)
	totalTable.Append(breakdownCells(b.Total)...)
	totalTable.Render()
	lines := splitLines(&buf)

	buf.Reset()
	detailTable := newBreakdownTable(&buf)
	detailTable.Header(header...)
	for _, row := range b.Rows {
		detailTable.Append(breakdownCells(row)...)
	}
	detailTable.Render()
	return append(lines, splitLines(&buf)...)
}

// newBreakdownTable left-aligns the label column and right-aligns the
// state count and EXPECTED columns.
func newBreakdownTable(buf *bytes.Buffer) *tablewriter.Table {
	aligns := []tw.Align{tw.AlignLeft}
	for range wms.AllStates() {
		aligns = append(aligns, tw.AlignRight)
	}
	aligns = append(aligns, tw.AlignRight)

	return tablewriter.NewTable(buf, tablewriter.WithConfig(tablewriter.Config{
		Header: tw.CellConfig{
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{PerColumn: aligns},
		},
	}))
}

func breakdownHeader() []any {
	header := []any{" "}
	for _, state := range wms.AllStates() {
		header = append(header, state.String())
	}
	return append(header, "EXPECTED")
}

func breakdownCells(row BreakdownRow) []any {
	cells := []any{row.Label}
	for _, state := range wms.AllStates() {
		cells = append(cells, strconv.Itoa(row.Counts[state]))
	}
	return append(cells, strconv.Itoa(row.Expected))
}

func splitLines(buf *bytes.Buffer) []string {
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
