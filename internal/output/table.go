package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/NivBraz/trendstats/internal/models"
)

// Table renders a two column item/count table
type Table struct {
	table  *tablewriter.Table
	header []string
	rows   [][]string
}

// NewTableWithWriter creates a table whose last column is right aligned
func NewTableWithWriter(w io.Writer, headers []string) *Table {
	align := make([]tw.Align, len(headers))
	for i := range align {
		align[i] = tw.AlignLeft
	}
	if len(align) > 1 {
		align[len(align)-1] = tw.AlignRight
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					PerColumn: align,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.Off,
				},
				Alignment: tw.CellAlignment{
					PerColumn: align,
				},
			},
		}),
	)

	return &Table{table: table, header: headers}
}

// AddRow adds a row to the table
func (t *Table) AddRow(row []string) {
	t.rows = append(t.rows, row)
}

// Render outputs the table
func (t *Table) Render() error {
	t.table.Header(t.header)
	if err := t.table.Bulk(t.rows); err != nil {
		return err
	}
	return t.table.Render()
}

// RenderReport prints one table per category
func RenderReport(w io.Writer, report models.Report) error {
	for _, tbl := range report.Tables {
		t := NewTableWithWriter(w, []string{tbl.Category, "Count"})
		for _, item := range tbl.Items {
			t.AddRow([]string{item.Item, strconv.Itoa(item.Count)})
		}
		if err := t.Render(); err != nil {
			return fmt.Errorf("failed to render %s table: %w", tbl.Category, err)
		}
	}
	return nil
}

// WriteJSON prints the report as indented JSON
func WriteJSON(w io.Writer, report models.Report) error {
	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
