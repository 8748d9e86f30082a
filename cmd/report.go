package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-hittables/pkg/core"
	"github.com/olekukonko/tablewriter"
)

// Render a left-aligned table and return it as a string. A nil footer is omitted.
func renderTable(header []string, rows [][]string, footer []string) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	table.AppendBulk(rows)
	if footer != nil {
		table.SetFooter(footer)
	}
	table.Render()

	return buf.String()
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X, v.Y, v.Z)
}

func formatPercent(count, total int) string {
	if total == 0 {
		return "0.0 %"
	}
	return fmt.Sprintf("%02.1f %%", 100*float64(count)/float64(total))
}

func axisName(axis int) string {
	switch axis {
	case 0:
		return "X"
	case 1:
		return "Y"
	default:
		return "Z"
	}
}
