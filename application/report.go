package application

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/driverdata/dcvt-devkit/domain"
)

const absentCell = "-"

// statusColors maps each status to its display color.
//
//nolint:gochecknoglobals // fixed display palette
var statusColors = map[domain.Status]*color.Color{
	domain.StatusUpToDate:     color.New(color.FgGreen),
	domain.StatusOutdated:     color.New(color.FgYellow),
	domain.StatusNotInstalled: color.New(color.FgRed),
	domain.StatusUnknown:      color.New(color.Faint),
}

// RenderJSON writes the results as an indented JSON array.
func RenderJSON(w io.Writer, results []domain.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

// RenderOutcomesJSON writes per-package upgrade outcomes as an indented
// JSON array.
func RenderOutcomesJSON(w io.Writer, outcomes []domain.UpgradeOutcome) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(outcomes); err != nil {
		return fmt.Errorf("failed to encode upgrade outcomes: %w", err)
	}
	return nil
}

// RenderOutcomesTable writes per-package upgrade outcomes as a short
// summary: one line per package and a closing tally.
func RenderOutcomesTable(w io.Writer, outcomes []domain.UpgradeOutcome) {
	if len(outcomes) == 0 {
		return
	}

	succeeded := color.New(color.FgGreen)
	failed := color.New(color.FgRed)

	installed := 0
	fmt.Fprintln(w)
	for _, outcome := range outcomes {
		if outcome.OK {
			installed++
			fmt.Fprintf(w, "%s %s\n", succeeded.Sprint("installed"), outcome.Name)
			continue
		}
		fmt.Fprintf(w, "%s %s: %s\n", failed.Sprint("failed"), outcome.Name, outcome.Error)
	}
	fmt.Fprintf(w, "%d of %d packages upgraded\n", installed, len(outcomes))
}

// RenderTable writes the results as an aligned text table with colored
// statuses. Column widths follow the widest cell, padding before coloring
// so ANSI escapes do not break the alignment.
func RenderTable(w io.Writer, results []domain.Result) {
	header := []string{"package", "spec", "installed", "latest", "status"}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Name,
			orAbsent(r.Spec),
			orAbsent(r.Installed),
			orAbsent(r.Latest),
			string(r.Status),
		})
	}

	widths := columnWidths(header, rows)

	writeRow(w, header, widths, nil)
	fmt.Fprintln(w, strings.Repeat("-", totalWidth(widths)))
	for i, row := range rows {
		writeRow(w, row, widths, statusColors[results[i].Status])
	}
}

func orAbsent(value string) string {
	if value == "" {
		return absentCell
	}
	return value
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func totalWidth(widths []int) int {
	total := 2 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return total
}

// writeRow prints one padded row; statusColor, when set, is applied to the
// last column only.
func writeRow(w io.Writer, row []string, widths []int, statusColor *color.Color) {
	cells := make([]string, len(row))
	for i, cell := range row {
		padded := cell + strings.Repeat(" ", widths[i]-len(cell))
		if statusColor != nil && i == len(row)-1 {
			padded = statusColor.Sprint(padded)
		}
		cells[i] = padded
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
}
