// Package export writes entity listings as Excel workbooks and uploads them
// to object storage.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"fleetdash/fleet"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// moneyFormat is applied to currency columns so the cells stay numeric.
const moneyFormat = "$#,##0.00"

var moneyColumns = map[string]bool{"price": true, "totalSpent": true}

// Filename is the download name for an export of entity taken at t.
func Filename(entity string, t time.Time) string {
	return fmt.Sprintf("fleetdash-%s-%s.xlsx", entity, t.Format("20060102-150405"))
}

// SheetName turns an entity key into a sheet title, e.g. "work-orders" -> "Work Orders".
func SheetName(entity string) string {
	words := strings.Split(entity, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// WriteXLSX writes l's columns and records, in listing order, as one sheet.
func WriteXLSX(w io.Writer, l *fleet.Listing) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(l.Entity)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("export: sheet name: %w", err)
	}

	header := make([]any, len(l.Columns))
	for i, c := range l.Columns {
		header[i] = c.Label
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}
	for i, rec := range l.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := rec
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("export: row %d: %w", i+1, err)
		}
	}

	if len(l.Columns) > 0 {
		last, err := excelize.ColumnNumberToName(len(l.Columns))
		if err != nil {
			return err
		}
		bold, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("export: style: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", last+"1", bold); err != nil {
			return fmt.Errorf("export: header style: %w", err)
		}
		if err := f.SetColWidth(sheet, "A", last, 20); err != nil {
			return fmt.Errorf("export: widths: %w", err)
		}
		if err := styleMoney(f, sheet, l); err != nil {
			return err
		}
		ref := fmt.Sprintf("A1:%s%d", last, len(l.Records)+1)
		if err := f.AutoFilter(sheet, ref, nil); err != nil {
			return fmt.Errorf("export: autofilter: %w", err)
		}
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("export: panes: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}

func styleMoney(f *excelize.File, sheet string, l *fleet.Listing) error {
	if len(l.Records) == 0 {
		return nil
	}
	format := moneyFormat
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return fmt.Errorf("export: money style: %w", err)
	}
	for i, c := range l.Columns {
		if !moneyColumns[c.Key] {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, col+"2", fmt.Sprintf("%s%d", col, len(l.Records)+1), style); err != nil {
			return fmt.Errorf("export: money cells: %w", err)
		}
	}
	return nil
}
