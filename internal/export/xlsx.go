package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/DaneLin/XRVis/internal/chartdata"
	"github.com/DaneLin/XRVis/internal/monitoring"
)

// WorkbookName is the spreadsheet holding every convention.
const WorkbookName = "chart_data.xlsx"

// WriteXLSX writes a workbook with one sheet per convention, named after the
// convention, each starting with a header row.
func (w *Writer) WriteXLSX(d *chartdata.Datasets) (File, error) {
	out := File{Name: WorkbookName, Format: "xlsx"}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			monitoring.Logf("failed to close workbook: %v", err)
		}
	}()

	for i, c := range chartdata.Conventions {
		sheet := string(c)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return out, fmt.Errorf("failed to name sheet %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return out, fmt.Errorf("failed to add sheet %s: %w", sheet, err)
		}

		header := make([]any, 0, 3)
		for _, h := range Header(c) {
			header = append(header, h)
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return out, fmt.Errorf("failed to write %s header: %w", sheet, err)
		}

		rows := Rows(d, c)
		for r, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return out, err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return out, fmt.Errorf("failed to write %s row %d: %w", sheet, r, err)
			}
		}
		out.Points += len(rows)
	}
	f.SetActiveSheet(0)

	wc, err := w.Create(WorkbookName)
	if err != nil {
		return out, err
	}
	if _, err := f.WriteTo(wc); err != nil {
		wc.Close()
		return out, fmt.Errorf("failed to write %s: %w", WorkbookName, err)
	}
	if err := wc.Close(); err != nil {
		return out, fmt.Errorf("failed to close %s: %w", WorkbookName, err)
	}
	monitoring.Logf("wrote %s (%d sheets)", w.path(WorkbookName), len(chartdata.Conventions))
	return out, nil
}
