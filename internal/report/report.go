package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"

	"github.com/locvowork/taskchat_backend/internal/domain"
)

// ColumnConfig defines one column of the export sheet.
type ColumnConfig struct {
	Field  string  `yaml:"field"`
	Header string  `yaml:"header"`
	Width  float64 `yaml:"width"`
}

// Layout describes the exported workbook.
type Layout struct {
	Sheet   string         `yaml:"sheet"`
	Title   string         `yaml:"title"`
	Columns []ColumnConfig `yaml:"columns"`
}

// DefaultLayout covers every task field.
func DefaultLayout() Layout {
	return Layout{
		Sheet: "Tasks",
		Title: "Task List",
		Columns: []ColumnConfig{
			{Field: "id", Header: "ID", Width: 28},
			{Field: "title", Header: "Title", Width: 30},
			{Field: "description", Header: "Description", Width: 50},
			{Field: "status", Header: "Done", Width: 10},
			{Field: "createdAt", Header: "Created", Width: 22},
			{Field: "updatedAt", Header: "Updated", Width: 22},
		},
	}
}

// LoadLayout reads a layout from the YAML file at path. An empty path or a
// missing file falls back to DefaultLayout.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultLayout(), nil
	}
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read report config %s: %w", path, err)
	}

	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to parse report config %s: %w", path, err)
	}
	if layout.Sheet == "" {
		layout.Sheet = DefaultLayout().Sheet
	}
	if len(layout.Columns) == 0 {
		layout.Columns = DefaultLayout().Columns
	}
	return layout, nil
}

// BuildTaskWorkbook renders tasks into a workbook: a bold title row merged
// across the columns when the layout has a title, a bold header row, then
// one row per task in the order given.
func BuildTaskWorkbook(layout Layout, tasks []domain.Task) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", layout.Sheet)

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create bold style: %w", err)
	}

	headerRow := 1
	if layout.Title != "" {
		f.SetCellValue(layout.Sheet, "A1", layout.Title)
		endCell, err := excelize.CoordinatesToCellName(len(layout.Columns), 1)
		if err != nil {
			return nil, fmt.Errorf("failed to place title cell: %w", err)
		}
		if len(layout.Columns) > 1 {
			f.MergeCell(layout.Sheet, "A1", endCell)
		}
		f.SetCellStyle(layout.Sheet, "A1", endCell, boldStyle)
		headerRow = 2
	}

	for i, col := range layout.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("failed to place header cell: %w", err)
		}
		f.SetCellValue(layout.Sheet, cell, col.Header)
		f.SetCellStyle(layout.Sheet, cell, cell, boldStyle)
		if col.Width > 0 {
			colName, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve column name: %w", err)
			}
			f.SetColWidth(layout.Sheet, colName, colName, col.Width)
		}
	}

	for r, t := range tasks {
		for i, col := range layout.Columns {
			cell, err := excelize.CoordinatesToCellName(i+1, headerRow+1+r)
			if err != nil {
				return nil, fmt.Errorf("failed to place data cell: %w", err)
			}
			f.SetCellValue(layout.Sheet, cell, taskFieldValue(t, col.Field))
		}
	}

	return f, nil
}

// taskFieldValue maps a layout field name to the task's value. Unknown
// fields render as empty cells.
func taskFieldValue(t domain.Task, field string) interface{} {
	switch field {
	case "id":
		return t.ID
	case "title":
		return t.Title
	case "description":
		return t.Description
	case "status":
		return t.Status
	case "createdAt":
		return t.CreatedAt.Format(time.RFC3339)
	case "updatedAt":
		return t.UpdatedAt.Format(time.RFC3339)
	}
	return ""
}
