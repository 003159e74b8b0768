package storage

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
)

// Report pairs a sheet name with the table to write.
type Report struct {
	Name string
	Data dataframe.DataFrame
}

// WriteReports saves every report to its own sheet of a single workbook.
func WriteReports(path string, reports []Report) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, rep := range reports {
		var err error
		if i == 0 {
			err = f.SetSheetName("Sheet1", rep.Name)
		} else {
			_, err = f.NewSheet(rep.Name)
		}
		if err != nil {
			return fmt.Errorf("create sheet %s: %w", rep.Name, err)
		}
		if err := writeSheet(f, rep.Name, rep.Data); err != nil {
			return fmt.Errorf("write sheet %s: %w", rep.Name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, df dataframe.DataFrame) error {
	names := df.Names()
	for i, name := range names {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for row := 0; row < df.Nrow(); row++ {
		for col, name := range names {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, df.Col(name).Val(row)); err != nil {
				return err
			}
		}
	}
	return nil
}
