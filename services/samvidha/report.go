package samvidha

import (
	"sort"

	"samvidha-backend/lib/attendance"

	"github.com/xuri/excelize/v2"
)

var reportHeader = []any{
	"S.No", "Code", "Subject", "Present", "Absent", "Percentage", "Status",
}

// SubjectReport renders the subject table as a spreadsheet, one row
// per subject in code order, with the overall summary at the bottom.
func SubjectReport(result attendance.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	err := setRow(f, sheet, 1, reportHeader)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(result.Subjects))
	for code := range result.Subjects {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	row := 2
	for i, code := range codes {
		sub := result.Subjects[code]
		err := setRow(f, sheet, row, []any{
			i + 1, code, sub.Name,
			sub.Present, sub.Absent, sub.Percentage, sub.Status,
		})
		if err != nil {
			return nil, err
		}
		row++
	}

	err = setRow(f, sheet, row+1, []any{
		"", "Overall", "",
		result.Overall.Present, result.Overall.Absent, result.Overall.Percentage, "",
	})
	if err != nil {
		return nil, err
	}

	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		err = f.SetCellValue(sheet, cell, v)
		if err != nil {
			return err
		}
	}
	return nil
}
