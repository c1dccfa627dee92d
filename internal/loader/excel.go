package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/boxkit/boxfinder/internal/model"
)

// readExcel parses an instance from the first sheet of an XLSX workbook.
// Rows carry the same fields as the CSV layout.
func readExcel(path string) (*model.Instance, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	return instanceFromRows(rows)
}
