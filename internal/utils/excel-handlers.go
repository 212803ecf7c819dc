package utils

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// Loadplan sheets have no single header row, so rows come back positionally;
// callers address cells through their factory's column schema.

func ReadSheetRows(path string, sheetName string, skipRows int) ([][]string, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read Excel file: %w", err)
	}
	defer xlsx.Close()

	return sheetRows(xlsx, sheetName, skipRows)
}

func ReadUploadedSheetRows(c *gin.Context, formFieldName, sheetName string, skipRows int) ([][]string, string, error) {
	file, err := c.FormFile(formFieldName)
	if err != nil {
		return nil, "", fmt.Errorf("file upload error: %w", err)
	}
	fileName := file.Filename

	f, err := file.Open()
	if err != nil {
		return nil, fileName, fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	xlsx, err := excelize.OpenReader(f)
	if err != nil {
		return nil, fileName, fmt.Errorf("unable to read Excel file: %w", err)
	}
	defer xlsx.Close()

	rows, err := sheetRows(xlsx, sheetName, skipRows)
	return rows, fileName, err
}

func sheetRows(xlsx *excelize.File, sheetName string, skipRows int) ([][]string, error) {
	if sheetName == "" {
		sheets := xlsx.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("no sheet found in the Excel file")
		}
		sheetName = sheets[0]
	}

	rows, err := xlsx.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("unable to read rows from sheet: %w", err)
	}

	if len(rows) <= skipRows {
		return nil, errors.New("no data found in the Excel file")
	}

	return rows[skipRows:], nil
}
