// reader.go
package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/tealeg/xlsx"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// nanValues are the cell contents treated as missing when loading a table.
var nanValues = []string{"", "NA", "NaN"}

// ReadTable loads one tabular dataset into a DataFrame. The format is picked
// by extension: .csv, or .xlsx (first sheet, header in the first row).
// charset may be "", "utf-8", "latin1" or "gbk"; non-UTF-8 CSV input is
// decoded before parsing.
func ReadTable(path, charset string) (dataframe.DataFrame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path, charset)
	case ".xlsx":
		return readXLSX(path)
	default:
		return dataframe.DataFrame{}, fmt.Errorf("unsupported table format: %s", path)
	}
}

func readCSV(path, charset string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r, err := decodeReader(f, charset)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read %s: %w", path, df.Err)
	}
	return df, nil
}

// decodeReader wraps r so the CSV parser always sees UTF-8.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	var dec *encoding.Decoder
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1":
		dec = charmap.ISO8859_1.NewDecoder()
	case "gbk":
		dec = simplifiedchinese.GBK.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	return transform.NewReader(r, dec), nil
}

func readXLSX(path string) (dataframe.DataFrame, error) {
	xlFile, err := xlsx.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	if len(xlFile.Sheets) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%s has no worksheets", path)
	}
	df, err := sheetToDataFrame(xlFile.Sheets[0])
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read %s: %w", path, err)
	}
	return df, nil
}

// sheetToDataFrame converts an xlsx.Sheet to a DataFrame, taking the first
// row as the header.
func sheetToDataFrame(sheet *xlsx.Sheet) (dataframe.DataFrame, error) {
	if len(sheet.Rows) < 2 {
		return dataframe.DataFrame{}, fmt.Errorf("sheet %s has no data rows", sheet.Name)
	}

	var headers []string
	for _, cell := range sheet.Rows[0].Cells {
		headers = append(headers, cell.Value)
	}

	records := [][]string{headers}
	for _, row := range sheet.Rows[1:] {
		rec := make([]string, len(headers))
		for i, cell := range row.Cells {
			if i < len(headers) {
				rec[i] = cell.Value
			}
		}
		records = append(records, rec)
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	)
	return df, df.Err
}
