package storage

import (
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteReports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.xlsx")

	counts := dataframe.LoadRecords([][]string{
		{"ORIGIN_AIRPORT", "FLIGHTS"},
		{"BOS", "2"},
		{"JFK", "1"},
	})
	rates := dataframe.LoadRecords([][]string{
		{"MONTH", "BOS"},
		{"January", "0.5"},
	})

	err := WriteReports(path, []Report{
		{Name: "FlightsPerAirport", Data: counts},
		{Name: "MonthlyDelayRate", Data: rates},
	})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"FlightsPerAirport", "MonthlyDelayRate"}, f.GetSheetList())

	v, err := f.GetCellValue("FlightsPerAirport", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ORIGIN_AIRPORT", v)
	v, err = f.GetCellValue("FlightsPerAirport", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
	v, err = f.GetCellValue("MonthlyDelayRate", "A2")
	require.NoError(t, err)
	assert.Equal(t, "January", v)
}
