package processor

import (
	"strconv"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airlineRef() dataframe.DataFrame {
	return dataframe.LoadRecords([][]string{
		{ColIATACode, ColAirline},
		{"AA", "American Airlines Inc."},
		{"DL", "Delta Air Lines Inc."},
		{"UA", "United Air Lines Inc."},
		{"WN", "Southwest Airlines Co."},
	})
}

// airlineFlights emits n rows for one airline out of BOS, the first
// nDelayed of them with a 30 minute delay.
func airlineFlights(code string, n, nDelayed int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		delay := "0"
		if i < nDelayed {
			delay = "30"
		}
		rows[i] = []string{"2015", "1", strconv.Itoa(i + 1), code,
			strconv.Itoa(100 + i), "BOS", "1330", delay}
	}
	return rows
}

func TestTopAirlinesRankingAndTieBreak(t *testing.T) {
	var rows [][]string
	rows = append(rows, airlineFlights("UA", 5, 0)...)
	rows = append(rows, airlineFlights("AA", 4, 2)...)
	rows = append(rows, airlineFlights("DL", 4, 1)...)
	rows = append(rows, airlineFlights("WN", 1, 1)...)
	raw := rawFlights(rows...)

	out, err := TopAirlines(raw, airlineRef(), DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, out.Nrow())

	// Volume descending, ties broken by the lower delay percentage.
	assert.Equal(t, []string{"UA", "DL", "AA"}, out.Col(ColAirline).Records())
	assert.Equal(t, []string{"5", "4", "4"}, out.Col(ColTotalFlights).Records())
	assert.Equal(t, []string{"0", "1", "2"}, out.Col(ColDelayedFlights).Records())
	assert.Equal(t, []float64{0, 25, 50}, out.Col(ColDelayPct).Float())
	assert.Equal(t, []string{
		"United Air Lines Inc.",
		"Delta Air Lines Inc.",
		"American Airlines Inc.",
	}, out.Col(ColAirlineName).Records())
}

func TestTopAirlinesKeepsRowWithoutReference(t *testing.T) {
	raw := rawFlights(airlineFlights("XX", 3, 1)...)

	out, err := TopAirlines(raw, airlineRef(), DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, out.Nrow())

	// Left join: the unknown code keeps its row with an NA name.
	assert.Equal(t, "XX", out.Col(ColAirline).Elem(0).String())
	assert.True(t, out.Col(ColAirlineName).Elem(0).IsNA())
}

func TestTopAirlinesNoDelayedFlights(t *testing.T) {
	var rows [][]string
	rows = append(rows, airlineFlights("AA", 2, 0)...)
	rows = append(rows, airlineFlights("DL", 1, 0)...)
	raw := rawFlights(rows...)

	out, err := TopAirlines(raw, airlineRef(), DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, out.Nrow())
	assert.Equal(t, []string{"0", "0"}, out.Col(ColDelayedFlights).Records())
	assert.Equal(t, []float64{0, 0}, out.Col(ColDelayPct).Float())
}

func TestTopAirlinesEmptyInputFails(t *testing.T) {
	raw := rawFlights(
		[]string{"2015", "1", "5", "AA", "100", "ORD", "1330", "20"},
	)
	_, err := TopAirlines(raw, airlineRef(), DefaultOptions())
	require.Error(t, err)
}
