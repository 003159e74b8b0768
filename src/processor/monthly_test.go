package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyDelayRateCalendarOrder(t *testing.T) {
	// Input months deliberately out of order and sparse.
	raw := rawFlights(
		[]string{"2015", "3", "1", "AA", "100", "BOS", "900", "0"},
		[]string{"2015", "3", "2", "AA", "101", "BOS", "900", "0"},
		[]string{"2015", "1", "5", "AA", "102", "BOS", "1330", "20"},
		[]string{"2015", "1", "6", "AA", "103", "BOS", "1330", "0"},
		[]string{"2015", "1", "7", "AA", "104", "BOS", "1330", "0"},
		[]string{"2015", "2", "9", "DL", "200", "JFK", "945", "45"},
	)

	out, err := MonthlyDelayRate(raw, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, out.Nrow())

	assert.Equal(t, []string{"January", "February", "March"}, out.Col("MONTH").Records())
	assert.Equal(t, []string{"MONTH", "BOS", "JFK", "SFO", "LAX"}, out.Names())

	// One of three January BOS flights was delayed; rounded to 4 places.
	bos := out.Col("BOS")
	assert.Equal(t, 0.3333, bos.Float()[0])
	assert.True(t, bos.Elem(1).IsNA(), "BOS had no February flights")
	assert.Equal(t, 0.0, bos.Float()[2])

	jfk := out.Col("JFK")
	assert.True(t, jfk.Elem(0).IsNA())
	assert.Equal(t, 1.0, jfk.Float()[1])

	// SFO and LAX never fly, their columns are all NA.
	for i := 0; i < out.Nrow(); i++ {
		assert.True(t, out.Col("SFO").Elem(i).IsNA())
		assert.True(t, out.Col("LAX").Elem(i).IsNA())
	}
}

func TestMonthlyDelayRateEmptyInputFails(t *testing.T) {
	raw := rawFlights(
		[]string{"2015", "1", "5", "AA", "100", "ORD", "1330", "20"},
	)
	_, err := MonthlyDelayRate(raw, DefaultOptions())
	require.Error(t, err)
}
