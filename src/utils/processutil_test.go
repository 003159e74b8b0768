package utils

import (
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"BOS", "JFK"}, "JFK"))
	assert.False(t, Contains([]string{"BOS", "JFK"}, "ORD"))
	assert.True(t, Contains([]int{1, 2}, 2))
}

func TestHasColumn(t *testing.T) {
	df := dataframe.New(series.New([]string{"BOS"}, series.String, "ORIGIN_AIRPORT"))
	assert.True(t, HasColumn(df, "ORIGIN_AIRPORT"))
	assert.False(t, HasColumn(df, "DEST_AIRPORT"))
}

func TestParseTime(t *testing.T) {
	s := series.New([]string{"2015-01-05 13:30:00", "not a time", "NaN"}, series.String, "TS")

	got, err := ParseTime(s.Elem(0))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2015, 1, 5, 13, 30, 0, 0, time.UTC), got)

	_, err = ParseTime(s.Elem(1))
	require.Error(t, err)
}
