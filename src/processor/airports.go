// airports.go
package processor

import (
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// FlightsPerAirport counts cleaned flights per origin airport. The airport
// reference is joined with an inner join, so flights whose origin has no
// reference row are dropped. The result always has one row per allow-listed
// code, in allow-list order, with an NA count (not zero) for codes that had
// no surviving flights.
func FlightsPerAirport(flights, airports dataframe.DataFrame, opts Options) (dataframe.DataFrame, error) {
	if airports.Err != nil {
		return dataframe.DataFrame{}, airports.Err
	}
	clean, err := Clean(flights, opts)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	ref := airports.Rename(ColOrigin, ColIATACode)
	if ref.Err != nil {
		return dataframe.DataFrame{}, ref.Err
	}
	joined := clean.InnerJoin(ref, ColOrigin)
	if joined.Err != nil {
		return dataframe.DataFrame{}, joined.Err
	}

	counts := make(map[string]int)
	if joined.Nrow() > 0 {
		grouped := joined.GroupBy(ColOrigin).Aggregation(
			[]dataframe.AggregationType{dataframe.Aggregation_COUNT},
			[]string{ColFlightNum},
		)
		if grouped.Err != nil {
			return dataframe.DataFrame{}, grouped.Err
		}
		codes := grouped.Col(ColOrigin).Records()
		nums := grouped.Col(ColFlightNum + "_COUNT").Float()
		for i, code := range codes {
			counts[code] = int(nums[i])
		}
	}

	// Reindex to the fixed airport order, NA where a code never occurs.
	recs := make([]string, len(opts.Airports))
	for i, code := range opts.Airports {
		if n, ok := counts[code]; ok {
			recs[i] = strconv.Itoa(n)
		} else {
			recs[i] = "NaN"
		}
	}
	out := dataframe.New(
		series.New(opts.Airports, series.String, ColOrigin),
		series.New(recs, series.Int, "FLIGHTS"),
	)
	return out, out.Err
}
