// airlines.go
package processor

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"FlightDelays/src/utils"
)

// Columns of the top-airlines report.
const (
	ColTotalFlights   = "TOTAL_FLIGHTS"
	ColDelayedFlights = "DELAYED_FLIGHTS"
	ColDelayPct       = "DELAY_PCT"
)

// TopAirlines ranks airlines by cleaned flight volume, descending, with the
// delay percentage as an ascending tie-break (fewer delays wins), and keeps
// the opts.TopN busiest. Airlines with no delayed flight get a delayed count
// of 0 through the left join, and the airline reference is also left-joined,
// so a code without a reference row keeps its rank with an NA name.
func TopAirlines(flights, airlines dataframe.DataFrame, opts Options) (dataframe.DataFrame, error) {
	if airlines.Err != nil {
		return dataframe.DataFrame{}, airlines.Err
	}
	clean, err := Clean(flights, opts)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if clean.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("no flights survived cleaning")
	}

	totals := clean.GroupBy(ColAirline).Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_COUNT},
		[]string{ColFlightNum},
	).Rename(ColTotalFlights, ColFlightNum+"_COUNT")
	if totals.Err != nil {
		return dataframe.DataFrame{}, totals.Err
	}

	merged := totals
	delayed := clean.Filter(dataframe.F{
		Colname:    ColDelayed,
		Comparator: series.Eq,
		Comparando: true,
	})
	if delayed.Err != nil {
		return dataframe.DataFrame{}, delayed.Err
	}
	if delayed.Nrow() > 0 {
		delayedCounts := delayed.GroupBy(ColAirline).Aggregation(
			[]dataframe.AggregationType{dataframe.Aggregation_COUNT},
			[]string{ColFlightNum},
		).Rename(ColDelayedFlights, ColFlightNum+"_COUNT")
		merged = totals.LeftJoin(delayedCounts, ColAirline)
		if merged.Err != nil {
			return dataframe.DataFrame{}, merged.Err
		}
	}

	// Unmatched airlines carry an NA delayed count after the left join,
	// which stands for zero delayed flights.
	totalsF := merged.Col(ColTotalFlights).Float()
	var delayedF []float64
	if utils.HasColumn(merged, ColDelayedFlights) {
		delayedF = merged.Col(ColDelayedFlights).Float()
	}
	totalN := make([]int, len(totalsF))
	delayedN := make([]int, len(totalsF))
	pct := make([]float64, len(totalsF))
	for i, total := range totalsF {
		var d float64
		if delayedF != nil && !math.IsNaN(delayedF[i]) {
			d = delayedF[i]
		}
		totalN[i] = int(total)
		delayedN[i] = int(d)
		pct[i] = d / total * 100
	}

	ranked := merged.
		Mutate(series.New(totalN, series.Int, ColTotalFlights)).
		Mutate(series.New(delayedN, series.Int, ColDelayedFlights)).
		Mutate(series.New(pct, series.Float, ColDelayPct)).
		Arrange(dataframe.RevSort(ColTotalFlights), dataframe.Sort(ColDelayPct))
	if ranked.Err != nil {
		return dataframe.DataFrame{}, ranked.Err
	}

	n := opts.TopN
	if ranked.Nrow() < n {
		n = ranked.Nrow()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	top := ranked.Subset(idx)
	if top.Err != nil {
		return dataframe.DataFrame{}, top.Err
	}

	ref := airlines.
		Rename(ColAirlineName, ColAirline).
		Rename(ColAirline, ColIATACode)
	if ref.Err != nil {
		return dataframe.DataFrame{}, ref.Err
	}
	out := top.
		LeftJoin(ref, ColAirline).
		Select([]string{ColAirline, ColAirlineName, ColTotalFlights, ColDelayedFlights, ColDelayPct})
	return out, out.Err
}
