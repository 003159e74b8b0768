// monthly.go
package processor

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"FlightDelays/src/utils"
)

const colMonthName = "MONTH_NAME"

// MonthlyDelayRate pivots the mean of the DELAYED flag per (origin airport,
// month) into one row per observed month and one column per allow-listed
// airport. Rates are fractions in [0,1] rounded to 4 decimal places, NA
// where an airport had no flights that month. Rows follow the calendar,
// January through December, regardless of input order.
func MonthlyDelayRate(flights dataframe.DataFrame, opts Options) (dataframe.DataFrame, error) {
	clean, err := Clean(flights, opts)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if clean.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("no flights survived cleaning")
	}

	stampCol := clean.Col(ColSchedDep)
	months := make([]string, clean.Nrow())
	for i := range months {
		t, err := utils.ParseTime(stampCol.Elem(i))
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("row %d: bad departure timestamp: %w", i, err)
		}
		months[i] = t.Month().String()
	}

	grouped := clean.
		Mutate(series.New(months, series.String, colMonthName)).
		GroupBy(ColOrigin, colMonthName).
		Aggregation(
			[]dataframe.AggregationType{dataframe.Aggregation_MEAN},
			[]string{ColDelayed},
		)
	if grouped.Err != nil {
		return dataframe.DataFrame{}, grouped.Err
	}

	// month name -> origin code -> rounded delay rate
	rates := make(map[string]map[string]float64)
	codes := grouped.Col(ColOrigin).Records()
	names := grouped.Col(colMonthName).Records()
	means := grouped.Col(ColDelayed + "_MEAN").Float()
	for i, code := range codes {
		m := names[i]
		if rates[m] == nil {
			rates[m] = make(map[string]float64)
		}
		rates[m][code] = math.Round(means[i]*10000) / 10000
	}

	var monthRows []string
	for m := time.January; m <= time.December; m++ {
		if _, ok := rates[m.String()]; ok {
			monthRows = append(monthRows, m.String())
		}
	}

	cols := []series.Series{series.New(monthRows, series.String, "MONTH")}
	for _, code := range opts.Airports {
		vals := make([]string, len(monthRows))
		for i, m := range monthRows {
			if rate, ok := rates[m][code]; ok {
				vals[i] = strconv.FormatFloat(rate, 'f', -1, 64)
			} else {
				vals[i] = "NaN"
			}
		}
		cols = append(cols, series.New(vals, series.Float, code))
	}
	out := dataframe.New(cols...)
	return out, out.Err
}
