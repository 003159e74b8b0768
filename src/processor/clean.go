// clean.go
package processor

import (
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"FlightDelays/src/utils"
)

// Column names of the raw flight table (2015 on-time performance layout).
const (
	ColYear      = "YEAR"
	ColMonth     = "MONTH"
	ColDay       = "DAY"
	ColAirline   = "AIRLINE"
	ColFlightNum = "FLIGHT_NUMBER"
	ColOrigin    = "ORIGIN_AIRPORT"
	ColSchedDep  = "SCHEDULED_DEPARTURE"
	ColDepDelay  = "DEPARTURE_DELAY"
	ColDelayed   = "DELAYED"
)

// Reference table columns.
const (
	ColIATACode    = "IATA_CODE"
	ColAirlineName = "AIRLINE_NAME"
)

// Options holds the airport allow-list and the delay thresholds as named
// configuration so tests can vary them.
type Options struct {
	Airports    []string // origin codes kept by cleaning, also the report order
	MaxDelayMin int      // records with a larger departure delay are dropped
	DelayedMin  int      // records at or above this delay are flagged DELAYED
	TopN        int      // number of airlines in the top-airlines report
}

func DefaultOptions() Options {
	return Options{
		Airports:    []string{"BOS", "JFK", "SFO", "LAX"},
		MaxDelayMin: 1440,
		DelayedMin:  15,
		TopN:        3,
	}
}

// Clean turns a raw flight table into the analysis-ready one:
//
//  1. rows with a missing value in any column are dropped
//  2. only allow-listed origin airports are kept
//  3. departure delays above MaxDelayMin are dropped (negatives kept)
//  4. the flight number becomes text
//  5. YEAR/MONTH/DAY and the HHMM scheduled departure collapse into one
//     timestamp string; rows whose HHMM is not a valid clock reading are
//     dropped, out-of-range date components fail the whole call
//  6. DELAYED is true when the delay is at least DelayedMin
//  7. YEAR/MONTH/DAY are dropped
//
// The input is never mutated and cleaning an already-clean table is a no-op,
// so every reporter can re-derive its own copy.
func Clean(df dataframe.DataFrame, opts Options) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}
	for _, name := range []string{ColAirline, ColFlightNum, ColOrigin, ColSchedDep, ColDepDelay} {
		if !utils.HasColumn(df, name) {
			return dataframe.DataFrame{}, fmt.Errorf("missing required column %s", name)
		}
	}

	out := dropMissing(df.Copy())
	if out.Err != nil {
		return dataframe.DataFrame{}, out.Err
	}

	out = out.Filter(dataframe.F{
		Colname:    ColOrigin,
		Comparator: series.In,
		Comparando: opts.Airports,
	})
	if out.Err != nil {
		return dataframe.DataFrame{}, out.Err
	}

	// Coerce the delay column before filtering on it. A non-numeric delay
	// fails the whole call, there is no per-row recovery.
	delays, err := floatColumn(out, ColDepDelay)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	out = out.
		Mutate(series.New(delays, series.Float, ColDepDelay)).
		Filter(dataframe.F{
			Colname:    ColDepDelay,
			Comparator: series.LessEq,
			Comparando: float64(opts.MaxDelayMin),
		})
	if out.Err != nil {
		return dataframe.DataFrame{}, out.Err
	}

	out = out.Mutate(series.New(out.Col(ColFlightNum).Records(), series.String, ColFlightNum))

	// Only raw tables still carry the split date columns.
	if utils.HasColumn(out, ColYear) {
		out, err = combineDeparture(out)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
	}

	flags := make([]bool, out.Nrow())
	for i, d := range out.Col(ColDepDelay).Float() {
		flags[i] = d >= float64(opts.DelayedMin)
	}
	out = out.Mutate(series.New(flags, series.Bool, ColDelayed))
	return out, out.Err
}

// dropMissing removes every row that has an NA or empty value in any column.
func dropMissing(df dataframe.DataFrame) dataframe.DataFrame {
	keep := make([]bool, df.Nrow())
	for i := range keep {
		keep[i] = true
	}
	for _, name := range df.Names() {
		col := df.Col(name)
		for i := 0; i < col.Len(); i++ {
			el := col.Elem(i)
			if el.IsNA() || el.String() == "" {
				keep[i] = false
			}
		}
	}
	return df.Subset(keep)
}

// combineDeparture replaces the HHMM scheduled departure with a full
// "2006-01-02 15:04:05" timestamp and drops the split date columns. Rows
// whose HHMM encodes an impossible time of day (2400, 1399, ...) are dropped;
// the raw feed does not guarantee them and they cannot form a timestamp.
func combineDeparture(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	years, err := intColumn(df, ColYear)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	months, err := intColumn(df, ColMonth)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	days, err := intColumn(df, ColDay)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	scheds, err := intColumn(df, ColSchedDep)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	stamps := make([]string, df.Nrow())
	keep := make([]bool, df.Nrow())
	for i := range stamps {
		if months[i] < 1 || months[i] > 12 || days[i] < 1 || days[i] > 31 {
			return dataframe.DataFrame{}, fmt.Errorf(
				"row %d: invalid date components %d-%d-%d", i, years[i], months[i], days[i])
		}
		hour, minute := scheds[i]/100, scheds[i]%100
		if scheds[i] < 0 || hour > 23 || minute > 59 {
			continue
		}
		keep[i] = true
		stamps[i] = fmt.Sprintf("%04d-%02d-%02d %02d:%02d:00",
			years[i], months[i], days[i], hour, minute)
	}

	out := df.
		Mutate(series.New(stamps, series.String, ColSchedDep)).
		Subset(keep).
		Drop([]string{ColYear, ColMonth, ColDay})
	return out, out.Err
}

func intColumn(df dataframe.DataFrame, name string) ([]int, error) {
	if !utils.HasColumn(df, name) {
		return nil, fmt.Errorf("missing required column %s", name)
	}
	recs := df.Col(name).Records()
	vals := make([]int, len(recs))
	for i, r := range recs {
		v, err := strconv.Atoi(r)
		if err != nil {
			return nil, fmt.Errorf("column %s: row %d: %q is not an integer", name, i, r)
		}
		vals[i] = v
	}
	return vals, nil
}

func floatColumn(df dataframe.DataFrame, name string) ([]float64, error) {
	if !utils.HasColumn(df, name) {
		return nil, fmt.Errorf("missing required column %s", name)
	}
	recs := df.Col(name).Records()
	vals := make([]float64, len(recs))
	for i, r := range recs {
		v, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: row %d: %q is not numeric", name, i, r)
		}
		vals[i] = v
	}
	return vals, nil
}
