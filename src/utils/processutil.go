package utils

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// TimeLayout is the format of the combined departure timestamp column.
const TimeLayout = "2006-01-02 15:04:05"

func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// HasColumn reports whether the DataFrame has a column with that name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// ParseTime reads a combined departure timestamp out of a dataframe element.
func ParseTime(el series.Element) (time.Time, error) {
	if el.IsNA() {
		return time.Time{}, fmt.Errorf("missing timestamp")
	}
	return time.Parse(TimeLayout, el.String())
}
