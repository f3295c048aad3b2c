package models

import (
	"strconv"
	"strings"
)

// Captions of the result entries.
const (
	CaptionAverageDestination       = "average destination"
	CaptionWorstDestinationDistance = "worst destination distance"
)

// Result holds the rounded outcome of a calculation.
type Result struct {
	AverageDestination       [2]float64 `json:"average destination"`
	WorstDestinationDistance float64    `json:"worst destination distance"`
}

// Entry is a single caption/value line of a result.
type Entry struct {
	Caption string
	Value   string
}

// Entries returns the result lines in display order. Pairs are joined by a
// space and numbers use the shortest representation.
func (r Result) Entries() []Entry {
	return []Entry{
		{
			Caption: CaptionAverageDestination,
			Value: strings.Join([]string{
				formatNumber(r.AverageDestination[0]),
				formatNumber(r.AverageDestination[1]),
			}, " "),
		},
		{Caption: CaptionWorstDestinationDistance, Value: formatNumber(r.WorstDestinationDistance)},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
