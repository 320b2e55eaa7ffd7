package energy

import (
	"fmt"
	"slices"
	"time"
)

// Median returns the middle value of values, averaging the two middle values for even
// lengths. It returns 0 for an empty slice and does not modify values.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// SelectCleaner returns the points whose carbon and price are both at or below the series
// medians, in series order.
func SelectCleaner(series []EnergyPoint) []EnergyPoint {
	idx := cleanerIndices(series)
	out := make([]EnergyPoint, 0, len(idx))
	for _, i := range idx {
		out = append(out, series[i])
	}
	return out
}

func cleanerIndices(series []EnergyPoint) []int {
	carbon := make([]float64, len(series))
	price := make([]float64, len(series))
	for i, p := range series {
		carbon[i] = p.Carbon
		price[i] = p.Price
	}
	carbonMed := Median(carbon)
	priceMed := Median(price)

	out := make([]int, 0, len(series)/2)
	for i, p := range series {
		if p.Carbon <= carbonMed && p.Price <= priceMed {
			out = append(out, i)
		}
	}
	return out
}

// CleanerHours returns the hour timestamps of SelectCleaner(series).
func CleanerHours(series []EnergyPoint) []string {
	cleaner := SelectCleaner(series)
	hours := make([]string, 0, len(cleaner))
	for _, p := range cleaner {
		hours = append(hours, p.Hour)
	}
	return hours
}

// HourLabel formats the hour of t on a 12-hour clock, e.g. 12AM, 9AM, 12PM, 7PM.
func HourLabel(t time.Time) string {
	hour := t.UTC().Hour()
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d%s", display, period)
}
