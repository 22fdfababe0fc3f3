// Package stats derives the dashboard aggregates from a question event list.
// Every function recomputes from scratch; nothing is cached between calls.
package stats

import (
	"sort"

	mstats "github.com/montanaflynn/stats"

	"github.com/roach88/codelog/internal/record"
)

// PlatformCount is the number of events logged against one platform.
type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

// PlatformCounts counts events per platform in one pass. Platforms appear in
// order of first occurrence; a platform with no events is absent.
func PlatformCounts(events []record.QuestionEvent) []PlatformCount {
	counts := []PlatformCount{}
	index := make(map[string]int)
	for _, ev := range events {
		i, ok := index[ev.Platform]
		if !ok {
			i = len(counts)
			index[ev.Platform] = i
			counts = append(counts, PlatformCount{Platform: ev.Platform})
		}
		counts[i].Count++
	}
	return counts
}

// Series is a date-bucketed count series. Labels are distinct ISO dates in
// ascending order and Data[i] is the number of events solved on Labels[i].
type Series struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// Growth groups events by solved date and orders the dates ascending.
// Lexicographic order of ISO dates is chronological order.
func Growth(events []record.QuestionEvent) Series {
	byDate := make(map[string]int)
	for _, ev := range events {
		byDate[ev.SolvedOn]++
	}

	labels := make([]string, 0, len(byDate))
	for d := range byDate {
		labels = append(labels, d)
	}
	sort.Strings(labels)

	data := make([]int, len(labels))
	for i, d := range labels {
		data[i] = byDate[d]
	}
	return Series{Labels: labels, Data: data}
}

// Summary describes practice volume over the active days of a series.
type Summary struct {
	Total        int     `json:"total"`
	ActiveDays   int     `json:"active_days"`
	MeanPerDay   float64 `json:"mean_per_day"`
	MedianPerDay float64 `json:"median_per_day"`
	BestDay      string  `json:"best_day,omitempty"`
	BestDayCount int     `json:"best_day_count"`
}

// Summarize computes a Summary over the growth series of events. Ties for
// the best day go to the earliest date.
func Summarize(events []record.QuestionEvent) Summary {
	series := Growth(events)
	sum := Summary{Total: len(events), ActiveDays: len(series.Labels)}
	if sum.ActiveDays == 0 {
		return sum
	}

	data := make(mstats.Float64Data, len(series.Data))
	for i, n := range series.Data {
		data[i] = float64(n)
		if n > sum.BestDayCount {
			sum.BestDayCount = n
			sum.BestDay = series.Labels[i]
		}
	}

	if mean, err := mstats.Mean(data); err == nil {
		sum.MeanPerDay, _ = mstats.Round(mean, 2)
	}
	if median, err := mstats.Median(data); err == nil {
		sum.MedianPerDay, _ = mstats.Round(median, 2)
	}
	return sum
}
