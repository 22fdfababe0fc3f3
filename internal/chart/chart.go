// Package chart turns a growth series into a line-chart description and
// draws it in the terminal.
//
// Config mirrors the document a Chart.js line chart is created from, so the
// JSON output can be handed to a browser unchanged.
package chart

import (
	"github.com/roach88/codelog/internal/stats"
)

// Chart styling shared by every renderer.
const (
	TypeLine     = "line"
	DatasetLabel = "Questions Solved"
	LineColor    = "#4CAF50"
)

// Config describes one chart.
type Config struct {
	Type string `json:"type"`
	Data Data   `json:"data"`
}

// Data holds the x-axis labels and the plotted datasets.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one plotted line. Data[i] belongs to Labels[i].
type Dataset struct {
	Label       string `json:"label"`
	Data        []int  `json:"data"`
	BorderColor string `json:"borderColor"`
	Fill        bool   `json:"fill"`
}

// FromSeries builds the growth chart for s.
func FromSeries(s stats.Series) Config {
	labels := s.Labels
	if labels == nil {
		labels = []string{}
	}
	data := s.Data
	if data == nil {
		data = []int{}
	}
	return Config{
		Type: TypeLine,
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:       DatasetLabel,
				Data:        data,
				BorderColor: LineColor,
				Fill:        false,
			}},
		},
	}
}
