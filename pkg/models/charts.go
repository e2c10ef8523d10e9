package models

import "github.com/RMahshie/codesigma/internal/chart"

// CategoricalChartRequest carries the data of a pie or bar chart
type CategoricalChartRequest struct {
	Body struct {
		Data []chart.CategoricalDatum `json:"data" doc:"Labeled values, drawn in order"`
	}
}

// SeriesChartRequest carries the data of a line or scatter chart
type SeriesChartRequest struct {
	Body struct {
		Data []chart.SeriesPoint `json:"data" doc:"Points, drawn in order"`
	}
}

// PieChartResponse is the geometry of a pie chart on the unit circle
type PieChartResponse struct {
	Body struct {
		Slices []chart.Slice `json:"slices" doc:"Wedges in input order"`
		Paths  []string      `json:"paths" doc:"SVG path of each wedge on the unit circle"`
	}
}

// LineChartResponse is the geometry of a line chart
type LineChartResponse struct {
	Body *chart.LineChart
}

// ScatterChartResponse is the geometry of a scatter chart
type ScatterChartResponse struct {
	Body *chart.ScatterChart
}

// BarChartResponse is the geometry of a bar chart
type BarChartResponse struct {
	Body *chart.BarChart
}

// GetChartSVGRequest selects one of the site's datasets
type GetChartSVGRequest struct {
	Name string `path:"name" example:"wifi.svg" doc:"Dataset name, with or without the .svg extension"`
}

// ChartSVGResponse is a drawn chart
type ChartSVGResponse struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	Body         []byte
}

// ListDatasetsResponse lists the site's datasets
type ListDatasetsResponse struct {
	Body struct {
		Datasets []DatasetSummary `json:"datasets"`
	}
}

// DatasetSummary describes one dataset
type DatasetSummary struct {
	Name    string `json:"name"`
	Kind    string `json:"kind" enum:"pie,line,scatter,bar"`
	Caption string `json:"caption"`
	URL     string `json:"url" doc:"Path of the drawn chart"`
}
