package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/codesigma/internal/chart"
	"github.com/RMahshie/codesigma/internal/content"
	"github.com/RMahshie/codesigma/pkg/models"
)

// ChartSource provides the pre-drawn charts of the site
type ChartSource interface {
	ChartSVG(name string) ([]byte, error)
}

// ChartHandler handles chart geometry and drawing requests
type ChartHandler struct {
	charts ChartSource
}

// NewChartHandler creates a new chart handler
func NewChartHandler(charts ChartSource) *ChartHandler {
	return &ChartHandler{charts: charts}
}

// Pie computes the wedges of a pie chart
func (h *ChartHandler) Pie(ctx context.Context, req *models.CategoricalChartRequest) (*models.PieChartResponse, error) {
	slices, err := chart.Pie(req.Body.Data)
	if err != nil {
		return nil, chartError("pie", err)
	}

	resp := &models.PieChartResponse{}
	resp.Body.Slices = slices
	resp.Body.Paths = make([]string, len(slices))
	for i, s := range slices {
		resp.Body.Paths[i] = s.Path(1)
	}
	return resp, nil
}

// Line computes the points and grid of a line chart
func (h *ChartHandler) Line(ctx context.Context, req *models.SeriesChartRequest) (*models.LineChartResponse, error) {
	c, err := chart.Line(req.Body.Data)
	if err != nil {
		return nil, chartError("line", err)
	}
	return &models.LineChartResponse{Body: c}, nil
}

// Scatter computes the points of a scatter chart
func (h *ChartHandler) Scatter(ctx context.Context, req *models.SeriesChartRequest) (*models.ScatterChartResponse, error) {
	c, err := chart.Scatter(req.Body.Data)
	if err != nil {
		return nil, chartError("scatter", err)
	}
	return &models.ScatterChartResponse{Body: c}, nil
}

// Bar computes the bars of a bar chart
func (h *ChartHandler) Bar(ctx context.Context, req *models.CategoricalChartRequest) (*models.BarChartResponse, error) {
	c, err := chart.Bar(req.Body.Data)
	if err != nil {
		return nil, chartError("bar", err)
	}
	return &models.BarChartResponse{Body: c}, nil
}

// ListDatasets lists the survey charts shown on the page
func (h *ChartHandler) ListDatasets(ctx context.Context, _ *struct{}) (*models.ListDatasetsResponse, error) {
	resp := &models.ListDatasetsResponse{}
	for _, d := range content.Datasets() {
		resp.Body.Datasets = append(resp.Body.Datasets, models.DatasetSummary{
			Name:    d.Name,
			Kind:    string(d.Kind),
			Caption: d.Caption,
			URL:     "/charts/" + d.Name + ".svg",
		})
	}
	return resp, nil
}

// GetChartSVG returns one of the survey charts as an SVG document
func (h *ChartHandler) GetChartSVG(ctx context.Context, req *models.GetChartSVGRequest) (*models.ChartSVGResponse, error) {
	name := strings.TrimSuffix(req.Name, ".svg")
	doc, err := h.charts.ChartSVG(name)
	if err != nil {
		if errors.Is(err, content.ErrUnknownDataset) {
			return nil, huma.Error404NotFound("Chart not found", err)
		}
		return nil, huma.Error500InternalServerError("Failed to draw chart", err)
	}

	return &models.ChartSVGResponse{
		ContentType:  "image/svg+xml",
		CacheControl: "public, max-age=3600",
		Body:         doc,
	}, nil
}

func chartError(kind string, err error) error {
	switch {
	case errors.Is(err, chart.ErrDegenerateInput), errors.Is(err, chart.ErrInvalidValue):
		log.Debug().Err(err).Str("chart", kind).Msg("Rejected chart data")
		return huma.Error422UnprocessableEntity("Chart data cannot be drawn", err)
	default:
		return huma.Error500InternalServerError("Failed to compute chart", err)
	}
}
