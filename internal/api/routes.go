package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/RMahshie/codesigma/internal/api/handlers"
	"github.com/RMahshie/codesigma/internal/site"
)

// RegisterRoutes sets up the course page and all API routes
func RegisterRoutes(router chi.Router, api huma.API, renderer *site.Renderer) {
	router.Method(http.MethodGet, "/", handlers.NewPageHandler(renderer))
	RegisterAPI(api, renderer)
}

// RegisterAPI registers the JSON and chart operations
func RegisterAPI(api huma.API, charts handlers.ChartSource) {
	// Initialize handlers
	sampleSizeHandler := handlers.NewSampleSizeHandler()
	chartHandler := handlers.NewChartHandler(charts)
	cardHandler := handlers.NewEventCardHandler()

	// Register sample size routes
	huma.Register(api, huma.Operation{
		OperationID: "estimateSampleSize",
		Method:      http.MethodPost,
		Path:        "/api/sample-size",
		Summary:     "Estimate a sample size",
		Description: "Returns the sample size for a proportion, with the finite population correction when a population is given",
		Tags:        []string{"Sampling"},
	}, sampleSizeHandler.Estimate)

	huma.Register(api, huma.Operation{
		OperationID: "listConfidenceLevels",
		Method:      http.MethodGet,
		Path:        "/api/sample-size/confidence-levels",
		Summary:     "List confidence levels",
		Description: "Returns the confidence levels and critical values the calculator accepts",
		Tags:        []string{"Sampling"},
	}, sampleSizeHandler.ConfidenceLevels)

	// Register chart routes
	huma.Register(api, huma.Operation{
		OperationID: "computePieChart",
		Method:      http.MethodPost,
		Path:        "/api/charts/pie",
		Summary:     "Compute a pie chart",
		Description: "Returns the wedge angles, percentages and arc endpoints on the unit circle",
		Tags:        []string{"Charts"},
	}, chartHandler.Pie)

	huma.Register(api, huma.Operation{
		OperationID: "computeLineChart",
		Method:      http.MethodPost,
		Path:        "/api/charts/line",
		Summary:     "Compute a line chart",
		Description: "Returns the canvas points and grid lines of a categorical line chart",
		Tags:        []string{"Charts"},
	}, chartHandler.Line)

	huma.Register(api, huma.Operation{
		OperationID: "computeScatterChart",
		Method:      http.MethodPost,
		Path:        "/api/charts/scatter",
		Summary:     "Compute a scatter chart",
		Description: "Returns the canvas points of a numeric scatter plot",
		Tags:        []string{"Charts"},
	}, chartHandler.Scatter)

	huma.Register(api, huma.Operation{
		OperationID: "computeBarChart",
		Method:      http.MethodPost,
		Path:        "/api/charts/bar",
		Summary:     "Compute a bar chart",
		Description: "Returns the bar rectangles of a bar chart",
		Tags:        []string{"Charts"},
	}, chartHandler.Bar)

	huma.Register(api, huma.Operation{
		OperationID: "listDatasets",
		Method:      http.MethodGet,
		Path:        "/api/datasets",
		Summary:     "List survey charts",
		Description: "Returns the survey datasets drawn on the page",
		Tags:        []string{"Charts"},
	}, chartHandler.ListDatasets)

	huma.Register(api, huma.Operation{
		OperationID: "getChartSVG",
		Method:      http.MethodGet,
		Path:        "/charts/{name}",
		Summary:     "Get a survey chart",
		Description: "Returns a survey chart as an SVG document",
		Tags:        []string{"Charts"},
	}, chartHandler.GetChartSVG)

	// Register event card routes
	huma.Register(api, huma.Operation{
		OperationID: "listEventCards",
		Method:      http.MethodGet,
		Path:        "/api/event-cards",
		Summary:     "List event cards",
		Description: "Returns the impossible, probable and certain event cards with their examples",
		Tags:        []string{"Event cards"},
	}, cardHandler.List)

	huma.Register(api, huma.Operation{
		OperationID: "advanceEventCard",
		Method:      http.MethodPost,
		Path:        "/api/event-cards/{id}/advance",
		Summary:     "Advance an event card",
		Description: "Returns the example that follows the given one, wrapping after the last",
		Tags:        []string{"Event cards"},
	}, cardHandler.Advance)
}
