package models

import "github.com/RMahshie/codesigma/internal/sampling"

// SampleSizeRequest represents a request to the sample size calculator
type SampleSizeRequest struct {
	Body struct {
		Z          float64 `json:"z" example:"1.96" doc:"Critical value: 1.645 (90%), 1.96 (95%) or 2.576 (99%)"`
		P          float64 `json:"p" minimum:"0" maximum:"1" example:"0.5" doc:"Expected proportion of success"`
		E          float64 `json:"e" exclusiveMinimum:"0" maximum:"1" example:"0.05" doc:"Margin of error"`
		Population *int    `json:"population,omitempty" example:"5000" doc:"Population size; omit or send 0 for an unbounded population"`
	}
}

// SampleSizeResponseBody is the body of the sample size response
type SampleSizeResponseBody struct {
	Size              int              `json:"size" doc:"Recommended sample size, rounded up"`
	Formula           sampling.Formula `json:"formula" enum:"finite,infinite" doc:"Formula used"`
	Raw               float64          `json:"raw" doc:"Unrounded formula value"`
	ConfidencePercent int              `json:"confidence_percent" doc:"Confidence level of the critical value"`
}

// SampleSizeResponse represents a recommended sample size
type SampleSizeResponse struct {
	Body SampleSizeResponseBody
}

// ConfidenceLevelsResponse lists the accepted critical values
type ConfidenceLevelsResponse struct {
	Body struct {
		Levels []sampling.ConfidenceLevel `json:"levels" doc:"Accepted confidence levels"`
	}
}
