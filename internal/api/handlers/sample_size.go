package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/codesigma/internal/sampling"
	"github.com/RMahshie/codesigma/pkg/models"
)

// SampleSizeHandler handles the sample size calculator
type SampleSizeHandler struct{}

// NewSampleSizeHandler creates a new sample size handler
func NewSampleSizeHandler() *SampleSizeHandler {
	return &SampleSizeHandler{}
}

// Estimate returns the recommended sample size for the request parameters
func (h *SampleSizeHandler) Estimate(ctx context.Context, req *models.SampleSizeRequest) (*models.SampleSizeResponse, error) {
	in := sampling.Inputs{
		Z: req.Body.Z,
		P: req.Body.P,
		E: req.Body.E,
	}
	if req.Body.Population != nil {
		in.Population = *req.Body.Population
	}

	result, err := sampling.Estimate(in)
	if err != nil {
		if errors.Is(err, sampling.ErrInvalidParameter) {
			return nil, huma.Error422UnprocessableEntity("Invalid calculator parameters", err)
		}
		return nil, huma.Error500InternalServerError("Failed to estimate sample size", err)
	}

	level, _ := sampling.LevelForZ(in.Z)
	log.Debug().
		Float64("z", in.Z).
		Float64("p", in.P).
		Float64("e", in.E).
		Int("population", in.Population).
		Int("size", result.Size).
		Str("formula", string(result.Formula)).
		Msg("Sample size estimated")

	return &models.SampleSizeResponse{
		Body: models.SampleSizeResponseBody{
			Size:              result.Size,
			Formula:           result.Formula,
			Raw:               result.Raw,
			ConfidencePercent: level.Percent,
		},
	}, nil
}

// ConfidenceLevels lists the critical values the calculator accepts
func (h *SampleSizeHandler) ConfidenceLevels(ctx context.Context, _ *struct{}) (*models.ConfidenceLevelsResponse, error) {
	resp := &models.ConfidenceLevelsResponse{}
	resp.Body.Levels = append(resp.Body.Levels, sampling.ConfidenceLevels...)
	return resp, nil
}
