// Package planner turns a trip request into a validated itinerary by
// prompting a generative text service and repairing what comes back.
package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/pkg/utils"
)

type Generator struct {
	client    utils.TextGenerator
	baseDelay time.Duration
	newTimer  func() backoff.Timer
}

type Option func(*Generator)

// WithBaseDelay sets the unit of the linear delay between attempts.
func WithBaseDelay(d time.Duration) Option {
	return func(g *Generator) { g.baseDelay = d }
}

// WithTimer replaces the timer used to wait between attempts.
func WithTimer(newTimer func() backoff.Timer) Option {
	return func(g *Generator) { g.newTimer = newTimer }
}

func NewGenerator(client utils.TextGenerator, opts ...Option) *Generator {
	g := &Generator{
		client:    client,
		baseDelay: DefaultBaseDelay,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces an itinerary for req. An invalid destination fails
// immediately with utils.ErrInvalidDestination. Any other failure is retried
// up to MaxAttempts times and then surfaces as utils.ErrGeneration.
func (g *Generator) Generate(ctx context.Context, req request_models.TripRequest) (*response_models.Itinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req)
	trip := Trip{
		Destination: req.Destination,
		Duration:    req.Duration,
		PeopleCount: req.PeopleCount,
		Budget:      req.Budget,
	}

	attempt := 0
	operation := func() (*response_models.Itinerary, error) {
		attempt++
		logger := log.With().
			Str("destination", req.Destination).
			Int("attempt", attempt).
			Int("max_attempts", MaxAttempts).
			Logger()

		itinerary, err := g.attempt(ctx, prompt, trip)
		if err == nil {
			logger.Info().Int("days", len(itinerary.Days)).Msg("Itinerary generated")
			return itinerary, nil
		}

		if classify(ctx, err) == terminal {
			logger.Info().Err(err).Msg("Itinerary generation stopped")
			return nil, backoff.Permanent(err)
		}
		logger.Warn().Err(err).Msg("Itinerary generation attempt failed")
		return nil, err
	}

	var timer backoff.Timer
	if g.newTimer != nil {
		timer = g.newTimer()
	}

	itinerary, err := backoff.RetryNotifyWithTimerAndData(operation, newRetryPolicy(ctx, g.baseDelay), nil, timer)
	if err == nil {
		return itinerary, nil
	}
	if classify(ctx, err) == terminal {
		return nil, err
	}
	if !errors.Is(err, utils.ErrGeneration) {
		err = fmt.Errorf("%w: %w", utils.ErrGeneration, err)
	}
	return nil, fmt.Errorf("%w (gave up after %d attempts)", err, attempt)
}

func (g *Generator) attempt(ctx context.Context, prompt string, trip Trip) (*response_models.Itinerary, error) {
	raw, err := g.client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	doc, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	itinerary, err := DecodeItinerary(doc)
	if err != nil {
		return nil, err
	}

	Normalize(itinerary, trip)
	return itinerary, nil
}
