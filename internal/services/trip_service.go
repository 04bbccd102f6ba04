package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"itinera/internal/document"
	"itinera/internal/models/db_models"
	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/internal/repositories"
	mem "itinera/pkg/memcache"
	"itinera/pkg/utils"
)

// ItineraryGenerator is implemented by planner.Generator.
type ItineraryGenerator interface {
	Generate(ctx context.Context, req request_models.TripRequest) (*response_models.Itinerary, error)
}

type TripServiceInterface interface {
	GenerateTrip(ctx context.Context, req request_models.TripRequest, ownerID string) (*response_models.TripResponse, error)
	GetTrip(ctx context.Context, tripID string) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, ownerID string, page int, pageSize int) (*response_models.TripListResponse, error)
	DeleteTrip(ctx context.Context, tripID string, ownerID string) error
	RenderTripPDF(ctx context.Context, tripID string, ownerName string) (*document.Document, error)
	ShareTrip(ctx context.Context, tripID string, ownerID string) (*response_models.ShareResponse, error)
	GetSharedTrip(ctx context.Context, token string) (*response_models.TripResponse, error)
	RenderSharedTripPDF(ctx context.Context, token string) (*document.Document, error)
}

type TripServiceConfig struct {
	ShareTTL      time.Duration
	PublicBaseURL string
	LogoPath      string
}

type TripService struct {
	tripRepo  repositories.TripRepository
	generator ItineraryGenerator
	shares    mem.ShareTokenStore
	config    TripServiceConfig
	now       func() time.Time
}

func NewTripService(
	tripRepo repositories.TripRepository,
	generator ItineraryGenerator,
	shares mem.ShareTokenStore,
	config TripServiceConfig,
) *TripService {
	if config.ShareTTL <= 0 {
		config.ShareTTL = 7 * 24 * time.Hour
	}
	config.PublicBaseURL = strings.TrimRight(config.PublicBaseURL, "/")

	return &TripService{
		tripRepo:  tripRepo,
		generator: generator,
		shares:    shares,
		config:    config,
		now:       time.Now,
	}
}

func (s *TripService) GenerateTrip(ctx context.Context, req request_models.TripRequest, ownerID string) (*response_models.TripResponse, error) {
	req.Normalize()

	itinerary, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	trip := &db_models.Trip{
		OwnerID:     ownerID,
		Destination: req.Destination,
		Duration:    req.Duration,
		PeopleCount: req.PeopleCount,
		Budget:      req.Budget,
		Currency:    req.Currency,
	}
	if err := trip.SetItinerary(itinerary); err != nil {
		return nil, fmt.Errorf("encode itinerary: %w", err)
	}

	if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		log.Error().Err(err).Str("destination", trip.Destination).Msg("saving trip failed")
		return nil, utils.ErrDatabaseError
	}

	log.Info().Str("trip_id", trip.ID.String()).Str("destination", trip.Destination).Msg("trip generated")
	return toTripResponse(trip, itinerary), nil
}

func (s *TripService) GetTrip(ctx context.Context, tripID string) (*response_models.TripResponse, error) {
	trip, err := s.findTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	itinerary, err := trip.DecodeItinerary()
	if err != nil {
		log.Error().Err(err).Str("trip_id", tripID).Msg("stored itinerary is unreadable")
		return nil, utils.ErrDatabaseError
	}

	return toTripResponse(trip, itinerary), nil
}

func (s *TripService) ListTrips(ctx context.Context, ownerID string, page int, pageSize int) (*response_models.TripListResponse, error) {
	if ownerID == "" {
		return nil, utils.ErrUnauthorized
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, total, err := s.tripRepo.ListTripsByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		items = append(items, *toTripResponse(&trips[i], nil))
	}

	return &response_models.TripListResponse{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripID string, ownerID string) error {
	trip, err := s.findTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if ownerID == "" || trip.OwnerID != ownerID {
		return utils.ErrForbidden
	}

	if err := s.tripRepo.DeleteTrip(ctx, trip.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) RenderTripPDF(ctx context.Context, tripID string, ownerName string) (*document.Document, error) {
	trip, err := s.findTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return s.render(trip, ownerName, "")
}

func (s *TripService) render(trip *db_models.Trip, ownerName string, shareURL string) (*document.Document, error) {
	itinerary, err := trip.DecodeItinerary()
	if err != nil {
		log.Error().Err(err).Str("trip_id", trip.ID.String()).Msg("stored itinerary is unreadable")
		return nil, utils.ErrDatabaseError
	}

	return document.Render(itinerary, document.Metadata{
		Destination: trip.Destination,
		Duration:    trip.Duration,
		PeopleCount: trip.PeopleCount,
		Budget:      trip.Budget,
		Currency:    trip.Currency,
		GeneratedAt: trip.CreatedTime(),
		OwnerName:   ownerName,
		ShareURL:    shareURL,
		LogoPath:    s.config.LogoPath,
	})
}

// ShareTrip issues a link token for a trip. Trips without an owner can be
// shared by anyone; owned trips only by their owner.
func (s *TripService) ShareTrip(ctx context.Context, tripID string, ownerID string) (*response_models.ShareResponse, error) {
	trip, err := s.findTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.OwnerID != "" && trip.OwnerID != ownerID {
		return nil, utils.ErrForbidden
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := s.shares.Set(ctx, token, trip.ID.String(), s.config.ShareTTL); err != nil {
		return nil, fmt.Errorf("store share token: %w", err)
	}

	return &response_models.ShareResponse{
		Token:     token,
		URL:       s.shareURL(token),
		ExpiresAt: s.now().Add(s.config.ShareTTL).UTC().Format(time.RFC3339),
	}, nil
}

func (s *TripService) GetSharedTrip(ctx context.Context, token string) (*response_models.TripResponse, error) {
	trip, err := s.findSharedTrip(ctx, token)
	if err != nil {
		return nil, err
	}

	itinerary, err := trip.DecodeItinerary()
	if err != nil {
		log.Error().Err(err).Str("trip_id", trip.ID.String()).Msg("stored itinerary is unreadable")
		return nil, utils.ErrDatabaseError
	}

	resp := toTripResponse(trip, itinerary)
	// owner ids are not exposed through share links
	resp.OwnerID = ""
	return resp, nil
}

// RenderSharedTripPDF renders the trip behind a share token, with the share
// link printed as a QR code in the header.
func (s *TripService) RenderSharedTripPDF(ctx context.Context, token string) (*document.Document, error) {
	trip, err := s.findSharedTrip(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.render(trip, "", s.shareURL(token))
}

func (s *TripService) findSharedTrip(ctx context.Context, token string) (*db_models.Trip, error) {
	if token == "" {
		return nil, utils.ErrShareNotFound
	}

	tripID, ok, err := s.shares.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("read share token: %w", err)
	}
	if !ok {
		return nil, utils.ErrShareNotFound
	}

	trip, err := s.findTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, utils.ErrTripNotFound) {
			return nil, utils.ErrShareNotFound
		}
		return nil, err
	}
	return trip, nil
}

func (s *TripService) shareURL(token string) string {
	return s.config.PublicBaseURL + "/shared/" + token
}

func (s *TripService) findTrip(ctx context.Context, tripID string) (*db_models.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	trip, err := s.tripRepo.GetTripById(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("trip_id", tripID).Msg("loading trip failed")
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func toTripResponse(trip *db_models.Trip, itinerary *response_models.Itinerary) *response_models.TripResponse {
	return &response_models.TripResponse{
		ID:          trip.ID.String(),
		OwnerID:     trip.OwnerID,
		Destination: trip.Destination,
		Duration:    trip.Duration,
		PeopleCount: trip.PeopleCount,
		Budget:      trip.Budget,
		Currency:    trip.Currency,
		CreatedAt:   trip.CreatedTime().Format(time.RFC3339),
		Itinerary:   itinerary,
	}
}
