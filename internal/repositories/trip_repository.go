package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"itinera/internal/models/db_models"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *db_models.Trip) error
	// GetTripById returns nil, nil when no trip has that id.
	GetTripById(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	ListTripsByOwner(ctx context.Context, ownerID string, page int, pageSize int) ([]db_models.Trip, int64, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetTripById(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) ListTripsByOwner(ctx context.Context, ownerID string, page int, pageSize int) ([]db_models.Trip, int64, error) {
	var (
		trips []db_models.Trip
		total int64
	)

	owned := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&db_models.Trip{}).Where("owner_id = ?", ownerID)
	}
	if err := owned().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// the list view does not need the itinerary document
	err := owned().
		Omit("itinerary").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}

	return trips, total, nil
}

func (r *tripRepository) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Trip{}, "id = ?", id).Error
}
