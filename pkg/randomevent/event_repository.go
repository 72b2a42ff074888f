package randomevent

import (
	"context"
	"errors"

	"Banking-Clicker-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	EventRepository interface {
		GetState(ctx context.Context, accountID string) (*entities.RandomEventState, error)
		SaveState(ctx context.Context, state *entities.RandomEventState) error
	}

	eventRepository struct {
		db *gorm.DB
	}
)

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{
		db: db,
	}
}

func (r *eventRepository) GetState(ctx context.Context, accountID string) (*entities.RandomEventState, error) {
	var state entities.RandomEventState
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (r *eventRepository) SaveState(ctx context.Context, state *entities.RandomEventState) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			UpdateAll: true,
		}).
		Create(state).Error
}
