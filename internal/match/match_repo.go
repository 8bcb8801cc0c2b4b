package match

import (
	"context"
	"errors"
	"time"

	"github.com/DhavalSuthar-24/lelo/internal/models"
	"gorm.io/gorm"
)

// MatchRepository defines methods to interact with fixtures.
type MatchRepository interface {
	CreateMatch(ctx context.Context, m *Match) error
	GetMatchByID(ctx context.Context, id uint) (*Match, error)
	GetMatches(ctx context.Context, filter MatchFilter) ([]Match, error)
	UpdateMatch(ctx context.Context, id uint, fields map[string]interface{}) error
	DeleteMatch(ctx context.Context, id uint) (bool, error)
	// AdvanceStatuses moves scheduled fixtures that kicked off to live, and live or scheduled
	// fixtures older than duration to finished. It returns the number of rows changed.
	AdvanceStatuses(ctx context.Context, now time.Time, duration time.Duration) (int64, error)
}

type GormMatchRepository struct {
	db *gorm.DB
}

func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

func (r *GormMatchRepository) CreateMatch(ctx context.Context, m *Match) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *GormMatchRepository) GetMatchByID(ctx context.Context, id uint) (*Match, error) {
	var m Match
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *GormMatchRepository) GetMatches(ctx context.Context, filter MatchFilter) ([]Match, error) {
	var matches []Match
	query := r.db.WithContext(ctx).Model(&Match{})

	if len(filter.Categories) > 0 {
		query = query.Where("match_type IN ?", filter.Categories)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("match_date >= ?", filter.From.UTC())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Order("match_date ASC").Order("id ASC").Find(&matches).Error
	return matches, err
}

func (r *GormMatchRepository) UpdateMatch(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Match{BaseModel: models.BaseModel{ID: id}}).Updates(fields).Error
}

func (r *GormMatchRepository) DeleteMatch(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Match{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *GormMatchRepository) AdvanceStatuses(ctx context.Context, now time.Time, duration time.Duration) (int64, error) {
	var changed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := now.UTC()
		finished := tx.Model(&Match{}).
			Where("status IN ? AND match_date <= ?", []MatchStatus{StatusScheduled, StatusLive}, now.Add(-duration)).
			Update("status", StatusFinished)
		if finished.Error != nil {
			return finished.Error
		}
		live := tx.Model(&Match{}).
			Where("status = ? AND match_date <= ?", StatusScheduled, now).
			Update("status", StatusLive)
		if live.Error != nil {
			return live.Error
		}
		changed = finished.RowsAffected + live.RowsAffected
		return nil
	})
	return changed, err
}
