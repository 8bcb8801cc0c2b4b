package player

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/lelo/internal/models"
	"gorm.io/gorm"
)

type PlayerRepository interface {
	Create(ctx context.Context, p *Player) error
	GetByID(ctx context.Context, id uint) (*Player, error)
	List(ctx context.Context, filter PlayerFilter) ([]Player, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, p *Player) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *playerRepository) GetByID(ctx context.Context, id uint) (*Player, error) {
	var p Player
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) List(ctx context.Context, filter PlayerFilter) ([]Player, error) {
	var players []Player
	query := r.db.WithContext(ctx).Model(&Player{})
	if filter.Team != "" {
		query = query.Where("team = ?", filter.Team)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("name ASC").Order("id ASC").Find(&players).Error
	return players, err
}

func (r *playerRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Player{BaseModel: models.BaseModel{ID: id}}).Updates(fields).Error
}

func (r *playerRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Player{}, id)
	return res.RowsAffected > 0, res.Error
}
