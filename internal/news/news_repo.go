package news

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/lelo/internal/models"
	"gorm.io/gorm"
)

type NewsRepository interface {
	Create(ctx context.Context, item *NewsItem) error
	GetByID(ctx context.Context, id uint) (*NewsItem, error)
	List(ctx context.Context, filter NewsFilter) ([]NewsItem, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id uint) (bool, error)
	IncrementViews(ctx context.Context, id uint) error
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, item *NewsItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *newsRepository) GetByID(ctx context.Context, id uint) (*NewsItem, error) {
	var item NewsItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *newsRepository) List(ctx context.Context, filter NewsFilter) ([]NewsItem, error) {
	var items []NewsItem
	query := r.db.WithContext(ctx).Model(&NewsItem{})

	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", filter.Categories)
	}
	if !filter.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR excerpt LIKE ?", like, like)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Order("published_date DESC").Order("id DESC").Find(&items).Error
	return items, err
}

func (r *newsRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&NewsItem{BaseModel: models.BaseModel{ID: id}}).Updates(fields).Error
}

func (r *newsRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&NewsItem{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *newsRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&NewsItem{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}
