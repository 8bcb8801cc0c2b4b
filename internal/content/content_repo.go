package content

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepository interface {
	GetByKey(ctx context.Context, key string) (*EditableContent, error)
	List(ctx context.Context, section string) ([]EditableContent, error)
	Upsert(ctx context.Context, items []EditableContent) error
	InsertMissing(ctx context.Context, items []EditableContent) (int64, error)
	DeleteByKey(ctx context.Context, key string) (bool, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) GetByKey(ctx context.Context, key string) (*EditableContent, error) {
	var ec EditableContent
	if err := r.db.WithContext(ctx).Where(keyIs(key)).Take(&ec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ec, nil
}

func (r *contentRepository) List(ctx context.Context, section string) ([]EditableContent, error) {
	var items []EditableContent
	query := r.db.WithContext(ctx).Model(&EditableContent{})
	if section != "" {
		query = query.Where("section = ?", section)
	}
	err := query.Order("section ASC").Order("key ASC").Find(&items).Error
	return items, err
}

// Upsert writes all items in one statement, keyed on key.
func (r *contentRepository) Upsert(ctx context.Context, items []EditableContent) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "type", "section", "updated_at"}),
	}).Create(&items).Error
}

func (r *contentRepository) InsertMissing(ctx context.Context, items []EditableContent) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&items)
	return res.RowsAffected, res.Error
}

func (r *contentRepository) DeleteByKey(ctx context.Context, key string) (bool, error) {
	res := r.db.WithContext(ctx).Where(keyIs(key)).Delete(&EditableContent{})
	return res.RowsAffected > 0, res.Error
}

func keyIs(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}
