package gallery

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/lelo/internal/models"
	"gorm.io/gorm"
)

type ImageRepository interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, id uint) (*Image, error)
	List(ctx context.Context, filter ImageFilter) ([]Image, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, img *Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *imageRepository) GetByID(ctx context.Context, id uint) (*Image, error) {
	var img Image
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

func (r *imageRepository) List(ctx context.Context, filter ImageFilter) ([]Image, error) {
	var images []Image
	query := r.db.WithContext(ctx).Model(&Image{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	err := query.Order("uploaded_at DESC").Order("id DESC").Find(&images).Error
	return images, err
}

func (r *imageRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Image{BaseModel: models.BaseModel{ID: id}}).Updates(fields).Error
}

func (r *imageRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Image{}, id)
	return res.RowsAffected > 0, res.Error
}
