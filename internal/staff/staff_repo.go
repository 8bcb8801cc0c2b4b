package staff

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/lelo/internal/models"
	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(ctx context.Context, m *StaffMember) error
	GetByID(ctx context.Context, id uint) (*StaffMember, error)
	List(ctx context.Context) ([]StaffMember, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, m *StaffMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *staffRepository) GetByID(ctx context.Context, id uint) (*StaffMember, error) {
	var m StaffMember
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *staffRepository) List(ctx context.Context) ([]StaffMember, error) {
	var members []StaffMember
	err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&members).Error
	return members, err
}

func (r *staffRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&StaffMember{BaseModel: models.BaseModel{ID: id}}).Updates(fields).Error
}

func (r *staffRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&StaffMember{}, id)
	return res.RowsAffected > 0, res.Error
}
