package user

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/lelo/internal/common"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	CountAdmins(ctx context.Context) (int64, error)
	// SetRole and Delete run inside a transaction that refuses to leave zero admins.
	SetRole(ctx context.Context, id uint, role string) (*User, error)
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("role = ?", common.RoleAdmin).Count(&n).Error
	return n, err
}

func (r *userRepository) SetRole(ctx context.Context, id uint, role string) (*User, error) {
	var out User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if out.Role == role {
			return nil
		}
		if out.IsAdmin() {
			if err := ensureAnotherAdmin(tx); err != nil {
				return err
			}
		}
		out.Role = role
		return tx.Model(&out).Update("role", role).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target User
		if err := tx.First(&target, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if target.IsAdmin() {
			if err := ensureAnotherAdmin(tx); err != nil {
				return err
			}
		}
		return tx.Delete(&User{}, id).Error
	})
}

// ensureAnotherAdmin locks every admin row until tx ends, so two concurrent demotions
// cannot both see a second admin.
func ensureAnotherAdmin(tx *gorm.DB) error {
	var ids []uint
	err := tx.Model(&User{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("role = ?", common.RoleAdmin).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) <= 1 {
		return ErrLastAdmin
	}
	return nil
}
