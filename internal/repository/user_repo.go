package repository

import (
	"context"
	"strings"
	"time"

	"pgstay/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Name         *string   `gorm:"column:name"`
	Mobile       *string   `gorm:"column:mobile"`
	Email        *string   `gorm:"column:email"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var name, mobile, email string
	if m.Name != nil {
		name = *m.Name
	}
	if m.Mobile != nil {
		mobile = *m.Mobile
	}
	if m.Email != nil {
		email = *m.Email
	}

	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Name:         name,
		Mobile:       mobile,
		Email:        email,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	username := strings.TrimSpace(u.Username)

	var name, mobile, email *string
	if u.Name != "" {
		v := u.Name
		name = &v
	}
	if u.Mobile != "" {
		v := u.Mobile
		mobile = &v
	}
	if u.Email != "" {
		v := u.Email
		email = &v
	}

	return userModel{
		ID:           u.ID,
		Username:     username,
		PasswordHash: u.PasswordHash,
		Name:         name,
		Mobile:       mobile,
		Email:        email,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("username = ?", strings.TrimSpace(username)).
		Count(&n)
	if tx.Error != nil {
		return false, tx.Error
	}
	return n > 0, nil
}

// UpdateProfile overwrites the optional profile fields, mirroring the
// profile form which always submits all three.
func (r *UserRepository) UpdateProfile(ctx context.Context, username, name, mobile, email string) (*domain.User, error) {
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("username = ?", strings.TrimSpace(username)).
		Updates(map[string]any{
			"name":   name,
			"mobile": mobile,
			"email":  email,
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByUsername(ctx, username)
}
