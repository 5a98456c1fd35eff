package repository

import (
	"github.com/carlossbezerra/SuperDelivery/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Get(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListProfiles backs the demo profile selector.
func (r *UserRepository) ListProfiles() ([]entity.User, error) {
	var out []entity.User
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *UserRepository) SetOnline(id uint, online bool) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("online", online).Error
}
