package repository

import (
	"github.com/carlossbezerra/SuperDelivery/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// List returns the catalog, optionally narrowed to one category.
// "all" and "" both mean no filter.
func (r *RestaurantRepository) List(category string) ([]entity.Restaurant, error) {
	q := r.DB.Order("id")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	var out []entity.Restaurant
	err := q.Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// GetByOwner resolves a merchant session to its restaurant.
func (r *RestaurantRepository) GetByOwner(ownerID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("owner_id = ?", ownerID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) GetWithMenu(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("products.id")
	}).First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}
