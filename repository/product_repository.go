package repository

import (
	"github.com/carlossbezerra/SuperDelivery/entity"
	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListByRestaurant(restaurantID uint) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&out).Error
	return out, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Save(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) SetAvailability(tx *gorm.DB, id uint, available bool) (int64, error) {
	res := tx.Model(&entity.Product{}).Where("id = ?", id).Update("available", available)
	return res.RowsAffected, res.Error
}

// Delete removes the product for good; the session has no undo.
func (r *ProductRepository) Delete(tx *gorm.DB, restaurantID, id uint) (int64, error) {
	res := tx.Where("id = ? AND restaurant_id = ?", id, restaurantID).Delete(&entity.Product{})
	return res.RowsAffected, res.Error
}
