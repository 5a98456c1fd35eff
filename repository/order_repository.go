package repository

import (
	"time"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").Order("id DESC").Find(&out).Error
	return out, err
}

// ListActive returns the merchant's work queue: pending, preparing and
// ready orders, oldest first.
func (r *OrderRepository) ListActive(restaurantID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("restaurant_id = ? AND status IN ?", restaurantID,
		[]entity.OrderStatus{entity.OrderPending, entity.OrderPreparing, entity.OrderReady}).
		Preload("Items").Order("id").Find(&out).Error
	return out, err
}

// ListHistory returns completed and cancelled orders, newest first.
func (r *OrderRepository) ListHistory(restaurantID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("restaurant_id = ? AND status IN ?", restaurantID,
		[]entity.OrderStatus{entity.OrderCompleted, entity.OrderCancelled}).
		Preload("Items").Order("id DESC").Find(&out).Error
	return out, err
}

// UpdateStatusGuard flips status from -> to in one statement. Zero rows
// affected means the order was not in the expected state (or does not
// exist), so an illegal or raced transition never lands.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// StatsSince aggregates the dashboard numbers over orders placed after
// the cutoff, ignoring cancelled ones.
func (r *OrderRepository) StatsSince(restaurantID uint, since time.Time) (count int64, revenue int64, err error) {
	type row struct {
		N       int64
		Revenue int64
	}
	var agg row
	err = r.DB.Model(&entity.Order{}).
		Select("COUNT(*) AS n, COALESCE(SUM(total),0) AS revenue").
		Where("restaurant_id = ? AND status <> ? AND created_at >= ?",
			restaurantID, entity.OrderCancelled, since).
		Scan(&agg).Error
	return agg.N, agg.Revenue, err
}
