package repository

import (
	"errors"
	"time"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"gorm.io/gorm"
)

type DeliveryRepository struct{ DB *gorm.DB }

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) Get(id uint) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ListAvailable is the shared pool every online courier sees.
func (r *DeliveryRepository) ListAvailable() ([]entity.Delivery, error) {
	var out []entity.Delivery
	err := r.DB.Where("status = ?", entity.DeliveryAvailable).Order("id").Find(&out).Error
	return out, err
}

// ActiveForCourier returns the courier's single in-progress delivery,
// or nil when the slot is free.
func (r *DeliveryRepository) ActiveForCourier(courierID uint) (*entity.Delivery, error) {
	var d entity.Delivery
	err := r.DB.Where("courier_id = ? AND status IN ?", courierID,
		[]entity.DeliveryStatus{entity.DeliveryAccepted, entity.DeliveryPicking, entity.DeliveryDelivering}).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) Create(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Create(d).Error
}

// Claim atomically takes an available delivery for a courier. The single
// UPDATE enforces both halves of the claim invariant: the job must still
// be in the pool, and the courier's active slot must be empty. First
// writer wins; everyone else sees zero rows affected.
func (r *DeliveryRepository) Claim(tx *gorm.DB, deliveryID, courierID uint, at time.Time) (int64, error) {
	res := tx.Exec(`
		UPDATE deliveries
		   SET status = ?, courier_id = ?, accepted_at = ?
		 WHERE id = ? AND status = ?
		   AND NOT EXISTS (
			SELECT 1 FROM deliveries d2
			 WHERE d2.courier_id = ?
			   AND d2.status IN (?, ?, ?)
			   AND d2.deleted_at IS NULL
		   )
	`, entity.DeliveryAccepted, courierID, at,
		deliveryID, entity.DeliveryAvailable,
		courierID,
		entity.DeliveryAccepted, entity.DeliveryPicking, entity.DeliveryDelivering)
	return res.RowsAffected, res.Error
}

// AdvanceGuard moves the courier's own delivery one step along the
// chain. Zero rows affected means a stale or foreign transition.
func (r *DeliveryRepository) AdvanceGuard(tx *gorm.DB, deliveryID, courierID uint, from, to entity.DeliveryStatus) (int64, error) {
	res := tx.Model(&entity.Delivery{}).
		Where("id = ? AND courier_id = ? AND status = ?", deliveryID, courierID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *DeliveryRepository) MarkCompleted(tx *gorm.DB, deliveryID uint, at time.Time) error {
	return tx.Model(&entity.Delivery{}).
		Where("id = ?", deliveryID).
		Update("completed_at", at).Error
}

// StatsSince aggregates completed deliveries and earnings for the
// courier dashboard.
func (r *DeliveryRepository) StatsSince(courierID uint, since time.Time) (count int64, earnings int64, err error) {
	type row struct {
		N        int64
		Earnings int64
	}
	var agg row
	err = r.DB.Model(&entity.Delivery{}).
		Select("COUNT(*) AS n, COALESCE(SUM(payment),0) AS earnings").
		Where("courier_id = ? AND status = ? AND completed_at >= ?",
			courierID, entity.DeliveryCompleted, since).
		Scan(&agg).Error
	return agg.N, agg.Earnings, err
}
