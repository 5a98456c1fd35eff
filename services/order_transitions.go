package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"gorm.io/gorm"
)

// Merchant-driven order transitions. Every step is a guarded
// compare-and-swap so a raced or repeated action fails cleanly instead
// of regressing a status; completed and cancelled are dead ends.

func (s *OrderService) merchantOrder(ownerID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownOrder
		}
		return nil, err
	}
	rest, err := s.RestRepo.Get(o.RestaurantID)
	if err != nil {
		return nil, err
	}
	if rest.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return o, nil
}

// Accept moves a new order into preparation.
func (s *OrderService) Accept(ownerID, orderID uint) error {
	o, err := s.merchantOrder(ownerID, orderID)
	if err != nil {
		return err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderPending, entity.OrderPreparing)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.Notify.Publish(Event{
		Kind:    EventOrderAccepted,
		Title:   "Pedido Aceito",
		Message: fmt.Sprintf("Pedido #%s está sendo preparado.", o.Number),
		OrderID: o.Number,
	})
	return nil
}

// Reject is the single escape hatch out of pending.
func (s *OrderService) Reject(ownerID, orderID uint) error {
	o, err := s.merchantOrder(ownerID, orderID)
	if err != nil {
		return err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderPending, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.Notify.Publish(Event{
		Kind:    EventOrderCancelled,
		Title:   "Pedido Cancelado",
		Message: fmt.Sprintf("Pedido #%s foi recusado pelo restaurante.", o.Number),
		OrderID: o.Number,
	})
	return nil
}

// MarkReady finishes preparation and publishes the order into the
// courier pool as a delivery job.
func (s *OrderService) MarkReady(ownerID, orderID uint) error {
	o, err := s.merchantOrder(ownerID, orderID)
	if err != nil {
		return err
	}
	rest, err := s.RestRepo.Get(o.RestaurantID)
	if err != nil {
		return err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderPreparing, entity.OrderReady)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		// customer addresses are free text in the demo, so the dropoff
		// pin is a fixed downtown coordinate
		const dropLat, dropLng = -23.561684, -46.656139
		orderID := o.ID
		return s.DelRepo.Create(tx, &entity.Delivery{
			RestaurantName: rest.Name,
			CustomerName:   o.CustomerName,
			PickupAddress:  rest.Address,
			DropoffAddress: o.Address,
			Distance:       distanceText(rest.Lat, rest.Lng, dropLat, dropLng),
			Payment:        courierPayout(o.DeliveryFee),
			Status:         entity.DeliveryAvailable,
			PickupLat:      rest.Lat,
			PickupLng:      rest.Lng,
			DropoffLat:     dropLat,
			DropoffLng:     dropLng,
			OrderID:        &orderID,
		})
	})
	if err != nil {
		return err
	}
	s.Notify.Publish(Event{
		Kind:    EventOrderReady,
		Title:   "Pedido Pronto",
		Message: fmt.Sprintf("Pedido #%s aguardando retirada.", o.Number),
		OrderID: o.Number,
	})
	return nil
}

// MarkDispatched hands the ready order off and closes it on the
// merchant side.
func (s *OrderService) MarkDispatched(ownerID, orderID uint) error {
	o, err := s.merchantOrder(ownerID, orderID)
	if err != nil {
		return err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderReady, entity.OrderCompleted)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.Notify.Publish(Event{
		Kind:    EventOutForDelivery,
		Title:   "Saiu para Entrega",
		Message: fmt.Sprintf("Pedido #%s em rota de entrega.", o.Number),
		OrderID: o.Number,
	})
	return nil
}

func (s *OrderService) ListActive(ownerID uint) ([]entity.Order, error) {
	rest, err := s.RestRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListActive(rest.ID)
}

func (s *OrderService) ListHistory(ownerID uint) ([]entity.Order, error) {
	rest, err := s.RestRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListHistory(rest.ID)
}

type MerchantStats struct {
	OrdersToday   int64 `json:"ordersToday"`
	Revenue       int64 `json:"revenue"`       // cents
	AverageTicket int64 `json:"averageTicket"` // cents
}

// Stats backs the merchant dashboard cards.
func (s *OrderService) Stats(ownerID uint) (MerchantStats, error) {
	rest, err := s.RestRepo.GetByOwner(ownerID)
	if err != nil {
		return MerchantStats{}, err
	}
	midnight := startOfDay(time.Now())
	count, revenue, err := s.Repo.StatsSince(rest.ID, midnight)
	if err != nil {
		return MerchantStats{}, err
	}
	st := MerchantStats{OrdersToday: count, Revenue: revenue}
	if count > 0 {
		st.AverageTicket = revenue / count
	}
	return st, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// courierPayout is what the courier earns for the job: the delivery fee,
// with a floor so free-delivery restaurants still pay the courier.
func courierPayout(deliveryFee int64) int64 {
	const minPayout = 700
	if deliveryFee < minPayout {
		return minPayout
	}
	return deliveryFee
}

// distanceText is a rough straight-line estimate for display only.
func distanceText(lat1, lng1, lat2, lng2 float64) string {
	const kmPerDegree = 111.0
	dLat := (lat2 - lat1) * kmPerDegree
	dLng := (lng2 - lng1) * kmPerDegree
	km := math.Sqrt(dLat*dLat + dLng*dLng)
	return fmt.Sprintf("%.1f km", km)
}
