package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"github.com/carlossbezerra/SuperDelivery/repository"
	"gorm.io/gorm"
)

type DeliveryService struct {
	DB       *gorm.DB
	Repo     *repository.DeliveryRepository
	UserRepo *repository.UserRepository
	Notify   Notifier
}

func NewDeliveryService(db *gorm.DB, dr *repository.DeliveryRepository, ur *repository.UserRepository, notify Notifier) *DeliveryService {
	return &DeliveryService{DB: db, Repo: dr, UserRepo: ur, Notify: notify}
}

func (s *DeliveryService) Pool() ([]entity.Delivery, error) {
	return s.Repo.ListAvailable()
}

func (s *DeliveryService) Active(courierID uint) (*entity.Delivery, error) {
	return s.Repo.ActiveForCourier(courierID)
}

// SetAvailability toggles the courier online/offline. Going offline
// with a delivery in hand is refused.
func (s *DeliveryService) SetAvailability(courierID uint, online bool) error {
	if !online {
		active, err := s.Repo.ActiveForCourier(courierID)
		if err != nil {
			return err
		}
		if active != nil {
			return ErrCourierBusy
		}
	}
	return s.UserRepo.SetOnline(courierID, online)
}

// Accept claims a delivery from the shared pool. The claim is a single
// atomic update, so of two couriers racing for the same job exactly one
// wins; the loser gets ErrDeliveryClaimed.
func (s *DeliveryService) Accept(courierID, deliveryID uint) (*entity.Delivery, error) {
	courier, err := s.UserRepo.Get(courierID)
	if err != nil {
		return nil, err
	}
	if !courier.Online {
		return nil, ErrCourierOffline
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.Claim(tx, deliveryID, courierID, time.Now())
		if err != nil {
			return err
		}
		if affected == 0 {
			// figure out which half of the guard failed
			active, aerr := s.Repo.ActiveForCourier(courierID)
			if aerr == nil && active != nil {
				return ErrCourierBusy
			}
			if _, gerr := s.Repo.Get(deliveryID); errors.Is(gerr, gorm.ErrRecordNotFound) {
				return ErrUnknownDelivery
			}
			return ErrDeliveryClaimed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d, err := s.Repo.Get(deliveryID)
	if err != nil {
		return nil, err
	}
	s.Notify.Publish(Event{
		Kind:    EventDeliveryAssigned,
		Title:   "Entrega Aceita",
		Message: fmt.Sprintf("Você aceitou a entrega do pedido de %s.", d.CustomerName),
		OrderID: deliveryRef(d),
	})
	return d, nil
}

// Arrived: the courier reached the restaurant.
func (s *DeliveryService) Arrived(courierID, deliveryID uint) error {
	if err := s.advance(courierID, deliveryID, entity.DeliveryAccepted, entity.DeliveryPicking); err != nil {
		return err
	}
	s.notifyStep(deliveryID, EventOrderReady, "Chegou no Restaurante", "Aguardando retirada do pedido.")
	return nil
}

// Depart: picked up, heading to the customer.
func (s *DeliveryService) Depart(courierID, deliveryID uint) error {
	if err := s.advance(courierID, deliveryID, entity.DeliveryPicking, entity.DeliveryDelivering); err != nil {
		return err
	}
	s.notifyStep(deliveryID, EventOutForDelivery, "Saiu para Entrega", "Pedido em rota de entrega ao cliente.")
	return nil
}

// Complete finishes the delivery and frees the courier's active slot.
func (s *DeliveryService) Complete(courierID, deliveryID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.AdvanceGuard(tx, deliveryID, courierID, entity.DeliveryDelivering, entity.DeliveryCompleted)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return s.Repo.MarkCompleted(tx, deliveryID, time.Now())
	})
	if err != nil {
		return err
	}
	s.notifyStep(deliveryID, EventDelivered, "Entrega Concluída", "Pedido entregue com sucesso!")
	return nil
}

func (s *DeliveryService) advance(courierID, deliveryID uint, from, to entity.DeliveryStatus) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.AdvanceGuard(tx, deliveryID, courierID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

func (s *DeliveryService) notifyStep(deliveryID uint, kind EventKind, title, msg string) {
	d, err := s.Repo.Get(deliveryID)
	if err != nil {
		return
	}
	s.Notify.Publish(Event{Kind: kind, Title: title, Message: msg, OrderID: deliveryRef(d)})
}

func deliveryRef(d *entity.Delivery) string {
	if d.OrderID != nil {
		return fmt.Sprintf("%d", *d.OrderID)
	}
	return fmt.Sprintf("%d", d.ID)
}

type CourierStats struct {
	DeliveriesToday int64 `json:"deliveriesToday"`
	Earnings        int64 `json:"earnings"` // cents
}

func (s *DeliveryService) Stats(courierID uint) (CourierStats, error) {
	count, earnings, err := s.Repo.StatsSince(courierID, startOfDay(time.Now()))
	if err != nil {
		return CourierStats{}, err
	}
	return CourierStats{DeliveriesToday: count, Earnings: earnings}, nil
}
