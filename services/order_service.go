package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"github.com/carlossbezerra/SuperDelivery/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
	DelRepo  *repository.DeliveryRepository
	UserRepo *repository.UserRepository
	Notify   Notifier

	// cosmetic tracking speed; one stage per interval
	TrackStepInterval time.Duration
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository,
	rr *repository.RestaurantRepository, dr *repository.DeliveryRepository,
	ur *repository.UserRepository, notify Notifier, trackStep time.Duration) *OrderService {
	return &OrderService{
		DB: db, Repo: or, CartRepo: cr, RestRepo: rr, DelRepo: dr, UserRepo: ur,
		Notify: notify, TrackStepInterval: trackStep,
	}
}

type CheckoutIn struct {
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

const orderNumberAlphabet = "0123456789ABCDEFGHJKMNPQRSTUVWXYZ"

func newOrderNumber() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}
	return string(b)
}

// Checkout snapshots the cart into an order, clears the cart, and tells
// the merchant about it. The order starts pending in the merchant queue.
func (s *OrderService) Checkout(userID uint, in *CheckoutIn) (*entity.Order, error) {
	user, err := s.UserRepo.Get(userID)
	if err != nil {
		return nil, err
	}
	cart, err := s.CartRepo.GetCartWithItems(user.ID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 || cart.RestaurantID == 0 {
		return nil, ErrEmptyCart
	}
	rest, err := s.RestRepo.Get(cart.RestaurantID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		Number:        newOrderNumber(),
		CustomerName:  user.Name,
		UserID:        user.ID,
		RestaurantID:  rest.ID,
		Address:       in.Address,
		PaymentMethod: in.PaymentMethod,
		DeliveryFee:   rest.DeliveryFee,
		Status:        entity.OrderPending,
	}
	for _, it := range cart.Items {
		order.Subtotal += it.Total
		order.Items = append(order.Items, entity.OrderItem{
			Name:      it.Name,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
			ProductID: it.ProductID,
		})
	}
	order.Total = order.Subtotal + order.DeliveryFee

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		return s.CartRepo.ClearCart(tx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	s.Notify.Publish(Event{
		Kind:    EventNewOrder,
		Title:   "Novo Pedido!",
		Message: fmt.Sprintf("Pedido #%s de %s.", order.Number, order.CustomerName),
		OrderID: order.Number,
	})
	return order, nil
}

// Get returns the order if it belongs to the requesting customer.
func (s *OrderService) Get(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownOrder
		}
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListByUser(userID)
}

// Track computes the cosmetic tracking stage from the order's age.
func (s *OrderService) Track(userID, orderID uint) (*entity.Order, Tracking, error) {
	o, err := s.Get(userID, orderID)
	if err != nil {
		return nil, Tracking{}, err
	}
	return o, StageAt(o.CreatedAt, time.Now(), s.TrackStepInterval), nil
}
