package services

import (
	"errors"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"github.com/carlossbezerra/SuperDelivery/repository"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	RestRepo    *repository.RestaurantRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository, rr *repository.RestaurantRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr, RestRepo: rr}
}

// Totals is the derived money view of a cart. All values are cents, so
// two-decimal display rounding is exact by construction.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, Totals, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, Totals{}, err
	}
	t, err := s.totals(c)
	return c, t, err
}

// totals computes subtotal = Σ price×qty plus the locked restaurant's
// delivery fee (0 while the cart is empty).
func (s *CartService) totals(c *entity.Cart) (Totals, error) {
	var t Totals
	for _, it := range c.Items {
		t.Subtotal += it.Total
	}
	if c.RestaurantID != 0 {
		rest, err := s.RestRepo.Get(c.RestaurantID)
		if err != nil {
			return t, err
		}
		t.DeliveryFee = rest.DeliveryFee
	}
	t.Total = t.Subtotal + t.DeliveryFee
	return t, nil
}

// Add puts one unit of the product in the cart: a repeat add bumps the
// existing line, a first add opens a new line with qty 1.
func (s *CartService) Add(userID, productID uint) error {
	p, err := s.ProductRepo.Get(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownItem
		}
		return err
	}
	if !p.Available {
		return ErrUnavailable
	}

	c, err := s.CartRepo.GetOrCreateCart(userID, p.RestaurantID)
	if err != nil {
		return err
	}
	if c.RestaurantID != 0 && c.RestaurantID != p.RestaurantID {
		return ErrCartConflict
	}
	if c.RestaurantID == 0 {
		c.RestaurantID = p.RestaurantID
		if err := s.CartRepo.DB.Save(c).Error; err != nil {
			return err
		}
	}

	line := &entity.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Qty:       1,
		UnitPrice: p.Price,
		Total:     p.Price,
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// SetQuantity replaces a line's quantity. Zero removes the line;
// negative quantities are rejected.
func (s *CartService) SetQuantity(userID, itemID uint, qty int) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}
	if qty == 0 {
		return s.RemoveItem(userID, itemID)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.UpdateQty(tx, userID, itemID, qty)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrUnknownItem
		}
		return nil
	})
}

// RemoveItem deletes the line if present. A missing line is a no-op,
// matching the UI behavior this backend reproduces.
func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
