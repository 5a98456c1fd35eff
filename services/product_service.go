package services

import (
	"errors"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"github.com/carlossbezerra/SuperDelivery/repository"
	"gorm.io/gorm"
)

type ProductService struct {
	DB       *gorm.DB
	Repo     *repository.ProductRepository
	RestRepo *repository.RestaurantRepository
}

func NewProductService(db *gorm.DB, pr *repository.ProductRepository, rr *repository.RestaurantRepository) *ProductService {
	return &ProductService{DB: db, Repo: pr, RestRepo: rr}
}

type ProductIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"` // cents
	Category    string `json:"category"`
	Image       string `json:"image"`
	Stock       int    `json:"stock" binding:"min=0"`
	Available   *bool  `json:"available"`
}

func (s *ProductService) List(ownerID uint) ([]entity.Product, error) {
	rest, err := s.RestRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByRestaurant(rest.ID)
}

func (s *ProductService) Create(ownerID uint, in *ProductIn) (*entity.Product, error) {
	rest, err := s.RestRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		Image:        in.Image,
		Stock:        in.Stock,
		Available:    true,
		RestaurantID: rest.ID,
	}
	if in.Available != nil {
		p.Available = *in.Available
	}
	return p, s.Repo.Create(p)
}

func (s *ProductService) Update(ownerID, productID uint, in *ProductIn) (*entity.Product, error) {
	p, err := s.owned(ownerID, productID)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Category = in.Category
	p.Image = in.Image
	p.Stock = in.Stock
	if in.Available != nil {
		p.Available = *in.Available
	}
	return p, s.Repo.Save(p)
}

// ToggleAvailability flips the manual available switch. Stock is not
// consulted: an out-of-stock product can still be marked available.
func (s *ProductService) ToggleAvailability(ownerID, productID uint) (*entity.Product, error) {
	p, err := s.owned(ownerID, productID)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.SetAvailability(tx, p.ID, !p.Available)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrUnknownItem
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.Available = !p.Available
	return p, nil
}

// Delete removes the product permanently; there is no undo.
func (s *ProductService) Delete(ownerID, productID uint) error {
	rest, err := s.RestRepo.GetByOwner(ownerID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.Delete(tx, rest.ID, productID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrUnknownItem
		}
		return nil
	})
}

func (s *ProductService) owned(ownerID, productID uint) (*entity.Product, error) {
	rest, err := s.RestRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	p, err := s.Repo.Get(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownItem
		}
		return nil, err
	}
	if p.RestaurantID != rest.ID {
		return nil, ErrForbidden
	}
	return p, nil
}
