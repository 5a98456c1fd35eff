package services

import (
	"errors"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"github.com/carlossbezerra/SuperDelivery/repository"
	"gorm.io/gorm"
)

// CatalogService is the read-only customer view of restaurants and
// their menus. Reference data: only merchants mutate it.
type CatalogService struct {
	RestRepo *repository.RestaurantRepository
}

func NewCatalogService(rr *repository.RestaurantRepository) *CatalogService {
	return &CatalogService{RestRepo: rr}
}

func (s *CatalogService) List(category string) ([]entity.Restaurant, error) {
	return s.RestRepo.List(category)
}

func (s *CatalogService) Detail(id uint) (*entity.Restaurant, error) {
	rest, err := s.RestRepo.GetWithMenu(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownItem
		}
		return nil, err
	}
	return rest, nil
}
