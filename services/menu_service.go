package services

import (
	"errors"

	"github.com/itsmelouis/kiosko/entity"
	"github.com/itsmelouis/kiosko/repository"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrInvalidOptions     = errors.New("invalid option ids")
)

// MenuService is the catalog provider consumed by the kiosk screens.
type MenuService struct {
	Repo *repository.CatalogRepository
}

func NewMenuService(repo *repository.CatalogRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) Categories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) Products(categoryID uint) ([]entity.Product, error) {
	if categoryID != 0 {
		return s.Repo.ListProductsByCategory(categoryID)
	}
	return s.Repo.ListAvailableProducts()
}

func (s *MenuService) ProductByID(id uint) (*entity.Product, error) {
	return s.Repo.GetProductByID(id)
}

func (s *MenuService) OptionsForProduct(productID uint) ([]entity.ProductOption, error) {
	return s.Repo.GetOptionsForProduct(productID)
}

// BuildSelections resolves option ids into price snapshots for the cart.
// Every id must belong to the product, otherwise the whole selection is
// rejected.
func (s *MenuService) BuildSelections(productID uint, optionIDs []uint) ([]entity.SelectedOption, error) {
	if len(optionIDs) == 0 {
		return nil, nil
	}
	opts, err := s.Repo.GetOptionsByIDs(productID, optionIDs)
	if err != nil {
		return nil, err
	}
	if len(opts) != len(optionIDs) {
		return nil, ErrInvalidOptions
	}
	out := make([]entity.SelectedOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, entity.SelectedOption{
			OptionID:   o.ID,
			Label:      o.Label,
			PriceDelta: o.PriceDelta,
		})
	}
	return out, nil
}

// Snapshot captures the part of a product a cart line keeps.
func Snapshot(p *entity.Product) entity.ProductSnapshot {
	return entity.ProductSnapshot{
		ProductID: p.ID,
		Name:      p.Name,
		BasePrice: p.BasePrice,
	}
}
