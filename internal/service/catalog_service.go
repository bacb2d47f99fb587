package service

import (
	"context"

	"caterbook/internal/models"
	"caterbook/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CatalogService manages the menu items and packages a provider offers.
// Removals never cascade: bookings and packages may keep dangling item
// references, which resolve to the unknown placeholder at read time.
type CatalogService struct {
	store  *store.Store
	logger *zerolog.Logger
}

func NewCatalogService(st *store.Store, logger *zerolog.Logger) *CatalogService {
	return &CatalogService{store: st, logger: logger}
}

// MenuItemParams describes a new or updated menu item.
type MenuItemParams struct {
	ProviderID string
	Name       string
	Category   string
	Price      int64
	Type       string
}

func (s *CatalogService) AddMenuItem(ctx context.Context, p MenuItemParams) (models.MenuItem, error) {
	if _, ok := s.store.ProviderByID(p.ProviderID); !ok {
		return models.MenuItem{}, ErrProviderNotFound
	}

	item := models.MenuItem{
		ID:         uuid.NewString(),
		ProviderID: p.ProviderID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		Type:       p.Type,
	}

	updated := append(append([]models.MenuItem(nil), s.store.MenuItems()...), item)
	if err := s.store.SaveMenuItems(ctx, updated); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, itemID string, p MenuItemParams) (models.MenuItem, error) {
	items := s.store.MenuItems()
	idx := -1
	for i, item := range items {
		if item.ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.MenuItem{}, ErrMenuItemNotFound
	}

	updated := append([]models.MenuItem(nil), items...)
	updated[idx].Name = p.Name
	updated[idx].Category = p.Category
	updated[idx].Price = p.Price
	updated[idx].Type = p.Type
	if err := s.store.SaveMenuItems(ctx, updated); err != nil {
		return models.MenuItem{}, err
	}
	return updated[idx], nil
}

func (s *CatalogService) RemoveMenuItem(ctx context.Context, itemID string) error {
	items := s.store.MenuItems()
	updated := make([]models.MenuItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == itemID {
			found = true
			continue
		}
		updated = append(updated, item)
	}
	if !found {
		return ErrMenuItemNotFound
	}
	return s.store.SaveMenuItems(ctx, updated)
}

// MenuFor returns the provider's menu items in collection order.
func (s *CatalogService) MenuFor(providerID string) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range s.store.MenuItems() {
		if item.ProviderID == providerID {
			out = append(out, item)
		}
	}
	return out
}

// PackageParams describes a new or updated package.
type PackageParams struct {
	ProviderID    string
	Name          string
	ItemIDs       []string
	PricePerPlate int64
	Description   string
}

// AddPackage validates that every referenced item belongs to the same
// provider before storing the package.
func (s *CatalogService) AddPackage(ctx context.Context, p PackageParams) (models.Package, error) {
	if _, ok := s.store.ProviderByID(p.ProviderID); !ok {
		return models.Package{}, ErrProviderNotFound
	}
	if err := s.checkItemOwnership(p.ProviderID, p.ItemIDs); err != nil {
		return models.Package{}, err
	}

	pkg := models.Package{
		ID:            uuid.NewString(),
		ProviderID:    p.ProviderID,
		Name:          p.Name,
		ItemIDs:       p.ItemIDs,
		PricePerPlate: p.PricePerPlate,
		Description:   p.Description,
	}

	updated := append(append([]models.Package(nil), s.store.Packages()...), pkg)
	if err := s.store.SavePackages(ctx, updated); err != nil {
		return models.Package{}, err
	}
	return pkg, nil
}

func (s *CatalogService) UpdatePackage(ctx context.Context, packageID string, p PackageParams) (models.Package, error) {
	packages := s.store.Packages()
	idx := -1
	for i, pkg := range packages {
		if pkg.ID == packageID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Package{}, ErrPackageNotFound
	}
	if err := s.checkItemOwnership(packages[idx].ProviderID, p.ItemIDs); err != nil {
		return models.Package{}, err
	}

	updated := append([]models.Package(nil), packages...)
	updated[idx].Name = p.Name
	updated[idx].ItemIDs = p.ItemIDs
	updated[idx].PricePerPlate = p.PricePerPlate
	updated[idx].Description = p.Description
	if err := s.store.SavePackages(ctx, updated); err != nil {
		return models.Package{}, err
	}
	return updated[idx], nil
}

func (s *CatalogService) RemovePackage(ctx context.Context, packageID string) error {
	packages := s.store.Packages()
	updated := make([]models.Package, 0, len(packages))
	found := false
	for _, pkg := range packages {
		if pkg.ID == packageID {
			found = true
			continue
		}
		updated = append(updated, pkg)
	}
	if !found {
		return ErrPackageNotFound
	}
	return s.store.SavePackages(ctx, updated)
}

// PackagesFor returns the provider's packages in collection order.
func (s *CatalogService) PackagesFor(providerID string) []models.Package {
	var out []models.Package
	for _, pkg := range s.store.Packages() {
		if pkg.ProviderID == providerID {
			out = append(out, pkg)
		}
	}
	return out
}

func (s *CatalogService) checkItemOwnership(providerID string, itemIDs []string) error {
	for _, id := range itemIDs {
		item, ok := s.store.MenuItemByID(id)
		if !ok {
			return ErrMenuItemNotFound
		}
		if item.ProviderID != providerID {
			return ErrForeignMenuItem
		}
	}
	return nil
}
