package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/models"
	"github.com/janatafootwear/storefront/internal/repo"
	"github.com/janatafootwear/storefront/internal/search"
)

// CatalogService owns the product store. Writes are admin-gated at the
// HTTP layer and mirrored into the search index when one is configured.
type CatalogService struct {
	Repo    *repo.GormRepo
	Indexer *search.Indexer
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) GetProducts(ctx context.Context, category string, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.GetProducts(ctx, category, offset, limit)
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("name required: %w", ErrValidation)
	}
	if p.Price <= 0 {
		return fmt.Errorf("price must be positive: %w", ErrValidation)
	}

	if err := s.Repo.CreateProduct(ctx, p); err != nil {
		return err
	}
	s.Indexer.IndexProduct(ctx, p)
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, updated models.Product) (*models.Product, error) {
	if updated.Name == "" {
		return nil, fmt.Errorf("name required: %w", ErrValidation)
	}
	if updated.Price <= 0 {
		return nil, fmt.Errorf("price must be positive: %w", ErrValidation)
	}

	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = updated.Name
	p.Description = updated.Description
	p.Price = updated.Price
	p.Stock = updated.Stock
	p.Category = updated.Category
	p.Brand = updated.Brand
	p.Color = updated.Color
	p.Material = updated.Material
	p.Sizes = updated.Sizes
	p.Tags = updated.Tags
	p.Images = updated.Images

	if err := s.Repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}
	s.Indexer.IndexProduct(ctx, p)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.Indexer.DeleteProduct(ctx, id)
	return nil
}
