package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elopinion/elopinion/internal/domain"
	"github.com/elopinion/elopinion/internal/repository"
	apperrors "github.com/elopinion/elopinion/pkg/errors"
)

// ProductService implements the catalog operations. Products enter the
// ranking at the default score and are only rescored through reviews.
type ProductService struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(products repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		products: products,
		logger:   logger,
	}
}

// CreateProductInput holds the parameters for creating a product.
type CreateProductInput struct {
	Name     string
	Category string
}

// CreateProduct adds a product to the catalog with the default score.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if !domain.IsValidCategory(input.Category) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid category %q, must be one of: %s",
			input.Category, strings.Join(domain.ValidCategories(), ", ")))
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Category:  input.Category,
		EloScore:  domain.DefaultEloScore,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("category", product.Category),
	)

	return product, nil
}

// ListProducts returns all catalog products.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
