package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elopinion/elopinion/internal/domain"
	apperrors "github.com/elopinion/elopinion/pkg/errors"
)

func TestCreateProduct_Success(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, newTestLogger())
	ctx := context.Background()

	products.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:     "Hades",
		Category: domain.CategoryVideojuego,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Hades", product.Name)
	assert.Equal(t, domain.CategoryVideojuego, product.Category)
	assert.Equal(t, domain.DefaultEloScore, product.EloScore)
	assert.NotZero(t, product.CreatedAt)
	products.AssertExpectations(t)
}

func TestCreateProduct_EmptyName(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, newTestLogger())

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Category: domain.CategoryPelicula,
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct_InvalidCategory(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, newTestLogger())

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:     "Something",
		Category: "electronica",
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestListProducts_Success(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, newTestLogger())
	ctx := context.Background()

	want := []domain.Product{
		{ID: "prod-001", Name: "La Sirenita", Category: domain.CategoryPelicula, EloScore: 1516},
		{ID: "prod-002", Name: "Moana", Category: domain.CategoryPelicula, EloScore: 1484},
	}
	products.On("List", ctx).Return(want, nil)

	got, err := svc.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListProducts_RepositoryError(t *testing.T) {
	products := new(mockProductRepository)
	svc := NewProductService(products, newTestLogger())
	ctx := context.Background()

	products.On("List", ctx).Return(nil, assert.AnError)

	got, err := svc.ListProducts(ctx)

	assert.Nil(t, got)
	assert.Error(t, err)
}
