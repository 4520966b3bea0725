package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/src/models"
)

type MockProductRepository struct {
	mock.Mock
}

func appErr(args mock.Arguments, i int) *apierrors.AppError {
	if res := args.Get(i); res != nil {
		return res.(*apierrors.AppError)
	}
	return nil
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, *apierrors.AppError) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.Product), appErr(args, 1)
	}
	return nil, appErr(args, 1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, *apierrors.AppError) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Product), appErr(args, 1)
	}
	return nil, appErr(args, 1)
}

func (m *MockProductRepository) Create(ctx context.Context, payload models.ProductPayload) *apierrors.AppError {
	return appErr(m.Called(ctx, payload), 0)
}

func (m *MockProductRepository) Update(ctx context.Context, payload models.ProductPayload) *apierrors.AppError {
	return appErr(m.Called(ctx, payload), 0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) *apierrors.AppError {
	return appErr(m.Called(ctx, id), 0)
}
