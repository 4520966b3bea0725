package repositories

import (
	"context"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/src/models"
)

// ProductRepository is the product API as seen by the console. Persistence lives entirely
// behind it.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, *apierrors.AppError)
	GetByID(ctx context.Context, id int64) (*models.Product, *apierrors.AppError)
	Create(ctx context.Context, payload models.ProductPayload) *apierrors.AppError
	Update(ctx context.Context, payload models.ProductPayload) *apierrors.AppError
	Delete(ctx context.Context, id int64) *apierrors.AppError
}
