package services

import (
	"context"
	"log/slog"
	"sync"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/src/models"
	"github.com/narender/product-console/src/repositories"
)

// Messages shown to the user. Failures never surface more detail than these.
const (
	MsgFetchFailed    = "Failed to fetch products"
	MsgInvalidProduct = "Please enter valid product details"
	MsgSaveFailed     = "Failed to save product"
	MsgDeleteFailed   = "Failed to delete product"
	MsgRequestFailed  = "An error occurred"

	DeletePrompt = "Delete this product?"
)

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// ProductConsoleService holds the product list, the form and the current error message,
// and runs the list/save/delete cycle against the product API.
type ProductConsoleService interface {
	List(ctx context.Context) *apierrors.AppError
	Submit(ctx context.Context) *apierrors.AppError
	Delete(ctx context.Context, id int64, confirmer Confirmer) *apierrors.AppError
	Get(ctx context.Context, id int64) (*models.Product, *apierrors.AppError)

	SetName(name string)
	SetPrice(price string)
	Edit(product models.Product)
	EditByID(id int64) *apierrors.AppError
	Cancel()

	Snapshot() models.ViewState
}

type productConsole struct {
	// mu is held for a whole operation, network call included, so user actions never overlap.
	mu       sync.Mutex
	repo     repositories.ProductRepository
	logger   *slog.Logger
	products []models.Product
	form     models.FormState
	errMsg   string
}

func NewProductConsoleService(repo repositories.ProductRepository, logger *slog.Logger) ProductConsoleService {
	return &productConsole{
		repo:     repo,
		logger:   logger,
		products: []models.Product{},
	}
}

func (s *productConsole) Snapshot() models.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]models.Product, len(s.products))
	copy(products, s.products)

	form := s.form
	if form.ID != nil {
		id := *form.ID
		form.ID = &id
	}

	return models.ViewState{
		Products: products,
		Form:     form,
		Error:    s.errMsg,
	}
}

// failureMessage picks the generic message for a failed mutation.
func failureMessage(appErr *apierrors.AppError, statusMsg string) string {
	if apierrors.IsTransport(appErr) {
		return MsgRequestFailed
	}
	return statusMsg
}
