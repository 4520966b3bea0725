package services

import (
	"fmt"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/src/models"
)

func (s *productConsole) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Name = name
}

func (s *productConsole) SetPrice(price string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Price = price
}

// Edit loads a product into the form. The next Submit becomes an update.
func (s *productConsole) Edit(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = models.FormFromProduct(product)
}

// EditByID edits a product from the current list.
func (s *productConsole) EditByID(id int64) *apierrors.AppError {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			s.form = models.FormFromProduct(p)
			return nil
		}
	}
	return apierrors.NewAppError(apierrors.ErrCodeProductNotFound, fmt.Sprintf("Product %d is not in the list", id), nil)
}

// Cancel empties the form and leaves edit mode.
func (s *productConsole) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = models.FormState{}
}
