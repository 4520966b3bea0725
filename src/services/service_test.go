package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/src/models"
	"github.com/narender/product-console/src/repositories/mocks"
)

func newTestService(repo *mocks.MockProductRepository) ProductConsoleService {
	return NewProductConsoleService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func product(id int64, name, price string) models.Product {
	return models.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func payloadMatching(id *int64, name, price string) interface{} {
	return mock.MatchedBy(func(p models.ProductPayload) bool {
		if (id == nil) != (p.ID == nil) {
			return false
		}
		if id != nil && *id != *p.ID {
			return false
		}
		return p.Name == name && p.Price.Equal(decimal.RequireFromString(price))
	})
}

func answer(yes bool) Confirmer {
	return ConfirmFunc(func(ctx context.Context, prompt string) bool { return yes })
}

var (
	networkErr = apierrors.NewAppError(apierrors.ErrCodeNetworkError, "Failed to reach the product API", io.ErrUnexpectedEOF)
	statusErr  = apierrors.NewStatusError(500, "Failed to save product (status code: 500)")
)

func TestProductConsole_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Initial fetch fails", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("GetAll", mock.Anything).Return(nil, networkErr).Once()
		svc := newTestService(repo)

		appErr := svc.List(ctx)

		require.NotNil(t, appErr)
		state := svc.Snapshot()
		assert.Empty(t, state.Products)
		assert.NotNil(t, state.Products)
		assert.Equal(t, MsgFetchFailed, state.Error)
		repo.AssertExpectations(t)
	})

	t.Run("Failed refresh keeps previous list", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		listed := []models.Product{product(1, "Widget", "9.99")}
		repo.On("GetAll", mock.Anything).Return(listed, nil).Once()
		repo.On("GetAll", mock.Anything).Return(nil, statusErr).Once()
		svc := newTestService(repo)

		assert.Nil(t, svc.List(ctx))
		assert.NotNil(t, svc.List(ctx))

		state := svc.Snapshot()
		assert.Equal(t, listed, state.Products)
		assert.Equal(t, MsgFetchFailed, state.Error)
	})

	t.Run("Successful fetch clears the error", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("GetAll", mock.Anything).Return(nil, networkErr).Once()
		repo.On("GetAll", mock.Anything).Return([]models.Product{product(2, "Gadget", "4.5")}, nil).Once()
		svc := newTestService(repo)

		_ = svc.List(ctx)
		assert.Nil(t, svc.List(ctx))

		state := svc.Snapshot()
		assert.Len(t, state.Products, 1)
		assert.Empty(t, state.Error)
	})
}

func TestProductConsole_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid form sends nothing", func(t *testing.T) {
		cases := []struct{ name, price string }{
			{"", "1"},
			{"Widget", ""},
			{"Widget", "abc"},
			{"Widget", "0"},
			{"Widget", "-3"},
		}
		for _, tc := range cases {
			repo := new(mocks.MockProductRepository)
			svc := newTestService(repo)
			svc.SetName(tc.name)
			svc.SetPrice(tc.price)

			appErr := svc.Submit(ctx)

			require.NotNil(t, appErr, "name=%q price=%q", tc.name, tc.price)
			assert.Equal(t, apierrors.ErrCodeInvalidProductData, appErr.Code)
			state := svc.Snapshot()
			assert.Equal(t, MsgInvalidProduct, state.Error)
			assert.Equal(t, tc.name, state.Form.Name)
			assert.Equal(t, tc.price, state.Form.Price)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "GetAll", mock.Anything)
		}
	})

	t.Run("Create resets the form and refetches", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Create", mock.Anything, payloadMatching(nil, "Widget", "9.99")).Return(nil).Once()
		repo.On("GetAll", mock.Anything).Return([]models.Product{product(1, "Widget", "9.99")}, nil).Once()
		svc := newTestService(repo)
		svc.SetName("Widget")
		svc.SetPrice("9.99")

		assert.Nil(t, svc.Submit(ctx))

		state := svc.Snapshot()
		assert.Equal(t, models.FormState{}, state.Form)
		assert.Empty(t, state.Error)
		require.Len(t, state.Products, 1)
		assert.Equal(t, "Widget", state.Products[0].Name)
		repo.AssertExpectations(t)
	})

	t.Run("Whitespace name is sent as typed", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Create", mock.Anything, payloadMatching(nil, "   ", "9.99")).Return(nil).Once()
		repo.On("GetAll", mock.Anything).Return([]models.Product{product(1, "   ", "9.99")}, nil).Once()
		svc := newTestService(repo)
		svc.SetName("   ")
		svc.SetPrice("9.99")

		assert.Nil(t, svc.Submit(ctx))

		assert.Empty(t, svc.Snapshot().Error)
		repo.AssertNumberOfCalls(t, "Create", 1)
		repo.AssertExpectations(t)
	})

	t.Run("Editing sends an update with the id", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		id := int64(2)
		repo.On("Update", mock.Anything, payloadMatching(&id, "Gadget Pro", "5")).Return(nil).Once()
		repo.On("GetAll", mock.Anything).Return([]models.Product{product(2, "Gadget Pro", "5")}, nil).Once()
		svc := newTestService(repo)

		svc.Edit(product(2, "Gadget", "4.5"))
		state := svc.Snapshot()
		assert.True(t, state.Form.Editing)
		assert.Equal(t, "Gadget", state.Form.Name)
		assert.Equal(t, "4.5", state.Form.Price)

		svc.SetName("Gadget Pro")
		svc.SetPrice("5")
		assert.Nil(t, svc.Submit(ctx))

		assert.False(t, svc.Snapshot().Form.Editing)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("Status failure keeps the form", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(statusErr).Once()
		svc := newTestService(repo)
		svc.SetName("Widget")
		svc.SetPrice("9.99")

		appErr := svc.Submit(ctx)

		require.NotNil(t, appErr)
		assert.Equal(t, 500, appErr.StatusCode)
		state := svc.Snapshot()
		assert.Equal(t, MsgSaveFailed, state.Error)
		assert.Equal(t, "Widget", state.Form.Name)
		repo.AssertNotCalled(t, "GetAll", mock.Anything)
	})

	t.Run("Transport failure shows the generic message", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(networkErr).Once()
		svc := newTestService(repo)
		svc.SetName("Widget")
		svc.SetPrice("9.99")

		require.NotNil(t, svc.Submit(ctx))
		assert.Equal(t, MsgRequestFailed, svc.Snapshot().Error)
	})

	t.Run("Refetch failure after save shows fetch message", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		repo.On("GetAll", mock.Anything).Return(nil, networkErr).Once()
		svc := newTestService(repo)
		svc.SetName("Widget")
		svc.SetPrice("9.99")

		assert.Nil(t, svc.Submit(ctx))

		state := svc.Snapshot()
		assert.Equal(t, MsgFetchFailed, state.Error)
		assert.Equal(t, models.FormState{}, state.Form)
	})
}

func TestProductConsole_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Declined sends nothing", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("GetAll", mock.Anything).Return(nil, networkErr).Once()
		svc := newTestService(repo)
		_ = svc.List(ctx)

		appErr := svc.Delete(ctx, 1, answer(false))

		require.NotNil(t, appErr)
		assert.Equal(t, apierrors.ErrCodeDeleteDeclined, appErr.Code)
		assert.Equal(t, MsgFetchFailed, svc.Snapshot().Error)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("Nil confirmer counts as declined", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := newTestService(repo)

		appErr := svc.Delete(ctx, 1, nil)

		assert.True(t, apierrors.HasCode(appErr, apierrors.ErrCodeDeleteDeclined))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Prompt text", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := newTestService(repo)
		var asked string
		_ = svc.Delete(ctx, 1, ConfirmFunc(func(_ context.Context, prompt string) bool {
			asked = prompt
			return false
		}))
		assert.Equal(t, "Delete this product?", asked)
	})

	t.Run("Confirmed delete refetches", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
		repo.On("GetAll", mock.Anything).Return([]models.Product{}, nil).Once()
		svc := newTestService(repo)

		assert.Nil(t, svc.Delete(ctx, 1, answer(true)))
		assert.Empty(t, svc.Snapshot().Error)
		repo.AssertExpectations(t)
	})

	t.Run("Status failure", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Delete", mock.Anything, int64(7)).Return(apierrors.NewStatusError(404, "gone")).Once()
		svc := newTestService(repo)

		require.NotNil(t, svc.Delete(ctx, 7, answer(true)))
		assert.Equal(t, MsgDeleteFailed, svc.Snapshot().Error)
		repo.AssertNotCalled(t, "GetAll", mock.Anything)
	})

	t.Run("Transport failure", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Delete", mock.Anything, int64(7)).Return(networkErr).Once()
		svc := newTestService(repo)

		require.NotNil(t, svc.Delete(ctx, 7, answer(true)))
		assert.Equal(t, MsgRequestFailed, svc.Snapshot().Error)
	})
}

func TestProductConsole_Form(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockProductRepository)
	repo.On("GetAll", mock.Anything).Return([]models.Product{product(2, "Gadget", "4.5")}, nil).Once()
	svc := newTestService(repo)
	require.Nil(t, svc.List(ctx))

	t.Run("EditByID unknown id changes nothing", func(t *testing.T) {
		svc.SetName("draft")
		appErr := svc.EditByID(99)

		require.NotNil(t, appErr)
		assert.Equal(t, apierrors.ErrCodeProductNotFound, appErr.Code)
		assert.Equal(t, "draft", svc.Snapshot().Form.Name)
		assert.False(t, svc.Snapshot().Form.Editing)
	})

	t.Run("EditByID loads the product", func(t *testing.T) {
		require.Nil(t, svc.EditByID(2))

		form := svc.Snapshot().Form
		require.NotNil(t, form.ID)
		assert.Equal(t, int64(2), *form.ID)
		assert.Equal(t, "Gadget", form.Name)
		assert.Equal(t, "4.5", form.Price)
		assert.True(t, form.Editing)
	})

	t.Run("Cancel clears the form", func(t *testing.T) {
		svc.Cancel()
		assert.Equal(t, models.FormState{}, svc.Snapshot().Form)
	})

	t.Run("Snapshot is a copy", func(t *testing.T) {
		require.Nil(t, svc.EditByID(2))
		state := svc.Snapshot()
		state.Products[0].Name = "changed"
		*state.Form.ID = 42

		again := svc.Snapshot()
		assert.Equal(t, "Gadget", again.Products[0].Name)
		assert.Equal(t, int64(2), *again.Form.ID)
	})

	repo.AssertExpectations(t)
}

func TestProductConsole_ConcurrentAccess(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("GetAll", mock.Anything).Return([]models.Product{product(1, "Widget", "9.99")}, nil)
	svc := newTestService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.List(context.Background())
			svc.SetName("x")
			_ = svc.Snapshot()
		}()
	}
	wg.Wait()

	assert.Len(t, svc.Snapshot().Products, 1)
}
