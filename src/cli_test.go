package main

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/common/log"
	"github.com/narender/product-console/src/models"
	"github.com/narender/product-console/src/repositories/mocks"
	"github.com/narender/product-console/src/services"
)

// newTestCLI bypasses setup by installing a console backed by repo.
func newTestCLI(repo *mocks.MockProductRepository, stdin string) (*cli, *bytes.Buffer) {
	var out bytes.Buffer
	c := newCLI(strings.NewReader(stdin), &out, &out)
	c.logger = log.Discard()
	c.console = services.NewProductConsoleService(repo, c.logger)
	return c, &out
}

func run(c *cli, args ...string) error {
	root := c.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

var products = []models.Product{
	{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99")},
	{ID: 2, Name: "Gadget", Price: decimal.RequireFromString("4.5")},
}

func TestPrintProducts(t *testing.T) {
	var buf bytes.Buffer
	printProducts(&buf, nil)
	assert.Equal(t, "No products yet\n", buf.String())

	buf.Reset()
	printProducts(&buf, products)
	assert.Equal(t, "1  Widget  $9.99\n2  Gadget  $4.5\n", buf.String())
}

func TestTerminalConfirmer(t *testing.T) {
	cases := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"yes":   true,
		"n\n":   false,
		"\n":    false,
		"":      false,
	}
	for input, want := range cases {
		var out bytes.Buffer
		confirmer := terminalConfirmer{in: bufio.NewReader(strings.NewReader(input)), out: &out}
		assert.Equal(t, want, confirmer.Confirm(context.Background(), services.DeletePrompt), "input %q", input)
		assert.Equal(t, "Delete this product? [y/N] ", out.String())
	}
}

func TestListCommand(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("GetAll", mock.Anything).Return(products, nil).Once()
	c, out := newTestCLI(repo, "")

	require.NoError(t, run(c, "list"))
	assert.Equal(t, "1  Widget  $9.99\n2  Gadget  $4.5\n", out.String())
}

func TestListCommandFailure(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("GetAll", mock.Anything).Return(nil, apierrors.NewStatusError(500, "boom")).Once()
	c, _ := newTestCLI(repo, "")

	err := run(c, "list")
	require.Error(t, err)
	assert.Equal(t, services.MsgFetchFailed, err.Error())
}

func TestCreateCommandValidation(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	c, _ := newTestCLI(repo, "")

	err := run(c, "create", "--name", "Widget", "--price", "free")
	require.Error(t, err)
	assert.Equal(t, services.MsgInvalidProduct, err.Error())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateCommand(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("GetAll", mock.Anything).Return(products, nil).Twice()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p models.ProductPayload) bool {
		return p.ID != nil && *p.ID == 2 && p.Name == "Gadget" && p.Price.Equal(decimal.RequireFromString("5"))
	})).Return(nil).Once()
	c, out := newTestCLI(repo, "")

	require.NoError(t, run(c, "update", "2", "--price", "5"))
	assert.Contains(t, out.String(), "Updated product 2")
	repo.AssertExpectations(t)
}

func TestUpdateCommandUnknownID(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("GetAll", mock.Anything).Return(products, nil).Once()
	c, _ := newTestCLI(repo, "")

	err := run(c, "update", "9", "--name", "x")
	require.Error(t, err)
	assert.Equal(t, "product 9 not found", err.Error())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteCommand(t *testing.T) {
	t.Run("Declined at the prompt", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		c, out := newTestCLI(repo, "n\n")

		require.NoError(t, run(c, "delete", "1"))
		assert.Contains(t, out.String(), "Delete this product? [y/N] ")
		assert.Contains(t, out.String(), "Delete cancelled")
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Confirmed with --yes", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
		repo.On("GetAll", mock.Anything).Return(products[1:], nil).Once()
		c, out := newTestCLI(repo, "")

		require.NoError(t, run(c, "delete", "1", "--yes"))
		assert.NotContains(t, out.String(), "[y/N]")
		assert.Contains(t, out.String(), "Deleted product 1")
		repo.AssertExpectations(t)
	})

	t.Run("Bad id", func(t *testing.T) {
		c, _ := newTestCLI(new(mocks.MockProductRepository), "")
		assert.Error(t, run(c, "delete", "abc", "--yes"))
	})
}

func TestShowCommandNotFound(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, apierrors.NewStatusError(404, "missing")).Once()
	c, _ := newTestCLI(repo, "")

	err := run(c, "show", "5")
	require.Error(t, err)
	assert.Equal(t, "product 5 not found", err.Error())
}
