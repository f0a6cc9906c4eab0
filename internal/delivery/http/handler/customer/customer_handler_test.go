package customer

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/riolentius/customer-accounts/internal/repository/memory"
	customeruc "github.com/riolentius/customer-accounts/internal/usecase/customer"
)

type failingStore struct {
	*memory.CustomerStore
}

func (failingStore) Insert(context.Context, customeruc.Customer) (int64, error) {
	return 0, errors.New("insert failed: connection refused")
}

func (failingStore) All(context.Context) ([]customeruc.Customer, error) {
	return nil, errors.New("select failed: connection refused")
}

func TestHandler_StoreFailureIs500(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	log := zap.New(core)

	h := New(customeruc.New(failingStore{memory.NewCustomerStore()}, log), log)
	app := fiber.New()
	app.Get("/customers", h.List)
	app.Post("/customers", h.Create)

	resp, err := app.Test(httptest.NewRequest("GET", "/customers", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	req := httptest.NewRequest("POST", "/customers", strings.NewReader(
		`{"first_name": "John", "last_name": "Smith", "email": "e", "address": "a", "active": true}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	assert.Equal(t, 2, logs.FilterMessage("customer operation failed").Len())
}

func TestQueryParam(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		first := queryParam(c, "first_name")
		last := queryParam(c, "last_name")
		require.NotNil(t, first)
		assert.Equal(t, "", *first)
		assert.Nil(t, last)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/?first_name=", nil))
	require.NoError(t, err)
}
