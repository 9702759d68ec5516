package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nsleadprovider/internal/apperr"
	"nsleadprovider/internal/middleware"
	"nsleadprovider/internal/model"
	"nsleadprovider/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	requested []int
	orders    []model.Order
	err       error
}

func (f *fakeOrders) Checkout(_ context.Context, userID int, requested []int) (*model.Order, error) {
	f.requested = requested
	if f.err != nil {
		return nil, f.err
	}
	return &model.Order{ID: 42, UserID: userID, Status: model.StatusPending}, nil
}

func (f *fakeOrders) ListForUser(context.Context, int) ([]model.Order, error) {
	return f.orders, f.err
}

func newCtx(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/api/orders", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &service.Claims{UserID: 5})
	return c, rec
}

func TestCheckoutHandler(t *testing.T) {
	f := &fakeOrders{}

	c, rec := newCtx(http.MethodPost, "")
	require.NoError(t, CheckoutHandler(f)(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"message":"Order placed successfully","orderId":42}`, rec.Body.String())
	require.Empty(t, f.requested)

	c, rec = newCtx(http.MethodPost, `{"items":[{"id":1,"title":"Data Appending Enrichment"},{"id":3}]}`)
	require.NoError(t, CheckoutHandler(f)(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, []int{1, 3}, f.requested)

	c, rec = newCtx(http.MethodPost, `{"items":`)
	require.NoError(t, CheckoutHandler(f)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	f.err = apperr.Validation("cart is empty")
	c, rec = newCtx(http.MethodPost, "")
	require.NoError(t, CheckoutHandler(f)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"message":"cart is empty"}`, rec.Body.String())

	f.err = apperr.Conflict("checkout already in progress")
	c, rec = newCtx(http.MethodPost, "")
	require.NoError(t, CheckoutHandler(f)(c))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestListHandler(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	f := &fakeOrders{orders: []model.Order{{
		ID:        7,
		UserID:    5,
		Status:    model.StatusPending,
		CreatedAt: created,
		Items: []model.OrderItem{{
			ID: 1, OrderID: 7, ServiceID: 3,
			ServiceTitle: "Prospect List Building",
			ServiceImage: "/images/services/service-3.png",
		}},
	}}}

	c, rec := newCtx(http.MethodGet, "")
	require.NoError(t, ListHandler(f)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.EqualValues(t, 7, got[0]["id"])
	require.Equal(t, "pending", got[0]["status"])
	require.Equal(t, "2024-05-01T10:00:00Z", got[0]["created_at"])
	require.NotContains(t, got[0], "user_email")
	items := got[0]["items"].([]any)
	require.Equal(t, "Prospect List Building", items[0].(map[string]any)["service_title"])
}
