package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/identity"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenAuth map[string]identity.Identity

func (a tokenAuth) Resolve(_ context.Context, credential string) (identity.Identity, error) {
	id, ok := a[credential]
	if !ok {
		return identity.Identity{}, errs.NewUnauthenticatedError()
	}
	return id, nil
}

type createOrderFunc func(context.Context, commands.CreateOrderCommand) (*order.Order, error)

func (f createOrderFunc) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	return f(ctx, cmd)
}

type claimOrderFunc func(context.Context, commands.ClaimOrderCommand) (*order.Order, error)

func (f claimOrderFunc) Handle(ctx context.Context, cmd commands.ClaimOrderCommand) (*order.Order, error) {
	return f(ctx, cmd)
}

type markDeliveredFunc func(context.Context, commands.MarkDeliveredCommand) (*order.Order, error)

func (f markDeliveredFunc) Handle(ctx context.Context, cmd commands.MarkDeliveredCommand) (*order.Order, error) {
	return f(ctx, cmd)
}

type markReadyFunc func(context.Context, commands.MarkReadyCommand) (*order.Order, error)

func (f markReadyFunc) Handle(ctx context.Context, cmd commands.MarkReadyCommand) (*order.Order, error) {
	return f(ctx, cmd)
}

type listReadyFunc func(context.Context, queries.ListReadyOrdersQuery) ([]queries.ReadyOrderResponse, error)

func (f listReadyFunc) Handle(ctx context.Context, q queries.ListReadyOrdersQuery) ([]queries.ReadyOrderResponse, error) {
	return f(ctx, q)
}

type latestConsumerFunc func(context.Context, queries.GetLatestConsumerOrderQuery) (*queries.OrderSnapshot, error)

func (f latestConsumerFunc) Handle(ctx context.Context, q queries.GetLatestConsumerOrderQuery) (*queries.OrderSnapshot, error) {
	return f(ctx, q)
}

type latestCourierFunc func(context.Context, queries.GetLatestCourierOrderQuery) (*queries.OrderSnapshot, error)

func (f latestCourierFunc) Handle(ctx context.Context, q queries.GetLatestCourierOrderQuery) (*queries.OrderSnapshot, error) {
	return f(ctx, q)
}

type listRestaurantsFunc func(context.Context, queries.ListRestaurantsQuery) ([]queries.RestaurantResponse, error)

func (f listRestaurantsFunc) Handle(ctx context.Context, q queries.ListRestaurantsQuery) ([]queries.RestaurantResponse, error) {
	return f(ctx, q)
}

type listMealsFunc func(context.Context, queries.ListMealsQuery) ([]queries.MealResponse, error)

func (f listMealsFunc) Handle(ctx context.Context, q queries.ListMealsQuery) ([]queries.MealResponse, error) {
	return f(ctx, q)
}

type fixture struct {
	e          *echo.Echo
	metrics    *metrics.ServerMetrics
	consumer   identity.Identity
	courier    identity.Identity
	restaurant identity.Identity
}

func newIdentity(t *testing.T, kind identity.Kind) identity.Identity {
	t.Helper()
	id, err := identity.NewIdentity(kind, kernel.NewUUID())
	require.NoError(t, err)
	return id
}

func newFixture(t *testing.T, handlers httpin.Handlers) fixture {
	t.Helper()
	f := fixture{
		metrics:    metrics.NewServerMetrics(prometheus.NewRegistry()),
		consumer:   newIdentity(t, identity.Consumer),
		courier:    newIdentity(t, identity.Courier),
		restaurant: newIdentity(t, identity.Restaurant),
	}

	e, err := httpin.NewRouter(httpin.NewServer(handlers, f.metrics), httpin.RouterConfig{
		Auth: tokenAuth{
			"consumer-token":   f.consumer,
			"courier-token":    f.courier,
			"restaurant-token": f.restaurant,
		},
		Metrics:        f.metrics,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		RequestTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	f.e = e
	return f
}

func (f fixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func restoreOrder(t *testing.T, status order.Status, courierID *kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString("12.50")
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, price)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), courierID,
		status, "1 Main St", []*order.LineItem{item}, price, time.Now(), nil)
	require.NoError(t, err)
	return o
}

func TestPublicEndpoints(t *testing.T) {
	f := newFixture(t, httpin.Handlers{})

	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = f.do(http.MethodGet, "/openapi.json", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/orders/{orderId}/claim")

	rec = f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthentication(t *testing.T) {
	f := newFixture(t, httpin.Handlers{})

	for _, token := range []string{"", "unknown-token"} {
		rec := f.do(http.MethodGet, "/api/v1/restaurants", token, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, httpin.KindUnauthenticated, decodeError(t, rec).Kind)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic consumer-token")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	restaurantID := kernel.NewUUID()
	mealID := kernel.NewUUID()
	created := restoreOrder(t, order.Cooking, nil)

	var got commands.CreateOrderCommand
	f := newFixture(t, httpin.Handlers{
		CreateOrder: createOrderFunc(func(_ context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
			got = cmd
			return created, nil
		}),
	})

	body := `{"restaurantId":"` + restaurantID.String() + `","address":" 1 Main St ",` +
		`"items":[{"mealId":"` + mealID.String() + `","quantity":2}]}`
	rec := f.do(http.MethodPost, "/api/v1/orders", "consumer-token", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var response servers.CreatedOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, created.ID().String(), response.Id.String())
	assert.Equal(t, "12.50", response.Total)

	assert.True(t, got.ConsumerID().IsEqual(f.consumer.SubjectID()))
	assert.True(t, got.RestaurantID().IsEqual(restaurantID))
	require.Len(t, got.Items(), 1)
	assert.Equal(t, 2, got.Items()[0].Quantity)
}

func TestCreateOrder_Errors(t *testing.T) {
	validBody := `{"restaurantId":"` + kernel.NewUUID().String() + `","address":"1 Main St",` +
		`"items":[{"mealId":"` + kernel.NewUUID().String() + `","quantity":1}]}`

	testCases := []struct {
		name      string
		token     string
		body      string
		handleErr error
		code      int
		kind      string
	}{
		{"courier may not order", "courier-token", validBody, nil, http.StatusForbidden, httpin.KindForbidden},
		{"malformed body", "consumer-token", `{"items":`, nil, http.StatusBadRequest, httpin.KindValidation},
		{"empty items", "consumer-token",
			`{"restaurantId":"` + kernel.NewUUID().String() + `","address":"x","items":[]}`,
			nil, http.StatusBadRequest, httpin.KindValidation},
		{"active order", "consumer-token", validBody,
			errs.NewConflictError("consumer has active order"), http.StatusConflict, httpin.KindConflict},
		{"total above column capacity", "consumer-token", validBody,
			errs.NewValueIsOutOfRangeError("amount", "10000000000000.00", "0.00", "9999999999.99"),
			http.StatusBadRequest, httpin.KindValidation},
		{"infrastructure failure", "consumer-token", validBody,
			errors.New("connection reset"), http.StatusInternalServerError, httpin.KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, httpin.Handlers{
				CreateOrder: createOrderFunc(func(context.Context, commands.CreateOrderCommand) (*order.Order, error) {
					return nil, tc.handleErr
				}),
			})

			rec := f.do(http.MethodPost, "/api/v1/orders", tc.token, tc.body)

			require.Equal(t, tc.code, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tc.kind, body.Kind)
			assert.Equal(t, tc.code, body.Code)
			assert.NotContains(t, body.Message, "connection reset")
		})
	}
}

func TestClaimOrder(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		code    int
		outcome string
	}{
		{"success", nil, http.StatusOK, metrics.ClaimSucceeded},
		{"already claimed", errs.NewAlreadyClaimedError("o"), http.StatusConflict, metrics.ClaimAlreadyClaimed},
		{"courier busy", errs.NewCourierBusyError("c"), http.StatusConflict, metrics.ClaimCourierBusy},
		{"not found", errs.NewObjectNotFoundError("order", "o"), http.StatusNotFound, metrics.ClaimNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, httpin.Handlers{
				ClaimOrder: claimOrderFunc(func(_ context.Context, cmd commands.ClaimOrderCommand) (*order.Order, error) {
					if tc.err != nil {
						return nil, tc.err
					}
					courierID := cmd.CourierID()
					return restoreOrder(t, order.OnTheWay, &courierID), nil
				}),
			})

			rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/claim", "courier-token", "")

			require.Equal(t, tc.code, rec.Code)
			if tc.err == nil {
				var response servers.OrderStatusResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, servers.ONTHEWAY, response.Status)
			}
			assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.ClaimOutcomes.WithLabelValues(tc.outcome)), 0)
		})
	}
}

func TestClaimOrder_RejectsBadInput(t *testing.T) {
	f := newFixture(t, httpin.Handlers{})

	rec := f.do(http.MethodPost, "/api/v1/orders/not-a-uuid/claim", "courier-token", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/claim", "consumer-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMarkOrderDelivered(t *testing.T) {
	f := newFixture(t, httpin.Handlers{
		MarkDelivered: markDeliveredFunc(func(_ context.Context, cmd commands.MarkDeliveredCommand) (*order.Order, error) {
			courierID := cmd.CourierID()
			return restoreOrder(t, order.Delivered, &courierID), nil
		}),
	})

	rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/delivered", "courier-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"DELIVERED"`)
}

func TestMarkOrderDelivered_Errors(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"another courier", errs.NewForbiddenError("order is assigned to another courier"), http.StatusForbidden, httpin.KindForbidden},
		{"not on the way", errs.NewInvalidTransitionError(order.Ready, order.Delivered), http.StatusUnprocessableEntity, httpin.KindInvalidTransition},
		{"unknown order", errs.NewObjectNotFoundError("order", "o"), http.StatusNotFound, httpin.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, httpin.Handlers{
				MarkDelivered: markDeliveredFunc(func(context.Context, commands.MarkDeliveredCommand) (*order.Order, error) {
					return nil, tc.err
				}),
			})

			rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/delivered", "courier-token", "")

			require.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.kind, decodeError(t, rec).Kind)
		})
	}
}

func TestMarkOrderReady(t *testing.T) {
	f := newFixture(t, httpin.Handlers{
		MarkReady: markReadyFunc(func(context.Context, commands.MarkReadyCommand) (*order.Order, error) {
			return restoreOrder(t, order.Ready, nil), nil
		}),
	})

	rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/ready", "restaurant-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"READY"`)

	rec = f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/ready", "courier-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListReadyOrders(t *testing.T) {
	restaurantID := kernel.NewUUID()
	total, _ := kernel.MoneyFromString("25.00")

	var got queries.ListReadyOrdersQuery
	f := newFixture(t, httpin.Handlers{
		ListReadyOrders: listReadyFunc(func(_ context.Context, q queries.ListReadyOrdersQuery) ([]queries.ReadyOrderResponse, error) {
			got = q
			return []queries.ReadyOrderResponse{{
				ID:           kernel.NewUUID(),
				RestaurantID: restaurantID,
				Total:        total,
				Address:      "1 Main St",
				CreatedAt:    time.Now(),
			}}, nil
		}),
	})

	rec := f.do(http.MethodGet, "/api/v1/orders/ready?restaurantId="+restaurantID.String(), "courier-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var response []servers.ReadyOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "25.00", response[0].Total)
	require.NotNil(t, got.RestaurantID())
	assert.True(t, got.RestaurantID().IsEqual(restaurantID))
}

func TestLatestOrders(t *testing.T) {
	total, _ := kernel.MoneyFromString("7.00")
	courierID := kernel.NewUUID()
	pickedAt := time.Now()
	snapshot := &queries.OrderSnapshot{
		ID:           kernel.NewUUID(),
		ConsumerID:   kernel.NewUUID(),
		RestaurantID: kernel.NewUUID(),
		CourierID:    &courierID,
		Status:       order.OnTheWay,
		Total:        total,
		Address:      "1 Main St",
		CreatedAt:    time.Now(),
		PickedAt:     &pickedAt,
		Items:        []queries.LineItemSnapshot{{MealID: kernel.NewUUID(), Quantity: 1, SubTotal: total}},
	}

	f := newFixture(t, httpin.Handlers{
		LatestConsumerOrder: latestConsumerFunc(func(_ context.Context, q queries.GetLatestConsumerOrderQuery) (*queries.OrderSnapshot, error) {
			return nil, errs.NewObjectNotFoundError("order", q.ConsumerID().String())
		}),
		LatestCourierOrder: latestCourierFunc(func(context.Context, queries.GetLatestCourierOrderQuery) (*queries.OrderSnapshot, error) {
			return snapshot, nil
		}),
	})

	rec := f.do(http.MethodGet, "/api/v1/consumer/orders/latest", "consumer-token", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/courier/orders/latest", "courier-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var response servers.OrderSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, servers.ONTHEWAY, response.Status)
	require.NotNil(t, response.CourierId)
	assert.Equal(t, courierID.String(), response.CourierId.String())
	require.Len(t, response.Items, 1)
	assert.Equal(t, "7.00", response.Items[0].SubTotal)

	rec = f.do(http.MethodGet, "/api/v1/courier/orders/latest", "consumer-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCatalogListings(t *testing.T) {
	restaurantID := kernel.NewUUID()
	price, _ := kernel.MoneyFromString("9.50")

	f := newFixture(t, httpin.Handlers{
		ListRestaurants: listRestaurantsFunc(func(context.Context, queries.ListRestaurantsQuery) ([]queries.RestaurantResponse, error) {
			return []queries.RestaurantResponse{{ID: restaurantID, Name: "Noodle Bar", CreatedAt: time.Now()}}, nil
		}),
		ListMeals: listMealsFunc(func(_ context.Context, q queries.ListMealsQuery) ([]queries.MealResponse, error) {
			return []queries.MealResponse{{
				ID: kernel.NewUUID(), RestaurantID: q.RestaurantID(), Name: "Soup", Price: price, CreatedAt: time.Now(),
			}}, nil
		}),
	})

	rec := f.do(http.MethodGet, "/api/v1/restaurants", "courier-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Noodle Bar")

	rec = f.do(http.MethodGet, "/api/v1/restaurants/"+restaurantID.String()+"/meals", "consumer-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var meals []servers.Meal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meals))
	require.Len(t, meals, 1)
	assert.Equal(t, "9.50", meals[0].Price)
	assert.Equal(t, restaurantID.String(), meals[0].RestaurantId.String())
}
