// Package http is the echo adapter implementing servers.ServerInterface.
package http

import (
	"context"
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ClaimOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ClaimOrderCommand) (*order.Order, error)
	}
	MarkDeliveredHandler interface {
		Handle(ctx context.Context, cmd commands.MarkDeliveredCommand) (*order.Order, error)
	}
	MarkReadyHandler interface {
		Handle(ctx context.Context, cmd commands.MarkReadyCommand) (*order.Order, error)
	}
	ListReadyOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListReadyOrdersQuery) ([]queries.ReadyOrderResponse, error)
	}
	LatestConsumerOrderHandler interface {
		Handle(ctx context.Context, query queries.GetLatestConsumerOrderQuery) (*queries.OrderSnapshot, error)
	}
	LatestCourierOrderHandler interface {
		Handle(ctx context.Context, query queries.GetLatestCourierOrderQuery) (*queries.OrderSnapshot, error)
	}
	ListRestaurantsHandler interface {
		Handle(ctx context.Context, query queries.ListRestaurantsQuery) ([]queries.RestaurantResponse, error)
	}
	ListMealsHandler interface {
		Handle(ctx context.Context, query queries.ListMealsQuery) ([]queries.MealResponse, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder         CreateOrderHandler
	ClaimOrder          ClaimOrderHandler
	MarkDelivered       MarkDeliveredHandler
	MarkReady           MarkReadyHandler
	ListReadyOrders     ListReadyOrdersHandler
	LatestConsumerOrder LatestConsumerOrderHandler
	LatestCourierOrder  LatestCourierOrderHandler
	ListRestaurants     ListRestaurantsHandler
	ListMeals           ListMealsHandler
}

// Server implements servers.ServerInterface. Handlers return domain errors
// unchanged; ErrorHandler turns them into responses.
type Server struct {
	handlers Handlers
	metrics  *metrics.ServerMetrics
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, serverMetrics *metrics.ServerMetrics) *Server {
	return &Server{
		handlers: handlers,
		metrics:  serverMetrics,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	restaurantID, err := toKernelUUID(body.RestaurantId)
	if err != nil {
		return err
	}

	items := make([]services.ItemRequest, 0, len(body.Items))
	for _, item := range body.Items {
		mealID, idErr := toKernelUUID(item.MealId)
		if idErr != nil {
			return idErr
		}
		items = append(items, services.ItemRequest{MealID: mealID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(caller, restaurantID, body.Address, items)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{
		Id:    created.ID().Bytes(),
		Total: created.Total().String(),
	})
}

// ListReadyOrders handles GET /api/v1/orders/ready.
func (s *Server) ListReadyOrders(ctx echo.Context, params servers.ListReadyOrdersParams) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	var restaurantID *kernel.UUID
	if params.RestaurantId != nil {
		id, idErr := toKernelUUID(*params.RestaurantId)
		if idErr != nil {
			return idErr
		}
		restaurantID = &id
	}

	query, err := queries.NewListReadyOrdersQuery(caller, restaurantID)
	if err != nil {
		return err
	}

	ready, err := s.handlers.ListReadyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.ReadyOrder, len(ready))
	for i, o := range ready {
		response[i] = servers.ReadyOrder{
			Id:           o.ID.Bytes(),
			RestaurantId: o.RestaurantID.Bytes(),
			Total:        o.Total.String(),
			Address:      o.Address,
			CreatedAt:    o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimOrder handles POST /api/v1/orders/{orderId}/claim.
func (s *Server) ClaimOrder(ctx echo.Context, orderID servers.OrderId) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClaimOrderCommand(caller, id)
	if err != nil {
		return err
	}

	claimed, err := s.handlers.ClaimOrder.Handle(ctx.Request().Context(), cmd)
	s.recordClaim(err)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusResponse(claimed))
}

// MarkOrderDelivered handles POST /api/v1/orders/{orderId}/delivered.
func (s *Server) MarkOrderDelivered(ctx echo.Context, orderID servers.OrderId) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkDeliveredCommand(caller, id)
	if err != nil {
		return err
	}

	delivered, err := s.handlers.MarkDelivered.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusResponse(delivered))
}

// MarkOrderReady handles POST /api/v1/orders/{orderId}/ready.
func (s *Server) MarkOrderReady(ctx echo.Context, orderID servers.OrderId) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkReadyCommand(caller, id)
	if err != nil {
		return err
	}

	ready, err := s.handlers.MarkReady.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusResponse(ready))
}

// GetLatestConsumerOrder handles GET /api/v1/consumer/orders/latest.
func (s *Server) GetLatestConsumerOrder(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetLatestConsumerOrderQuery(caller)
	if err != nil {
		return err
	}

	snapshot, err := s.handlers.LatestConsumerOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, snapshotResponse(snapshot))
}

// GetLatestCourierOrder handles GET /api/v1/courier/orders/latest.
func (s *Server) GetLatestCourierOrder(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetLatestCourierOrderQuery(caller)
	if err != nil {
		return err
	}

	snapshot, err := s.handlers.LatestCourierOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, snapshotResponse(snapshot))
}

// ListRestaurants handles GET /api/v1/restaurants.
func (s *Server) ListRestaurants(ctx echo.Context) error {
	if _, err := callerIdentity(ctx); err != nil {
		return err
	}

	restaurants, err := s.handlers.ListRestaurants.Handle(ctx.Request().Context(), queries.NewListRestaurantsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Restaurant, len(restaurants))
	for i, r := range restaurants {
		response[i] = servers.Restaurant{
			Id:        r.ID.Bytes(),
			Name:      r.Name,
			CreatedAt: r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListMeals handles GET /api/v1/restaurants/{restaurantId}/meals.
func (s *Server) ListMeals(ctx echo.Context, restaurantID uuid.UUID) error {
	if _, err := callerIdentity(ctx); err != nil {
		return err
	}
	id, err := toKernelUUID(restaurantID)
	if err != nil {
		return err
	}

	query, err := queries.NewListMealsQuery(id)
	if err != nil {
		return err
	}

	meals, err := s.handlers.ListMeals.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Meal, len(meals))
	for i, m := range meals {
		response[i] = servers.Meal{
			Id:           m.ID.Bytes(),
			RestaurantId: m.RestaurantID.Bytes(),
			Name:         m.Name,
			Price:        m.Price.String(),
			CreatedAt:    m.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) recordClaim(err error) {
	if s.metrics == nil {
		return
	}

	outcome := metrics.ClaimFailed
	switch {
	case err == nil:
		outcome = metrics.ClaimSucceeded
	case errors.Is(err, errs.ErrAlreadyClaimed):
		outcome = metrics.ClaimAlreadyClaimed
	case errors.Is(err, errs.ErrCourierBusy):
		outcome = metrics.ClaimCourierBusy
	case errors.Is(err, errs.ErrObjectNotFound):
		outcome = metrics.ClaimNotFound
	}
	s.metrics.ClaimOutcomes.WithLabelValues(outcome).Inc()
}

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func statusResponse(o *order.Order) servers.OrderStatusResponse {
	return servers.OrderStatusResponse{
		Id:     o.ID().Bytes(),
		Status: servers.OrderStatus(o.Status().String()),
	}
}

func snapshotResponse(snapshot *queries.OrderSnapshot) servers.OrderSnapshot {
	items := make([]servers.OrderItem, len(snapshot.Items))
	for i, item := range snapshot.Items {
		items[i] = servers.OrderItem{
			MealId:   item.MealID.Bytes(),
			Quantity: item.Quantity,
			SubTotal: item.SubTotal.String(),
		}
	}

	response := servers.OrderSnapshot{
		Id:           snapshot.ID.Bytes(),
		ConsumerId:   snapshot.ConsumerID.Bytes(),
		RestaurantId: snapshot.RestaurantID.Bytes(),
		Status:       servers.OrderStatus(snapshot.Status.String()),
		Total:        snapshot.Total.String(),
		Address:      snapshot.Address,
		CreatedAt:    snapshot.CreatedAt,
		PickedAt:     snapshot.PickedAt,
		Items:        items,
	}
	if snapshot.CourierID != nil {
		courierID := snapshot.CourierID.Bytes()
		response.CourierId = &courierID
	}
	return response
}
