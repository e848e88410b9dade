package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/runner"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the delivery lifecycle over REST.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	claimOrderHandler            commands.ClaimOrderCommandHandler
	transitionOrderHandler       commands.TransitionOrderCommandHandler
	publishLocationHandler       commands.PublishLocationCommandHandler
	createRunnerHandler          commands.CreateRunnerCommandHandler
	setRunnerAvailabilityHandler commands.SetRunnerAvailabilityCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getClaimableOrdersHandler queries.GetClaimableOrdersQueryHandler
	getOrderTimelineHandler   queries.GetOrderTimelineQueryHandler
	getAllRunnersHandler      queries.GetAllRunnersQueryHandler
	getOrderLocationHandler   queries.GetOrderLocationQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	publishLocationHandler commands.PublishLocationCommandHandler,
	createRunnerHandler commands.CreateRunnerCommandHandler,
	setRunnerAvailabilityHandler commands.SetRunnerAvailabilityCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getClaimableOrdersHandler queries.GetClaimableOrdersQueryHandler,
	getOrderTimelineHandler queries.GetOrderTimelineQueryHandler,
	getAllRunnersHandler queries.GetAllRunnersQueryHandler,
	getOrderLocationHandler queries.GetOrderLocationQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		claimOrderHandler:            claimOrderHandler,
		transitionOrderHandler:       transitionOrderHandler,
		publishLocationHandler:       publishLocationHandler,
		createRunnerHandler:          createRunnerHandler,
		setRunnerAvailabilityHandler: setRunnerAvailabilityHandler,
		getOrderHandler:              getOrderHandler,
		getClaimableOrdersHandler:    getClaimableOrdersHandler,
		getOrderTimelineHandler:      getOrderTimelineHandler,
		getAllRunnersHandler:         getAllRunnersHandler,
		getOrderLocationHandler:      getOrderLocationHandler,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
// The claimable route must be registered before the parameterized order
// routes so echo does not treat "claimable" as an order id.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(requestDurationMiddleware)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/claimable", s.GetClaimableOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.GET("/orders/:id/timeline", s.GetOrderTimeline)
	api.POST("/orders/:id/location", s.PublishLocation)
	api.GET("/orders/:id/location", s.GetOrderLocation)
	api.POST("/runners", s.CreateRunner)
	api.GET("/runners", s.GetRunners)
	api.POST("/runners/:id/availability", s.SetRunnerAvailability)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// CreateOrder handles POST /api/v1/orders - registers a new delivery job.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return badRequest(ctx, "Invalid buyer id: "+err.Error())
	}
	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return badRequest(ctx, "Invalid seller id: "+err.Error())
	}
	fulfillment, err := order.FulfillmentFromString(req.Fulfillment)
	if err != nil {
		return badRequest(ctx, "Invalid fulfillment: "+err.Error())
	}
	deliveryType, err := order.DeliveryTypeFromString(req.DeliveryType)
	if err != nil {
		return badRequest(ctx, "Invalid delivery type: "+err.Error())
	}

	pickup, err := waypointFromBody(req.Pickup)
	if err != nil {
		return badRequest(ctx, "Invalid pickup: "+err.Error())
	}

	var dropoff *order.Waypoint
	if req.Dropoff != nil {
		wp, dropoffErr := waypointFromBody(*req.Dropoff)
		if dropoffErr != nil {
			return badRequest(ctx, "Invalid dropoff: "+dropoffErr.Error())
		}
		dropoff = &wp
	}

	pricing, err := pricingFromBody(req.Pricing)
	if err != nil {
		return badRequest(ctx, "Invalid pricing: "+err.Error())
	}

	orderID := kernel.NewUUID()
	orderNumber := req.OrderNumber
	if orderNumber == "" {
		orderNumber = "CM-" + strings.ToUpper(orderID.String()[:8])
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID, orderNumber, buyerID, sellerID,
		fulfillment, deliveryType, pickup, dropoff, pricing)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:          orderID.String(),
		OrderNumber: orderNumber,
		Status:      order.Pending.String(),
	})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(result))
}

// GetClaimableOrders handles GET /api/v1/orders/claimable - the runner-facing
// claim feed, oldest first.
func (s *Server) GetClaimableOrders(ctx echo.Context) error {
	query := queries.NewGetClaimableOrdersQuery()

	feed, err := s.getClaimableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]ClaimableOrder, len(feed))
	for i, entry := range feed {
		response[i] = ClaimableOrder{
			ID:            entry.ID.String(),
			OrderNumber:   entry.OrderNumber,
			PickupAddress: entry.PickupAddress,
			PickupLat:     entry.PickupLat,
			PickupLng:     entry.PickupLng,
			TotalCents:    entry.TotalCents,
			CreatedAt:     entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimOrder handles POST /api/v1/orders/:id/claim - a runner's attempt to
// take the job. Exactly one concurrent claimer wins; losers get 409.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ClaimOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	runnerID, err := kernel.UUIDFromString(req.RunnerID)
	if err != nil {
		return badRequest(ctx, "Invalid runner id: "+err.Error())
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, runnerID)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	if handleErr := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrOrderUnavailable) {
			metrics.OrderClaimsLostTotal.Inc()
		}
		return s.errorResponse(ctx, handleErr)
	}

	metrics.OrderClaimsWonTotal.Inc()
	return s.respondWithOrder(ctx, orderID)
}

// TransitionOrder handles POST /api/v1/orders/:id/transition - drives one
// edge of the status graph on behalf of an actor.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req TransitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}
	actorRole, err := order.ActorRoleFromString(req.ActorRole)
	if err != nil {
		return badRequest(ctx, "Invalid actor role: "+err.Error())
	}
	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderCommand(
		orderID, target, actorID, actorRole, req.Message, req.EstimatedMinutes)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, order.ErrIllegalTransition) ||
			errors.Is(handleErr, services.ErrActorNotAllowed) ||
			errors.Is(handleErr, errs.ErrStaleState) {
			metrics.OrderTransitionsRejectedTotal.Inc()
		}
		return s.errorResponse(ctx, handleErr)
	}

	metrics.OrderTransitionsTotal.Inc()
	return s.respondWithOrder(ctx, orderID)
}

// GetOrderTimeline handles GET /api/v1/orders/:id/timeline - the append-only
// audit trail of status events.
func (s *Server) GetOrderTimeline(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderTimelineQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	timeline, err := s.getOrderTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]TimelineEntry, len(timeline))
	for i, entry := range timeline {
		response[i] = TimelineEntry{
			Status:    entry.Status,
			Message:   entry.Message,
			ActorID:   entry.ActorID.String(),
			ActorRole: entry.ActorRole,
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PublishLocation handles POST /api/v1/orders/:id/location - a runner's
// position report, accepted only inside the order's active window.
func (s *Server) PublishLocation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req PublishLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	runnerID, err := kernel.UUIDFromString(req.RunnerID)
	if err != nil {
		return badRequest(ctx, "Invalid runner id: "+err.Error())
	}

	if req.Source == "" {
		req.Source = tracking.GPS.String()
	}
	source, err := tracking.SourceFromString(req.Source)
	if err != nil {
		return badRequest(ctx, "Invalid source: "+err.Error())
	}

	cmd, err := commands.NewPublishLocationCommand(
		orderID, runnerID, req.Lat, req.Lng, req.Heading, req.Speed, req.Accuracy, source)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if handleErr := s.publishLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, services.ErrLocationNotWritable) {
			metrics.LocationPublishesRejectedTotal.Inc()
		}
		return s.errorResponse(ctx, handleErr)
	}

	metrics.LocationPublishesTotal.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderLocation handles GET /api/v1/orders/:id/location - the latest
// sample, visible to the buyer and the assigned runner only.
func (s *Server) GetOrderLocation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	requesterID, err := kernel.UUIDFromString(ctx.QueryParam("requester_id"))
	if err != nil {
		return badRequest(ctx, "Invalid requester id: "+err.Error())
	}

	query, err := queries.NewGetOrderLocationQuery(orderID, requesterID)
	if err != nil {
		return badRequest(ctx, "Invalid location query: "+err.Error())
	}

	sample, err := s.getOrderLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Location{
		OrderID:   sample.OrderID.String(),
		RunnerID:  sample.RunnerID.String(),
		Lat:       sample.Lat,
		Lng:       sample.Lng,
		Heading:   sample.Heading,
		Speed:     sample.Speed,
		Accuracy:  sample.Accuracy,
		Source:    sample.Source,
		UpdatedAt: sample.UpdatedAt,
	})
}

// CreateRunner handles POST /api/v1/runners - registers a new runner.
func (s *Server) CreateRunner(ctx echo.Context) error {
	var req CreateRunnerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	runnerID := kernel.NewUUID()
	cmd, err := commands.NewCreateRunnerCommand(runnerID, req.Name)
	if err != nil {
		return badRequest(ctx, "Invalid runner data: "+err.Error())
	}

	if handleErr := s.createRunnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateRunnerResponse{
		ID:   runnerID.String(),
		Name: req.Name,
	})
}

// GetRunners handles GET /api/v1/runners - retrieves all runners.
func (s *Server) GetRunners(ctx echo.Context) error {
	query := queries.NewGetAllRunnersQuery()

	runners, err := s.getAllRunnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]Runner, len(runners))
	for i, r := range runners {
		response[i] = Runner{
			ID:           r.ID.String(),
			Name:         r.Name,
			Availability: r.Availability,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetRunnerAvailability handles POST /api/v1/runners/:id/availability -
// toggles a runner online or offline.
func (s *Server) SetRunnerAvailability(ctx echo.Context) error {
	runnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid runner id: "+err.Error())
	}

	var req SetRunnerAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	availability, err := runner.AvailabilityFromString(req.Availability)
	if err != nil {
		return badRequest(ctx, "Invalid availability: "+err.Error())
	}

	cmd, err := commands.NewSetRunnerAvailabilityCommand(runnerID, availability)
	if err != nil {
		return badRequest(ctx, "Invalid availability data: "+err.Error())
	}

	if handleErr := s.setRunnerAvailabilityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(result))
}

// errorResponse maps application errors onto HTTP statuses. Conflicts of
// state land on 409, authorization denials on 403, missing objects on 404,
// malformed values on 400 and everything unrecognized on 500.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	var code int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrOrderUnavailable),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, errs.ErrStaleState),
		errors.Is(err, runner.ErrRunnerNotOnline),
		errors.Is(err, runner.ErrRunnerIsBusy):
		code = http.StatusConflict
	case errors.Is(err, services.ErrActorNotAllowed),
		errors.Is(err, services.ErrLocationNotWritable),
		errors.Is(err, services.ErrLocationNotVisible):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func waypointFromBody(body WaypointBody) (order.Waypoint, error) {
	point, err := kernel.NewGeoPoint(body.Lat, body.Lng)
	if err != nil {
		return order.Waypoint{}, err
	}
	return order.NewWaypoint(body.Address, point)
}

func pricingFromBody(body PricingBody) (order.Pricing, error) {
	subtotal, err := kernel.NewMoney(body.SubtotalCents)
	if err != nil {
		return order.Pricing{}, err
	}
	tax, err := kernel.NewMoney(body.TaxCents)
	if err != nil {
		return order.Pricing{}, err
	}
	fee, err := kernel.NewMoney(body.DeliveryFeeCents)
	if err != nil {
		return order.Pricing{}, err
	}
	total, err := kernel.NewMoney(body.TotalCents)
	if err != nil {
		return order.Pricing{}, err
	}
	return order.NewPricing(subtotal, tax, fee, total)
}

func requestDurationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		err := next(ctx)
		metrics.HTTPRequestDuration.
			WithLabelValues(ctx.Path(), ctx.Request().Method).
			Observe(time.Since(start).Seconds())
		return err
	}
}
