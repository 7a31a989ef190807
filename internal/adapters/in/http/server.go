package http

import (
	"errors"
	"net/http"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/application/usecases/commands"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/application/usecases/queries"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/generated/servers"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	addOrderLineHandler       commands.AddOrderLineCommandHandler
	removeOrderLineHandler    commands.RemoveOrderLineCommandHandler
	updateLineQuantityHandler commands.UpdateLineQuantityCommandHandler
	updateLinePricingHandler  commands.UpdateLinePricingCommandHandler
	configureCompositeHandler commands.ConfigureCompositeCommandHandler
	confirmOrderHandler       commands.ConfirmOrderCommandHandler

	// Query handlers
	getUnconfirmedOrdersHandler      queries.GetUnconfirmedOrdersQueryHandler
	getOrderTotalsHandler            queries.GetOrderTotalsQueryHandler
	getCompositeConfigurationHandler queries.GetCompositeConfigurationQueryHandler
	getTemplatePreviewHandler        queries.GetTemplatePreviewQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	removeOrderLineHandler commands.RemoveOrderLineCommandHandler,
	updateLineQuantityHandler commands.UpdateLineQuantityCommandHandler,
	updateLinePricingHandler commands.UpdateLinePricingCommandHandler,
	configureCompositeHandler commands.ConfigureCompositeCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	getUnconfirmedOrdersHandler queries.GetUnconfirmedOrdersQueryHandler,
	getOrderTotalsHandler queries.GetOrderTotalsQueryHandler,
	getCompositeConfigurationHandler queries.GetCompositeConfigurationQueryHandler,
	getTemplatePreviewHandler queries.GetTemplatePreviewQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:               createOrderHandler,
		addOrderLineHandler:              addOrderLineHandler,
		removeOrderLineHandler:           removeOrderLineHandler,
		updateLineQuantityHandler:        updateLineQuantityHandler,
		updateLinePricingHandler:         updateLinePricingHandler,
		configureCompositeHandler:        configureCompositeHandler,
		confirmOrderHandler:              confirmOrderHandler,
		getUnconfirmedOrdersHandler:      getUnconfirmedOrdersHandler,
		getOrderTotalsHandler:            getOrderTotalsHandler,
		getCompositeConfigurationHandler: getCompositeConfigurationHandler,
		getTemplatePreviewHandler:        getTemplatePreviewHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - creates a new draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request servers.CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, request.Reference, request.CustomerName, request.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]openapi_types.UUID{"id": orderID.Bytes()})
}

// GetDraftOrders handles GET /api/v1/orders/drafts - lists all draft orders.
func (s *Server) GetDraftOrders(ctx echo.Context) error {
	query := queries.NewGetUnconfirmedOrdersQuery()

	drafts, err := s.getUnconfirmedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve draft orders")
	}

	response := make([]servers.DraftOrder, len(drafts))
	for i, draft := range drafts {
		response[i] = servers.DraftOrder{
			Id:           draft.ID.Bytes(),
			Reference:    draft.Reference,
			CustomerName: draft.CustomerName,
			PlacedAt:     draft.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddOrderLine handles POST /api/v1/orders/{orderId}/lines - adds a product
// line, exploding it into components when the product is a composite.
func (s *Server) AddOrderLine(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.NewOrderLine
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	productID, err := kernel.UUIDFromBytes(request.ProductId[:])
	if err != nil {
		return badRequest(ctx, "Invalid product identifier")
	}

	discountPct := 0.0
	if request.DiscountPct != nil {
		discountPct = *request.DiscountPct
	}

	lineID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(orderID, lineID, productID, request.Quantity, discountPct)
	if err != nil {
		return badRequest(ctx, "Invalid line data: "+err.Error())
	}

	if handleErr := s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]openapi_types.UUID{"id": lineID.Bytes()})
}

// RemoveOrderLine handles DELETE /api/v1/orders/{orderId}/lines/{lineId} -
// removes a line; removing a composite cascades to its components.
func (s *Server) RemoveOrderLine(ctx echo.Context, orderId openapi_types.UUID, lineId openapi_types.UUID) error {
	orderID, lineID, err := bindLineTarget(orderId, lineId)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveOrderLineCommand(orderID, lineID)
	if err != nil {
		return badRequest(ctx, "Invalid line reference: "+err.Error())
	}

	if handleErr := s.removeOrderLineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateLineQuantity handles PUT /api/v1/orders/{orderId}/lines/{lineId}/quantity -
// changes a line's quantity, rescaling component lines for composites.
func (s *Server) UpdateLineQuantity(ctx echo.Context, orderId openapi_types.UUID, lineId openapi_types.UUID) error {
	var request servers.UpdateLineQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, lineID, err := bindLineTarget(orderId, lineId)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateLineQuantityCommand(orderID, lineID, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	if handleErr := s.updateLineQuantityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateLinePricing handles PUT /api/v1/orders/{orderId}/lines/{lineId}/pricing -
// overrides a line's unit price, unit cost and discount.
func (s *Server) UpdateLinePricing(ctx echo.Context, orderId openapi_types.UUID, lineId openapi_types.UUID) error {
	var request servers.UpdateLinePricingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, lineID, err := bindLineTarget(orderId, lineId)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateLinePricingCommand(
		orderID,
		lineID,
		kernel.NewMoneyFromFloat(request.UnitPrice),
		kernel.NewMoneyFromFloat(request.UnitCost),
		request.DiscountPct,
	)
	if err != nil {
		return badRequest(ctx, "Invalid pricing: "+err.Error())
	}

	if handleErr := s.updateLinePricingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCompositeConfiguration handles GET /api/v1/orders/{orderId}/lines/{lineId}/composite -
// reads the wizard prefill for a composite line.
func (s *Server) GetCompositeConfiguration(ctx echo.Context, orderId openapi_types.UUID, lineId openapi_types.UUID) error {
	orderID, lineID, err := bindLineTarget(orderId, lineId)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetCompositeConfigurationQuery(orderID, lineID)
	if err != nil {
		return badRequest(ctx, "Invalid line reference: "+err.Error())
	}

	configuration, err := s.getCompositeConfigurationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	components := make([]servers.CompositeComponent, len(configuration.Components))
	for i, component := range configuration.Components {
		components[i] = servers.CompositeComponent{
			LineId:      component.LineID.Bytes(),
			ProductId:   component.ProductID.Bytes(),
			Description: component.Description,
			Quantity:    component.Quantity,
			UnitPrice:   component.UnitPrice.Float64(),
			UnitCost:    component.UnitCost.Float64(),
			DiscountPct: component.DiscountPct,
		}
	}

	response := servers.CompositeConfiguration{
		ProductId:     configuration.ProductID.Bytes(),
		Quantity:      configuration.Quantity,
		UnitPrice:     configuration.UnitPrice.Float64(),
		HidePrices:    configuration.HidePrices,
		HideStructure: configuration.HideStructure,
		Components:    components,
	}
	if configuration.BomTemplateID != nil {
		templateID := configuration.BomTemplateID.Bytes()
		response.BomTemplateId = &templateID
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfigureComposite handles PUT /api/v1/orders/{orderId}/lines/{lineId}/composite -
// destructively replaces the component set of a composite line.
func (s *Server) ConfigureComposite(ctx echo.Context, orderId openapi_types.UUID, lineId openapi_types.UUID) error {
	var request servers.ConfigureCompositeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, lineID, err := bindLineTarget(orderId, lineId)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows := make([]commands.ComponentRow, len(request.Components))
	for i, component := range request.Components {
		productID, rowErr := kernel.UUIDFromBytes(component.ProductId[:])
		if rowErr != nil {
			return badRequest(ctx, "Invalid component product identifier")
		}

		discountPct := 0.0
		if component.DiscountPct != nil {
			discountPct = *component.DiscountPct
		}

		rows[i] = commands.ComponentRow{
			ProductID:   productID,
			Name:        component.Name,
			Quantity:    component.Quantity,
			UnitPrice:   kernel.NewMoneyFromFloat(component.UnitPrice),
			UnitCost:    kernel.NewMoneyFromFloat(component.UnitCost),
			DiscountPct: discountPct,
		}
	}

	var bomTemplateID *kernel.UUID
	if request.BomTemplateId != nil {
		templateID, templateErr := kernel.UUIDFromBytes((*request.BomTemplateId)[:])
		if templateErr != nil {
			return badRequest(ctx, "Invalid template identifier")
		}
		bomTemplateID = &templateID
	}

	hidePrices := false
	if request.HidePrices != nil {
		hidePrices = *request.HidePrices
	}
	hideStructure := false
	if request.HideStructure != nil {
		hideStructure = *request.HideStructure
	}

	cmd, err := commands.NewConfigureCompositeCommand(
		orderID,
		lineID,
		request.Quantity,
		hidePrices,
		hideStructure,
		bomTemplateID,
		rows,
	)
	if err != nil {
		return badRequest(ctx, "Invalid configuration: "+err.Error())
	}

	if handleErr := s.configureCompositeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm - confirms a
// draft order, freezing drifted composites into order-specific snapshots.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order reference: "+err.Error())
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTotals handles GET /api/v1/orders/{orderId}/totals - returns the
// aggregated amounts of an order.
func (s *Server) GetOrderTotals(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	query, err := queries.NewGetOrderTotalsQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order reference: "+err.Error())
	}

	totals, err := s.getOrderTotalsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderTotals{
		OrderId:    totals.OrderID.Bytes(),
		Reference:  totals.Reference,
		Currency:   totals.Currency,
		Untaxed:    totals.Untaxed.Float64(),
		Tax:        totals.Tax.Float64(),
		TaxSummary: totals.TaxSummary,
		Total:      totals.Total.Float64(),
		Margin:     totals.Margin.Float64(),
		MarginPct:  totals.MarginPct,
	})
}

// GetTemplatePreview handles GET /api/v1/bom-templates/{templateId}/preview -
// previews the component lines a template would explode into.
func (s *Server) GetTemplatePreview(ctx echo.Context, templateId openapi_types.UUID) error {
	templateID, err := kernel.UUIDFromBytes(templateId[:])
	if err != nil {
		return badRequest(ctx, "Invalid template identifier")
	}

	query, err := queries.NewGetTemplatePreviewQuery(templateID)
	if err != nil {
		return badRequest(ctx, "Invalid template reference: "+err.Error())
	}

	preview, err := s.getTemplatePreviewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := make([]servers.TemplatePreviewLine, len(preview))
	for i, line := range preview {
		response[i] = servers.TemplatePreviewLine{
			ProductId:    line.ProductID.Bytes(),
			Name:         line.Name,
			Quantity:     line.Quantity,
			ListPrice:    line.ListPrice.Float64(),
			StandardCost: line.StandardCost.Float64(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// bindLineTarget converts the path identifiers into domain identifiers.
func bindLineTarget(orderId, lineId openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid order identifier")
	}

	lineID, err := kernel.UUIDFromBytes(lineId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid line identifier")
	}

	return orderID, lineID, nil
}

// commandError maps use case failures to HTTP responses: missing objects
// become 404, everything else surfaces as a business conflict.
func commandError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusConflict, servers.Error{
		Code:    http.StatusConflict,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
