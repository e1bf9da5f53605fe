// Package http implements the inbound HTTP adapter: an echo server exposing
// the dashboard's order, batch, container, warehouse and assembly operations.
// Handlers translate wire contracts to commands and queries and map the
// error taxonomy onto status codes: validation and conflicts are 400,
// missing or wrong-stage entities are 404, everything unexpected is 500
// with a generic body.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/assembly"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CommandHandlers groups the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	DeleteOrder           commands.DeleteOrderCommandHandler
	DispatchOrder         commands.DispatchOrderCommandHandler
	MoveOrderToTransit    commands.MoveOrderToTransitCommandHandler
	GroupOrders           commands.GroupOrdersCommandHandler
	CreateContainer       commands.CreateContainerCommandHandler
	AdvanceContainer      commands.AdvanceContainerCommandHandler
	MarkContainerInformed commands.MarkContainerInformedCommandHandler
	CreateSubcase         commands.CreateSubcaseCommandHandler
	AddTool               commands.AddToolCommandHandler
	CreateSparePart       commands.CreateSparePartCommandHandler
	AssignSparePart       commands.AssignSparePartCommandHandler
	CreateStorage         commands.CreateStorageCommandHandler
	CreateMontage         commands.CreateMontageCommandHandler
	UpdateMontageStatus   commands.UpdateMontageStatusCommandHandler
}

// QueryHandlers groups the read-side handlers the server dispatches to.
type QueryHandlers struct {
	GetAllBatches           queries.GetAllBatchesQueryHandler
	GetClientVehicles       queries.GetClientVehiclesQueryHandler
	GetContainers           queries.GetContainersQueryHandler
	GetCommercialRecipients queries.GetCommercialRecipientsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	notifier ports.Notifier
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, notifier ports.Notifier) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		notifier: notifier,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/commandes", s.CreateOrder)
	e.DELETE("/commandes/:id", s.DeleteOrder)
	e.POST("/commandes/:id/dispatch", s.DispatchOrder)
	e.POST("/commandes/:id/transit", s.MoveOrderToTransit)

	e.POST("/commande-groupee", s.GroupOrders)
	e.GET("/commande-groupee", s.GetAllBatches)

	e.POST("/conteneur", s.CreateContainer)
	e.GET("/conteneurs", s.GetContainers)
	e.POST("/conteneurs/:id/advance", s.AdvanceContainer)
	e.POST("/conteneurs/:id/informed", s.MarkContainerInformed)

	e.POST("/subcases", s.CreateSubcase)
	e.POST("/subcases/:id/tools", s.AddTool)

	e.POST("/spare-parts", s.CreateSparePart)
	e.PATCH("/spare-parts", s.AssignSparePart)
	e.POST("/storage", s.CreateStorage)

	e.POST("/montage", s.CreateMontage)
	e.PATCH("/montage/:id", s.UpdateMontage)

	e.GET("/clients/:clientId/voitures", s.GetClientVehicles)
	e.POST("/notify-commercials", s.NotifyCommercials)
}

// respondError maps an application error onto the wire taxonomy.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, gorm.ErrRecordNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Error: err.Error()})
	case errors.Is(err, commands.ErrContainerNumberConflict) || errors.Is(err, gorm.ErrDuplicatedKey):
		return ctx.JSON(http.StatusBadRequest, Error{Error: commands.ErrContainerNumberConflict.Error()})
	case errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, commands.ErrContainerNotSelectable) ||
		errors.Is(err, container.ErrStatusIsTerminal) ||
		errors.Is(err, container.ErrAdvanceRequiresMarkInformed) ||
		errors.Is(err, batch.ErrBatchHasNoOrders) ||
		errors.Is(err, order.ErrOrderAlreadyInContainer):
		return ctx.JSON(http.StatusBadRequest, Error{Error: err.Error()})
	default:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusInternalServerError, Error{Error: "internal server error"})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Error: message})
}

func parseID(raw, paramName string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func parseIDRef(raw *string, paramName string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := parseID(*raw, paramName)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDate(raw, paramName string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredError(paramName)
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Date-only values come from the dashboard's pickers.
		t, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return t, nil
}

func parseDateRef(raw *string, paramName string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	t, err := parseDate(*raw, paramName)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /commandes.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := parseIDRef(req.ClientID, "clientId")
	if err != nil {
		return respondError(ctx, err)
	}
	companyID, err := parseIDRef(req.CompanyID, "companyId")
	if err != nil {
		return respondError(ctx, err)
	}
	deliveryDate, err := parseDate(req.DeliveryDate, "deliveryDate")
	if err != nil {
		return respondError(ctx, err)
	}

	var price *decimal.Decimal
	if req.Price != nil && *req.Price != "" {
		parsed, priceErr := decimal.NewFromString(*req.Price)
		if priceErr != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("price", priceErr))
		}
		price = &parsed
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		clientID,
		companyID,
		req.Model, req.Color, req.Engine, req.Transmission,
		req.Doors,
		deliveryDate,
		price,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToWire(created))
}

// DeleteOrder handles DELETE /commandes/{id}.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := parseID(ctx.Param("id"), "commandeId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "commande supprimee"})
}

// DispatchOrder handles POST /commandes/{id}/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	id, err := parseID(ctx.Param("id"), "commandeId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDispatchOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.commands.DispatchOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToWire(updated))
}

// MoveOrderToTransit handles POST /commandes/{id}/transit.
func (s *Server) MoveOrderToTransit(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("id"), "commandeId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req MoveOrderToTransitRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	containerID, err := parseID(req.ConteneurID, "conteneurId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMoveOrderToTransitCommand(orderID, containerID, req.ConteneurFull)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.commands.MoveOrderToTransit.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MoveOrderToTransitResponse{
		Commande:  orderToWire(result.Order),
		Conteneur: containerToWire(result.Container, nil),
	})
}

// GroupOrders handles POST /commande-groupee.
func (s *Server) GroupOrders(ctx echo.Context) error {
	var req GroupOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	ids := make([]kernel.UUID, 0, len(req.CommandeIDs))
	for _, raw := range req.CommandeIDs {
		id, err := parseID(raw, "commandeIds")
		if err != nil {
			return respondError(ctx, err)
		}
		ids = append(ids, id)
	}

	validationDate, err := parseDate(req.ValidationDate, "validationDate")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewGroupOrdersCommand(ids, validationDate)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.commands.GroupOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, batchToWire(result.Batch, result.Orders))
}

// GetAllBatches handles GET /commande-groupee. This is the one read that
// surfaces the raw store error for operator debugging.
func (s *Server) GetAllBatches(ctx echo.Context) error {
	batches, err := s.queries.GetAllBatches.Handle(ctx.Request().Context(), queries.NewGetAllBatchesQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{Error: err.Error()})
	}

	response := make([]BatchResponse, len(batches))
	for i, b := range batches {
		response[i] = batchReadToWire(b)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateContainer handles POST /conteneur.
func (s *Server) CreateContainer(ctx echo.Context) error {
	var req CreateContainerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	weight := decimal.Zero
	if req.Weight != "" {
		parsed, err := decimal.NewFromString(req.Weight)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("weight", err))
		}
		weight = parsed
	}

	embarkedAt, err := parseDateRef(req.DateEmbarquement, "dateEmbarquement")
	if err != nil {
		return respondError(ctx, err)
	}
	arrivedAt, err := parseDateRef(req.DateArrivee, "dateArrivee")
	if err != nil {
		return respondError(ctx, err)
	}

	ids := make([]kernel.UUID, 0, len(req.CommandeIDs))
	for _, raw := range req.CommandeIDs {
		id, idErr := parseID(raw, "commandeIds")
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewCreateContainerCommand(
		req.ConteneurNumber,
		req.SealNumber,
		req.Packages,
		weight,
		req.StuffingMap,
		embarkedAt,
		arrivedAt,
		ids,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.commands.CreateContainer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, containerToWire(result.Container, result.Orders))
}

// GetContainers handles GET /conteneurs.
func (s *Server) GetContainers(ctx echo.Context) error {
	containers, err := s.queries.GetContainers.Handle(ctx.Request().Context(), queries.NewGetContainersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ContainerResponse, len(containers))
	for i, c := range containers {
		response[i] = containerReadToWire(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceContainer handles POST /conteneurs/{id}/advance.
func (s *Server) AdvanceContainer(ctx echo.Context) error {
	id, err := parseID(ctx.Param("id"), "conteneurId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceContainerCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.commands.AdvanceContainer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, containerToWire(updated, nil))
}

// MarkContainerInformed handles POST /conteneurs/{id}/informed.
func (s *Server) MarkContainerInformed(ctx echo.Context) error {
	id, err := parseID(ctx.Param("id"), "conteneurId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkContainerInformedCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.commands.MarkContainerInformed.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, containerToWire(updated, nil))
}

// CreateSubcase handles POST /subcases.
func (s *Server) CreateSubcase(ctx echo.Context) error {
	var req CreateSubcaseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	containerID, err := parseID(req.ConteneurID, "conteneurId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateSubcaseCommand(req.SubcaseNumber, containerID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.commands.CreateSubcase.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, subcaseToWire(created))
}

// AddTool handles POST /subcases/{id}/tools.
func (s *Server) AddTool(ctx echo.Context) error {
	subcaseID, err := parseID(ctx.Param("id"), "subcaseId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AddToolRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddToolCommand(subcaseID, req.Code, req.Name, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.commands.AddTool.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toolToWire(created))
}

// CreateSparePart handles POST /spare-parts.
func (s *Server) CreateSparePart(ctx echo.Context) error {
	var req CreateSparePartRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	subcaseID, err := parseIDRef(req.SubcaseID, "subcaseId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateSparePartCommand(req.Code, req.Name, req.NameFr, req.Quantity, subcaseID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.commands.CreateSparePart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, sparePartToWire(created))
}

// AssignSparePart handles PATCH /spare-parts.
func (s *Server) AssignSparePart(ctx echo.Context) error {
	var req AssignSparePartRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	partID, err := parseID(req.ID, "sparePartId")
	if err != nil {
		return respondError(ctx, err)
	}
	storageID, err := parseID(req.StorageID, "storageId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignSparePartCommand(partID, storageID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.commands.AssignSparePart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, sparePartToWire(updated))
}

// CreateStorage handles POST /storage.
func (s *Server) CreateStorage(ctx echo.Context) error {
	var req CreateStorageRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateStorageCommand(req.StorageNumber, req.Porte, req.Rayon, req.Etage, req.Case)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.commands.CreateStorage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, storageToWire(created))
}

// CreateMontage handles POST /montage.
func (s *Server) CreateMontage(ctx echo.Context) error {
	var req CreateMontageRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := parseID(req.CommandeID, "commandeId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateMontageCommand(req.ChassisNo, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.commands.CreateMontage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, montageToWire(created))
}

// UpdateMontage handles PATCH /montage/{id}.
func (s *Server) UpdateMontage(ctx echo.Context) error {
	montageID, err := parseID(ctx.Param("id"), "montageId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateMontageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if req.EtapeMontage == "" {
		return respondError(ctx, errs.NewValueIsRequiredError("etapeMontage"))
	}

	status, err := assembly.StatusFromString(req.EtapeMontage)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateMontageStatusCommand(montageID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.commands.UpdateMontageStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UpdateMontageResponse{
		Montage:  montageToWire(result.Montage),
		Commande: orderToWire(result.Order),
	})
}

// GetClientVehicles handles GET /clients/{clientId}/voitures.
func (s *Server) GetClientVehicles(ctx echo.Context) error {
	clientID, err := parseID(ctx.Param("clientId"), "clientId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetClientVehiclesQuery(clientID)
	if err != nil {
		return respondError(ctx, err)
	}

	vehicles, err := s.queries.GetClientVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(vehicles))
	for i, v := range vehicles {
		response[i] = vehicleReadToWire(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// NotifyCommercials handles POST /notify-commercials. The notifier is a
// stub: the response lists who the message would reach, nothing is sent.
func (s *Server) NotifyCommercials(ctx echo.Context) error {
	var req NotifyCommercialsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if req.CommandeGroupeeID == "" {
		return respondError(ctx, errs.NewValueIsRequiredError("commandeGroupeeId"))
	}

	recipients, err := s.queries.GetCommercialRecipients.Handle(
		ctx.Request().Context(),
		queries.NewGetCommercialRecipientsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	emails := make([]string, len(recipients))
	response := NotifyCommercialsResponse{
		Recipients: make([]RecipientResponse, len(recipients)),
	}
	for i, r := range recipients {
		emails[i] = r.Email
		response.Recipients[i] = RecipientResponse{
			ID:    r.ID.String(),
			Name:  r.Name,
			Email: r.Email,
		}
	}

	notification := ports.Notification{
		Recipients: emails,
		Subject:    "Nouvelle commande groupee disponible",
		Body:       "Commande groupee " + req.CommandeGroupeeID + ": " + strings.Join(req.Models, ", "),
	}
	if err = s.notifier.Send(ctx.Request().Context(), notification); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}
