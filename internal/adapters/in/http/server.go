// Package http exposes the inventory use cases over a small JSON API.
// Every mutation responds with {success, message}; expected workflow
// failures map to 4xx and storage faults to 500.
package http

import (
	"errors"
	"net/http"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/custody"
	"inventory/internal/core/domain/model/item"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/request"
	"inventory/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusResponse is the uniform mutation response body.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRequestHandler   commands.CreateRequestCommandHandler
	approveRequestHandler  commands.ApproveRequestCommandHandler
	rejectRequestHandler   commands.RejectRequestCommandHandler
	pickupRequestHandler   commands.PickupRequestCommandHandler
	deliverRequestHandler  commands.DeliverRequestCommandHandler
	pickupReturnHandler    commands.PickupReturnCommandHandler
	deliverReturnHandler   commands.DeliverReturnCommandHandler
	addItemHandler         commands.AddItemCommandHandler
	updateItemHandler      commands.UpdateItemCommandHandler
	removeItemHandler      commands.RemoveItemCommandHandler
	adjustStockHandler     commands.AdjustStockCommandHandler
	registerCollegeHandler commands.RegisterCollegeCommandHandler

	// Query handlers
	getPendingRequestsHandler queries.GetPendingRequestsQueryHandler
	getRequestsByStageHandler queries.GetRequestsByStageQueryHandler
	getCollegeRequestsHandler queries.GetCollegeRequestsQueryHandler
	getItemsHandler           queries.GetItemsQueryHandler
	getLowStockItemsHandler   queries.GetLowStockItemsQueryHandler
	getCollegeCustodyHandler  queries.GetCollegeCustodyQueryHandler
	getAllCustodyHandler      queries.GetAllCustodyQueryHandler
	getAuditTrailHandler      queries.GetAuditTrailQueryHandler
}

// CommandHandlers bundles the write-side handlers wired into the server.
type CommandHandlers struct {
	CreateRequest   commands.CreateRequestCommandHandler
	ApproveRequest  commands.ApproveRequestCommandHandler
	RejectRequest   commands.RejectRequestCommandHandler
	PickupRequest   commands.PickupRequestCommandHandler
	DeliverRequest  commands.DeliverRequestCommandHandler
	PickupReturn    commands.PickupReturnCommandHandler
	DeliverReturn   commands.DeliverReturnCommandHandler
	AddItem         commands.AddItemCommandHandler
	UpdateItem      commands.UpdateItemCommandHandler
	RemoveItem      commands.RemoveItemCommandHandler
	AdjustStock     commands.AdjustStockCommandHandler
	RegisterCollege commands.RegisterCollegeCommandHandler
}

// QueryHandlers bundles the read-side handlers wired into the server.
type QueryHandlers struct {
	GetPendingRequests queries.GetPendingRequestsQueryHandler
	GetRequestsByStage queries.GetRequestsByStageQueryHandler
	GetCollegeRequests queries.GetCollegeRequestsQueryHandler
	GetItems           queries.GetItemsQueryHandler
	GetLowStockItems   queries.GetLowStockItemsQueryHandler
	GetCollegeCustody  queries.GetCollegeCustodyQueryHandler
	GetAllCustody      queries.GetAllCustodyQueryHandler
	GetAuditTrail      queries.GetAuditTrailQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds CommandHandlers, qrys QueryHandlers) *Server {
	return &Server{
		createRequestHandler:      cmds.CreateRequest,
		approveRequestHandler:     cmds.ApproveRequest,
		rejectRequestHandler:      cmds.RejectRequest,
		pickupRequestHandler:      cmds.PickupRequest,
		deliverRequestHandler:     cmds.DeliverRequest,
		pickupReturnHandler:       cmds.PickupReturn,
		deliverReturnHandler:      cmds.DeliverReturn,
		addItemHandler:            cmds.AddItem,
		updateItemHandler:         cmds.UpdateItem,
		removeItemHandler:         cmds.RemoveItem,
		adjustStockHandler:        cmds.AdjustStock,
		registerCollegeHandler:    cmds.RegisterCollege,
		getPendingRequestsHandler: qrys.GetPendingRequests,
		getRequestsByStageHandler: qrys.GetRequestsByStage,
		getCollegeRequestsHandler: qrys.GetCollegeRequests,
		getItemsHandler:           qrys.GetItems,
		getLowStockItemsHandler:   qrys.GetLowStockItems,
		getCollegeCustodyHandler:  qrys.GetCollegeCustody,
		getAllCustodyHandler:      qrys.GetAllCustody,
		getAuditTrailHandler:      qrys.GetAuditTrail,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/requests", s.CreateRequest)
	api.POST("/requests/:id/approve", s.ApproveRequest)
	api.POST("/requests/:id/reject", s.RejectRequest)
	api.POST("/requests/:id/pickup", s.PickupRequest)
	api.POST("/requests/:id/deliver", s.DeliverRequest)
	api.POST("/returns/:id/pickup", s.PickupReturn)
	api.POST("/returns/:id/deliver", s.DeliverReturn)
	api.GET("/requests/pending", s.GetPendingRequests)
	api.GET("/requests/stage", s.GetRequestsByStage)
	api.GET("/colleges/:id/requests", s.GetCollegeRequests)

	api.POST("/items", s.AddItem)
	api.PUT("/items/:id", s.UpdateItem)
	api.DELETE("/items/:id", s.RemoveItem)
	api.POST("/items/:id/adjust", s.AdjustStock)
	api.GET("/items", s.GetItems)
	api.GET("/items/low-stock", s.GetLowStockItems)

	api.POST("/colleges", s.RegisterCollege)
	api.GET("/colleges/:id/custody", s.GetCollegeCustody)
	api.GET("/custody", s.GetAllCustody)
	api.GET("/audit", s.GetAuditTrail)
}

// CreateRequest handles POST /api/v1/requests.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body struct {
		CollegeID string `json:"college_id"`
		ItemID    string `json:"item_id"`
		Quantity  int    `json:"quantity"`
		Purpose   string `json:"purpose"`
		Kind      string `json:"kind"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	collegeID, err := kernel.UUIDFromString(body.CollegeID)
	if err != nil {
		return badRequest(ctx, "college_id: "+err.Error())
	}
	itemID, err := kernel.UUIDFromString(body.ItemID)
	if err != nil {
		return badRequest(ctx, "item_id: "+err.Error())
	}
	kind, err := request.KindFromString(body.Kind)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateRequestCommand(
		kernel.NewUUID(), collegeID, itemID, body.Quantity, body.Purpose, kind,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StatusResponse{
		Success: true,
		Message: "request " + cmd.RequestID().String() + " created",
	})
}

// ApproveRequest handles POST /api/v1/requests/:id/approve.
func (s *Server) ApproveRequest(ctx echo.Context) error {
	requestID, managerID, err := recordAndActorIDs(ctx, "manager_id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewApproveRequestCommand(requestID, managerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.approveRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ok(ctx, "request approved")
}

// RejectRequest handles POST /api/v1/requests/:id/reject.
func (s *Server) RejectRequest(ctx echo.Context) error {
	var body struct {
		ManagerID string `json:"manager_id"`
		Reason    string `json:"reason"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "id: "+err.Error())
	}
	managerID, err := kernel.UUIDFromString(body.ManagerID)
	if err != nil {
		return badRequest(ctx, "manager_id: "+err.Error())
	}

	cmd, err := commands.NewRejectRequestCommand(requestID, managerID, body.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.rejectRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ok(ctx, "request rejected")
}

// PickupRequest handles POST /api/v1/requests/:id/pickup.
func (s *Server) PickupRequest(ctx echo.Context) error {
	requestID, courierID, err := recordAndActorIDs(ctx, "courier_id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewPickupRequestCommand(requestID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.pickupRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ok(ctx, "request picked up")
}

// DeliverRequest handles POST /api/v1/requests/:id/deliver.
func (s *Server) DeliverRequest(ctx echo.Context) error {
	requestID, courierID, err := recordAndActorIDs(ctx, "courier_id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeliverRequestCommand(requestID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deliverRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ok(ctx, "request delivered")
}

// PickupReturn handles POST /api/v1/returns/:id/pickup.
func (s *Server) PickupReturn(ctx echo.Context) error {
	requestID, courierID, err := recordAndActorIDs(ctx, "courier_id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewPickupReturnCommand(requestID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.pickupReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ok(ctx, "return picked up")
}

// DeliverReturn handles POST /api/v1/returns/:id/deliver.
func (s *Server) DeliverReturn(ctx echo.Context) error {
	requestID, courierID, err := recordAndActorIDs(ctx, "courier_id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeliverReturnCommand(requestID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deliverReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ok(ctx, "return received")
}

// AddItem handles POST /api/v1/items.
func (s *Server) AddItem(ctx echo.Context) error {
	var body struct {
		ManagerID       string `json:"manager_id"`
		Name            string `json:"name"`
		Category        string `json:"category"`
		Unit            string `json:"unit"`
		QuantityCentral int    `json:"quantity_central"`
		ReorderLevel    int    `json:"reorder_level"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	managerID, err := kernel.UUIDFromString(body.ManagerID)
	if err != nil {
		return badRequest(ctx, "manager_id: "+err.Error())
	}

	cmd, err := commands.NewAddItemCommand(
		kernel.NewUUID(), managerID,
		body.Name, body.Category, body.Unit,
		body.QuantityCentral, body.ReorderLevel,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StatusResponse{
		Success: true,
		Message: "item " + cmd.ItemID().String() + " added",
	})
}

// UpdateItem handles PUT /api/v1/items/:id.
func (s *Server) UpdateItem(ctx echo.Context) error {
	var body struct {
		ManagerID    string `json:"manager_id"`
		Name         string `json:"name"`
		Category     string `json:"category"`
		Unit         string `json:"unit"`
		ReorderLevel int    `json:"reorder_level"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "id: "+err.Error())
	}
	managerID, err := kernel.UUIDFromString(body.ManagerID)
	if err != nil {
		return badRequest(ctx, "manager_id: "+err.Error())
	}

	cmd, err := commands.NewUpdateItemCommand(
		itemID, managerID,
		body.Name, body.Category, body.Unit,
		body.ReorderLevel,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ok(ctx, "item updated")
}

// RemoveItem handles DELETE /api/v1/items/:id.
func (s *Server) RemoveItem(ctx echo.Context) error {
	itemID, managerID, err := recordAndActorIDs(ctx, "manager_id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveItemCommand(itemID, managerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ok(ctx, "item removed")
}

// AdjustStock handles POST /api/v1/items/:id/adjust.
func (s *Server) AdjustStock(ctx echo.Context) error {
	var body struct {
		ManagerID string `json:"manager_id"`
		Delta     int    `json:"delta"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "id: "+err.Error())
	}
	managerID, err := kernel.UUIDFromString(body.ManagerID)
	if err != nil {
		return badRequest(ctx, "manager_id: "+err.Error())
	}

	cmd, err := commands.NewAdjustStockCommand(itemID, managerID, body.Delta)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.adjustStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ok(ctx, "stock adjusted")
}

// RegisterCollege handles POST /api/v1/colleges.
func (s *Server) RegisterCollege(ctx echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterCollegeCommand(kernel.NewUUID(), body.Name)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.registerCollegeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StatusResponse{
		Success: true,
		Message: "college " + cmd.CollegeID().String() + " registered",
	})
}

// GetPendingRequests handles GET /api/v1/requests/pending.
func (s *Server) GetPendingRequests(ctx echo.Context) error {
	result, err := s.getPendingRequestsHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingRequestsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, requestsToJSON(result))
}

// GetRequestsByStage handles GET /api/v1/requests/stage?status=...&kind=...
func (s *Server) GetRequestsByStage(ctx echo.Context) error {
	status, err := request.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	kind, err := request.KindFromString(ctx.QueryParam("kind"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetRequestsByStageQuery(status, kind)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getRequestsByStageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, requestsToJSON(result))
}

// GetCollegeRequests handles GET /api/v1/colleges/:id/requests.
func (s *Server) GetCollegeRequests(ctx echo.Context) error {
	collegeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "id: "+err.Error())
	}

	query, err := queries.NewGetCollegeRequestsQuery(collegeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getCollegeRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, requestsToJSON(result))
}

// GetLowStockItems handles GET /api/v1/items/low-stock.
func (s *Server) GetLowStockItems(ctx echo.Context) error {
	result, err := s.getLowStockItemsHandler.Handle(
		ctx.Request().Context(), queries.NewGetLowStockItemsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemsToJSON(result))
}

// GetItems handles GET /api/v1/items. An optional category query parameter
// narrows the listing.
func (s *Server) GetItems(ctx echo.Context) error {
	query := queries.NewGetItemsQuery(ctx.QueryParam("category"))

	result, err := s.getItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemsToJSON(result))
}

// GetCollegeCustody handles GET /api/v1/colleges/:id/custody.
func (s *Server) GetCollegeCustody(ctx echo.Context) error {
	collegeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "id: "+err.Error())
	}

	query, err := queries.NewGetCollegeCustodyQuery(collegeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getCollegeCustodyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, custodyToJSON(result))
}

// GetAllCustody handles GET /api/v1/custody.
func (s *Server) GetAllCustody(ctx echo.Context) error {
	result, err := s.getAllCustodyHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllCustodyQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, custodyToJSON(result))
}

// GetAuditTrail handles GET /api/v1/audit.
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	result, err := s.getAuditTrailHandler.Handle(
		ctx.Request().Context(), queries.NewGetAuditTrailQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]auditEntryJSON, len(result))
	for i, r := range result {
		response[i] = auditEntryJSON{
			At:         r.At.Format("2006-01-02T15:04:05Z07:00"),
			ActorID:    r.ActorID.String(),
			Action:     r.Action,
			SubjectRef: r.SubjectRef,
			Quantity:   r.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type requestJSON struct {
	ID              string  `json:"id"`
	CollegeID       string  `json:"college_id"`
	ItemID          string  `json:"item_id"`
	CourierID       *string `json:"courier_id,omitempty"`
	Quantity        int     `json:"quantity"`
	Purpose         string  `json:"purpose"`
	Kind            string  `json:"kind"`
	Status          string  `json:"status"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type itemJSON struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Unit            string `json:"unit"`
	QuantityCentral int    `json:"quantity_central"`
	ReorderLevel    int    `json:"reorder_level"`
}

type auditEntryJSON struct {
	At         string `json:"at"`
	ActorID    string `json:"actor_id"`
	Action     string `json:"action"`
	SubjectRef string `json:"subject_ref"`
	Quantity   int    `json:"quantity"`
}

type custodyJSON struct {
	CollegeID   string `json:"college_id"`
	CollegeName string `json:"college_name"`
	ItemID      string `json:"item_id"`
	ItemName    string `json:"item_name"`
	Quantity    int    `json:"quantity"`
}

func requestsToJSON(result []queries.RequestResponse) []requestJSON {
	response := make([]requestJSON, len(result))
	for i, r := range result {
		response[i] = requestJSON{
			ID:              r.ID.String(),
			CollegeID:       r.CollegeID.String(),
			ItemID:          r.ItemID.String(),
			Quantity:        r.Quantity,
			Purpose:         r.Purpose,
			Kind:            r.Kind,
			Status:          r.Status,
			RejectionReason: r.RejectionReason,
			CreatedAt:       r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if r.CourierID != nil {
			courierID := r.CourierID.String()
			response[i].CourierID = &courierID
		}
	}
	return response
}

func itemsToJSON(result []queries.ItemResponse) []itemJSON {
	response := make([]itemJSON, len(result))
	for i, r := range result {
		response[i] = itemJSON{
			ID:              r.ID.String(),
			Name:            r.Name,
			Category:        r.Category,
			Unit:            r.Unit,
			QuantityCentral: r.QuantityCentral,
			ReorderLevel:    r.ReorderLevel,
		}
	}
	return response
}

func custodyToJSON(result []queries.CustodyResponse) []custodyJSON {
	response := make([]custodyJSON, len(result))
	for i, r := range result {
		response[i] = custodyJSON{
			CollegeID:   r.CollegeID.String(),
			CollegeName: r.CollegeName,
			ItemID:      r.ItemID.String(),
			ItemName:    r.ItemName,
			Quantity:    r.Quantity,
		}
	}
	return response
}

// recordAndActorIDs parses the :id path param plus a single actor id from the
// JSON body, the shape shared by the approve/pickup/deliver/remove endpoints.
func recordAndActorIDs(ctx echo.Context, actorField string) (kernel.UUID, kernel.UUID, error) {
	body := map[string]string{}
	if err := ctx.Bind(&body); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid request body")
	}

	recordID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("id: " + err.Error())
	}

	actorID, err := kernel.UUIDFromString(body[actorField])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New(actorField + ": " + err.Error())
	}

	return recordID, actorID, nil
}

func ok(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusOK, StatusResponse{Success: true, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: message})
}

// writeError maps a use case error to its HTTP status. Workflow refusals are
// conflicts, validation failures are bad requests, missing aggregates are 404,
// anything else is a storage fault.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, request.ErrInvalidTransition),
		errors.Is(err, item.ErrInsufficientStock),
		errors.Is(err, custody.ErrInsufficientCustody):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, StatusResponse{Success: false, Message: err.Error()})
}
