package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/handler/dto"
)

type TicketSvc interface {
	CreateFromEvidence(ctx context.Context, input domain.CreateTicketInput) (*domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]*domain.Ticket, error)
	Approve(ctx context.Context, ticketID string) (*domain.Ticket, error)
	Reject(ctx context.Context, ticketID string) (*domain.Ticket, error)
	SetPrice(ctx context.Context, ticketID string, priceCents int64, currency string) (*domain.Ticket, error)
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type CheckoutSvc interface {
	Start(ctx context.Context, ticketID string) (*domain.CheckoutSession, error)
}

type WebhookSvc interface {
	HandleEvent(ctx context.Context, payload []byte, signature string) (*domain.ReconcileResult, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	TrialStatus(ctx context.Context, userID string) (*domain.TrialStatus, error)
}

type Handler struct {
	ticketService   TicketSvc
	checkoutService CheckoutSvc
	webhookService  WebhookSvc
	userService     UserSvc
}

func NewHandler(ticketService TicketSvc, checkoutService CheckoutSvc, webhookService WebhookSvc, userService UserSvc) *Handler {
	return &Handler{
		ticketService:   ticketService,
		checkoutService: checkoutService,
		webhookService:  webhookService,
		userService:     userService,
	}
}

// Tickets

func (h *Handler) CreateTicket(c *ginext.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	evidenceAt, err := time.Parse(time.RFC3339, req.EvidenceAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid evidence_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateTicketInput{
		OwnerUserID: req.OwnerUserID,
		Evidence: domain.EvidenceInput{
			Platform:    req.Platform,
			Text:        req.Text,
			EvidenceAt:  evidenceAt,
			EvidenceURL: req.EvidenceURL,
			AssetURL:    req.AssetURL,
		},
	}
	if req.PriceCents != nil || req.Currency != "" {
		input.Pricing = &domain.PricingInput{
			PriceCents: req.PriceCents,
			Currency:   req.Currency,
		}
	}

	ticket, err := h.ticketService.CreateFromEvidence(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *Handler) GetTicket(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	ticket, err := h.ticketService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) ApproveTicket(c *ginext.Context) {
	h.transitionTicket(c, h.ticketService.Approve)
}

func (h *Handler) RejectTicket(c *ginext.Context) {
	h.transitionTicket(c, h.ticketService.Reject)
}

func (h *Handler) transitionTicket(c *ginext.Context, apply func(context.Context, string) (*domain.Ticket, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	ticket, err := apply(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) SetTicketPrice(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	var req dto.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ticket, err := h.ticketService.SetPrice(c.Request.Context(), id, req.PriceCents, req.Currency)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) GetOwnerTickets(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	tickets, err := h.ticketService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Checkout

func (h *Handler) StartCheckout(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	session, err := h.checkoutService.Start(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Ok:        true,
		TicketID:  id,
		SessionID: session.ID,
		URL:       session.URL,
	})
}

// StripeWebhook consumes the raw request body: the provider signature is
// computed over the exact bytes, so the JSON binder must not touch them.
// Verified events are always answered with 200; only a bad signature gets
// a 400 and only a storage failure gets a 5xx (those are worth a retry).
func (h *Handler) StripeWebhook(c *ginext.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read request body"})
		return
	}

	result, err := h.webhookService.HandleEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWebhookResponse(result))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTrialStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	status, err := h.userService.TrialStatus(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialResponse(status))
}

// Admin

func (h *Handler) GetStats(c *ginext.Context) {
	stats, err := h.ticketService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var transitionErr *domain.TransitionError

	switch {
	case errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrCheckoutWrongStatus),
		errors.Is(err, domain.ErrCheckoutMissingPrice),
		errors.Is(err, domain.ErrCheckoutInvalidPrice):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
