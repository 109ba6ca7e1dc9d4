package dto

import (
	"time"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
)

type TicketResponse struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	OwnerUserID  string  `json:"owner_user_id"`
	PriceCents   *int64  `json:"price_cents"`
	Currency     string  `json:"currency"`
	Platform     string  `json:"platform"`
	EvidenceText string  `json:"evidence_text"`
	EvidenceAt   string  `json:"evidence_at"`
	EvidenceURL  *string `json:"evidence_url,omitempty"`
	AssetURL     *string `json:"asset_url,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type CheckoutResponse struct {
	Ok        bool   `json:"ok"`
	TicketID  string `json:"ticket_id"`
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type WebhookResponse struct {
	Ok       bool   `json:"ok"`
	TicketID string `json:"ticket_id,omitempty"`
	Status   string `json:"status,omitempty"`
	Already  string `json:"already,omitempty"`
	Warning  string `json:"warning,omitempty"`
	Ignored  string `json:"ignored,omitempty"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type TrialResponse struct {
	Active bool   `json:"active"`
	EndsAt string `json:"ends_at"`
}

type StatsResponse struct {
	ByStatus        map[string]int64 `json:"by_status"`
	RevenueCents    int64            `json:"revenue_cents"`
	RevenueCurrency string           `json:"revenue_currency"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:           t.ID,
		Status:       string(t.Status),
		OwnerUserID:  t.OwnerUserID,
		PriceCents:   t.PriceCents,
		Currency:     t.Currency,
		Platform:     t.Platform,
		EvidenceText: t.EvidenceText,
		EvidenceAt:   t.EvidenceAt.Format(time.RFC3339),
		EvidenceURL:  t.EvidenceURL,
		AssetURL:     t.AssetURL,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
}

func ToWebhookResponse(r *domain.ReconcileResult) WebhookResponse {
	return WebhookResponse{
		Ok:       r.Ok,
		TicketID: r.TicketID,
		Status:   string(r.Status),
		Already:  r.Already,
		Warning:  r.Warning,
		Ignored:  r.Ignored,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToTrialResponse(s *domain.TrialStatus) TrialResponse {
	return TrialResponse{
		Active: s.Active,
		EndsAt: s.EndsAt.Format(time.RFC3339),
	}
}

func ToStatsResponse(s *domain.DashboardStats) StatsResponse {
	byStatus := make(map[string]int64, len(s.ByStatus))
	for status, count := range s.ByStatus {
		byStatus[string(status)] = count
	}
	return StatsResponse{
		ByStatus:        byStatus,
		RevenueCents:    s.RevenueCents,
		RevenueCurrency: s.RevenueCurrency,
	}
}
