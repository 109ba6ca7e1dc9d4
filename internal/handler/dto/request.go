package dto

type CreateTicketRequest struct {
	OwnerUserID string `json:"owner_user_id" binding:"required,uuid"`
	Platform    string `json:"platform" binding:"required"`
	Text        string `json:"text" binding:"required"`
	EvidenceAt  string `json:"evidence_at" binding:"required"`
	EvidenceURL string `json:"evidence_url"`
	AssetURL    string `json:"asset_url"`
	PriceCents  *int64 `json:"price_cents"`
	Currency    string `json:"currency"`
}

type SetPriceRequest struct {
	PriceCents int64  `json:"price_cents" binding:"gte=0"`
	Currency   string `json:"currency"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
