package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username       string
	TelegramChatID *int64
}

// TrialStatus reports whether an owner account is inside its free window.
// Eligibility is computed from the account creation timestamp, not stored.
type TrialStatus struct {
	Active bool      `json:"active"`
	EndsAt time.Time `json:"ends_at"`
}
