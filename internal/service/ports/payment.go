package ports

import (
	"context"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
)

// CheckoutProvider creates hosted checkout sessions at the payment provider.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, spec *domain.CheckoutSpec) (*domain.CheckoutSession, error)
}

// WebhookVerifier checks a webhook delivery's signature against the raw
// payload and extracts the narrow event view the core consumes. A failed
// check returns an error wrapping domain.ErrInvalidSignature.
type WebhookVerifier interface {
	VerifyEvent(payload []byte, signature string) (*domain.PaymentEvent, error)
}
