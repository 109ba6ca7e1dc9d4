package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/config"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
)

// StripeGateway implements the checkout provider and webhook verifier ports
// against Stripe. The client is constructed explicitly and injected; there
// is no package-level key.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewStripeGateway(cfg config.StripeConfig) (*StripeGateway, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}
	if cfg.WebhookSecret == "" {
		return nil, errors.New("stripe webhook secret is required")
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
	}, nil
}

func (g *StripeGateway) CreateSession(ctx context.Context, spec *domain.CheckoutSpec) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(spec.ClientReferenceID),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(fmt.Sprintf("%s/%s", g.cancelURL, spec.TicketID)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(spec.Currency),
					UnitAmount: stripe.Int64(spec.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("ScopeShield ticket payment"),
						Description: stripe.String("Ticket " + spec.TicketID),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range spec.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}
	if sess.URL == "" {
		return nil, errors.New("stripe checkout session has no url")
	}

	return &domain.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// VerifyEvent checks the Stripe-Signature header against the raw payload
// and extracts the four reconciliation facts the core consumes.
func (g *StripeGateway) VerifyEvent(payload []byte, signature string) (*domain.PaymentEvent, error) {
	if signature == "" {
		return nil, fmt.Errorf("%w: missing signature header", domain.ErrInvalidSignature)
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	pe := &domain.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if pe.Type != domain.PaymentEventCheckoutCompleted {
		return pe, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}

	pe.SessionID = sess.ID
	pe.AmountCents = sess.AmountTotal
	pe.Currency = string(sess.Currency)
	pe.TicketID = sess.Metadata[domain.MetadataTicketID]
	if pe.TicketID == "" {
		pe.TicketID = sess.ClientReferenceID
	}

	return pe, nil
}
