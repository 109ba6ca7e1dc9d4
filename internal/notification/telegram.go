package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyTicketApproved(ctx context.Context, user *domain.User, ticket *domain.Ticket) {
	text := fmt.Sprintf(
		"*Ticket approved*\n\nPlatform: %s\nRequest: %s\n%s",
		ticket.Platform, ticket.EvidenceText, priceLine(ticket),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyTicketRejected(ctx context.Context, user *domain.User, ticket *domain.Ticket) {
	text := fmt.Sprintf(
		"*Ticket rejected*\n\nPlatform: %s\nRequest: %s",
		ticket.Platform, ticket.EvidenceText,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyTicketPaid(ctx context.Context, user *domain.User, ticket *domain.Ticket) {
	text := fmt.Sprintf(
		"*Ticket paid!*\n\nPlatform: %s\nRequest: %s\n%s",
		ticket.Platform, ticket.EvidenceText, priceLine(ticket),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentMismatch(ctx context.Context, user *domain.User, ticket *domain.Ticket, paidAmountCents int64, paidCurrency string) {
	text := fmt.Sprintf(
		"*Payment mismatch*\n\nPlatform: %s\nRequest: %s\n%s\nReceived: %d.%02d %s\n\nThe ticket was left untouched, please check your Stripe dashboard.",
		ticket.Platform, ticket.EvidenceText, priceLine(ticket),
		paidAmountCents/100, paidAmountCents%100, paidCurrency,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func priceLine(ticket *domain.Ticket) string {
	if ticket.PriceCents == nil {
		return "Price: not set"
	}
	return fmt.Sprintf("Price: %d.%02d %s", *ticket.PriceCents/100, *ticket.PriceCents%100, ticket.Currency)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
