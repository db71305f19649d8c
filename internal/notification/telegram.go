package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

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

func (n *TelegramNotifier) NotifySessionCancelled(ctx context.Context, user *domain.User, offering *domain.Offering, session *domain.Session, tier *domain.PriceTier) {
	text := fmt.Sprintf(
		"*Registration cancelled*\n\nOffering: %s\nDate (UTC): %s%s",
		offering.Title,
		session.DisplayStartAt.Format(dateLayout),
		tierLine(tier),
	)
	n.send(ctx, user.TelegramChatID, text)
}

// NotifySeriesCancelled sends a single message enumerating every session
// date of the series rather than one message per session.
func (n *TelegramNotifier) NotifySeriesCancelled(ctx context.Context, user *domain.User, offering *domain.Offering, sessions []*domain.Session, tier *domain.PriceTier) {
	dates := make([]string, 0, len(sessions))
	for _, s := range sessions {
		dates = append(dates, s.DisplayStartAt.Format(dateLayout))
	}

	text := fmt.Sprintf(
		"*Registration cancelled*\n\nOffering: %s\nAll dates (UTC):\n%s%s",
		offering.Title,
		strings.Join(dates, "\n"),
		tierLine(tier),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func tierLine(tier *domain.PriceTier) string {
	if tier == nil {
		return ""
	}
	return fmt.Sprintf("\nPrice tier: %s", tier.Name)
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
