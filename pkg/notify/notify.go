package notify

import (
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"foodmarket/pkg/logger"
	"foodmarket/pkg/models"
)

// CourierNotifier pushes pickup notices to the courier pool. Delivery of
// the notice is best effort; failures never fail the order transition.
type CourierNotifier interface {
	OrderReady(order *models.Order)
}

type noop struct{}

func (noop) OrderReady(*models.Order) {}

type telegramNotifier struct {
	bot    *tele.Bot
	chatID int64
	log    logger.ILogger
}

// NewTelegram builds a notifier broadcasting to the courier Telegram chat.
// An empty token disables notifications.
func NewTelegram(token string, chatID int64, log logger.ILogger) (CourierNotifier, error) {
	if token == "" || chatID == 0 {
		log.Info("courier notifications disabled")
		return noop{}, nil
	}

	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}
	return &telegramNotifier{bot: b, chatID: chatID, log: log}, nil
}

func (n *telegramNotifier) OrderReady(order *models.Order) {
	text := fmt.Sprintf("🔔 Order #%d is ready for pickup\n🏪 %s\n📍 %s",
		order.OrderNumber, order.RestaurantName, order.DeliveryAddress)
	if _, err := n.bot.Send(tele.ChatID(n.chatID), text); err != nil {
		n.log.Warning("failed to notify couriers", logger.Int64("order_number", order.OrderNumber), logger.Error(err))
	}
}
