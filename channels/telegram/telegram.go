// Package telegram alerts an operator chat about security events.
// The channel is optional: without TELEGRAM_TOKEN it stays disabled and
// every call is a no-op.
package telegram

import (
	"fmt"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

var (
	bot         *tgbotapi.BotAPI
	alertChatID int64
)

// Init connects the bot. Call once at startup when TELEGRAM_TOKEN is set.
func Init() error {
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		log.Info("Telegram Alerts Disabled")
		return nil
	}

	chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_ALERT_CHAT"), 10, 64)
	if err != nil {
		return fmt.Errorf("telegram: invalid TELEGRAM_ALERT_CHAT: %w", err)
	}

	b, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}

	bot = b
	alertChatID = chatID
	log.Info("Telegram Authorized on " + bot.Self.UserName)
	return nil
}

// Enabled reports whether the alert channel is connected.
func Enabled() bool {
	return bot != nil
}

// NotifyLockout tells the operator chat that an account was just locked.
func NotifyLockout(username string) {
	sendText(fmt.Sprintf("Account %q has been locked after 3 failed PIN attempts.", username))
}

func sendText(text string) {
	if bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(alertChatID, text)
	if _, err := bot.Send(msg); err != nil {
		log.WithError(err).Error("Telegram Send Message Failed")
	}
}
