// Package telegram serves the chat-bot channel over Telegram long polling.
package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sbilibin2017/zar-bot/internal/commands"
	"github.com/sbilibin2017/zar-bot/internal/formatters"
	"github.com/sbilibin2017/zar-bot/internal/logger"
	"github.com/sbilibin2017/zar-bot/internal/models"
)

//go:generate mockgen -source=bot.go -destination=mock_bot_test.go -package=telegram

// pollTimeout is the long-poll timeout in seconds.
const pollTimeout = 60

// BotAPI is the subset of *tgbotapi.BotAPI used by Bot.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// IntentDispatcher executes a parsed intent.
type IntentDispatcher interface {
	Dispatch(ctx context.Context, channel string, intent models.Intent) models.Reply
}

// Bot answers chat messages with conversions, rates and odds.
type Bot struct {
	api        BotAPI
	dispatcher IntentDispatcher
	footer     string
	workers    int
}

// NewBotAPI connects to Telegram with token.
func NewBotAPI(token string) (*tgbotapi.BotAPI, error) {
	return tgbotapi.NewBotAPI(token)
}

// NewBot creates a Bot. workers is the number of goroutines handling updates.
func NewBot(api BotAPI, dispatcher IntentDispatcher, footer string, workers int) *Bot {
	if workers <= 0 {
		workers = 1
	}
	return &Bot{
		api:        api,
		dispatcher: dispatcher,
		footer:     footer,
		workers:    workers,
	}
}

// Start polls for updates until ctx is canceled, then waits for in-flight
// messages to finish.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := b.api.GetUpdatesChan(u)
	updateChan := make(chan tgbotapi.Update, 100)

	var wg sync.WaitGroup
	for i := 0; i < b.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for update := range updateChan {
				if update.Message == nil {
					continue
				}
				if err := b.handleMessage(ctx, update.Message); err != nil {
					logger.Log.Errorw("failed to handle telegram message",
						"worker", workerID,
						"chat_id", update.Message.Chat.ID,
						"err", err,
					)
				}
			}
		}(i + 1)
	}

	logger.Log.Infow("telegram bot polling started", "workers", b.workers)

loop:
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				break loop
			}
			select {
			case updateChan <- update:
			case <-ctx.Done():
				break loop
			}
		case <-ctx.Done():
			break loop
		}
	}

	b.api.StopReceivingUpdates()
	close(updateChan)
	wg.Wait()

	logger.Log.Info("telegram bot stopped")
	return nil
}

// handleMessage answers a single text message. Odds lookups get an
// acknowledgement first since the upstream call can be slow.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.Text == "" {
		return nil
	}

	intent := commands.ParseChat(msg.Text)
	logger.Log.Debugw("telegram message received",
		"chat_id", msg.Chat.ID,
		"intent", intent.Kind.String(),
	)

	if intent.Kind == models.IntentOdds {
		if err := b.send(msg.Chat.ID, formatters.FetchingText(intent.League)); err != nil {
			return err
		}
	}

	reply := b.dispatcher.Dispatch(ctx, models.ChannelTelegram, intent)
	return b.send(msg.Chat.ID, formatters.Text(reply, b.footer))
}

func (b *Bot) send(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
