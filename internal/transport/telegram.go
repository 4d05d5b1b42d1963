package transport

// #region imports
import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"

	"github.com/cactus-tim/ml-project/internal/survey"
)

// #endregion

// #region bot-struct

// TelegramBot is the long-polling Telegram edge. It only moves text: every
// survey decision stays in the handler.
type TelegramBot struct {
	api         *tgbotapi.BotAPI
	pump        *Pump
	pollTimeout int
}

// NewTelegramBot authenticates against the Bot API and wires the pump.
func NewTelegramBot(token string, pollTimeoutSeconds, workers int, handle Handler) (*TelegramBot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	b := &TelegramBot{api: api, pollTimeout: pollTimeoutSeconds}
	b.pump = NewPump(workers, handle, b.sendReplies)
	return b, nil
}

// #endregion bot-struct

// #region run

// Run drops any webhook, then long-polls updates until ctx is cancelled.
func (b *TelegramBot) Run(ctx context.Context) error {
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		log.Printf("[TG] delete webhook: %v", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.pump.Run(ctx) })
	g.Go(func() error {
		defer b.pump.Close()
		for {
			select {
			case <-ctx.Done():
				b.api.StopReceivingUpdates()
				return ctx.Err()
			case upd, ok := <-updates:
				if !ok {
					return nil
				}
				if upd.Message == nil || upd.Message.From == nil {
					continue
				}
				in := survey.Inbound{UserID: upd.Message.From.ID, Text: upd.Message.Text}
				if err := b.pump.Dispatch(ctx, in); err != nil {
					return err
				}
			}
		}
	})
	return g.Wait()
}

// #endregion run

// #region send

func (b *TelegramBot) sendReplies(userID int64, replies []survey.Reply) {
	for _, r := range replies {
		msg := tgbotapi.NewMessage(userID, r.Text)
		if r.Markdown {
			msg.ParseMode = tgbotapi.ModeMarkdown
		}
		switch {
		case len(r.Keyboard) > 0:
			msg.ReplyMarkup = replyKeyboard(r.Keyboard)
		case r.RemoveKeyboard:
			msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
		}
		if _, err := b.api.Send(msg); err != nil {
			log.Printf("[TG] send to %d: %v", userID, err)
		}
	}
}

func replyKeyboard(grid [][]string) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, len(grid))
	for i, row := range grid {
		buttons := make([]tgbotapi.KeyboardButton, len(row))
		for j, label := range row {
			buttons[j] = tgbotapi.NewKeyboardButton(label)
		}
		rows[i] = buttons
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

// #endregion send
