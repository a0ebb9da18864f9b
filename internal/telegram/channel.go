package telegram

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrClosed = errors.New("telegram channel closed")

type Config struct {
	Token       string
	ChatID      int64
	PollTimeout int
	Debug       bool
}

// botAPI is the part of tgbotapi.BotAPI the channel uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	StopReceivingUpdates()
}

// Channel plays the quiz in a single Telegram chat. Lines written between two
// reads are sent together as one message.
type Channel struct {
	api     botAPI
	updates tgbotapi.UpdatesChannel
	chatID  int64

	mu        sync.Mutex
	pending   []string
	closed    bool
	closeOnce sync.Once
	closeErr  error
}

func Dial(cfg Config) (*Channel, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Debug
	log.Printf("Authorised on account: %s", api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.PollTimeout

	updates := api.GetUpdatesChan(u)
	if cfg.ChatID == 0 {
		log.Println("Waiting for the first message to pick a chat...")
	}

	return newChannel(api, updates, cfg.ChatID), nil
}

func newChannel(api botAPI, updates tgbotapi.UpdatesChannel, chatID int64) *Channel {
	return &Channel{
		api:     api,
		updates: updates,
		chatID:  chatID,
	}
}

func (c *Channel) ChatID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chatID
}

func (c *Channel) WriteLine(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.pending = append(c.pending, text)
	return nil
}

// ReadLine sends the buffered text with prompt and waits for the next text
// message from the bound chat.
func (c *Channel) ReadLine(ctx context.Context, prompt string) (string, error) {
	if c.isClosed() {
		return "", ErrClosed
	}

	if c.ChatID() == 0 {
		// первое сообщение только открывает чат
		if _, err := c.nextText(ctx); err != nil {
			return "", err
		}
	}

	if prompt != "" {
		if err := c.WriteLine(prompt); err != nil {
			return "", err
		}
	}
	if err := c.flush(); err != nil {
		return "", err
	}

	text, err := c.nextText(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Close sends whatever is still buffered and stops polling for updates.
func (c *Channel) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.flush()

		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		c.api.StopReceivingUpdates()
	})
	return c.closeErr
}

func (c *Channel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Channel) nextText(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case update, ok := <-c.updates:
			if !ok {
				return "", io.EOF
			}
			if update.Message == nil || update.Message.Chat == nil {
				continue
			}

			chatID := update.Message.Chat.ID
			c.mu.Lock()
			if c.chatID == 0 {
				c.chatID = chatID
				log.Printf("Bound to chat %d", chatID)
			}
			bound := c.chatID
			c.mu.Unlock()

			if chatID != bound {
				log.Printf("Ignoring message from chat %d", chatID)
				continue
			}
			return update.Message.Text, nil
		}
	}
}

func (c *Channel) flush() error {
	c.mu.Lock()
	text := strings.TrimSpace(strings.Join(c.pending, "\n"))
	c.pending = nil
	chatID := c.chatID
	c.mu.Unlock()

	if text == "" {
		return nil
	}
	if chatID == 0 {
		log.Printf("No chat bound yet, dropping %d lines of output", strings.Count(text, "\n")+1)
		return nil
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := c.api.Send(msg); err != nil {
		log.Printf("Error sending msg: %v", err)
		return err
	}
	return nil
}
