package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/PoluyanbIch/GoQuiz/internal/config"
	"github.com/PoluyanbIch/GoQuiz/internal/console"
	"github.com/PoluyanbIch/GoQuiz/internal/i18n"
	"github.com/PoluyanbIch/GoQuiz/internal/service"
	"github.com/PoluyanbIch/GoQuiz/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	flag.StringVar(&cfg.Transport, "transport", cfg.Transport, "where to play: console or telegram")
	flag.StringVar(&cfg.Locale, "lang", cfg.Locale, "language of the quiz text (en, ru)")
	flag.BoolVar(&cfg.Debug, "v", cfg.Debug, "verbose logging")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// в консоли логи мешают вопросам
	if cfg.Transport == config.TransportConsole && !cfg.Debug {
		log.SetOutput(io.Discard)
	}

	questions := service.DefaultQuizQuestions()
	if err := service.ValidateQuestions(questions, 4); err != nil {
		log.Fatalf("Invalid question bank: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var channel service.Channel
	switch cfg.Transport {
	case config.TransportTelegram:
		channel, err = telegram.Dial(telegram.Config{
			Token:       cfg.TelegramToken,
			ChatID:      cfg.TelegramChatID,
			PollTimeout: cfg.TelegramPollTimeout,
			Debug:       cfg.Debug,
		})
		if err != nil {
			log.Fatal(err)
		}
	default:
		channel = console.New(os.Stdin, os.Stdout)
	}

	log.Printf("Starting quiz with %d questions over %s", len(questions), cfg.Transport)

	session := service.NewQuizSession(service.NewQuiz(questions), channel, i18n.NewPrinter(cfg.Locale))
	if err := session.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		stop()
		log.SetOutput(os.Stderr)
		log.Fatalf("Quiz stopped: %v", err)
	}
}
