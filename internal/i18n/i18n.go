// Package i18n holds the translated quiz text.
//
// English strings are the message keys, so an English printer needs no
// entries and any key missing from a translation falls back to English.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{
	language.English,
	language.Russian,
}

var matcher = language.NewMatcher(supported)

var russian = map[string]string{
	"Welcome to the Go Quiz!": "Добро пожаловать в викторину по Go!",
	"Total Questions: %s":     "Всего вопросов: %s",
	"Question %s/%s":          "❓ Вопрос %s/%s",
	"Your answer (1-%s): ":    "Ваш ответ (1-%s): ",
	"Invalid input! Please enter a number between 1 and %s.": "Неверный ввод! Введите число от 1 до %s.",
	"✓ Correct!": "✅ Правильно!",
	"✗ Incorrect. The correct answer was: %s": "❌ Неправильно!\nПравильный ответ: %s",
	"Quiz Complete!":                        "🏁 Викторина завершена!",
	"Your Score: %s/%s":                     "📊 Результат: %s/%s",
	"Percentage: %s%%":                      "📈 Процент правильных: %s%%",
	"Perfect score! Excellent work! 🎉":      "Идеально! Отличная работа! 🎉",
	"Great job! 👍":                          "Отлично! 👍",
	"Good effort! Keep learning! 📚":         "Хорошая попытка! Продолжайте учиться! 📚",
	"Keep practicing! You'll get better! 💪": "Тренируйтесь! У вас получится! 💪",
	"Quiz interrupted.":                     "🚪 Викторина прервана.",
	"Input ended unexpectedly.":             "Ввод неожиданно закончился.",
}

var messages = mustBuildCatalog()

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, value := range russian {
		if err := b.SetString(language.Russian, key, value); err != nil {
			panic(err)
		}
	}
	return b
}

// Supported returns the locales with a translation.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Match picks the supported locale closest to locale, English if nothing matches.
func Match(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return supported[index]
}

// NewPrinter returns a printer for the best match of locale.
func NewPrinter(locale string) *message.Printer {
	return message.NewPrinter(Match(locale), message.Catalog(messages))
}
