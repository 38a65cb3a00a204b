package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KNICEX/price-sentry/internal/entity"
	"github.com/KNICEX/price-sentry/internal/repo"
	"github.com/KNICEX/price-sentry/internal/service/watch"
	"github.com/samber/lo"
)

const timeLayout = "2006-01-02 15:04:05"

const (
	msgStorageDown = "Something went wrong, try again later."
	msgBadFormat   = "❌ Invalid format. Use:\nSYMBOL min-max\nExample: BTCUSDT 90000-90500"
	msgCancelUsage = "Usage: /cancel ID"
	msgNoWatches   = "You have no active watches."
	msgNoHistory   = "No triggered watches yet."
)

// Handler renders inbound chat commands into reply texts.
// Every method swallows storage errors into a user-facing retry message.
type Handler struct {
	users    repo.UserRepo
	watchSvc watch.Service
}

func NewHandler(users repo.UserRepo, watchSvc watch.Service) *Handler {
	return &Handler{
		users:    users,
		watchSvc: watchSvc,
	}
}

func (h *Handler) Start(ctx context.Context, user entity.User) string {
	if err := h.users.Create(ctx, user); err != nil {
		slog.Error("failed to create user", "user", user.Id, "error", err)
		return msgStorageDown
	}
	return fmt.Sprintf("Hi, %s! 👋\n"+
		"I watch exchange and crypto prices for you.\n"+
		"Send me, for example:\n\n"+
		"BTCUSDT 90000-90500\n"+
		"or\n"+
		"EURUSD 1.05-1.06\n\n"+
		"For the command list: /help", user.Username)
}

func (h *Handler) Help(ctx context.Context) string {
	return "📌 Available commands:\n" +
		"/start – start working with the bot\n" +
		"/help – command list\n" +
		"/list – show active watches\n" +
		"/cancel ID – cancel a watch by ID\n\n" +
		"/history – last 10 triggers\n\n" +
		"👉 You can also just send: SYMBOL min-max\n" +
		"Example: BTCUSDT 90000-90500"
}

func (h *Handler) List(ctx context.Context, userId int64) string {
	watches, err := h.watchSvc.ListActive(ctx, userId)
	if err != nil {
		slog.Error("failed to list watches", "user", userId, "error", err)
		return msgStorageDown
	}
	if len(watches) == 0 {
		return msgNoWatches
	}

	lines := lo.Map(watches, func(w entity.Watch, index int) string {
		return fmt.Sprintf("ID %d: %s %s-%s (created %s)",
			w.Id, w.Symbol, w.PriceMin, w.PriceMax, w.CreatedAt.Format(timeLayout))
	})
	return "📋 Your active watches:\n" + strings.Join(lines, "\n")
}

// Cancel confirms with the id even when no such active watch existed,
// cancellation is fire-and-forget.
func (h *Handler) Cancel(ctx context.Context, userId int64, args string) string {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return msgCancelUsage
	}
	id, err := strconv.ParseUint(fields[0], 10, 63)
	if err != nil {
		return msgCancelUsage
	}

	if err = h.watchSvc.Cancel(ctx, userId, int64(id)); err != nil {
		slog.Error("failed to cancel watch", "user", userId, "id", id, "error", err)
		return msgStorageDown
	}
	return fmt.Sprintf("Watch ID %d cancelled.", id)
}

func (h *Handler) History(ctx context.Context, userId int64) string {
	watches, err := h.watchSvc.History(ctx, userId)
	if err != nil {
		slog.Error("failed to list history", "user", userId, "error", err)
		return msgStorageDown
	}
	if len(watches) == 0 {
		return msgNoHistory
	}

	lines := lo.Map(watches, func(w entity.Watch, index int) string {
		return fmt.Sprintf("ID %d: %s %s-%s\nCreated: %s\nTriggered: %s\n",
			w.Id, w.Symbol, w.PriceMin, w.PriceMax,
			w.CreatedAt.Format(timeLayout), w.TriggeredAt.Format(timeLayout))
	})
	return "📜 Recent triggers:\n" + strings.Join(lines, "\n")
}

func (h *Handler) FreeText(ctx context.Context, userId int64, text string) string {
	w, err := h.watchSvc.Register(ctx, userId, text)
	if err != nil {
		if errors.Is(err, watch.ErrParse) {
			return msgBadFormat
		}
		slog.Error("failed to register watch", "user", userId, "error", err)
		return msgStorageDown
	}
	return fmt.Sprintf("✅ Watch added: %s %s-%s", w.Symbol, w.PriceMin, w.PriceMax)
}
