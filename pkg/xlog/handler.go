package xlog

import (
	"context"
	"io"
	"log/slog"

	"github.com/samber/lo"
)

// HandlerCreator is a function type to create slog.Handler.
type HandlerCreator func(w io.Writer, opts *slog.HandlerOptions) slog.Handler

var (
	// JSONHandlerCreator wraps slog.NewJSONHandler as HandlerCreator.
	JSONHandlerCreator HandlerCreator = func(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
		return slog.NewJSONHandler(w, opts)
	}
	// TextHandlerCreator wraps slog.NewTextHandler as HandlerCreator.
	TextHandlerCreator HandlerCreator = func(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
		return slog.NewTextHandler(w, opts)
	}
)

// NewLevelVar returns a *slog.LevelVar initialized to lvl.
func NewLevelVar(lvl slog.Level) *slog.LevelVar {
	v := &slog.LevelVar{}
	v.Set(lvl)
	return v
}

// LeveledHandler wraps slog.Handler with a SetLevel() method.
type LeveledHandler interface {
	slog.Handler
	// SetLevel changes the handler level dynamically.
	SetLevel(lvl slog.Level)
}

// SetHandlerLevel asserts the input slog.Handler as LeveledHandler and
// calls its SetLevel() method.
func SetHandlerLevel(h slog.Handler, lvl slog.Level) {
	if leveled, ok := h.(LeveledHandler); ok {
		leveled.SetLevel(lvl)
	}
}

type leveledHandler struct {
	handler slog.Handler
	level   *slog.LevelVar
}

// Enabled reports whether the handler handles records at the given level.
func (h *leveledHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.handler.Enabled(ctx, lvl)
}

// Handle handles the Record.
func (h *leveledHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new Handler whose attributes consist of both the
// receiver's attributes and the arguments.
func (h *leveledHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &leveledHandler{handler: h.handler.WithAttrs(attrs), level: h.level}
}

// WithGroup returns a new Handler with the given group appended to the
// receiver's existing groups.
func (h *leveledHandler) WithGroup(name string) slog.Handler {
	return &leveledHandler{handler: h.handler.WithGroup(name), level: h.level}
}

// SetLevel changes the handler level dynamically.
func (h *leveledHandler) SetLevel(lvl slog.Level) {
	h.level.Set(lvl)
}

// MultiHandler distributes records to multiple slog.Handler.
func MultiHandler(handlers ...slog.Handler) slog.Handler {
	return &multiHandler{handlers: handlers}
}

type multiHandler struct {
	handlers []slog.Handler
}

// Enabled implements slog.Handler.
func (h *multiHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	for i := range h.handlers {
		if h.handlers[i].Enabled(ctx, lvl) {
			return true
		}
	}
	return false
}

// Handle implements slog.Handler.
func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for i := range h.handlers {
		if h.handlers[i].Enabled(ctx, r.Level) {
			if err := h.handlers[i].Handle(ctx, r.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := lo.Map(h.handlers, func(item slog.Handler, _ int) slog.Handler {
		return item.WithAttrs(attrs)
	})
	return MultiHandler(handlers...)
}

// WithGroup implements slog.Handler.
func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := lo.Map(h.handlers, func(item slog.Handler, _ int) slog.Handler {
		return item.WithGroup(name)
	})
	return MultiHandler(handlers...)
}

// SetLevel implements LeveledHandler.
func (h *multiHandler) SetLevel(lvl slog.Level) {
	lo.ForEach(h.handlers, func(item slog.Handler, _ int) {
		SetHandlerLevel(item, lvl)
	})
}
