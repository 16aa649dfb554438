// Package app runs the interactive picker as a full-screen terminal app.
package app

import (
	"context"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rivo/tview"

	"github.com/m96-chan/fluentmoji/fluent"
	"github.com/m96-chan/fluentmoji/internal/clipboard"
	"github.com/m96-chan/fluentmoji/internal/config"
	"github.com/m96-chan/fluentmoji/internal/ui/picker"
)

// App is the top-level application struct.
type App struct {
	Config *config.Config
	tview  *tview.Application
	picker *picker.Picker
	clip   clipboard.Clipboard

	mu       sync.Mutex
	selected fluent.Result
	ok       bool
}

// New creates a new App. clip receives URLs copied from the picker and may be
// nil; a clipboard without a provider is treated as nil.
func New(cfg *config.Config, conv *fluent.Converter, clip clipboard.Clipboard) *App {
	if clip != nil && !clipboard.Available(clip) {
		slog.Warn("clipboard unavailable, copy disabled")
		clip = nil
	}
	a := &App{
		Config: cfg,
		tview:  tview.NewApplication(),
		picker: picker.New(cfg, conv),
		clip:   clip,
	}
	a.picker.SetOnSelect(a.onSelect)
	a.picker.SetOnCopy(a.onCopy)
	a.picker.SetOnClose(a.shutdown)
	return a
}

// Run starts the TUI event loop and blocks until an emoji is selected or
// the picker is closed. ok is false when nothing was selected.
func (a *App) Run() (res fluent.Result, ok bool, err error) {
	// Set up OS signal handling for graceful shutdown.
	sigCtx, sigStop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer sigStop()
	go func() {
		<-sigCtx.Done()
		a.shutdown()
	}()

	a.tview.SetRoot(a.picker, true)
	if err := a.tview.Run(); err != nil {
		return fluent.Result{}, false, err
	}

	res, ok = a.Selected()
	return res, ok, nil
}

// Selected returns the emoji chosen in the picker, if any.
func (a *App) Selected() (fluent.Result, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selected, a.ok
}

func (a *App) onSelect(res fluent.Result) {
	a.mu.Lock()
	a.selected, a.ok = res, true
	a.mu.Unlock()

	slog.Info("emoji selected", "emoji", res.Emoji.Character, "url", res.URL)
	a.shutdown()
}

// onCopy writes the URL to the clipboard and keeps the picker open.
func (a *App) onCopy(res fluent.Result) {
	if a.clip == nil {
		return
	}
	if err := a.clip.WriteText(res.URL); err != nil {
		slog.Error("failed to copy url", "url", res.URL, "error", err)
		return
	}
	slog.Info("copied url", "url", res.URL)
}

// shutdown stops the TUI.
func (a *App) shutdown() {
	a.tview.Stop()
}
