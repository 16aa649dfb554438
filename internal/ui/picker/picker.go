// Package picker is an interactive emoji search that resolves the chosen
// emoji to its Fluent asset URL.
package picker

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/m96-chan/fluentmoji/emojidata"
	"github.com/m96-chan/fluentmoji/fluent"
	"github.com/m96-chan/fluentmoji/internal/config"
	"github.com/m96-chan/fluentmoji/internal/ui/keys"
)

// frequentEmoji lists commonly used emoji shown before anything is typed.
var frequentEmoji = []string{
	"😀", "😂", "😍", "😭", "🤔",
	"👍", "👋", "🙏", "👏", "🙌",
	"❤️", "🔥", "✨", "🎉", "🚀",
	"👀", "💯", "✅", "⭐", "🥳",
}

const maxResults = 50

// OnSelectFunc is called with the resolved emoji when the user picks one.
type OnSelectFunc func(res fluent.Result)

// Picker is a search field over the converter's emoji source with a result list and a
// status line showing the URL of the highlighted emoji.
type Picker struct {
	*tview.Flex
	cfg    *config.Config
	conv   *fluent.Converter
	input  *tview.InputField
	list   *tview.List
	status *tview.TextView

	shown []emojidata.Emoji
	style fluent.Style
	tone  fluent.SkinTone

	onSelect OnSelectFunc
	onCopy   OnSelectFunc
	onClose  func()
}

// New creates a picker using conv for URLs and cfg for keys and theme.
func New(cfg *config.Config, conv *fluent.Converter) *Picker {
	p := &Picker{
		cfg:   cfg,
		conv:  conv,
		style: conv.Config().DefaultStyle,
		tone:  cfg.DefaultSkinTone,
	}
	if p.tone == fluent.SkinToneUnspecified {
		p.tone = fluent.SkinToneDefault
	}

	theme := cfg.Theme

	p.input = tview.NewInputField()
	p.input.SetLabel(" Emoji: ")
	p.input.SetFieldStyle(theme.Input.Style)
	p.input.SetChangedFunc(p.onInputChanged)
	p.input.SetInputCapture(p.handleInput)

	p.list = tview.NewList()
	p.list.SetHighlightFullLine(true)
	p.list.ShowSecondaryText(false)
	p.list.SetWrapAround(false)
	p.list.SetMainTextStyle(theme.List.Name.Style)
	p.list.SetSelectedStyle(theme.List.Selected.Style)
	p.list.SetChangedFunc(func(int, string, string, rune) {
		p.updateStatus()
	})

	p.status = tview.NewTextView()
	p.status.SetDynamicColors(true)

	p.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.input, 1, 0, true).
		AddItem(p.list, 0, 1, false).
		AddItem(p.status, 2, 0, false)
	p.SetBorder(true).SetTitle(" Fluent Emoji ")

	p.SetBorderColor(p.borderColor(false))
	p.input.SetFocusFunc(func() { p.SetBorderColor(p.borderColor(true)) })
	p.input.SetBlurFunc(func() { p.SetBorderColor(p.borderColor(false)) })
	titleFg, _, _ := theme.Title.Decompose()
	p.SetTitleColor(titleFg)

	p.showFrequent()

	return p
}

// borderColor returns the themed border color for the focus state.
func (p *Picker) borderColor(focused bool) tcell.Color {
	style := p.cfg.Theme.Border.Normal
	if focused {
		style = p.cfg.Theme.Border.Focused
	}
	fg, _, _ := style.Decompose()
	return fg
}

// SetOnSelect sets the callback for emoji selection.
func (p *Picker) SetOnSelect(fn OnSelectFunc) {
	p.onSelect = fn
}

// SetOnCopy sets the callback for the copy key.
func (p *Picker) SetOnCopy(fn OnSelectFunc) {
	p.onCopy = fn
}

// SetOnClose sets the callback for closing the picker.
func (p *Picker) SetOnClose(fn func()) {
	p.onClose = fn
}

// Reset clears the input and shows frequent emoji.
func (p *Picker) Reset() {
	p.input.SetText("")
	p.showFrequent()
}

// Style returns the style new selections are resolved with.
func (p *Picker) Style() fluent.Style { return p.style }

// SkinTone returns the skin tone new selections are resolved with.
func (p *Picker) SkinTone() fluent.SkinTone { return p.tone }

// handleInput processes keybindings for the picker input field.
func (p *Picker) handleInput(event *tcell.EventKey) *tcell.EventKey {
	kb := p.cfg.Keybinds.Picker

	switch keys.Name(event) {
	case kb.Close:
		p.close()
		return nil
	case kb.Select:
		p.selectCurrent(p.onSelect)
		return nil
	case kb.Copy:
		p.selectCurrent(p.onCopy)
		return nil
	case kb.Up:
		p.move(-1)
		return nil
	case kb.Down:
		p.move(1)
		return nil
	case kb.NextStyle:
		p.cycleStyle()
		return nil
	case kb.NextSkinTone:
		p.cycleSkinTone()
		return nil
	}

	return event
}

func (p *Picker) move(delta int) {
	cur := p.list.GetCurrentItem() + delta
	if cur >= 0 && cur < p.list.GetItemCount() {
		p.list.SetCurrentItem(cur)
	}
}

// onInputChanged filters the emoji list based on search text.
func (p *Picker) onInputChanged(text string) {
	if text == "" {
		p.showFrequent()
		return
	}
	p.shown = p.conv.Search(text, maxResults)
	p.rebuildList()
}

// showFrequent displays the frequently used emoji.
func (p *Picker) showFrequent() {
	p.shown = p.shown[:0]
	for _, e := range frequentEmoji {
		if meta, ok := p.conv.Lookup(e); ok {
			p.shown = append(p.shown, meta)
		}
	}
	p.rebuildList()
}

// rebuildList updates the tview.List from the shown entries.
func (p *Picker) rebuildList() {
	detail := p.cfg.Theme.List.Detail
	p.list.Clear()
	for _, e := range p.shown {
		display := fmt.Sprintf("%s  %s %s%s%s",
			e.Character, tview.Escape(e.Name),
			detail.Tag(), tview.Escape(e.Group), detail.Reset())
		p.list.AddItem(display, "", 0, nil)
	}
	if p.list.GetItemCount() > 0 {
		p.list.SetCurrentItem(0)
	}
	p.updateStatus()
}

func (p *Picker) cycleStyle() {
	styles := fluent.Styles()
	p.style = styles[(indexOf(styles, p.style)+1)%len(styles)]
	p.updateStatus()
}

func (p *Picker) cycleSkinTone() {
	tones := fluent.SkinTones()
	p.tone = tones[(indexOf(tones, p.tone)+1)%len(tones)]
	p.updateStatus()
}

// indexOf returns the position of v in s, or -1.
func indexOf[T comparable](s []T, v T) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// current resolves the highlighted emoji with the current style and tone.
func (p *Picker) current() (fluent.Result, bool) {
	cur := p.list.GetCurrentItem()
	if cur < 0 || cur >= len(p.shown) {
		return fluent.Result{}, false
	}
	return p.conv.Resolve(fluent.Options{
		Emoji:    p.shown[cur].Character,
		Style:    p.style,
		SkinTone: p.tone,
	})
}

func (p *Picker) updateStatus() {
	detail := p.cfg.Theme.List.Detail
	line := fmt.Sprintf(" %sstyle:%s %s  %stone:%s %s",
		detail.Tag(), detail.Reset(), p.style,
		detail.Tag(), detail.Reset(), p.tone)
	if res, ok := p.current(); ok {
		line += "\n " + tview.Escape(res.URL)
	}
	p.status.SetText(line)
}

// selectCurrent passes the highlighted emoji to fn.
func (p *Picker) selectCurrent(fn OnSelectFunc) {
	res, ok := p.current()
	if !ok || fn == nil {
		return
	}
	fn(res)
}

func (p *Picker) close() {
	if p.onClose != nil {
		p.onClose()
	}
}
