package component

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/tokenforge/internal/ui/style"
	"github.com/rovshanmuradov/tokenforge/internal/wizard"
)

const (
	DefaultToastTTL = 4 * time.Second
	maxVisibleToast = 3
)

// ToastExpiredMsg removes the toast with the matching sequence number.
type ToastExpiredMsg struct {
	Seq int
}

type toast struct {
	seq  int
	note wizard.Notification
}

// Toasts is a short stack of transient notifications, newest last.
type Toasts struct {
	items   []toast
	nextSeq int
	ttl     time.Duration
	width   int
	palette style.Palette
}

// NewToasts creates an empty toast stack. ttl <= 0 uses DefaultToastTTL.
func NewToasts(ttl time.Duration) *Toasts {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &Toasts{ttl: ttl, width: 48, palette: style.DefaultPalette()}
}

// SetWidth sets the toast box width.
func (t *Toasts) SetWidth(width int) *Toasts {
	t.width = width
	return t
}

// Push adds a notification and returns the command that expires it.
func (t *Toasts) Push(n wizard.Notification) tea.Cmd {
	t.nextSeq++
	seq := t.nextSeq
	t.items = append(t.items, toast{seq: seq, note: n})
	if len(t.items) > maxVisibleToast {
		t.items = t.items[len(t.items)-maxVisibleToast:]
	}
	return tea.Tick(t.ttl, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// Expire removes the toast with the given sequence number.
func (t *Toasts) Expire(seq int) {
	for i, it := range t.items {
		if it.seq == seq {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of visible toasts.
func (t *Toasts) Len() int {
	return len(t.items)
}

func (t *Toasts) color(kind wizard.NotificationKind) lipgloss.Color {
	switch kind {
	case wizard.NotifySuccess:
		return t.palette.Success
	case wizard.NotifyWarning:
		return t.palette.Warning
	case wizard.NotifyError:
		return t.palette.Error
	default:
		return t.palette.Info
	}
}

// View renders the stack
func (t *Toasts) View() string {
	if len(t.items) == 0 {
		return ""
	}

	boxes := make([]string, 0, len(t.items))
	for _, it := range t.items {
		c := t.color(it.note.Kind)
		body := style.ToastTitleStyle.Foreground(c).Render(it.note.Title)
		if it.note.Description != "" {
			body += "\n" + style.ToastBodyStyle.Render(it.note.Description)
		}
		boxes = append(boxes, style.ToastStyle.BorderForeground(c).Width(t.width).Render(body))
	}
	return strings.Join(boxes, "\n")
}
