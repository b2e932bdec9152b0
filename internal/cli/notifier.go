package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/cli/styles"
)

// Notifier prints notifications as themed lines. Durations are ignored on a
// terminal.
type Notifier struct {
	mu    sync.Mutex
	out   io.Writer
	theme *styles.Theme
	quiet bool
}

var _ port.Notification = (*Notifier)(nil)

// NewNotifier creates a notifier writing to out.
func NewNotifier(out io.Writer, theme *styles.Theme) *Notifier {
	return &Notifier{out: out, theme: theme}
}

// SetQuiet suppresses everything but errors.
func (n *Notifier) SetQuiet(quiet bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.quiet = quiet
}

// Show implements port.Notification.
func (n *Notifier) Show(_ context.Context, message string, notifType port.NotificationType, _ int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.quiet && notifType != port.NotificationError {
		return
	}
	fmt.Fprintln(n.out, n.theme.RenderNotification(message, notifType))
}
