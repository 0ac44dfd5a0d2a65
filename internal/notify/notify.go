package notify

import (
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Urgency levels for notifications
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
	Timeout time.Duration
	Icon    string // Optional icon name
}

// Runner executes an external command
type Runner func(name string, args ...string) error

func execRunner(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// Notifier mirrors in-app toasts to the desktop via notify-send
type Notifier struct {
	enabled bool
	run     Runner
	log     *zap.Logger
}

// NewNotifier creates a notifier. A nil logger is treated as a no-op logger.
func NewNotifier(enabled bool, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{
		enabled: enabled,
		run:     execRunner,
		log:     log.Named("notify"),
	}
}

// WithRunner replaces the command runner
func (n *Notifier) WithRunner(run Runner) *Notifier {
	n.run = run
	return n
}

// SetEnabled enables or disables notifications
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}

// Args builds the notify-send arguments for a notification
func Args(notification Notification) []string {
	args := []string{}

	switch notification.Urgency {
	case UrgencyLow:
		args = append(args, "-u", "low")
	case UrgencyCritical:
		args = append(args, "-u", "critical")
	default:
		args = append(args, "-u", "normal")
	}

	// Timeout in milliseconds
	if notification.Timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(notification.Timeout.Milliseconds())))
	}

	if notification.Icon != "" {
		args = append(args, "-i", notification.Icon)
	}

	args = append(args, "-a", "weezy")

	args = append(args, notification.Title)
	if notification.Body != "" {
		args = append(args, notification.Body)
	}
	return args
}

// Send sends a desktop notification using notify-send
func (n *Notifier) Send(notification Notification) error {
	if !n.enabled {
		return nil
	}
	n.log.Debug("sending notification", zap.String("title", notification.Title))
	if err := n.run("notify-send", Args(notification)...); err != nil {
		n.log.Warn("notification failed", zap.Error(err))
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// Toast sends a short informational notification, the desktop twin of an in-app toast
func (n *Notifier) Toast(title, body string) error {
	return n.Send(Notification{
		Title:   title,
		Body:    body,
		Urgency: UrgencyLow,
		Timeout: 4 * time.Second,
	})
}

// SendReply announces an assistant reply that arrived while the chat was not visible
func (n *Notifier) SendReply(preview string) error {
	const limit = 80
	if r := []rune(preview); len(r) > limit {
		preview = string(r[:limit-1]) + "…"
	}
	return n.Send(Notification{
		Title:   "Weezy replied",
		Body:    preview,
		Urgency: UrgencyNormal,
		Timeout: 8 * time.Second,
		Icon:    "mail-message-new-symbolic",
	})
}

// SendTaskCompleted announces a task reaching completed
func (n *Notifier) SendTaskCompleted(title string) error {
	return n.Send(Notification{
		Title:   "Task completed",
		Body:    title,
		Urgency: UrgencyNormal,
		Timeout: 5 * time.Second,
		Icon:    "emblem-ok-symbolic",
	})
}

// SendInvite announces a team invitation
func (n *Notifier) SendInvite(email string) error {
	return n.Toast("Invitation sent", fmt.Sprintf("An invitation email has been sent to %s", email))
}

// SendOverdue warns about a task past its due date
func (n *Notifier) SendOverdue(title string) error {
	return n.Send(Notification{
		Title:   title,
		Body:    "Task is now overdue!",
		Urgency: UrgencyCritical,
		Timeout: 15 * time.Second,
		Icon:    "emblem-important-symbolic",
	})
}
