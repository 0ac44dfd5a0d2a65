package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dori/weezy/internal/assistant"
)

// NewAskCmd sends one message to the knowledge assistant
func NewAskCmd(c *cli) *cobra.Command {
	var noDelay, workspace bool
	var output string

	cmd := &cobra.Command{
		Use:   "ask <message...>",
		Short: "Ask the knowledge assistant a question",
		Long: `Ask the assistant about your files. The reply arrives after the
configured typing delay unless --no-delay is set.

Examples:
  weezy ask find customer survey
  weezy ask --workspace what is in the budget forecast`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open()
			if err != nil {
				return err
			}
			defer a.Close()

			responder := assistant.NewResponder()
			known := a.Catalog.Knowledge
			if workspace {
				responder = assistant.NewResponder(assistant.WorkspaceTopics()...).WithFallback(assistant.WorkspaceFallback)
				known = a.Catalog.WorkspaceFiles()
			}

			session, reply, ok := assistant.NewSession(responder, known).Send(strings.Join(args, " "))
			if !ok {
				return errors.New("nothing to ask")
			}

			d := time.Duration(0)
			if !noDelay {
				rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
				d = assistant.Jitter(c.cfg.TypingDelay, c.cfg.TypingJitter, rng)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := wait(ctx, d); err != nil {
				return err
			}

			session = session.Deliver(reply)
			c.log.Debug("assistant replied",
				zap.Stringer("intent", reply.Intent),
				zap.Int("attachments", len(reply.Attachments)),
				zap.Int("messages", len(session.Messages())))
			return render(cmd.OutOrStdout(), output, reply, printReply)
		},
	}

	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "reply immediately")
	cmd.Flags().BoolVar(&workspace, "workspace", false, "ask the workspace assistant instead of the knowledge base")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}

// wait blocks for d or until ctx is done
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	done := make(chan struct{})
	stop := assistant.Delay(ctx, d, func() { close(done) })
	defer stop()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
