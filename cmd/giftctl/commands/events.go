package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/pkg/events"
	pktNats "gift-recommender-be/pkg/nats"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	eventsURL     string
	eventsSubject string
	eventsDurable string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Tail domain events forwarded to NATS",
	RunE:  runEvents,
}

func init() {
	eventsCmd.Flags().StringVar(&eventsURL, "nats-url", envOr("NATS_URL", "nats://localhost:4222"), "NATS server URL")
	eventsCmd.Flags().StringVar(&eventsSubject, "subject", pktNats.SubjectPrefix+">", "subject filter")
	eventsCmd.Flags().StringVar(&eventsDurable, "durable", "", "durable consumer name (ephemeral when empty)")
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	log := logger.NewConsoleLogger(verbose)
	defer log.Sync()

	sub, err := pktNats.NewSubscriber(eventsURL, log)
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	cancel, err := sub.Subscribe(ctx, eventsSubject, eventsDurable, func(_ context.Context, e events.Event) error {
		payload, err := json.Marshal(e.Payload())
		if err != nil {
			return err
		}
		dimColor.Fprintf(out, "%s ", e.Timestamp().Format("15:04:05"))
		headerColor.Fprintf(out, "%-24s ", e.EventType())
		valueColor.Fprintln(out, string(payload))
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", eventsSubject, err)
	}
	defer cancel()

	okColor.Fprintf(out, "listening on %s\n", eventsSubject)
	<-ctx.Done()
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
