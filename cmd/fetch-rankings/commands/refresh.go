package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golfr-rankings/internal/archive"
	"golfr-rankings/internal/components/chrono"
	"golfr-rankings/internal/components/telemetry"
	"golfr-rankings/internal/config"
	"golfr-rankings/internal/notify"
	"golfr-rankings/internal/refresh"
	"golfr-rankings/internal/scrapers/owgr"
	"golfr-rankings/lib/restyutil"
)

func httpOutput(dir string) (restyutil.InstrumentOutput, error) {
	if dir == "" {
		return nil, nil
	}
	output, err := restyutil.NewFilesystemOutput(dir)
	if err != nil {
		return nil, fmt.Errorf("create http dump directory: %w", err)
	}
	return output, nil
}

func timeService(cfg config.Config, tel telemetry.API, output restyutil.InstrumentOutput) chrono.TimestampAPI {
	if cfg.TimeService.Kind == config.TimeServiceLocal {
		return chrono.NewStandardClock()
	}
	return chrono.NewWorldTime(
		cfg.TimeService.Url,
		telemetry.NewScopedAPI("chrono", tel),
		output,
	)
}

// runRefresh performs one refresh, everything it opens is closed (and
// telemetry flushed) before it returns.
func runRefresh(ctx context.Context, cfg config.Config, dumpDir string) (refresh.Outcome, error) {
	otel, err := telemetry.SetupOtel(ctx, "fetch-rankings", cfg.Otlp)
	if err != nil {
		return refresh.Outcome{}, fmt.Errorf("setup otel: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		err := otel.Shutdown(ctx)
		if err != nil {
			slog.Warn("failed to flush telemetry", "err", err)
		}
	}()

	tel := telemetry.NewSlogAPI(nil)
	output, err := httpOutput(dumpDir)
	if err != nil {
		return refresh.Outcome{}, err
	}

	client, err := owgr.NewClient(owgr.ClientOptions{
		Url:              cfg.Source.Url,
		UserAgent:        cfg.Source.UserAgent,
		Timeout:          cfg.Source.Timeout(),
		Selectors:        cfg.Source.Selectors,
		CloudflareBypass: cfg.Source.CloudflareBypass,
		Output:           output,
	}, tel)
	if err != nil {
		return refresh.Outcome{}, fmt.Errorf("create owgr client: %w", err)
	}

	deps := refresh.Deps{
		Fetcher: client,
		Time:    timeService(cfg, tel, output),
		Tel:     telemetry.NewScopedAPI("refresh", tel),
	}

	if cfg.Archive.Enabled() {
		store, err := archive.Open(ctx, cfg.Archive)
		if err != nil {
			return refresh.Outcome{}, err
		}
		defer store.Close()
		deps.Archive = store
	}
	if cfg.Notify.Enabled() {
		deps.Notify = notify.NewNotifier(cfg.Notify)
	}

	outcome, err := refresh.Run(ctx, deps, cfg.Output)
	if err != nil {
		return refresh.Outcome{}, err
	}

	slog.Info(
		"wrote rankings",
		"path", cfg.Output,
		"source", outcome.Source,
		"count", len(outcome.Record.Rankings),
		"updated", outcome.Record.Updated,
	)
	if outcome.RunId != "" {
		slog.Info("archived run", "id", outcome.RunId)
	}
	return outcome, nil
}
