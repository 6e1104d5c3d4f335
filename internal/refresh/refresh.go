package refresh

import (
	"context"
	"fmt"

	"golfr-rankings/internal/archive"
	"golfr-rankings/internal/assert"
	"golfr-rankings/internal/components/chrono"
	"golfr-rankings/internal/components/telemetry"
	"golfr-rankings/internal/notify"
	"golfr-rankings/internal/rankings"
	"golfr-rankings/internal/scrapers/owgr"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	report_refresh_archive = "refresh.archive"
	report_refresh_notify  = "refresh.notify"
)

var tracer = otel.Tracer("golfr.refresh")
var meter = otel.Meter("golfr.refresh")
var extractedGauge = newExtractedGauge()

func newExtractedGauge() metric.Int64Gauge {
	gauge, err := meter.Int64Gauge(
		"rankings.extracted",
		metric.WithDescription("Player names extracted from the rankings page."),
	)
	if err != nil {
		otel.Handle(err)
		return noop.Int64Gauge{}
	}
	return gauge
}

type Fetcher interface {
	Fetch(ctx context.Context) owgr.Result
}

type Archiver interface {
	Append(ctx context.Context, entry archive.Entry) (string, error)
}

type Notifier interface {
	NotifyFallback(ctx context.Context, event notify.FallbackEvent) error
}

// Deps are the components a refresh uses, Archive and Notify may be nil.
type Deps struct {
	Fetcher Fetcher
	Time    chrono.TimestampAPI
	Tel     telemetry.API
	Archive Archiver
	Notify  Notifier
}

type Outcome struct {
	Record rankings.Record
	Source rankings.Source
	Fetch  owgr.Result
	RunId  string
}

// Resolve fetches the live rankings and falls back to the embedded list
// when the fetch is not accepted.
func Resolve(ctx context.Context, fetcher Fetcher, tel telemetry.API) (rankings.List, rankings.Source, owgr.Result) {
	result := fetcher.Fetch(ctx)
	extractedGauge.Record(ctx, int64(result.Extracted))

	if result.Accepted() {
		tel.ReportDebug("using fetched rankings", len(result.Names))
		return result.Names, rankings.SourceFetched, result
	}

	tel.ReportWarning(
		"refresh.resolve",
		fmt.Errorf("using fallback rankings: %s: %w", result.Reason, result.Err),
	)
	return rankings.Fallback(), rankings.SourceFallback, result
}

// Run resolves the rankings, stamps them and writes them to `output`.
// Only timestamp and write failures are returned, archive and alert
// failures are reported but do not fail the run.
func Run(ctx context.Context, deps Deps, output string) (Outcome, error) {
	assert.NotNil(deps.Fetcher)
	assert.NotNil(deps.Time)
	assert.NotNil(deps.Tel)
	assert.NotEmptyStr(output)

	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	list, source, result := Resolve(ctx, deps.Fetcher, deps.Tel)
	span.SetAttributes(attribute.String("rankings.source", string(source)))

	updated, err := deps.Time.Timestamp(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to get timestamp")
		return Outcome{}, fmt.Errorf("get timestamp: %w", err)
	}

	record, err := rankings.NewRecord(updated, list)
	if err != nil {
		return Outcome{}, err
	}
	err = rankings.WriteFile(output, record)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write rankings")
		return Outcome{}, err
	}

	outcome := Outcome{
		Record: record,
		Source: source,
		Fetch:  result,
	}

	if deps.Archive != nil {
		id, err := deps.Archive.Append(ctx, archive.Entry{
			Updated:  record.Updated,
			Source:   string(source),
			Reason:   string(result.Reason),
			Rankings: record.Rankings,
		})
		if err != nil {
			deps.Tel.ReportBroken(report_refresh_archive, err)
		} else {
			outcome.RunId = id
		}
	}

	if deps.Notify != nil && source == rankings.SourceFallback {
		err := deps.Notify.NotifyFallback(ctx, notify.FallbackEvent{
			Reason:    string(result.Reason),
			Err:       result.Err,
			Extracted: result.Extracted,
			Updated:   record.Updated,
			Output:    output,
		})
		if err != nil {
			deps.Tel.ReportBroken(report_refresh_notify, err)
		}
	}

	return outcome, nil
}
