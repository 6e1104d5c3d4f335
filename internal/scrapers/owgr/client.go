package owgr

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"golfr-rankings/internal/assert"
	"golfr-rankings/internal/components/telemetry"
	"golfr-rankings/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	DefaultUrl       = "https://www.owgr.com/ranking"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultTimeout   = time.Second * 10
)

const report_client_fetch = "client.fetch"

var tracer = otel.Tracer("golfr.scrapers.owgr")

type ClientOptions struct {
	Url       string
	UserAgent string
	// Timeout covers connecting and reading the whole response.
	Timeout   time.Duration
	Selectors Selectors
	// CloudflareBypass wraps the transport to look like a real browser
	// TLS/header fingerprint.
	CloudflareBypass bool
	// Output receives request/response dumps, it may be nil.
	Output restyutil.InstrumentOutput
}

// Client fetches the OWGR rankings page. It makes exactly one request per
// Fetch and never retries.
type Client struct {
	url       string
	selectors Selectors
	http      *resty.Client
	tel       telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) (Client, error) {
	assert.NotNil(tel)
	assert.NotEmptyStr(opts.Url)

	err := opts.Selectors.Validate()
	if err != nil {
		return Client{}, err
	}

	tel = telemetry.NewScopedAPI("owgr", tel)

	httpClient := resty.New()
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	httpClient.SetHeader("user-agent", userAgent)
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient.SetTimeout(timeout)

	telemetry.InstrumentResty(httpClient, tel, opts.Output)

	return Client{
		url:       opts.Url,
		selectors: opts.Selectors,
		http:      httpClient,
		tel:       tel,
	}, nil
}

// Fetch requests the rankings page and parses it. Failures are never
// returned as errors, they are described by the Result.
func (c Client) Fetch(ctx context.Context) Result {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	result := c.fetch(ctx)

	span.SetAttributes(
		attribute.Int("owgr.extracted", result.Extracted),
		attribute.String("owgr.reason", string(result.Reason)),
	)
	if !result.Accepted() {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, string(result.Reason))
	}
	return result
}

func (c Client) fetch(ctx context.Context) Result {
	c.tel.ReportDebug("fetch rankings", c.url)

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.url)
	if err != nil {
		c.tel.ReportBroken(report_client_fetch, fmt.Errorf("request: %w", err), c.url)
		return failed(ReasonRequest, err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		err := fmt.Errorf("unexpected status %s", res.Status())
		c.tel.ReportBroken(report_client_fetch, err, c.url)
		return failed(ReasonStatus, err)
	}

	result := Parse(bytes.NewReader(res.Body()), c.selectors, c.tel)
	switch result.Reason {
	case ReasonNone:
		c.tel.ReportDebug("fetched rankings", result.Extracted)
	case ReasonInsufficientRows:
		c.tel.ReportWarning(report_client_fetch, result.Err, c.url)
	default:
		c.tel.ReportBroken(report_client_fetch, result.Err, c.url)
	}
	return result
}
