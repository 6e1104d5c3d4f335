package chrono

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golfr-rankings/internal/assert"
	"golfr-rankings/internal/components/telemetry"
	"golfr-rankings/lib/restyutil"

	"github.com/go-resty/resty/v2"
)

const DefaultWorldTimeUrl = "http://worldtimeapi.org/api/timezone/Etc/UTC"

const report_worldtime_timestamp = "worldtime.timestamp"

var ErrMissingDatetime = errors.New("time service response has no datetime")

// WorldTime is an implementation of TimestampAPI backed by a worldtimeapi.org
// style JSON endpoint. The `datetime` field is returned verbatim.
type WorldTime struct {
	url  string
	http *resty.Client
	tel  telemetry.API
}

// NewWorldTime creates a WorldTime client. There is no request timeout,
// `output` may be nil.
func NewWorldTime(url string, tel telemetry.API, output restyutil.InstrumentOutput) WorldTime {
	assert.NotEmptyStr(url)
	assert.NotNil(tel)

	client := resty.New()
	telemetry.InstrumentResty(client, tel, output)

	return WorldTime{
		url:  url,
		http: client,
		tel:  tel,
	}
}

type worldTimeResponse struct {
	Datetime string `json:"datetime"`
}

func (w WorldTime) Timestamp(ctx context.Context) (string, error) {
	res, err := w.http.R().
		SetContext(ctx).
		SetHeader("accept", "application/json").
		Get(w.url)
	if err != nil {
		w.tel.ReportBroken(report_worldtime_timestamp, fmt.Errorf("fetch: %w", err))
		return "", fmt.Errorf("time service: %w", err)
	}
	if res.IsError() {
		err := fmt.Errorf("time service: unexpected status %s", res.Status())
		w.tel.ReportBroken(report_worldtime_timestamp, err)
		return "", err
	}

	var body worldTimeResponse
	err = json.Unmarshal(res.Body(), &body)
	if err != nil {
		w.tel.ReportBroken(report_worldtime_timestamp, fmt.Errorf("unmarshal: %w", err))
		return "", fmt.Errorf("time service: %w", err)
	}
	if body.Datetime == "" {
		w.tel.ReportBroken(report_worldtime_timestamp, ErrMissingDatetime)
		return "", ErrMissingDatetime
	}

	w.tel.ReportDebug("timestamp", body.Datetime)
	return body.Datetime, nil
}
