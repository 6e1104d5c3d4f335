package chrono

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golfr-rankings/internal/components/telemetry"

	"github.com/stretchr/testify/require"
)

func TestStandardClock(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatal(err)
	}
	clock := StandardClock{now: func() time.Time {
		return time.Date(2025, time.June, 1, 7, 3, 12, 532118000, la)
	}}

	stamp, err := clock.Timestamp(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "2025-06-01T14:03:12.532118+00:00", stamp)

	_, err = time.Parse(time.RFC3339, stamp)
	require.NoError(t, err)
}

func TestWorldTime(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		expected string
		err      error
	}{
		{
			name:     "ok",
			status:   http.StatusOK,
			body:     `{"abbreviation":"UTC","datetime":"2025-06-01T14:03:12.532118+00:00","timezone":"Etc/UTC"}`,
			expected: "2025-06-01T14:03:12.532118+00:00",
		},
		{
			name:   "missing datetime",
			status: http.StatusOK,
			body:   `{"timezone":"Etc/UTC"}`,
			err:    ErrMissingDatetime,
		},
		{
			name:   "bad status",
			status: http.StatusServiceUnavailable,
			body:   `{"error":"unavailable"}`,
		},
		{
			name:   "not json",
			status: http.StatusOK,
			body:   `<html>maintenance</html>`,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("content-type", "application/json")
				w.WriteHeader(test.status)
				w.Write([]byte(test.body))
			}))
			defer server.Close()

			recorder := &telemetry.Recorder{}
			stamp, err := NewWorldTime(server.URL, recorder, nil).Timestamp(context.Background())
			if test.expected != "" {
				require.NoError(t, err)
				require.Equal(t, test.expected, stamp)
				require.Empty(t, recorder.Reports(telemetry.ReportBroken))
				return
			}

			require.Error(t, err)
			if test.err != nil {
				require.True(t, errors.Is(err, test.err))
			}
			require.Equal(t, []string{report_worldtime_timestamp}, recorder.Ids(telemetry.ReportBroken))
		})
	}
}
