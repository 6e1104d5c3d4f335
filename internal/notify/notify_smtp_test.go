package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type fakeSmtp struct {
	host     string
	smtpPort int
	webUrl   string
}

func startFakeSmtp(t *testing.T) fakeSmtp {
	if testing.Short() {
		t.Skip("skipping smtp container in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	// suppress logging
	testcontainers.Logger = log.New(io.Discard, "", 0)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(
		ctx,
		testcontainers.GenericContainerRequest{
			Started: true,
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "haravich/fake-smtp-server",
				ExposedPorts: []string{"1025/tcp", "1080/tcp"},
				WaitingFor: wait.ForAll(
					wait.ForLog("smtp://0.0.0.0:1025"),
					wait.ForListeningPort("1080/tcp"),
				),
			},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		err := container.Terminate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal(err)
	}
	smtpPort, err := container.MappedPort(ctx, "1025/tcp")
	if err != nil {
		t.Fatal(err)
	}
	webPort, err := container.MappedPort(ctx, "1080/tcp")
	if err != nil {
		t.Fatal(err)
	}

	return fakeSmtp{
		host:     host,
		smtpPort: smtpPort.Int(),
		webUrl:   fmt.Sprintf("http://%s:%s", host, webPort.Port()),
	}
}

func TestNotifyFallbackSmtp(t *testing.T) {
	server := startFakeSmtp(t)

	notifier := NewNotifier(Config{
		Smtp: SmtpConfig{
			Server:       server.host,
			Port:         server.smtpPort,
			EmailAddress: "bot@email.com",
			Password:     "default",
		},
		To: []string{"ops@email.com"},
	})

	err := notifier.NotifyFallback(context.Background(), FallbackEvent{
		Reason:    "status",
		Err:       errors.New("unexpected status 503 Service Unavailable"),
		Extracted: 0,
		Updated:   "2025-06-01T14:03:12.532118+00:00",
		Output:    "rankings.json",
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := resty.New().R().Get(server.webUrl + "/messages/1.plain")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 200, res.StatusCode())
	require.Contains(t, res.String(), "Reason: status")
	require.Contains(t, res.String(), "unexpected status 503")
}
