package mailer

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyroom/config"
)

func TestImplicitTLS(t *testing.T) {
	tests := []struct {
		name     string
		port     string
		implicit bool
		expected bool
	}{
		{name: "submission port", port: "587", expected: false},
		{name: "smtps port", port: "465", expected: true},
		{name: "forced by config", port: "2465", implicit: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.External.SMTP.Port = tt.port
			cfg.External.SMTP.ImplicitTLS = tt.implicit

			assert.Equal(t, tt.expected, implicitTLS(cfg))
		})
	}
}

func TestTimeout(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, defaultTimeout, timeout(cfg))

	cfg.External.SMTP.TimeoutSeconds = 3
	assert.Equal(t, 3*time.Second, timeout(cfg))
}

// greetingServer answers every connection with a plaintext SMTP greeting.
func greetingServer(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	go func() {
		for {
			conn, acceptErr := listener.Accept()
			if acceptErr != nil {
				return
			}

			_, _ = conn.Write([]byte("220 mail.campus.edu ESMTP ready\r\n"))
			_ = conn.Close()
		}
	}()

	return listener.Addr().String()
}

func TestDialerImplicitTLSRefusesPlaintext(t *testing.T) {
	address := greetingServer(t)

	conn, err := dialer("127.0.0.1", true, time.Second)(context.Background(), "tcp", address)

	assert.Error(t, err)
	assert.Nil(t, conn)
}

func TestDialerSetsSessionDeadline(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	conn, err := dialer("127.0.0.1", false, 200*time.Millisecond)(context.Background(), "tcp", listener.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Read(make([]byte, 1))

	var netErr net.Error
	require.True(t, errors.As(err, &netErr))
	assert.True(t, netErr.Timeout())
}
