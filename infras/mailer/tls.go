package mailer

import (
	"context"
	"crypto/tls"
	"net"
	"time"
)

func tlsConfig(host string) *tls.Config {
	return &tls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}
}

// dialer opens the SMTP connection and bounds the whole session by timeout.
// With implicit TLS the handshake happens before the server greeting.
func dialer(host string, implicit bool, timeout time.Duration) func(ctx context.Context, network, address string) (net.Conn, error) {
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		netDialer := &net.Dialer{Timeout: timeout}

		var (
			conn net.Conn
			err  error
		)

		if implicit {
			tlsDialer := &tls.Dialer{NetDialer: netDialer, Config: tlsConfig(host)}
			conn, err = tlsDialer.DialContext(ctx, network, address)
		} else {
			conn, err = netDialer.DialContext(ctx, network, address)
		}

		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		if err = conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			_ = conn.Close()

			return nil, err //nolint:wrapcheck
		}

		return conn, nil
	}
}
