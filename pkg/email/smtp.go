package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"sync"
	"time"

	"form-relay-backend/pkg/logger"
)

// SMTPConfig describes the mailbox used to relay notifications.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPTransport keeps one authenticated SMTP session open across requests.
// *smtp.Client is not safe for concurrent use, so every use of the session
// happens under mu.
type SMTPTransport struct {
	cfg SMTPConfig

	mu     sync.Mutex
	conn   net.Conn
	client *smtp.Client
}

func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTPTransport{cfg: cfg}
}

func (t *SMTPTransport) Name() string { return "smtp" }

func (t *SMTPTransport) Configured() bool {
	return t.cfg.Host != "" && t.cfg.Username != "" && t.cfg.Password != ""
}

func (t *SMTPTransport) Ready() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.client != nil
}

// Connect opens the session eagerly; Send does it lazily otherwise.
func (t *SMTPTransport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := t.session(ctx)
	return err
}

// Send performs one MAIL/RCPT/DATA transaction on the shared session.
func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	raw, err := buildMIME(msg, time.Now())
	if err != nil {
		return fmt.Errorf("smtp: failed to build message: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	client, err := t.session(ctx)
	if err != nil {
		return err
	}
	_ = t.conn.SetDeadline(time.Now().Add(t.cfg.Timeout))

	if err := t.transaction(client, msg, raw); err != nil {
		// Leave the session clean for the next message; a dead connection
		// fails here too and is handled by the caller's reset.
		_ = client.Reset()
		return err
	}
	return nil
}

func (t *SMTPTransport) transaction(client *smtp.Client, msg *Message, raw []byte) error {
	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("smtp: MAIL FROM: %w", err)
	}
	for _, rcpt := range msg.To {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp: RCPT TO %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp: DATA: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("smtp: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp: end of data: %w", err)
	}
	return nil
}

// Reset drops the current session and redials in the background. Redialing
// twice is harmless: the later session simply replaces the earlier one.
func (t *SMTPTransport) Reset() {
	t.mu.Lock()
	t.closeLocked()
	t.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.cfg.Timeout)
		defer cancel()
		if err := t.Connect(ctx); err != nil {
			logger.Log.Warn("SMTP reconnect failed, will retry on next send", "error", err)
			return
		}
		logger.Log.Info("SMTP session recreated", "host", t.cfg.Host)
	}()
}

// Close ends the session politely on shutdown.
func (t *SMTPTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.client == nil {
		return nil
	}
	err := t.client.Quit()
	t.closeLocked()
	return err
}

// session returns the live client, probing a reused session with NOOP and
// redialing when the server has silently dropped it. Caller holds mu.
func (t *SMTPTransport) session(ctx context.Context) (*smtp.Client, error) {
	if t.client != nil {
		_ = t.conn.SetDeadline(time.Now().Add(t.cfg.Timeout))
		if err := t.client.Noop(); err == nil {
			return t.client, nil
		}
		t.closeLocked()
	}

	conn, client, err := t.dial(ctx)
	if err != nil {
		return nil, err
	}
	t.conn = conn
	t.client = client
	return client, nil
}

func (t *SMTPTransport) dial(ctx context.Context) (net.Conn, *smtp.Client, error) {
	addr := net.JoinHostPort(t.cfg.Host, t.cfg.Port)
	tlsConfig := &tls.Config{ServerName: t.cfg.Host, MinVersion: tls.VersionTLS12}

	var (
		conn net.Conn
		err  error
	)
	dialer := &net.Dialer{Timeout: t.cfg.Timeout}
	if t.cfg.Port == "465" {
		// Implicit TLS (SMTPS)
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsConfig}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("smtp: dial %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Now().Add(t.cfg.Timeout))

	client, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("smtp: greeting: %w", err)
	}

	if _, isTLS := conn.(*tls.Conn); !isTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				client.Close()
				return nil, nil, fmt.Errorf("smtp: starttls: %w", err)
			}
		}
	}

	if t.cfg.Username != "" {
		auth := smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
		if err := client.Auth(auth); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("smtp: auth: %w", err)
		}
	}

	return conn, client, nil
}

func (t *SMTPTransport) closeLocked() {
	if t.client != nil {
		_ = t.client.Close()
	}
	t.client = nil
	t.conn = nil
}
