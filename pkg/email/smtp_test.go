package email

import (
	"context"
	"net"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSMTPServer speaks just enough SMTP for net/smtp's client.
type fakeSMTPServer struct {
	ln net.Listener

	mu          sync.Mutex
	connections int
	messages    []string
	// dropAfterData closes the connection right after a message is accepted.
	dropAfterData bool
}

func newFakeSMTPServer(t *testing.T) *fakeSMTPServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeSMTPServer{ln: ln}
	go s.serve()
	t.Cleanup(func() { ln.Close() })
	return s
}

func (s *fakeSMTPServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.connections++
		s.mu.Unlock()
		go s.handle(conn)
	}
}

func (s *fakeSMTPServer) handle(conn net.Conn) {
	defer conn.Close()
	tp := textproto.NewConn(conn)
	_ = tp.PrintfLine("220 localhost ESMTP fake")

	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		verb := strings.ToUpper(strings.SplitN(line, " ", 2)[0])
		switch verb {
		case "EHLO":
			_ = tp.PrintfLine("250-localhost")
			_ = tp.PrintfLine("250 8BITMIME")
		case "HELO", "NOOP", "RSET", "MAIL", "RCPT":
			_ = tp.PrintfLine("250 OK")
		case "DATA":
			_ = tp.PrintfLine("354 go ahead")
			body, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			s.mu.Lock()
			s.messages = append(s.messages, string(body))
			drop := s.dropAfterData
			s.mu.Unlock()
			_ = tp.PrintfLine("250 queued")
			if drop {
				return
			}
		case "QUIT":
			_ = tp.PrintfLine("221 bye")
			return
		default:
			_ = tp.PrintfLine("502 not implemented")
		}
	}
}

func (s *fakeSMTPServer) stats() (int, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connections, append([]string(nil), s.messages...)
}

func (s *fakeSMTPServer) transport() *SMTPTransport {
	host, port, _ := net.SplitHostPort(s.ln.Addr().String())
	return NewSMTPTransport(SMTPConfig{Host: host, Port: port, Timeout: 2 * time.Second})
}

func testMessage(subject string) *Message {
	return &Message{
		FromName: "Boutique",
		From:     "shop@example.com",
		To:       []string{"shop@example.com"},
		ReplyTo:  "client@example.com",
		Subject:  subject,
		HTML:     "<p>Bonjour</p>",
	}
}

func TestSMTPTransportReusesSession(t *testing.T) {
	server := newFakeSMTPServer(t)
	transport := server.transport()
	defer transport.Close()

	assert.False(t, transport.Ready())

	require.NoError(t, transport.Send(context.Background(), testMessage("first")))
	assert.True(t, transport.Ready())
	require.NoError(t, transport.Send(context.Background(), testMessage("second")))

	connections, messages := server.stats()
	assert.Equal(t, 1, connections)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "Subject: first")
	assert.Contains(t, messages[1], "Subject: second")
	assert.Contains(t, messages[0], "Reply-To: <client@example.com>")
}

func TestSMTPTransportRedialsStaleSession(t *testing.T) {
	server := newFakeSMTPServer(t)
	server.dropAfterData = true
	transport := server.transport()
	defer transport.Close()

	require.NoError(t, transport.Send(context.Background(), testMessage("first")))
	require.NoError(t, transport.Send(context.Background(), testMessage("second")))

	connections, messages := server.stats()
	assert.Equal(t, 2, connections)
	assert.Len(t, messages, 2)
}

func TestSMTPTransportResetRecreatesHandle(t *testing.T) {
	server := newFakeSMTPServer(t)
	transport := server.transport()
	defer transport.Close()

	require.NoError(t, transport.Connect(context.Background()))
	transport.Reset()

	assert.Eventually(t, transport.Ready, 2*time.Second, 10*time.Millisecond)
	connections, _ := server.stats()
	assert.Equal(t, 2, connections)
}

func TestSMTPTransportDialFailureIsConnectionError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, port, _ := net.SplitHostPort(ln.Addr().String())
	ln.Close()

	transport := NewSMTPTransport(SMTPConfig{Host: host, Port: port, Timeout: time.Second})
	err = transport.Send(context.Background(), testMessage("lost"))

	require.Error(t, err)
	assert.True(t, IsConnectionError(err))
	assert.False(t, transport.Ready())
}

func TestSMTPTransportConfigured(t *testing.T) {
	assert.False(t, NewSMTPTransport(SMTPConfig{Host: "smtp.gmail.com"}).Configured())
	assert.True(t, NewSMTPTransport(SMTPConfig{Host: "smtp.gmail.com", Username: "u", Password: "p"}).Configured())
}
