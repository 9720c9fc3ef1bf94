package email

import (
	"errors"
	"io"
	"net"
	"net/textproto"
	"syscall"
)

// smtpServiceNotAvailable is the reply a server sends right before closing the channel.
const smtpServiceNotAvailable = 421

// IsConnectionError reports whether err means the transport handle is broken or
// stale, as opposed to a rejection (bad credentials, refused recipient, content).
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		return protoErr.Code == smtpServiceNotAvailable
	}

	// Covers dial failures, timeouts and *url.Error from HTTP based providers.
	var netErr net.Error
	return errors.As(err, &netErr)
}
