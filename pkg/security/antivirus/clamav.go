package antivirus

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// maxChunk is the INSTREAM chunk size; clamd's StreamMaxLength bounds the total.
const maxChunk = 64 << 10

// ClamAVScanner connects to clamd daemon for malware scanning
type ClamAVScanner struct {
	address string        // TCP address (host:port) or Unix socket path
	timeout time.Duration // Connection and scan timeout
	dialer  net.Dialer
}

var _ Scanner = (*ClamAVScanner)(nil)

// NewClamAVScanner creates a ClamAV scanner
// address: TCP "localhost:3310" or Unix socket "/var/run/clamav/clamd.sock"
func NewClamAVScanner(address string, timeout time.Duration) *ClamAVScanner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ClamAVScanner{
		address: address,
		timeout: timeout,
	}
}

func (c *ClamAVScanner) Name() string {
	return "clamav"
}

func (c *ClamAVScanner) network() string {
	if strings.HasPrefix(c.address, "/") {
		return "unix"
	}
	return "tcp"
}

func (c *ClamAVScanner) dial(ctx context.Context) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(ctx, c.network(), c.address)
	if err != nil {
		return nil, err
	}
	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)
	return conn, nil
}

// Ping sends PING and expects PONG.
func (c *ClamAVScanner) Ping(ctx context.Context) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return fmt.Errorf("clamd unreachable: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("zPING\x00")); err != nil {
		return err
	}
	reply, err := readReply(conn)
	if err != nil {
		return err
	}
	if reply != "PONG" {
		return fmt.Errorf("unexpected clamd reply %q", reply)
	}
	return nil
}

// Scan streams data to clamd with the INSTREAM command.
func (c *ClamAVScanner) Scan(ctx context.Context, filename string, data []byte) ScanResult {
	conn, err := c.dial(ctx)
	if err != nil {
		return c.failed(fmt.Errorf("failed to connect to clamd: %w", err))
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("zINSTREAM\x00")); err != nil {
		return c.failed(fmt.Errorf("failed to send command: %w", err))
	}

	// Each chunk is prefixed with its length as a big-endian uint32
	size := make([]byte, 4)
	for start := 0; start < len(data); start += maxChunk {
		end := min(start+maxChunk, len(data))
		binary.BigEndian.PutUint32(size, uint32(end-start))
		if _, err := conn.Write(size); err != nil {
			return c.failed(fmt.Errorf("failed to send chunk size: %w", err))
		}
		if _, err := conn.Write(data[start:end]); err != nil {
			return c.failed(fmt.Errorf("failed to send %s: %w", filename, err))
		}
	}

	// Zero-length chunk ends the stream
	if _, err := conn.Write([]byte{0, 0, 0, 0}); err != nil {
		return c.failed(fmt.Errorf("failed to send end marker: %w", err))
	}

	reply, err := readReply(conn)
	if err != nil {
		return c.failed(fmt.Errorf("failed to read response: %w", err))
	}
	result := ParseReply(reply)
	result.ScannerName = c.Name()
	return result
}

func (c *ClamAVScanner) failed(err error) ScanResult {
	return ScanResult{Infected: true, ScannerName: c.Name(), Error: err}
}

// readReply reads one null-terminated clamd reply.
func readReply(r io.Reader) (string, error) {
	buf := make([]byte, 0, 128)
	chunk := make([]byte, 128)
	for {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if i := strings.IndexByte(string(buf), 0); i >= 0 {
			return strings.TrimSpace(string(buf[:i])), nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				return strings.TrimSpace(string(buf)), nil
			}
			return "", err
		}
		if len(buf) > 4096 {
			return "", errors.New("clamd reply too long")
		}
	}
}

// ParseReply interprets an INSTREAM reply:
//
//	stream: OK
//	stream: Eicar-Signature FOUND
//	stream: <message> ERROR
func ParseReply(reply string) ScanResult {
	body := reply
	if _, after, ok := strings.Cut(reply, ":"); ok {
		body = strings.TrimSpace(after)
	}

	switch {
	case body == "OK":
		return ScanResult{}
	case strings.HasSuffix(body, " FOUND"):
		return ScanResult{Infected: true, ThreatName: strings.TrimSuffix(body, " FOUND")}
	case strings.HasSuffix(body, " ERROR"):
		return ScanResult{Infected: true, Error: fmt.Errorf("scan error: %s", body)}
	default:
		return ScanResult{Infected: true, Error: fmt.Errorf("unexpected clamd reply %q", reply)}
	}
}
