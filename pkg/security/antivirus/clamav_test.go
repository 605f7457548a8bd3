package antivirus_test

import (
	"bufio"
	"context"
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"skillmatch-backend/pkg/security/antivirus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClamd answers one connection per call, recording the streamed bytes.
func fakeClamd(t *testing.T, reply string) (addr string, received chan []byte) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	received = make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		r := bufio.NewReader(conn)

		cmd, err := r.ReadString(0)
		if err != nil {
			return
		}
		if cmd == "zPING\x00" {
			conn.Write([]byte("PONG\x00"))
			return
		}

		var data []byte
		size := make([]byte, 4)
		for {
			if _, err := io.ReadFull(r, size); err != nil {
				return
			}
			n := binary.BigEndian.Uint32(size)
			if n == 0 {
				break
			}
			chunk := make([]byte, n)
			if _, err := io.ReadFull(r, chunk); err != nil {
				return
			}
			data = append(data, chunk...)
		}
		received <- data
		conn.Write([]byte(reply + "\x00"))
	}()
	return ln.Addr().String(), received
}

func TestClamAVScanner(t *testing.T) {
	t.Run("Should stream data and report clean", func(t *testing.T) {
		addr, received := fakeClamd(t, "stream: OK")
		scanner := antivirus.NewClamAVScanner(addr, 2*time.Second)

		payload := make([]byte, 150<<10)
		payload[0] = '%'
		result := scanner.Scan(context.Background(), "cv.pdf", payload)

		require.NoError(t, result.Error)
		assert.False(t, result.Infected)
		assert.Equal(t, "clamav", result.ScannerName)
		assert.Equal(t, payload, <-received)
	})

	t.Run("Should report threat name", func(t *testing.T) {
		addr, _ := fakeClamd(t, "stream: Eicar-Signature FOUND")
		result := antivirus.NewClamAVScanner(addr, 2*time.Second).Scan(context.Background(), "cv.pdf", []byte("x"))

		assert.True(t, result.Infected)
		assert.Equal(t, "Eicar-Signature", result.ThreatName)
	})

	t.Run("Should fail closed when unreachable", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := ln.Addr().String()
		ln.Close()

		result := antivirus.NewClamAVScanner(addr, time.Second).Scan(context.Background(), "cv.pdf", []byte("x"))
		assert.True(t, result.Infected)
		assert.Error(t, result.Error)
	})

	t.Run("Should answer ping", func(t *testing.T) {
		addr, _ := fakeClamd(t, "")
		assert.NoError(t, antivirus.NewClamAVScanner(addr, time.Second).Ping(context.Background()))
	})
}

func TestParseReply(t *testing.T) {
	assert.False(t, antivirus.ParseReply("stream: OK").Infected)

	found := antivirus.ParseReply("stream: Win.Test.EICAR_HDB-1 FOUND")
	assert.True(t, found.Infected)
	assert.Equal(t, "Win.Test.EICAR_HDB-1", found.ThreatName)

	failed := antivirus.ParseReply("stream: INSTREAM size limit exceeded. ERROR")
	assert.True(t, failed.Infected)
	assert.Error(t, failed.Error)

	assert.Error(t, antivirus.ParseReply("garbage").Error)
}
