// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package wssink sends pulse markers over a websocket, one single-byte binary message per marker.
package wssink

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/xmidt-org/pulse"
)

// DefaultCloseTimeout bounds how long Close waits to deliver the close frame.
const DefaultCloseTimeout = time.Second

// Sender writes markers to a websocket connection.  Gorilla connections support only one
// concurrent writer, so sends are serialized.
type Sender struct {
	lock sync.Mutex
	conn *websocket.Conn
}

var _ pulse.Sender = (*Sender)(nil)

// New creates a Sender over an established connection.  The Sender takes ownership of the connection.
func New(conn *websocket.Conn) *Sender {
	return &Sender{conn: conn}
}

// Dial connects to the given ws:// or wss:// URL.
func Dial(ctx context.Context, url string, header http.Header) (*Sender, error) {
	conn, response, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		if response != nil {
			return nil, fmt.Errorf("websocket dial %s failed with status %d: %w", url, response.StatusCode, err)
		}

		return nil, fmt.Errorf("websocket dial %s: %w", url, err)
	}

	return New(conn), nil
}

// Send writes a single binary message containing the marker's wire byte.  The context's
// deadline, if any, becomes the write deadline.
func (s *Sender) Send(ctx context.Context, l pulse.Level) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	deadline, _ := ctx.Deadline()
	if err := s.conn.SetWriteDeadline(deadline); err != nil {
		return translate(err)
	}

	return translate(s.conn.WriteMessage(websocket.BinaryMessage, []byte{l.Byte()}))
}

// Close sends a normal closure frame, then closes the connection.  A failure to deliver the
// closure frame is returned along with any error from closing the connection.  A closure frame
// that was already sent is not an error.
func (s *Sender) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	err := s.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(DefaultCloseTimeout),
	)

	if errors.Is(err, websocket.ErrCloseSent) {
		err = nil
	}

	return errors.Join(err, s.conn.Close())
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var ce *websocket.CloseError
	if errors.Is(err, websocket.ErrCloseSent) || errors.Is(err, net.ErrClosed) || errors.As(err, &ce) {
		return fmt.Errorf("%w: %w", pulse.ErrClosed, err)
	}

	return err
}
