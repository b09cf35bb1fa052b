// Package client is a client for the Winston wave server protocol. It
// pulls raw waveforms, helicorder extrema, RSAM envelopes and the
// channel menu from a remote server over a single TCP connection.
//
// Calls are synchronous: each one dials the server, issues one command,
// blocks until the response handler finishes or the connection faults,
// and closes the connection. Retrieval is best effort by protocol
// contract: any network failure surfaces as an empty-valued result, not
// an error.
//
// A Client serializes nothing; concurrent calls on one instance are not
// supported. Give each worker its own Client instead.
package client

import (
	"context"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/volcanolab/wws/data"
	"github.com/volcanolab/wws/handler"
	"github.com/volcanolab/wws/protocol"
)

type Options struct {
	// Server is the remote Winston host.
	Server string

	// Port is the remote Winston port.
	Port int

	// IdleTimeout bounds connect time and the gap between byte transfers
	// on an open connection. Defaults to DefaultIdleTimeout (30s).
	IdleTimeout time.Duration

	Log *zap.Logger
}

type Client struct {
	conn *conn
	log  *zap.Logger
}

func New(options Options) *Client {
	if options.IdleTimeout <= 0 {
		options.IdleTimeout = DefaultIdleTimeout
	}
	if options.Log == nil {
		options.Log = zap.NewNop()
	}

	return &Client{
		conn: newConn(options.Server, options.Port, options.IdleTimeout, options.Log.Named("conn")),
		log:  options.Log,
	}
}

// Close tears down any connection left behind by an interrupted call.
// Completed calls have already closed theirs; calling Close again is a
// no-op.
func (c *Client) Close() error {
	return c.conn.close()
}

// send issues one command and blocks until its handler completes, the
// connection faults, or ctx is cancelled. On connection failure the
// handler's holder keeps its default value and the caller observes an
// empty result. The connection is closed on every exit path.
func (c *Client) send(ctx context.Context, command string, h protocol.ResponseHandler) {
	defer func() {
		if err := c.conn.close(); err != nil {
			c.log.Debug("Close failed", zap.Error(err))
		}
	}()

	if err := c.conn.ensureConnected(ctx); err != nil {
		return
	}

	trimmed := strings.TrimSuffix(command, "\n")
	c.log.Debug("Sending", zap.String("command", trimmed))

	req := c.conn.bind(h)

	if err := c.conn.write(command); err != nil {
		c.conn.unbind(req)
		c.log.Error("Write failed", zap.String("command", trimmed), zap.Error(err))
		return
	}

	select {
	case <-req.done:
		if req.err != nil {
			c.log.Warn("Request failed", zap.String("command", trimmed), zap.Error(req.err))
		} else {
			c.log.Debug("Completed", zap.String("command", trimmed))
		}

	case <-ctx.Done():
		// The deferred close faults the read loop, which completes the
		// slot; the caller's cancellation is theirs to observe.
		c.log.Debug("Cancelled", zap.String("command", trimmed))
	}
}

// GetProtocolVersion asks the remote server which protocol version it
// speaks. An unreachable server reports version 0.
func (c *Client) GetProtocolVersion(ctx context.Context) int {
	var version int
	c.send(ctx, protocol.EncodeVersion(), handler.NewVersion(&version))
	return version
}

// GetWave fetches raw waveform samples for one channel and time span.
// The result is empty when the server has no data or cannot be reached.
func (c *Client) GetWave(ctx context.Context, scnl protocol.Scnl, span protocol.TimeSpan, compress bool) *data.Wave {
	wave := &data.Wave{}
	c.send(ctx, protocol.EncodeWaveRaw(scnl, span, compress), handler.NewWave(wave, compress))
	return wave
}

// GetRawData fetches a waveform with the location defaulting to the
// wildcard marker and compression on.
//
// Deprecated: use GetWave.
func (c *Client) GetRawData(ctx context.Context, station, component, network string, start, end time.Time) *data.Wave {
	return c.GetRawDataAt(ctx, station, component, network, "", start, end)
}

// GetRawDataAt fetches a waveform for an explicit location with
// compression on.
//
// Deprecated: use GetWave.
func (c *Client) GetRawDataAt(ctx context.Context, station, component, network, location string, start, end time.Time) *data.Wave {
	scnl := protocol.NewScnl(station, component, network, location)
	return c.GetWave(ctx, scnl, protocol.NewTimeSpan(start, end), true)
}

// GetHelicorder fetches per-interval min/max pairs for one channel.
func (c *Client) GetHelicorder(ctx context.Context, scnl protocol.Scnl, span protocol.TimeSpan, compress bool) *data.Helicorder {
	heli := &data.Helicorder{}
	c.send(ctx, protocol.EncodeHeliRaw(scnl, span, compress), handler.NewHeli(heli, compress))
	return heli
}

// GetRsam fetches an RSAM envelope with the given period in seconds.
func (c *Client) GetRsam(ctx context.Context, scnl protocol.Scnl, span protocol.TimeSpan, period int, compress bool) *data.Rsam {
	rsam := &data.Rsam{}
	c.send(ctx, protocol.EncodeRsamRaw(scnl, span, period, compress), handler.NewRsam(rsam, compress))
	return rsam
}

// GetChannels fetches the server's channel menu.
func (c *Client) GetChannels(ctx context.Context) []data.Channel {
	return c.getChannels(ctx, false)
}

// GetChannelsWithMetadata fetches the channel menu including instrument
// metadata.
func (c *Client) GetChannelsWithMetadata(ctx context.Context) []data.Channel {
	return c.getChannels(ctx, true)
}

func (c *Client) getChannels(ctx context.Context, meta bool) []data.Channel {
	channels := []data.Channel{}
	c.send(ctx, protocol.EncodeChannels(meta), handler.NewChannels(&channels))
	return channels
}

// SendRaw sends a hand-written command and streams whatever comes back
// to w until the server closes the connection or the idle timeout fires.
func (c *Client) SendRaw(ctx context.Context, command string, w io.Writer) {
	c.send(ctx, command+"\n", handler.NewStdout(w))
}
