package winstontest

import (
	"fmt"

	"github.com/volcanolab/wws/data"
	"github.com/volcanolab/wws/protocol"
)

// Canned wire responses in the shapes a real Winston writes.

func VersionResponse(version int) []byte {
	return []byte(fmt.Sprintf("PROTOCOL_VERSION: %d\n", version))
}

func WaveResponse(w *data.Wave, compress bool) []byte {
	return rawResponse(protocol.CmdWaveRaw, data.EncodeWave(w), compress)
}

func HeliResponse(h *data.Helicorder, compress bool) []byte {
	rows, cols, values := h.ToMatrix()
	return rawResponse(protocol.CmdHeliRaw, protocol.EncodeDoubleMatrix(rows, cols, values), compress)
}

func RsamResponse(r *data.Rsam, compress bool) []byte {
	rows, cols, values := r.ToMatrix()
	return rawResponse(protocol.CmdRsamRaw, protocol.EncodeDoubleMatrix(rows, cols, values), compress)
}

func ChannelsResponse(channels []data.Channel) []byte {
	out := []byte(fmt.Sprintf("%s: %d\n", protocol.CmdChannels, len(channels)))
	for _, channel := range channels {
		out = append(out, channel.String()...)
		out = append(out, '\n')
	}
	return out
}

// NoDataResponse is the header a server writes when it holds nothing for
// the requested span.
func NoDataResponse(keyword string) []byte {
	return []byte(fmt.Sprintf("%s: GS 0\n", keyword))
}

func rawResponse(keyword string, payload []byte, compress bool) []byte {
	if compress {
		payload = protocol.Deflate(payload)
	}

	out := []byte(fmt.Sprintf("%s: GS %d\n", keyword, len(payload)))
	return append(out, payload...)
}
