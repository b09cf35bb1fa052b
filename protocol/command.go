package protocol

import "fmt"

// Command keywords understood by a Winston wave server.
const (
	CmdVersion  = "VERSION"
	CmdWaveRaw  = "GETWAVERAW"
	CmdHeliRaw  = "GETSCNLHELIRAW"
	CmdRsamRaw  = "GETSCNLRSAMRAW"
	CmdChannels = "GETCHANNELS"
)

// compressFlag renders the wire form of the compression flag. The server
// expects the literal "1" or "0", never a boolean name.
func compressFlag(compress bool) string {
	if compress {
		return "1"
	}
	return "0"
}

// EncodeVersion builds the protocol version request.
func EncodeVersion() string {
	return CmdVersion + "\n"
}

// EncodeWaveRaw builds a raw waveform request for one channel and time
// span. The bounds are J2kSec with six decimal places; Go's fmt always
// renders a '.' decimal separator, so there is no locale to leak in.
func EncodeWaveRaw(scnl Scnl, span TimeSpan, compress bool) string {
	return fmt.Sprintf("%s: GS %s %.6f %.6f %s\n", CmdWaveRaw, scnl.String(" "),
		J2kFromTime(span.Start), J2kFromTime(span.End), compressFlag(compress))
}

// EncodeHeliRaw builds a helicorder (per-interval min/max) request.
func EncodeHeliRaw(scnl Scnl, span TimeSpan, compress bool) string {
	return fmt.Sprintf("%s: GS %s %.6f %.6f %s\n", CmdHeliRaw, scnl.String(" "),
		J2kFromTime(span.Start), J2kFromTime(span.End), compressFlag(compress))
}

// EncodeRsamRaw builds an RSAM envelope request with the given period in
// seconds.
func EncodeRsamRaw(scnl Scnl, span TimeSpan, period int, compress bool) string {
	return fmt.Sprintf("%s: GS %s %.6f %.6f %d %s\n", CmdRsamRaw, scnl.String(" "),
		J2kFromTime(span.Start), J2kFromTime(span.End), period, compressFlag(compress))
}

// EncodeChannels builds the channel menu request, optionally asking the
// server to include instrument metadata.
func EncodeChannels(meta bool) string {
	if meta {
		return CmdChannels + ": GC METADATA\n"
	}
	return CmdChannels + ": GC\n"
}
