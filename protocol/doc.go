package protocol

// This package implements the client side of the wire protocol spoken by
// a Winston wave server (WWS).
//
// The protocol is line oriented and strictly request/response: the client
// sends a single ASCII command terminated by one LF, then reads the
// response for that command. There is no pipelining. A connection carries
// at most one outstanding request, and in this client each facade call
// opens its own connection and closes it when the response is done.
//
// === Commands
//
//   VERSION\n
//   GETWAVERAW: GS <STA> <CHA> <NET> <LOC> <start> <end> <0|1>\n
//   GETSCNLHELIRAW: GS <STA> <CHA> <NET> <LOC> <start> <end> <0|1>\n
//   GETSCNLRSAMRAW: GS <STA> <CHA> <NET> <LOC> <start> <end> <period> <0|1>\n
//   GETCHANNELS: GC[ METADATA]\n
//
// `<start>` and `<end>` are J2kSec, seconds relative to
// 2000-01-01T12:00:00Z, rendered with six decimal places and a '.'
// decimal separator. The trailing flag asks the server to zlib-compress
// the payload and must be the literal "1" or "0".
//
// The trailing LF is a hard protocol requirement. Several responses are
// themselves newline-delimited, so the framing has to stay unambiguous.
//
// === Responses
//
//   VERSION        -> "PROTOCOL_VERSION: <n>\n"
//   GETWAVERAW     -> "GETWAVERAW: GS <length>\n" + <length> payload bytes
//   GETSCNLHELIRAW -> "GETSCNLHELIRAW: GS <length>\n" + <length> bytes
//   GETSCNLRSAMRAW -> "GETSCNLRSAMRAW: GS <length>\n" + <length> bytes
//   GETCHANNELS    -> "GETCHANNELS: <count>\n" + <count> menu lines
//
// A `<length>` of zero or less means the server has no data for the
// request; the client reports an empty result, not an error.
//
// Binary payloads are big-endian. The waveform payload is three float64
// header fields (start time, sample rate, registration offset) followed
// by int32 samples. Helicorder and RSAM payloads are double matrices:
// two int32 dimensions followed by rows*cols float64 values. When the
// request asked for compression, the payload is a zlib stream wrapping
// the same bytes.
