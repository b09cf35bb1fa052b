package protocol

// ResponseHandler consumes the bytes of exactly one server response.
//
// The connection owner feeds a handler chunks in arrival order, with no
// interleaving from other requests: the protocol allows a single request
// in flight per connection. A handler writes its decoded result into a
// holder it was constructed with; the connection never sees the result.
type ResponseHandler interface {
	// Accept consumes the next chunk of response bytes. It returns
	// done=true once the handler has consumed the complete response, or a
	// non-nil error when the bytes cannot be decoded. Either outcome
	// completes the pending request; a decode error leaves the handler's
	// holder at its default value.
	Accept(chunk []byte) (done bool, err error)

	// Disconnected tells the handler its stream ended before Accept
	// reported done. A handler holding partial data decides for itself
	// whether that data is usable or must be discarded.
	Disconnected()
}
