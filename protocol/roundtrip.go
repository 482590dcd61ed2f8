package protocol

import (
	"bufio"
	"fmt"
)

// RoundTrip sends a request to a kafka broker and returns the response. The
// caller is expected to be the only user of rw for the duration of the call;
// concurrent multiplexing over a shared connection is the caller's job (see
// broker.tcpConnection, which calls this with one request in flight at a
// time under its own mutex).
func RoundTrip(rw *bufio.ReadWriter, apiVersion int16, correlationID int32, clientID string, msg Message) (Message, error) {
	if err := WriteRequest(rw.Writer, apiVersion, correlationID, clientID, msg); err != nil {
		return nil, err
	}
	if err := rw.Writer.Flush(); err != nil {
		return nil, err
	}
	id, res, err := ReadResponse(rw.Reader, msg.ApiKey(), apiVersion)
	if err != nil {
		return nil, err
	}
	if id != correlationID {
		return nil, fmt.Errorf("protocol: correlation id mismatch (expected=%d, found=%d)", correlationID, id)
	}
	return res, nil
}
