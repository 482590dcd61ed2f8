package protocol

import (
	"bufio"
	"encoding/binary"
	"net"
	"reflect"
	"testing"
	"time"
)

// testApiKey is an API key slot no production package registers into,
// reserved here so this test can drive WriteRequest/ReadResponse/RoundTrip
// against a request/response pair of its own without touching the real
// registry.
const testApiKey ApiKey = 45

type fakeRequest struct {
	Name string `kafka:"min=v0,max=v1"`
}

func (r *fakeRequest) ApiKey() ApiKey { return testApiKey }

type fakeResponse struct {
	ErrorCode int16  `kafka:"min=v0,max=v1"`
	Echo      string `kafka:"min=v0,max=v1"`
	Count     int32  `kafka:"min=v1,max=v1"`
}

func (r *fakeResponse) ApiKey() ApiKey { return testApiKey }

func init() {
	Register(&fakeRequest{}, &fakeResponse{})
}

type sliceWriter struct{ buf *[]byte }

func (w *sliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}

// serveOneRequest reads exactly one request frame off conn, decodes its
// header (discarding the body), and writes back a response frame built
// from resp, echoing the correlation id the request carried.
func serveOneRequest(conn net.Conn, apiVersion int16, resp Message) error {
	r := bufio.NewReader(conn)

	size, err := readMessageSize(r)
	if err != nil {
		return err
	}
	d := &decoder{reader: r, remain: int(size)}
	d.readInt16() // apiKey
	d.readInt16() // apiVersion
	correlationID := d.readInt32()
	d.readString() // clientID
	d.discardAll()
	if d.err != nil {
		return d.err
	}

	t, err := lookupApiType(resp.ApiKey())
	if err != nil {
		return err
	}
	res := &t.responses[apiVersion-t.minVersion()]

	var body []byte
	e := &encoder{writer: &sliceWriter{buf: &body}}
	e.writeInt32(correlationID)
	res.encode(e, reflect.ValueOf(resp).Elem())
	if e.err != nil {
		return e.err
	}

	var sizeBuf [4]byte
	binary.BigEndian.PutUint32(sizeBuf[:], uint32(len(body)))
	if _, err := conn.Write(sizeBuf[:]); err != nil {
		return err
	}
	_, err = conn.Write(body)
	return err
}

func TestRoundTripOverPipe(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	want := &fakeResponse{ErrorCode: 0, Echo: "hello", Count: 3}

	serverDone := make(chan error, 1)
	go func() { serverDone <- serveOneRequest(serverConn, 1, want) }()

	clientConn.SetDeadline(time.Now().Add(2 * time.Second))
	rw := bufio.NewReadWriter(bufio.NewReader(clientConn), bufio.NewWriter(clientConn))

	res, err := RoundTrip(rw, 1, 7, "test-client", &fakeRequest{Name: "req"})
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	if err := <-serverDone; err != nil {
		t.Fatalf("server: %v", err)
	}

	got, ok := res.(*fakeResponse)
	if !ok {
		t.Fatalf("unexpected response type %T", res)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("response mismatch: got %+v, want %+v", got, want)
	}
}

func TestRoundTripDetectsCorrelationIDMismatch(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	go func() {
		r := bufio.NewReader(serverConn)
		size, _ := readMessageSize(r)
		d := &decoder{reader: r, remain: int(size)}
		d.discardAll()

		var body []byte
		e := &encoder{writer: &sliceWriter{buf: &body}}
		e.writeInt32(999) // wrong correlation id
		t, _ := lookupApiType(testApiKey)
		res := &t.responses[1-t.minVersion()]
		res.encode(e, reflect.ValueOf(&fakeResponse{}).Elem())

		var sizeBuf [4]byte
		binary.BigEndian.PutUint32(sizeBuf[:], uint32(len(body)))
		serverConn.Write(sizeBuf[:])
		serverConn.Write(body)
	}()

	clientConn.SetDeadline(time.Now().Add(2 * time.Second))
	rw := bufio.NewReadWriter(bufio.NewReader(clientConn), bufio.NewWriter(clientConn))

	_, err := RoundTrip(rw, 1, 7, "test-client", &fakeRequest{Name: "req"})
	if err == nil {
		t.Fatal("expected correlation id mismatch error, got nil")
	}
}
