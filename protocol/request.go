package protocol

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"reflect"
)

// WriteRequest writes a full request frame (size prefix, request header,
// encoded body) for msg at apiVersion to w.
func WriteRequest(w io.Writer, apiVersion int16, correlationID int32, clientID string, msg Message) error {
	apiKey := msg.ApiKey()
	t, err := lookupApiType(apiKey)
	if err != nil {
		return err
	}

	minVersion, maxVersion := t.minVersion(), t.maxVersion()
	if apiVersion < minVersion || apiVersion > maxVersion {
		return fmt.Errorf("protocol: unsupported %s request version: v%d not in range v%d-v%d",
			apiKey, apiVersion, minVersion, maxVersion)
	}

	r := &t.requests[apiVersion-minVersion]

	var body bytes.Buffer
	e := &encoder{writer: &body}
	e.writeInt16(int16(apiKey))
	e.writeInt16(apiVersion)
	e.writeInt32(correlationID)
	e.writeNullString(clientID)
	r.encode(e, reflect.ValueOf(msg).Elem())
	if e.err != nil {
		return e.err
	}

	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(body.Len()))
	if _, err := w.Write(size[:]); err != nil {
		return err
	}
	_, err = w.Write(body.Bytes())
	return err
}

// ReadResponse reads one response frame for apiKey/apiVersion from r.
func ReadResponse(r *bufio.Reader, apiKey ApiKey, apiVersion int16) (correlationID int32, msg Message, err error) {
	t, err := lookupApiType(apiKey)
	if err != nil {
		return 0, nil, err
	}

	minVersion, maxVersion := t.minVersion(), t.maxVersion()
	if apiVersion < minVersion || apiVersion > maxVersion {
		return 0, nil, fmt.Errorf("protocol: unsupported %s response version: v%d not in range v%d-v%d",
			apiKey, apiVersion, minVersion, maxVersion)
	}

	size, err := readMessageSize(r)
	if err != nil {
		return 0, nil, err
	}

	d := &decoder{reader: r, remain: int(size)}
	defer d.discardAll()

	correlationID = d.readInt32()
	res := &t.responses[apiVersion-minVersion]
	msg = res.new()
	res.decode(d, reflect.ValueOf(msg).Elem())
	err = d.err
	return
}

func readMessageSize(r *bufio.Reader) (int32, error) {
	b := make([]byte, 4)
	if _, err := io.ReadFull(r, b); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func lookupApiType(apiKey ApiKey) (*apiType, error) {
	i := int(apiKey)
	if i < 0 || i >= len(apiTypes) || len(apiTypes[i].requests) == 0 {
		return nil, fmt.Errorf("protocol: unsupported api key: %d", i)
	}
	return &apiTypes[i], nil
}
