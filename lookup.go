package broker

import "github.com/kafkawire/broker/protocol"

// requestFactory is what lookupFunc hands back: enough to pick the wire
// version for an already-typed request value before handing it to
// Connection.Send.
type requestFactory struct {
	apiVersion int16
}

// lookupFunc selects, for an API key, the highest version this client and
// the negotiated broker both support.
type lookupFunc func(apiKey protocol.ApiKey) (requestFactory, error)

// notConnectedLookup is the sentinel installed before the first successful
// connect. Calling it is a loud "forgot to connect" bug rather than a
// silent zero value.
func notConnectedLookup(apiKey protocol.ApiKey) (requestFactory, error) {
	return requestFactory{}, errNonRetriable("broker not connected")
}

// lookup builds a lookupFunc closed over the version table negotiated with
// the remote broker. For a given apiKey it picks the highest version V
// such that this client has a registered encoding for V (protocol.ApiKey's
// own [min,max]) and V also falls within the broker's advertised
// [min,max] for that key.
func lookup(versions map[protocol.ApiKey]versionRange) lookupFunc {
	return func(apiKey protocol.ApiKey) (requestFactory, error) {
		remote, ok := versions[apiKey]
		if !ok {
			return requestFactory{}, errUnsupportedVersion("broker does not advertise %s", apiKey)
		}
		localMin, localMax := apiKey.MinVersion(), apiKey.MaxVersion()
		v := localMax
		if v > remote.max {
			v = remote.max
		}
		if v < localMin || v < remote.min {
			return requestFactory{}, errUnsupportedVersion(
				"no common version for %s: local=[v%d,v%d] remote=[v%d,v%d]",
				apiKey, localMin, localMax, remote.min, remote.max)
		}
		return requestFactory{apiVersion: v}, nil
	}
}
