package broker

import (
	"context"
	"errors"

	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/apiversions"
)

// versionRange is the [min,max] an API key supports, as advertised by the
// remote broker in its ApiVersions response.
type versionRange struct {
	min, max int16
}

// candidateVersions lists the ApiVersions request versions this client
// knows how to build, highest first. The negotiator walks down this list
// until the broker accepts one.
func candidateVersions() []int16 {
	lo, hi := protocol.ApiVersions.MinVersion(), protocol.ApiVersions.MaxVersion()
	candidates := make([]int16, 0, hi-lo+1)
	for v := hi; v >= lo; v-- {
		candidates = append(candidates, v)
	}
	return candidates
}

// negotiateVersions probes ApiVersions with descending candidate versions
// until the broker accepts one, then reduces the response into a
// per-API-key version table.
func negotiateVersions(ctx context.Context, conn Connection) (map[protocol.ApiKey]versionRange, error) {
	for _, v := range candidateVersions() {
		req := &apiversions.Request{}
		resp, err := conn.Send(ctx, v, req)
		if err == nil {
			res := resp.(*apiversions.Response)
			if res.ErrorCode != 0 {
				if ErrorCode(res.ErrorCode) == UnsupportedVersionCode {
					continue
				}
				return nil, errNonRetriable("ApiVersions failed: %s", ErrorCode(res.ErrorCode))
			}
			versions := make(map[protocol.ApiKey]versionRange, len(res.ApiKeys))
			for _, k := range res.ApiKeys {
				versions[protocol.ApiKey(k.ApiKey)] = versionRange{min: k.MinVersion, max: k.MaxVersion}
			}
			return versions, nil
		}

		var be *Error
		if errors.As(err, &be) && be.Kind == UnsupportedVersion {
			continue
		}
		return nil, err
	}
	return nil, errNonRetriable("API Versions not supported")
}
