// Package protocol implements the Kafka request/response wire format: a
// reflect-driven codec keyed by `kafka:"min=vN,max=vM"` struct tags, and the
// ApiKey registry that per-API packages install themselves into via
// Register.
package protocol

import (
	"fmt"
	"reflect"
	"strconv"
)

// Message is implemented by every request and response type. It exists
// mostly as a compile-time guard for values passed into RoundTrip,
// WriteRequest, and ReadResponse.
type Message interface {
	ApiKey() ApiKey
}

// ApiKey identifies a Kafka API.
type ApiKey int16

const (
	Produce             ApiKey = 0
	Fetch               ApiKey = 1
	ListOffsets         ApiKey = 2
	Metadata            ApiKey = 3
	OffsetCommit        ApiKey = 8
	OffsetFetch         ApiKey = 9
	FindCoordinator     ApiKey = 10
	JoinGroup           ApiKey = 11
	Heartbeat           ApiKey = 12
	LeaveGroup          ApiKey = 13
	SyncGroup           ApiKey = 14
	DescribeGroups      ApiKey = 15
	ListGroups          ApiKey = 16
	SaslHandshake       ApiKey = 17
	ApiVersions         ApiKey = 18
	CreateTopics        ApiKey = 19
	DeleteTopics        ApiKey = 20
	DeleteRecords       ApiKey = 21
	InitProducerId      ApiKey = 22
	AddPartitionsToTxn  ApiKey = 24
	AddOffsetsToTxn     ApiKey = 25
	EndTxn              ApiKey = 26
	TxnOffsetCommit     ApiKey = 28
	DescribeAcls        ApiKey = 29
	CreateAcls          ApiKey = 30
	DeleteAcls          ApiKey = 31
	DescribeConfigs     ApiKey = 32
	AlterConfigs        ApiKey = 33
	SaslAuthenticate    ApiKey = 36
	CreatePartitions    ApiKey = 37
	DeleteGroups        ApiKey = 42

	numApis = 48
)

var apiNames = [numApis]string{
	Produce:            "Produce",
	Fetch:              "Fetch",
	ListOffsets:        "ListOffsets",
	Metadata:           "Metadata",
	OffsetCommit:       "OffsetCommit",
	OffsetFetch:        "OffsetFetch",
	FindCoordinator:    "FindCoordinator",
	JoinGroup:          "JoinGroup",
	Heartbeat:          "Heartbeat",
	LeaveGroup:         "LeaveGroup",
	SyncGroup:          "SyncGroup",
	DescribeGroups:     "DescribeGroups",
	ListGroups:         "ListGroups",
	SaslHandshake:      "SaslHandshake",
	ApiVersions:        "ApiVersions",
	CreateTopics:       "CreateTopics",
	DeleteTopics:       "DeleteTopics",
	DeleteRecords:      "DeleteRecords",
	InitProducerId:     "InitProducerId",
	AddPartitionsToTxn: "AddPartitionsToTxn",
	AddOffsetsToTxn:    "AddOffsetsToTxn",
	EndTxn:             "EndTxn",
	TxnOffsetCommit:    "TxnOffsetCommit",
	DescribeAcls:       "DescribeAcls",
	CreateAcls:         "CreateAcls",
	DeleteAcls:         "DeleteAcls",
	DescribeConfigs:    "DescribeConfigs",
	AlterConfigs:       "AlterConfigs",
	SaslAuthenticate:   "SaslAuthenticate",
	CreatePartitions:   "CreatePartitions",
	DeleteGroups:       "DeleteGroups",
}

func (k ApiKey) String() string {
	if i := int(k); i >= 0 && i < len(apiNames) && apiNames[i] != "" {
		return apiNames[i]
	}
	return strconv.Itoa(int(k))
}

func (k ApiKey) MinVersion() int16 { return k.apiType().minVersion() }

func (k ApiKey) MaxVersion() int16 { return k.apiType().maxVersion() }

// SelectVersion clamps maxVersion into [min,max] of the locally registered
// type and returns the result. minVersion is not consulted: the returned
// version may lie below the remote broker's advertised minimum.
func (k ApiKey) SelectVersion(minVersion, maxVersion int16) int16 {
	min := k.MinVersion()
	max := k.MaxVersion()
	switch {
	case min > maxVersion:
		return min
	case max < maxVersion:
		return max
	default:
		return maxVersion
	}
}

func (k ApiKey) apiType() apiType {
	if i := int(k); i >= 0 && i < len(apiTypes) {
		return apiTypes[i]
	}
	return apiType{}
}

type messageType struct {
	version int16
	gotype  reflect.Type
	decode  decodeFunc
	encode  encodeFunc
}

func (t *messageType) new() Message {
	return reflect.New(t.gotype).Interface().(Message)
}

type apiType struct {
	requests  []messageType
	responses []messageType
}

func (t apiType) minVersion() int16 {
	if len(t.requests) == 0 {
		return 0
	}
	return t.requests[0].version
}

func (t apiType) maxVersion() int16 {
	if len(t.requests) == 0 {
		return 0
	}
	return t.requests[len(t.requests)-1].version
}

var apiTypes [numApis]apiType

// Register installs a request/response pair of message types into the
// ApiKey registry. Per-API packages call this from an init function.
func Register(req, res Message) {
	k1 := req.ApiKey()
	k2 := res.ApiKey()
	if k1 != k2 {
		panic(fmt.Sprintf("protocol: request and response api keys mismatch: %d != %d", k1, k2))
	}
	apiTypes[k1] = apiType{
		requests:  typesOf(req),
		responses: typesOf(res),
	}
}

func typesOf(v Message) []messageType {
	return makeTypes(reflect.TypeOf(v).Elem())
}

func makeTypes(t reflect.Type) []messageType {
	minVersion := int16(-1)
	maxVersion := int16(-1)

	forEachStructField(t, func(_ reflect.Type, _ int, tag string) {
		forEachStructTag(tag, func(tag structTag) bool {
			if minVersion < 0 || tag.MinVersion < minVersion {
				minVersion = tag.MinVersion
			}
			if maxVersion < 0 || tag.MaxVersion > maxVersion {
				maxVersion = tag.MaxVersion
			}
			return true
		})
	})

	if minVersion < 0 {
		minVersion, maxVersion = 0, 0
	}

	types := make([]messageType, 0, (maxVersion-minVersion)+1)
	for v := minVersion; v <= maxVersion; v++ {
		types = append(types, messageType{
			version: v,
			gotype:  t,
			decode:  decodeFuncOf(t, v, structTag{}),
			encode:  encodeFuncOf(t, v, structTag{}),
		})
	}
	return types
}
