package broker

import (
	"testing"

	"github.com/kafkawire/broker/protocol/listoffsets"
)

// TestNormalizeListOffsetsCollapsesLegacyArray covers property 10: a v0
// response carrying the legacy Offsets array is normalised to a scalar
// Offset (its last element) with Offsets cleared.
func TestNormalizeListOffsetsCollapsesLegacyArray(t *testing.T) {
	res := &listoffsets.Response{
		Topics: []listoffsets.ResponseTopic{
			{
				Topic: "t",
				Partitions: []listoffsets.ResponsePartition{
					{Partition: 0, Offsets: []int64{100, 200, 300}},
				},
			},
		},
	}

	normalizeListOffsets(res)

	p := res.Topics[0].Partitions[0]
	if p.Offset != 300 {
		t.Fatalf("expected Offset to be the last element of the legacy array (300), got %d", p.Offset)
	}
	if p.Offsets != nil {
		t.Fatalf("expected Offsets to be cleared after normalisation, got %v", p.Offsets)
	}
}

// TestNormalizeListOffsetsLeavesV1Untouched covers the other half of
// property 10: a v1+ response that already carries a scalar Offset and no
// legacy array is left alone.
func TestNormalizeListOffsetsLeavesV1Untouched(t *testing.T) {
	res := &listoffsets.Response{
		Topics: []listoffsets.ResponseTopic{
			{
				Topic: "t",
				Partitions: []listoffsets.ResponsePartition{
					{Partition: 0, Offset: 42},
				},
			},
		},
	}

	normalizeListOffsets(res)

	p := res.Topics[0].Partitions[0]
	if p.Offset != 42 {
		t.Fatalf("expected Offset to remain 42, got %d", p.Offset)
	}
	if len(p.Offsets) != 0 {
		t.Fatalf("expected Offsets to stay empty, got %v", p.Offsets)
	}
}
