package broker

import "testing"

func TestShuffleFetchTopicsIsAPermutation(t *testing.T) {
	input := []FetchTopic{
		{Topic: "a", Partitions: []FetchPartition{{Partition: 0}, {Partition: 1}, {Partition: 2}}},
		{Topic: "b", Partitions: []FetchPartition{{Partition: 0}, {Partition: 1}}},
		{Topic: "c", Partitions: []FetchPartition{{Partition: 0}}},
	}

	want := map[[2]any]bool{}
	for _, topic := range input {
		for _, p := range topic.Partitions {
			want[[2]any{topic.Topic, p.Partition}] = true
		}
	}

	for seed := 0; seed < 50; seed++ {
		out := shuffleFetchTopics(input)
		got := map[[2]any]bool{}
		for _, topic := range out {
			for _, p := range topic.Partitions {
				got[[2]any{topic.Topic, p.Partition}] = true
			}
		}
		if len(got) != len(want) {
			t.Fatalf("shuffle changed the pair set: got %d pairs, want %d", len(got), len(want))
		}
		for k := range want {
			if !got[k] {
				t.Fatalf("shuffle dropped pair %v", k)
			}
		}
	}
}

func TestShuffleFetchTopicsConsolidatesAdjacentTopics(t *testing.T) {
	input := []FetchTopic{
		{Topic: "t", Partitions: []FetchPartition{{Partition: 0}, {Partition: 1}}},
	}

	for seed := 0; seed < 50; seed++ {
		out := shuffleFetchTopics(input)
		for i := 1; i < len(out); i++ {
			if out[i].Topic == out[i-1].Topic {
				t.Fatalf("adjacent output entries share topic %q: no consolidation happened", out[i].Topic)
			}
		}
	}
}

// TestFetchTwoPartitionsOneTopicEntry mirrors scenario S2: a fetch over two
// partitions of the same topic must collapse to exactly one topic entry
// whose partition set is {0,1}.
func TestFetchTwoPartitionsOneTopicEntry(t *testing.T) {
	input := []FetchTopic{
		{Topic: "t", Partitions: []FetchPartition{
			{Partition: 0, FetchOffset: 0, PartitionMaxBytes: 1024},
			{Partition: 1, FetchOffset: 0, PartitionMaxBytes: 1024},
		}},
	}
	out := shuffleFetchTopics(input)
	if len(out) != 1 {
		t.Fatalf("expected exactly one topic entry, got %d", len(out))
	}
	if out[0].Topic != "t" {
		t.Fatalf("expected topic %q, got %q", "t", out[0].Topic)
	}
	partitions := map[int32]bool{}
	for _, p := range out[0].Partitions {
		partitions[p.Partition] = true
	}
	if len(partitions) != 2 || !partitions[0] || !partitions[1] {
		t.Fatalf("expected partition set {0,1}, got %v", partitions)
	}
}
