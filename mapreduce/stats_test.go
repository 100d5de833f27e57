package mapreduce

import "testing"

func TestStatsAfterRun(t *testing.T) {
	coord := New()
	if err := coord.Configure(4, WordCountMap, SumReduce); err != nil {
		t.Fatal(err)
	}
	for i, line := range []string{"the quick brown fox", "the lazy dog", "the fox jumps"} {
		coord.Ingest(string(rune('0'+i)), line)
	}
	if err := coord.Run(); err != nil {
		t.Fatal(err)
	}

	stats := coord.Stats()
	if stats.InputCount != 3 {
		t.Fatalf("InputCount = %d, want 3", stats.InputCount)
	}
	if stats.OutputCount != 7 {
		t.Fatalf("OutputCount = %d, want 7", stats.OutputCount)
	}
	total := 0
	for _, n := range stats.PartitionSizes {
		total += n
	}
	if total != 10 {
		t.Fatalf("sum of partition sizes = %d, want 10 (10 intermediate word emissions)", total)
	}
}
