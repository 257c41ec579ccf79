package schedule_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/prophetizo/vectorwave/internal/schedule"
)

func TestRunBatchBelowThresholdRunsInline(t *testing.T) {
	p := schedule.NewPool(schedule.WithThreshold(8), schedule.WithParallelism(4))
	var order []int
	err := p.RunBatch(3, func(i int) error {
		order = append(order, i)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 2}
	for i, v := range want {
		if order[i] != v {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestRunBatchAtOrAboveThresholdVisitsEveryIndex(t *testing.T) {
	p := schedule.NewPool(schedule.WithThreshold(2), schedule.WithParallelism(4))
	const n = 97
	var visited [n]int32
	err := p.RunBatch(n, func(i int) error {
		atomic.AddInt32(&visited[i], 1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range visited {
		if v != 1 {
			t.Errorf("index %d visited %d times, want 1", i, v)
		}
	}
}

func TestRunBatchPropagatesError(t *testing.T) {
	p := schedule.NewPool(schedule.WithThreshold(0))
	boom := errors.New("boom")
	err := p.RunBatch(16, func(i int) error {
		if i == 5 {
			return boom
		}
		return nil
	})
	if err != boom {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestRunBatchZeroItems(t *testing.T) {
	p := schedule.NewPool()
	called := false
	if err := p.RunBatch(0, func(i int) error { called = true; return nil }); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("fn should not be called for n=0")
	}
}

func TestParallelismClampedToRequested(t *testing.T) {
	p := schedule.NewPool(schedule.WithParallelism(2))
	if p.Parallelism() > 2 {
		t.Errorf("Parallelism() = %d, want <= 2", p.Parallelism())
	}
}
