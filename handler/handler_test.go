package handler

import (
	"io"
	"log"
	"reflect"
	"sync"
	"testing"
)

// recorder is a Handler that keeps every line in memory
type recorder struct {
	mu     sync.Mutex
	lines  []string
	closed bool
}

func (r *recorder) Log(line string) {
	r.mu.Lock()
	r.lines = append(r.lines, line)
	r.mu.Unlock()
}

func (r *recorder) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

func TestLineWriter_Split(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single line", "hello\n", []string{"hello"}},
		{"no trailing newline", "hello", []string{"hello"}},
		{"two lines", "a\nb\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"empty write", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			w := NewLineWriter(r)

			n, err := w.Write([]byte(tt.input))
			if err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if n != len(tt.input) {
				t.Errorf("Write() n = %d, want %d", n, len(tt.input))
			}
			if !reflect.DeepEqual(r.lines, tt.want) {
				t.Errorf("lines = %q, want %q", r.lines, tt.want)
			}
		})
	}
}

func TestLineWriter_StdLog(t *testing.T) {
	r := &recorder{}
	l := log.New(NewLineWriter(r), "", 0)

	l.Printf("Log entry %d from thread %d", 1, 2)
	l.Print("done")

	want := []string{"Log entry 1 from thread 2", "done"}
	if !reflect.DeepEqual(r.lines, want) {
		t.Errorf("lines = %q, want %q", r.lines, want)
	}
	if err := NewLineWriter(r).Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
}

func TestDiscard(t *testing.T) {
	Discard.Log("ignored")
	if err := Discard.Close(); err != nil {
		t.Errorf("Discard.Close() error = %v", err)
	}

	var _ io.Writer = NewLineWriter(Discard)
}

func TestStats_Telemetry(t *testing.T) {
	s := NewStats()

	for i := 0; i < 5; i++ {
		s.IncrementEnqueued()
	}
	for i := 0; i < 3; i++ {
		s.IncrementWritten()
	}
	s.AddDropped(2)
	s.AddDropped(0)
	s.AddDropped(-1)

	got := s.GetSnapshot()
	want := Snapshot{Enqueued: 5, Written: 3, Dropped: 2}
	if got != want {
		t.Errorf("GetSnapshot() = %+v, want %+v", got, want)
	}

	s.Reset()
	if got := s.GetSnapshot(); got != (Snapshot{}) {
		t.Errorf("GetSnapshot() after Reset = %+v, want zero", got)
	}
}

func TestStats_Concurrent(t *testing.T) {
	s := NewStats()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				s.IncrementEnqueued()
				s.IncrementWritten()
			}
		}()
	}
	wg.Wait()

	got := s.GetSnapshot()
	if got.Enqueued != 8000 || got.Written != 8000 {
		t.Errorf("GetSnapshot() = %+v, want 8000 enqueued and written", got)
	}
}
