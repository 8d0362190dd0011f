package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	var calls int64

	for i := 0; i < 5; i++ {
		d.Trigger(func() { atomic.AddInt64(&calls, 1) })
	}

	time.Sleep(200 * time.Millisecond)
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Errorf("callback ran %d times, want 1", got)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	var calls int64

	d.Trigger(func() { atomic.AddInt64(&calls, 1) })
	d.Cancel()

	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt64(&calls); got != 0 {
		t.Errorf("cancelled callback ran %d times", got)
	}
}

func TestDebouncer_LastTriggerWins(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	var got int64

	d.Trigger(func() { atomic.StoreInt64(&got, 1) })
	d.Trigger(func() { atomic.StoreInt64(&got, 2) })

	time.Sleep(200 * time.Millisecond)
	if v := atomic.LoadInt64(&got); v != 2 {
		t.Errorf("ran callback %d, want the latest (2)", v)
	}
}

func TestDebouncer_ZeroWindowDefaults(t *testing.T) {
	d := NewDebouncer(0)
	if d.Window() != DefaultDebounce {
		t.Errorf("window = %v, want %v", d.Window(), DefaultDebounce)
	}
}

func TestFileWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("colors: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchFile(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("colors:\n  bull: \"#00C853\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no event after writing the watched file")
	}
}

func TestFileWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("colors: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchFile(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer w.Close()

	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
		t.Fatal("got an event for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestFileWatcher_MissingDir(t *testing.T) {
	if _, err := WatchFile(filepath.Join(t.TempDir(), "no", "such", "theme.yaml"), 0); err == nil {
		t.Fatal("watching a file in a missing directory should fail")
	}
}
