package main

import (
	"bytes"
	"testing"
)

func TestHistoryDropsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := uint64(1); i <= 5; i++ {
		h.Add(i*30, 1000-i)
	}

	got := h.Samples()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []uint64{90, 120, 150} {
		if got[i].Round != want {
			t.Errorf("sample %d round = %d, want %d", i, got[i].Round, want)
		}
	}

	got[0].Round = 0
	if h.Samples()[0].Round != 90 {
		t.Errorf("Samples returned internal storage")
	}
}

func TestHistoryReport(t *testing.T) {
	h := NewHistory(10)
	h.Report(RoundReport{Snapshot: Snapshot{Round: 30, Score: 1234}})
	s := h.Samples()
	if len(s) != 1 || s[0] != (Sample{Round: 30, Score: 1234}) {
		t.Errorf("samples = %v", s)
	}
}

func TestHistoryWritePNG(t *testing.T) {
	h := NewHistory(10)
	h.Add(30, 5000)
	h.Add(60, 4200)
	h.Add(90, 4100)

	var buf bytes.Buffer
	if err := h.WritePNG(&buf, "test"); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("output is not a PNG")
	}
}

func TestHistoryWritePNGEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewHistory(10).WritePNG(&buf, "empty"); err != nil {
		t.Fatalf("WritePNG on empty history: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("no output for empty history")
	}
}
