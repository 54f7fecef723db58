package main

import "testing"

func TestCircleStride(t *testing.T) {
	s := NewShape(KindCircle, 5, 5, 3, Color{})

	tests := []struct {
		y    int
		want int
	}{
		{5, 3}, // centre row: full radius
		{4, 2}, // sqrt(9-1) = 2.83
		{7, 2}, // sqrt(9-4) = 2.24
		{8, 0}, // tangent rows still cover the centre column
		{2, 0},
		{9, -1}, // outside
		{1, -1},
	}
	for _, tt := range tests {
		if got := s.Stride(tt.y); got != tt.want {
			t.Errorf("Stride(%d) = %d, want %d", tt.y, got, tt.want)
		}
	}
}

func TestSquareStrideIsConstant(t *testing.T) {
	s := NewShape(KindSquare, 5, 5, 4, Color{})
	for y := 1; y <= 9; y++ {
		if got := s.Stride(y); got != 4 {
			t.Errorf("Stride(%d) = %d, want 4", y, got)
		}
	}
}

func TestParseShapeKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ShapeKind
		wantErr bool
	}{
		{"", KindCircle, false},
		{"circle", KindCircle, false},
		{"square", KindSquare, false},
		{"triangle", KindCircle, true},
	}
	for _, tt := range tests {
		got, err := ParseShapeKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseShapeKind(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseShapeKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCandidateCloneIsIndependent(t *testing.T) {
	var nilCand Candidate
	if c := nilCand.Clone(); c == nil || len(c) != 0 {
		t.Fatalf("Clone of nil = %#v, want empty non-nil", c)
	}

	c := Candidate{NewShape(KindCircle, 1, 2, 3, Color{A: 50})}
	d := c.Clone()
	d[0].X = 99
	if c[0].X != 1 {
		t.Errorf("clone shares backing array with original")
	}
	if c.Equal(d) {
		t.Errorf("Equal reported true for different candidates")
	}
}

func TestCandidatePushFrontRemoveAt(t *testing.T) {
	a := NewShape(KindCircle, 1, 1, 1, Color{})
	b := NewShape(KindCircle, 2, 2, 2, Color{})
	c := NewShape(KindCircle, 3, 3, 3, Color{})

	cand := Candidate{}.pushFront(a).pushFront(b).pushFront(c)
	want := Candidate{c, b, a}
	if !cand.Equal(want) {
		t.Fatalf("pushFront order = %v, want %v", cand, want)
	}

	cand = cand.removeAt(1)
	want = Candidate{c, a}
	if !cand.Equal(want) {
		t.Fatalf("removeAt(1) = %v, want %v", cand, want)
	}
}
