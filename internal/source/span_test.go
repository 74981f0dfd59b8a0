package source

import "testing"

func TestSpanBasics(t *testing.T) {
	tests := []struct {
		name      string
		span      Span
		wantEmpty bool
		wantLen   uint32
		wantStr   string
	}{
		{
			name:      "empty span",
			span:      Span{File: 1, Start: 5, End: 5},
			wantEmpty: true,
			wantLen:   0,
			wantStr:   "1:5-5",
		},
		{
			name:      "single byte",
			span:      Span{File: 0, Start: 0, End: 1},
			wantEmpty: false,
			wantLen:   1,
			wantStr:   "0:0-1",
		},
		{
			name:      "multi byte",
			span:      Span{File: 2, Start: 10, End: 25},
			wantEmpty: false,
			wantLen:   15,
			wantStr:   "2:10-25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Empty(); got != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", got, tt.wantEmpty)
			}
			if got := tt.span.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := tt.span.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 10}
	b := Span{File: 1, Start: 8, End: 20}

	got := a.Cover(b)
	want := Span{File: 1, Start: 4, End: 20}
	if got != want {
		t.Errorf("Cover() = %+v, want %+v", got, want)
	}

	// порядок аргументов не важен
	if got2 := b.Cover(a); got2 != want {
		t.Errorf("Cover() reversed = %+v, want %+v", got2, want)
	}
}

func TestSpanZeroideToEnd(t *testing.T) {
	s := Span{File: 3, Start: 4, End: 9}
	z := s.ZeroideToEnd()

	if !z.Empty() {
		t.Errorf("ZeroideToEnd() not empty: %+v", z)
	}
	if z.Start != s.End || z.End != s.End {
		t.Errorf("ZeroideToEnd() = %+v, want start=end=%d", z, s.End)
	}
	if z.File != s.File {
		t.Errorf("ZeroideToEnd() changed file: %d -> %d", s.File, z.File)
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 1, Start: 0, End: 100}
	inner := Span{File: 1, Start: 10, End: 20}
	otherFile := Span{File: 2, Start: 10, End: 20}

	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
	if outer.Contains(otherFile) {
		t.Error("spans in different files should not contain each other")
	}
}
