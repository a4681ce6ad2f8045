package spectrum

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-structcol/internal/testutil"
)

func TestTextPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "refl", want: "refl.txt"},
		{in: "refl.txt", want: "refl.txt"},
		{in: "data/refl.csv", want: "data/refl.csv.txt"},
		{in: "refl.TXT", want: "refl.TXT.txt"},
		{in: "", want: ".txt"},
	}

	for _, tt := range tests {
		if got := TextPath(tt.in); got != tt.want {
			t.Errorf("TextPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteTo(t *testing.T) {
	s := mustNew(t, []float64{400, 500}, []float64{0.5, 0.25}, []float64{0.125, 0})

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("WriteTo() n = %d, buffer has %d bytes", n, buf.Len())
	}

	want := "4.000000000000000000e+02 5.000000000000000000e-01 1.250000000000000000e-01\n" +
		"5.000000000000000000e+02 2.500000000000000000e-01 0.000000000000000000e+00\n"
	if buf.String() != want {
		t.Fatalf("WriteTo() wrote\n%s\nwant\n%s", buf.String(), want)
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteToPropagatesWriterError(t *testing.T) {
	s := mustNew(t, []float64{1}, []float64{1}, []float64{1})

	n, err := s.WriteTo(failingWriter{})
	if !errors.Is(err, errWrite) {
		t.Fatalf("WriteTo() error = %v, want errWrite", err)
	}
	if n != 0 {
		t.Fatalf("WriteTo() n = %d, want 0", n)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	w := testutil.VisibleGrid(37)
	r := make([]float64, len(w))
	sigma := make([]float64, len(w))
	for i := range w {
		r[i] = 0.1 + 0.8*float64(i)/float64(len(w)-1)
		sigma[i] = r[i] / 30
	}
	s := mustNew(t, w, r, sigma)

	path := filepath.Join(t.TempDir(), "reflectance.txt")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	cols := testutil.ReadColumns(t, path)
	if len(cols) != 3 {
		t.Fatalf("got %d columns, want 3", len(cols))
	}
	if len(cols[0]) != s.Len() {
		t.Fatalf("got %d rows, want %d", len(cols[0]), s.Len())
	}
	testutil.RequireSliceNearlyEqual(t, cols[0], w, 0)
	testutil.RequireSliceNearlyEqual(t, cols[1], r, 0)
	testutil.RequireSliceNearlyEqual(t, cols[2], sigma, 0)
}

func TestSaveAppendsSuffix(t *testing.T) {
	dir := t.TempDir()
	s := mustNew(t, []float64{1, 2}, []float64{3, 4}, []float64{5, 6})

	if err := s.Save(filepath.Join(dir, "refl")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Save(filepath.Join(dir, "other.txt")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if got := strings.Join(names, ","); got != "other.txt,refl.txt" {
		t.Fatalf("files = %s, want other.txt,refl.txt", got)
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	s := mustNew(t, []float64{1}, []float64{1}, []float64{1})

	err := s.Save(filepath.Join(t.TempDir(), "missing", "refl"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Save() error = %v, want fs.ErrNotExist", err)
	}
}
