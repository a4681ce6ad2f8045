package testutil

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"testing"
)

// ReadColumns parses a whitespace-separated numeric text file and returns
// its columns. Every row must have the same number of fields.
func ReadColumns(t *testing.T, path string) [][]float64 {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	var cols [][]float64
	sc := bufio.NewScanner(f)
	row := 0
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if cols == nil {
			cols = make([][]float64, len(fields))
		}
		if len(fields) != len(cols) {
			t.Fatalf("row %d: got %d columns, want %d", row, len(fields), len(cols))
		}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				t.Fatalf("row %d column %d: %v", row, i, err)
			}
			cols[i] = append(cols[i], v)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return cols
}
