package spectrum

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const textSuffix = ".txt"

// TextPath returns path with a ".txt" suffix, appending it only when path
// does not already end with one.
func TextPath(path string) string {
	if strings.HasSuffix(path, textSuffix) {
		return path
	}
	return path + textSuffix
}

// countingWriter tracks the bytes that reached the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo writes the spectrum as three whitespace-separated columns,
// implementing [io.WriterTo].
func (s *Spectrum) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	line := make([]byte, 0, 80)
	for i := range s.wavelength {
		line = appendRow(line[:0], s.wavelength[i], s.reflectance[i], s.sigmaR[i])
		if _, err := bw.Write(line); err != nil {
			return cw.n, err
		}
	}

	err := bw.Flush()
	return cw.n, err
}

func appendRow(dst []byte, values ...float64) []byte {
	for i, v := range values {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = strconv.AppendFloat(dst, v, 'e', 18, 64)
	}
	return append(dst, '\n')
}

// Save writes the spectrum to TextPath(path), creating or truncating the
// file. The file is closed on every return path.
func (s *Spectrum) Save(path string) (err error) {
	path = TextPath(path)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("spectrum: save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("spectrum: save %s: %w", path, cerr)
		}
	}()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("spectrum: save %s: %w", path, err)
	}

	return nil
}
