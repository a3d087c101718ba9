package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/aocgridgo/internal/puzzle"
)

// ReadLines reads r to the end and returns its lines without line endings.
// A trailing newline does not produce an empty last line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrIO, err)
	}
	return lines, nil
}

// ReadLinesFromFile opens path and returns its lines.
func ReadLinesFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrIO, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
