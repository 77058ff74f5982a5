package cloud

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes caps the scanner buffer for a single input line.
const maxLineBytes = 1 << 20

// Load reads an XYZ text file from disk.
func Load(path string) (Cloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open point file: %w", err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Read parses whitespace-separated XYZ rows. Blank lines are skipped and
// everything after a '#' is treated as a comment. Every remaining row must
// carry exactly three columns; anything else is a parse error naming the
// offending line.
func Read(r io.Reader) (Cloud, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var c Cloud
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 columns, got %d", lineNo, len(fields))
		}

		var p Point
		for axis, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid coordinate %q: %w", lineNo, field, err)
			}
			p[axis] = v
		}
		c = append(c, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}
	return c, nil
}

// Save writes the cloud to disk in XYZ text form.
func Save(path string, c Cloud) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create point file: %w", err)
	}
	if err := Write(f, c); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Write emits one "x y z" row per point. Coordinates use the shortest
// decimal form that round-trips bit-exactly through Read.
func Write(w io.Writer, c Cloud) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, p := range c {
		buf = buf[:0]
		for axis, v := range p {
			if axis > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
