package parse

import (
	"bufio"
	"io"
)

// lineReader yields one line at a time with the trailing newline kept,
// so free-text info blocks survive verbatim. A final line without a
// newline is still returned as a line; after that next returns io.EOF.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (lr *lineReader) next() (string, error) {
	line, err := lr.r.ReadString('\n')
	if len(line) > 0 {
		return line, nil
	}
	if err == nil {
		err = io.EOF
	}
	return "", err
}
