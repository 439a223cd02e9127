// Package lhefile opens Les Houches event files for the lhef command,
// transparently handling gzip compression. Event samples are commonly
// shipped as .lhe.gz; the core reader and writer only see plain text.
package lhefile

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Reader is an open event file positioned at the first byte of the
// (decompressed) stream.
type Reader struct {
	io.Reader
	file *os.File
	gz   *gzip.Reader
}

// Open opens path for reading, decompressing on the fly when the
// content starts with the gzip magic bytes.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &Reader{Reader: gz, file: f, gz: gz}, nil
	}
	return &Reader{Reader: br, file: f}, nil
}

// Close closes the decompressor, if any, and the underlying file.
func (r *Reader) Close() error {
	if r.gz != nil {
		if err := r.gz.Close(); err != nil {
			r.file.Close()
			return err
		}
	}
	return r.file.Close()
}

// Writer is an event file open for writing, compressing when the
// path ends in .gz.
type Writer struct {
	io.Writer
	file *os.File
	gz   *gzip.Writer
}

// Create creates path for writing, gzip-compressing the stream when
// the path ends in .gz.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		return &Writer{Writer: gz, file: f, gz: gz}, nil
	}
	return &Writer{Writer: f, file: f}, nil
}

// Close flushes the compressor, if any, and closes the file.
func (w *Writer) Close() error {
	if w.gz != nil {
		if err := w.gz.Close(); err != nil {
			w.file.Close()
			return err
		}
	}
	return w.file.Close()
}
