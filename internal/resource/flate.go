package resource

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/flate"

	"github.com/matzehuels/bnrepo/pkg/errors"
)

// Inflate decompresses a raw DEFLATE stream into UTF-8 text.
// It fails with CORRUPT_RESOURCE if the stream is malformed or truncated,
// or if the result is not valid UTF-8.
func Inflate(data []byte) (string, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeCorruptResource, err, "inflate")
	}
	if !utf8.Valid(out) {
		return "", errors.New(errors.ErrCodeCorruptResource, "inflated payload is not valid UTF-8")
	}
	return string(out), nil
}

// Deflate compresses text as a raw DEFLATE stream at the given level
// (flate.HuffmanOnly through flate.BestCompression) and writes it to w.
// Inflate(output) returns text unchanged.
func Deflate(w io.Writer, text []byte, level int) error {
	fw, err := flate.NewWriter(w, level)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "deflate level %d", level)
	}
	if _, err := fw.Write(text); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "deflate")
	}
	if err := fw.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "deflate")
	}
	return nil
}
