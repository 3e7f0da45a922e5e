// Package numberfile reads non-negative decimal numbers from files, one number per file.
package numberfile

import (
	"bytes"
	"io"
	"math/big"
	"os"

	"github.com/pkg/errors"
)

const ErrorPrefix = "millerrabin / internal / numberfile: "

// MaxInputSize bounds the size of number files. Larger inputs are rejected rather than read into memory.
const MaxInputSize = 1 << 20

var (
	ErrEmptyInput      = errors.New(ErrorPrefix + "input contains no number")
	ErrMalformedNumber = errors.New(ErrorPrefix + "input is not a non-negative decimal number")
	ErrInputTooLarge   = errors.New(ErrorPrefix + "input exceeds the maximal size")
)

// ParseDecimal parses buf as a non-negative decimal number. A single trailing "\n" or "\r\n" is stripped;
// anything else that is not an ASCII digit is rejected with an error wrapping [ErrMalformedNumber].
func ParseDecimal(buf []byte) (*big.Int, error) {
	if bytes.HasSuffix(buf, []byte("\r\n")) {
		buf = buf[:len(buf)-2]
	} else {
		buf = bytes.TrimSuffix(buf, []byte("\n"))
	}
	if len(buf) == 0 {
		return nil, ErrEmptyInput
	}
	for i, c := range buf {
		if c < '0' || c > '9' {
			return nil, errors.Wrapf(ErrMalformedNumber, "unexpected character %q at offset %v", c, i)
		}
	}
	n, ok := new(big.Int).SetString(string(buf), 10)
	if !ok {
		return nil, errors.Wrapf(ErrMalformedNumber, "cannot parse %q", buf)
	}
	return n, nil
}

// ReadNumber reads all of r and parses it with [ParseDecimal].
func ReadNumber(r io.Reader) (*big.Int, error) {
	buf, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading number failed")
	}
	if len(buf) > MaxInputSize {
		return nil, errors.Wrapf(ErrInputTooLarge, "limit is %v bytes", MaxInputSize)
	}
	return ParseDecimal(buf)
}

// ReadNumberFile reads the number stored in the file at path.
func ReadNumberFile(path string) (*big.Int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open number file %v", path)
	}
	defer f.Close()
	n, err := ReadNumber(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "number file %v", path)
	}
	return n, nil
}
