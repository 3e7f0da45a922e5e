package testutils

import (
	"bytes"

	"github.com/pkg/errors"
)

// FaultyBuffer behaves like a [bytes.Buffer] for reading and writing, but fails with a designated error
// once more than faultThreshold bytes were read (or, separately, written).
//
// This is used to test that IO errors from number files and output streams are reported rather than swallowed.
// Create instances with [NewFaultyBuffer]; the zero value panics on use.
type FaultyBuffer struct {
	designatedErr  error
	faultThreshold int
	buf            bytes.Buffer
	alreadyRead    int
	alreadyWritten int
}

// NewFaultyBuffer creates a FaultyBuffer with the given threshold and (non-nil) designated error.
// Use [FaultyBuffer.SetContent] to provide data for reading.
func NewFaultyBuffer(faultThreshold int, designatedErr error) *FaultyBuffer {
	if designatedErr == nil {
		panic(ErrorPrefix + "NewFaultyBuffer called with nil designated error")
	}
	return &FaultyBuffer{designatedErr: designatedErr, faultThreshold: faultThreshold}
}

func (fb *FaultyBuffer) Read(p []byte) (n int, err error) {
	fb.validate()
	if len(p) == 0 {
		return 0, nil
	}
	allowed := fb.faultThreshold - fb.alreadyRead
	if allowed <= 0 {
		return 0, errors.Wrap(fb.designatedErr, "read from faulty buffer past threshold")
	}
	if len(p) > allowed {
		p = p[:allowed]
	}
	n, err = fb.buf.Read(p)
	fb.alreadyRead += n
	if err == nil && fb.alreadyRead >= fb.faultThreshold {
		err = fb.designatedErr
	}
	return
}

func (fb *FaultyBuffer) Write(p []byte) (n int, err error) {
	fb.validate()
	if len(p) == 0 {
		return 0, nil
	}
	allowed := fb.faultThreshold - fb.alreadyWritten
	if allowed <= 0 {
		return 0, errors.Wrap(fb.designatedErr, "write to faulty buffer past threshold")
	}
	fault := false
	if len(p) > allowed {
		p = p[:allowed]
		fault = true
	}
	n, err = fb.buf.Write(p)
	fb.alreadyWritten += n
	if err == nil && fault {
		err = fb.designatedErr
	}
	return
}

// SetContent resets the buffer and sets the data available for reading. content may exceed the fault threshold.
func (fb *FaultyBuffer) SetContent(content []byte) {
	fb.validate()
	fb.buf.Reset()
	fb.buf.Write(content)
	fb.alreadyRead = 0
	fb.alreadyWritten = 0
}

// Bytes returns the unread portion of the buffer, i.e. what has been successfully written (for write-only use).
func (fb *FaultyBuffer) Bytes() []byte {
	fb.validate()
	return fb.buf.Bytes()
}

func (fb *FaultyBuffer) validate() {
	if fb.designatedErr == nil {
		panic(ErrorPrefix + "FaultyBuffer without designated error")
	}
}
