// Package record reads the fixed header in front of plugin record data.
package record

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the width of a record header: tag, data size, flags, form
// ID, revision, version and one unknown uint16.
const HeaderSize = 24

var (
	ErrTruncated    = errors.New("record: truncated header")
	ErrSizeMismatch = errors.New("record: data size mismatch")
)

type Header struct {
	Tag      [4]byte
	DataSize uint32
	Flags    uint32
	FormID   uint32
	Revision uint32
	Version  uint16
	Unknown  uint16
}

// ParseHeader decodes the little endian header at the start of buf.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrTruncated
	}
	h := Header{
		DataSize: binary.LittleEndian.Uint32(buf[4:8]),
		Flags:    binary.LittleEndian.Uint32(buf[8:12]),
		FormID:   binary.LittleEndian.Uint32(buf[12:16]),
		Revision: binary.LittleEndian.Uint32(buf[16:20]),
		Version:  binary.LittleEndian.Uint16(buf[20:22]),
		Unknown:  binary.LittleEndian.Uint16(buf[22:24]),
	}
	copy(h.Tag[:], buf[0:4])
	return h, nil
}

// Name returns the record tag as text.
func (h Header) Name() string {
	return string(h.Tag[:])
}

// CheckBody compares the declared data size with the n bytes that follow
// the header.
func (h Header) CheckBody(n int) error {
	if int64(h.DataSize) != int64(n) {
		return fmt.Errorf("%w: %s declares %d bytes, got %d", ErrSizeMismatch, h.Name(), h.DataSize, n)
	}
	return nil
}
