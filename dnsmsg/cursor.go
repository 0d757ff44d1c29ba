package dnsmsg

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// cursor reads big-endian fixed-width integers from an immutable byte
// buffer, advancing as it goes. Offsets are 0-based and identical to wire
// offsets, so a cursor position can be stored directly as a compression
// pointer target.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) readUint8() (uint8, error) {
	if c.remaining() < 1 {
		return 0, fmt.Errorf("reading uint8 at offset %d: %w", c.pos, ErrInvalidIntegerSize)
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

func (c *cursor) readUint16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, fmt.Errorf("reading uint16 at offset %d: %w", c.pos, ErrInvalidIntegerSize)
	}
	v := binary.BigEndian.Uint16(c.buf[c.pos : c.pos+2])
	c.pos += 2
	return v, nil
}

func (c *cursor) readUint32() (uint32, error) {
	if c.remaining() < 4 {
		return 0, fmt.Errorf("reading uint32 at offset %d: %w", c.pos, ErrInvalidIntegerSize)
	}
	v := binary.BigEndian.Uint32(c.buf[c.pos : c.pos+4])
	c.pos += 4
	return v, nil
}

func (c *cursor) readInt32() (int32, error) {
	v, err := c.readUint32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, fmt.Errorf("reading %d bytes at offset %d: %w", n, c.pos, ErrInvalidIntegerSize)
	}
	b := make([]byte, n)
	copy(b, c.buf[c.pos:c.pos+n])
	c.pos += n
	return b, nil
}

// buffer is a growable big-endian write target whose length doubles as the
// next write offset, so name compression can record "current output
// offset" without a separate counter.
type buffer struct {
	b []byte
}

func newBuffer(capacityHint int) *buffer {
	return &buffer{b: make([]byte, 0, capacityHint)}
}

// newBufferFrom wraps an existing zero-length backing slice (typically one
// borrowed from encodeBufferPool) so its capacity can be reused.
func newBufferFrom(b []byte) *buffer {
	return &buffer{b: b}
}

func (w *buffer) offset() int {
	return len(w.b)
}

func (w *buffer) writeUint8(v uint8) {
	w.b = append(w.b, v)
}

func (w *buffer) writeUint16(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	w.b = append(w.b, tmp[:]...)
}

func (w *buffer) writeUint32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	w.b = append(w.b, tmp[:]...)
}

func (w *buffer) writeInt32(v int32) {
	w.writeUint32(uint32(v))
}

func (w *buffer) writeBytes(b []byte) {
	w.b = append(w.b, b...)
}

// patchUint16 back-patches a previously-reserved 2-byte slot, used for
// RDLENGTH once the RDATA body (and any name compression within it) has
// been written.
func (w *buffer) patchUint16(at int, v uint16) {
	binary.BigEndian.PutUint16(w.b[at:at+2], v)
}

// hexDump and fromHex are small test helpers mirroring how fixture bytes
// are usually written in this corpus: as a literal hex string.
func hexDump(b []byte) string {
	return hex.EncodeToString(b)
}

func fromHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("dnsmsg: invalid hex fixture %q: %v", s, err))
	}
	return b
}
