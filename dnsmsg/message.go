package dnsmsg

import (
	"fmt"

	"github.com/anvere/dnswire/internal/helpers"
)

// Message is a complete DNS message (RFC 1035 §4): a header plus the four
// ordered sections. Section counts are not stored directly — they are
// computed from the slice lengths on encode and must equal the header's
// counts on decode.
type Message struct {
	ID                  uint16
	Type                MessageType
	OperationCode       OperationCode
	AuthoritativeAnswer bool
	Truncation          bool
	RecursionDesired    bool
	RecursionAvailable  bool
	ReturnCode          ReturnCode
	Questions           []Question
	Answers             []ResourceRecord
	Authorities         []ResourceRecord
	Additional          []ResourceRecord
}

// maxPreallocRecords bounds how much capacity a single decode call will
// eagerly reserve for a section based on the header's declared count,
// regardless of how large that count claims to be. A header lying about
// its counts can only make the decode fail later (when the claimed
// records aren't actually there) — it can't force a multi-gigabyte
// allocation up front.
const maxPreallocRecords = 512

func preallocLen(declared uint16) int {
	return helpers.ClampInt(int(declared), 0, maxPreallocRecords)
}

// EncodeUDP serializes m to its datagram wire form (§4.6). It never
// truncates; callers set Truncation themselves when they intend to send a
// message too large for the path MTU. The returned slice is owned by the
// caller.
func EncodeUDP(m Message) ([]byte, error) {
	w := newBufferFrom(getEncodeBuffer())
	compressor := newNameCompressor()

	w.writeUint16(m.ID)
	w.writeUint16(packFlags(m))
	w.writeUint16(uint16(len(m.Questions)))
	w.writeUint16(uint16(len(m.Answers)))
	w.writeUint16(uint16(len(m.Authorities)))
	w.writeUint16(uint16(len(m.Additional)))

	for _, q := range m.Questions {
		if err := EncodeQuestion(w, compressor, q); err != nil {
			return nil, err
		}
	}
	for _, section := range [][]ResourceRecord{m.Answers, m.Authorities, m.Additional} {
		for _, rr := range section {
			if err := EncodeResourceRecord(w, compressor, rr); err != nil {
				return nil, err
			}
		}
	}

	out := make([]byte, len(w.b))
	copy(out, w.b)
	putEncodeBuffer(w.b)
	return out, nil
}

// DecodeUDP parses a datagram-form message (§4.6). A buffer shorter than
// the 12-byte header is ErrInvalidMessageSize; every question and record
// is decoded in wire order, and the cursor must land exactly on the next
// boundary after each.
func DecodeUDP(buf []byte) (Message, error) {
	if len(buf) < headerSize {
		return Message{}, fmt.Errorf("message is %d bytes, need at least %d: %w", len(buf), headerSize, ErrInvalidMessageSize)
	}

	c := newCursor(buf)
	id, err := c.readUint16()
	if err != nil {
		return Message{}, err
	}
	flags, err := c.readUint16()
	if err != nil {
		return Message{}, err
	}
	qdcount, err := c.readUint16()
	if err != nil {
		return Message{}, err
	}
	ancount, err := c.readUint16()
	if err != nil {
		return Message{}, err
	}
	nscount, err := c.readUint16()
	if err != nil {
		return Message{}, err
	}
	arcount, err := c.readUint16()
	if err != nil {
		return Message{}, err
	}

	m := Message{ID: id}
	unpackFlags(&m, flags)

	pos := c.pos

	m.Questions = make([]Question, 0, preallocLen(qdcount))
	for i := uint16(0); i < qdcount; i++ {
		q, err := DecodeQuestion(buf, &pos)
		if err != nil {
			return Message{}, fmt.Errorf("decoding question %d: %w", i, err)
		}
		m.Questions = append(m.Questions, q)
	}

	for _, dst := range []struct {
		count uint16
		out   *[]ResourceRecord
		label string
	}{
		{ancount, &m.Answers, "answer"},
		{nscount, &m.Authorities, "authority"},
		{arcount, &m.Additional, "additional"},
	} {
		*dst.out = make([]ResourceRecord, 0, preallocLen(dst.count))
		for i := uint16(0); i < dst.count; i++ {
			rr, err := DecodeResourceRecord(buf, &pos)
			if err != nil {
				return Message{}, fmt.Errorf("decoding %s record %d: %w", dst.label, i, err)
			}
			*dst.out = append(*dst.out, rr)
		}
	}

	return m, nil
}

// EncodeTCP serializes m with a 2-byte big-endian length prefix in front
// of its datagram form (§4.6). The datagram form must be at most 65,535
// bytes; exceeding that is a caller error, not a decode failure, so it
// surfaces as a plain error rather than one of the named decode sentinels.
func EncodeTCP(m Message) ([]byte, error) {
	datagram, err := EncodeUDP(m)
	if err != nil {
		return nil, err
	}
	if len(datagram) > 0xFFFF {
		return nil, fmt.Errorf("dnsmsg: encoded message is %d bytes, exceeds TCP framing limit of 65535", len(datagram))
	}
	out := make([]byte, 2+len(datagram))
	out[0] = byte(len(datagram) >> 8)
	out[1] = byte(len(datagram))
	copy(out[2:], datagram)
	return out, nil
}

// DecodeTCP reads the 2-byte length prefix and decodes exactly that many
// following bytes. The buffer must already contain at least the prefix
// plus the declared length; a short buffer here is a caller bug (the
// transport layer didn't finish reading the frame), not a wire-format
// decode error, so it is reported distinctly from ErrInvalidMessageSize.
func DecodeTCP(buf []byte) (Message, error) {
	if len(buf) < 2 {
		return Message{}, fmt.Errorf("dnsmsg: TCP frame shorter than its 2-byte length prefix")
	}
	length := int(buf[0])<<8 | int(buf[1])
	if len(buf) < 2+length {
		return Message{}, fmt.Errorf("dnsmsg: TCP frame declares %d bytes but only %d available", length, len(buf)-2)
	}
	return DecodeUDP(buf[2 : 2+length])
}
