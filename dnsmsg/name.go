package dnsmsg

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxLabelLength is the largest a single label may be (RFC 1035 §3.1): the
// two high bits of the length byte are reserved for the compression
// pointer tag, leaving 6 bits (0..63) for a literal label length.
const maxLabelLength = 63

// pointerTagMask isolates the top two bits of a length byte. Both bits set
// (0xC0) means "this is a compression pointer, not a label length".
const pointerTagMask = 0xC0

// pointerOffsetMask extracts the 14-bit offset once the tag bits are known
// to both be set.
const pointerOffsetMask = 0x3FFF

// DecodeName decodes a domain name starting at *cursor in msg, per RFC 1035
// §4.1.4 pointer compression. It returns the name as a dot-separated
// string with a trailing "." (the root label), and advances *cursor past
// the encoded name — for a compressed name, past only the two pointer
// bytes, never into the pointed-to region.
//
// DecodeName rejects with ErrInvalidLabelOffset any pointer whose target is
// not strictly before the offset at which the name being decoded starts
// (and so strictly backward of the pointer itself). Every pointer hop thus
// restarts decoding at a smaller offset, which bounds the recursion depth
// by the message length, so no separate recursion-depth limit is needed.
func DecodeName(msg []byte, cursor *int) (string, error) {
	if cursor == nil {
		return "", fmt.Errorf("decoding name: nil cursor: %w", ErrDNSMessage)
	}
	var labels []string
	pos := *cursor
	start := pos
	for {
		if pos < 0 || pos >= len(msg) {
			return "", fmt.Errorf("decoding name at offset %d: %w", pos, ErrInvalidLabelSize)
		}
		length := msg[pos]

		if length == 0 {
			pos++
			break
		}

		if length&pointerTagMask == pointerTagMask {
			if pos+2 > len(msg) {
				return "", fmt.Errorf("decoding pointer at offset %d: %w", pos, ErrInvalidLabelOffset)
			}
			target := (int(length&^pointerTagMask) << 8) | int(msg[pos+1])
			if target >= start {
				return "", fmt.Errorf("pointer at offset %d targets %d (not strictly before name start %d): %w", pos, target, start, ErrInvalidLabelOffset)
			}
			suffixCursor := target
			suffix, err := DecodeName(msg, &suffixCursor)
			if err != nil {
				return "", err
			}
			for _, l := range strings.Split(suffix, ".") {
				if l != "" {
					labels = append(labels, l)
				}
			}
			pos += 2
			break
		}

		if length&pointerTagMask != 0 {
			// Exactly one high bit set (0x40 or 0x80) is reserved.
			return "", fmt.Errorf("reserved label length tag at offset %d: %w", pos, ErrInvalidLabelSize)
		}

		labelLen := int(length)
		start := pos + 1
		end := start + labelLen
		if end > len(msg) {
			return "", fmt.Errorf("label at offset %d runs past end of message: %w", pos, ErrInvalidLabelSize)
		}
		label := msg[start:end]
		if !utf8.Valid(label) {
			return "", fmt.Errorf("label at offset %d is not valid UTF-8: %w", pos, ErrUnicodeDecoding)
		}
		labels = append(labels, string(label))
		pos = end
	}

	*cursor = pos
	return joinName(labels), nil
}

func joinName(labels []string) string {
	if len(labels) == 0 {
		return "."
	}
	var b strings.Builder
	for _, l := range labels {
		b.WriteString(l)
		b.WriteByte('.')
	}
	return b.String()
}

// nameCompressor memoizes, for a single encode call, the output offset at
// which each already-written name suffix was first emitted. Keying on the
// full dotted suffix (not just the first label) lets two names that only
// share a tail — "a.local." and "b.local." — still compress the shared
// "local." remainder.
type nameCompressor struct {
	offsets map[string]int
}

func newNameCompressor() *nameCompressor {
	return &nameCompressor{offsets: make(map[string]int)}
}

// EncodeName writes name (dot-separated, trailing dot optional) to w,
// compressing against any suffix previously written through the same
// nameCompressor. Pass a freshly constructed compressor per outbound
// message; compression offsets from one message must never be reused in
// another.
func EncodeName(w *buffer, compressor *nameCompressor, name string) error {
	if compressor == nil {
		compressor = newNameCompressor()
	}
	return encodeNameSuffix(w, compressor, name)
}

func encodeNameSuffix(w *buffer, c *nameCompressor, name string) error {
	key := strings.ToLower(strings.TrimSuffix(name, "."))
	if key == "" {
		if _, compressed := compressIfKnown(w, c, name); !compressed {
			w.writeUint8(0)
		}
		return nil
	}

	if _, compressed := compressIfKnown(w, c, name); compressed {
		return nil
	}

	c.offsets[key] = w.offset()

	labels := splitLabels(name)
	if len(labels) == 0 {
		w.writeUint8(0)
		return nil
	}

	first := labels[0]
	if len(first) > maxLabelLength {
		return fmt.Errorf("label %q exceeds %d bytes: %w", first, maxLabelLength, ErrDNSMessage)
	}
	w.writeUint8(uint8(len(first)))
	w.writeBytes([]byte(first))

	if len(labels) == 1 {
		w.writeUint8(0)
		return nil
	}
	return encodeNameSuffix(w, c, strings.Join(labels[1:], "."))
}

// compressIfKnown emits a 2-byte pointer for name if it (case-insensitively,
// ignoring a trailing dot) was already written through c, reporting whether
// it did so.
func compressIfKnown(w *buffer, c *nameCompressor, name string) (int, bool) {
	key := strings.ToLower(strings.TrimSuffix(name, "."))
	offset, ok := c.offsets[key]
	if !ok {
		return 0, false
	}
	w.writeUint16(uint16(pointerTagMask<<8) | uint16(offset&pointerOffsetMask))
	return offset, true
}

// splitLabels splits a dotted name into its non-empty label components.
func splitLabels(name string) []string {
	parts := strings.Split(name, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
