package dnsmsg

import (
	"fmt"
	"strings"
)

// maxTXTEntryLength is the largest a single TXT character-string may be
// (RFC 1035 §3.3: one length byte, 0-255).
const maxTXTEntryLength = 255

// TextRecord is a TXT record (RFC 1035 §3.3.14): a concatenation of
// length-prefixed character-strings. Entries containing "=" decode into
// Attrs as a key/value pair (RFC 6763 §6 TXT attribute convention);
// entries without "=" decode into Strings. Encoding emits both: Attrs
// first (as "key=value" entries, in insertion order via AttrOrder), then
// Strings — a decode-then-encode round trip is lossless for either shape.
type TextRecord struct {
	H       RRHeader
	Attrs   map[string]string
	// AttrOrder preserves the order attribute entries were first seen (or
	// added), since Go map iteration order is unspecified and an mDNS
	// TXT record's entry order can carry meaning (RFC 6763 §6.4).
	AttrOrder []string
	Strings   []string
}

// NewTextRecord builds an empty TXT record ready to have Attrs/Strings
// populated.
func NewTextRecord(name string, ttl uint32, class RRClass, unique bool) *TextRecord {
	return &TextRecord{
		H:     RRHeader{Name: name, Type: TypeTXT, Class: class, Unique: unique, TTL: ttl},
		Attrs: make(map[string]string),
	}
}

// SetAttr sets a key/value attribute, recording key in AttrOrder the
// first time it is set.
func (r *TextRecord) SetAttr(key, value string) {
	if r.Attrs == nil {
		r.Attrs = make(map[string]string)
	}
	if _, exists := r.Attrs[key]; !exists {
		r.AttrOrder = append(r.AttrOrder, key)
	}
	r.Attrs[key] = value
}

func (r *TextRecord) Header() RRHeader { return r.H }

func (r *TextRecord) marshalRData(w *buffer, _ *nameCompressor) error {
	for _, key := range r.AttrOrder {
		value, ok := r.Attrs[key]
		if !ok {
			continue
		}
		if err := writeTXTEntry(w, key+"="+value); err != nil {
			return fmt.Errorf("encoding TXT attribute %q: %w", key, err)
		}
	}
	// Attrs set directly (bypassing SetAttr) without an AttrOrder entry
	// still need to be emitted; append them after the ordered ones.
	for key, value := range r.Attrs {
		if containsString(r.AttrOrder, key) {
			continue
		}
		if err := writeTXTEntry(w, key+"="+value); err != nil {
			return fmt.Errorf("encoding TXT attribute %q: %w", key, err)
		}
	}
	for _, s := range r.Strings {
		if err := writeTXTEntry(w, s); err != nil {
			return fmt.Errorf("encoding TXT string: %w", err)
		}
	}
	return nil
}

func writeTXTEntry(w *buffer, s string) error {
	b := []byte(s)
	if len(b) > maxTXTEntryLength {
		return fmt.Errorf("TXT character-string %q exceeds %d bytes: %w", s, maxTXTEntryLength, ErrDNSMessage)
	}
	w.writeUint8(uint8(len(b)))
	w.writeBytes(b)
	return nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func decodeTXTRData(msg []byte, cursor *int, h RRHeader, rdlen int) (ResourceRecord, error) {
	c := newCursor(msg)
	c.pos = *cursor
	end := c.pos + rdlen

	rr := &TextRecord{H: h, Attrs: make(map[string]string)}
	for c.pos < end {
		length, err := c.readUint8()
		if err != nil {
			return nil, fmt.Errorf("decoding TXT entry length: %w", err)
		}
		if c.pos+int(length) > end {
			return nil, fmt.Errorf("TXT entry of %d bytes runs past declared rdlength: %w", length, ErrInvalidDataSize)
		}
		b, err := c.readBytes(int(length))
		if err != nil {
			return nil, fmt.Errorf("decoding TXT entry: %w", err)
		}
		s := string(b)
		if key, value, ok := strings.Cut(s, "="); ok {
			rr.SetAttr(key, value)
		} else {
			rr.Strings = append(rr.Strings, s)
		}
	}
	*cursor = c.pos
	return rr, nil
}
