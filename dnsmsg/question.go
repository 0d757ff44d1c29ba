package dnsmsg

import "fmt"

// Question is one entry of the question section (RFC 1035 §4.1.2). Unique
// is the high bit of the class field, reused by mDNS (RFC 6762 §5.4) to
// request a unicast rather than multicast response.
type Question struct {
	Name   string
	Type   RRType
	Unique bool
	Class  RRClass
}

// EncodeQuestion writes q's wire form: name, type, class (with the
// unicast-response bit ORed in when q.Unique).
func EncodeQuestion(w *buffer, c *nameCompressor, q Question) error {
	if err := EncodeName(w, c, q.Name); err != nil {
		return fmt.Errorf("encoding question name %q: %w", q.Name, err)
	}
	w.writeUint16(uint16(q.Type))
	w.writeUint16(classField(q.Class, q.Unique))
	return nil
}

// DecodeQuestion reads one question starting at *cursor, advancing past
// it on success.
func DecodeQuestion(msg []byte, cursor *int) (Question, error) {
	name, err := DecodeName(msg, cursor)
	if err != nil {
		return Question{}, fmt.Errorf("decoding question name: %w", err)
	}

	c := newCursor(msg)
	c.pos = *cursor
	rawType, err := c.readUint16()
	if err != nil {
		return Question{}, fmt.Errorf("decoding question type for %q: %w", name, err)
	}
	rawClass, err := c.readUint16()
	if err != nil {
		return Question{}, fmt.Errorf("decoding question class for %q: %w", name, err)
	}
	*cursor = c.pos

	return Question{
		Name:   name,
		Type:   RRType(rawType),
		Unique: rawClass&classUniqueBit != 0,
		Class:  RRClass(rawClass & classMask),
	}, nil
}
