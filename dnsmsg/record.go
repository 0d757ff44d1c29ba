package dnsmsg

import "fmt"

// RRHeader holds the fields common to every resource record (RFC 1035
// §4.1.3): the owner name, type, class (with the mDNS cache-flush bit
// split out as Unique per RFC 6762 §10.2), and TTL.
type RRHeader struct {
	Name   string
	Type   RRType
	Unique bool
	Class  RRClass
	TTL    uint32
}

// ResourceRecord is the sum type of every resource record variant this
// package knows how to serialize: HostRecord, AliasRecord, PointerRecord,
// StartOfAuthorityRecord, TextRecord, ServiceRecord and OpaqueRecord. It is
// intentionally not implementable outside this package (marshalRData is
// unexported) — the variant set is closed; an unrecognized wire type
// decodes to OpaqueRecord rather than growing the set.
type ResourceRecord interface {
	Header() RRHeader
	marshalRData(w *buffer, c *nameCompressor) error
}

// EncodeResourceRecord writes rr's common fields and RDATA to w, emitting
// a 2-byte RDLENGTH placeholder before the RDATA and back-patching it once
// the RDATA (and any name compression within it) has been written. This
// back-patch is required because name compression inside RDATA changes the
// RDATA's length relative to an uncompressed encoding.
func EncodeResourceRecord(w *buffer, c *nameCompressor, rr ResourceRecord) error {
	h := rr.Header()
	if err := EncodeName(w, c, h.Name); err != nil {
		return fmt.Errorf("encoding record name %q: %w", h.Name, err)
	}
	w.writeUint16(uint16(h.Type))
	w.writeUint16(classField(h.Class, h.Unique))
	w.writeUint32(h.TTL)

	rdlenAt := w.offset()
	w.writeUint16(0) // placeholder, back-patched below
	rdataStart := w.offset()

	if err := rr.marshalRData(w, c); err != nil {
		return fmt.Errorf("encoding %s record rdata for %q: %w", h.Type, h.Name, err)
	}
	rdlen := w.offset() - rdataStart
	w.patchUint16(rdlenAt, uint16(rdlen))
	return nil
}

// DecodeResourceRecord reads one resource record starting at *cursor in
// msg, dispatching RDATA parsing by RR type (§4.3); an unrecognized type
// decodes to *OpaqueRecord, preserving its raw RDATA bytes verbatim.
func DecodeResourceRecord(msg []byte, cursor *int) (ResourceRecord, error) {
	name, err := DecodeName(msg, cursor)
	if err != nil {
		return nil, fmt.Errorf("decoding record name: %w", err)
	}

	c := newCursor(msg)
	c.pos = *cursor
	rawType, err := c.readUint16()
	if err != nil {
		return nil, fmt.Errorf("decoding record type for %q: %w", name, err)
	}
	rawClass, err := c.readUint16()
	if err != nil {
		return nil, fmt.Errorf("decoding record class for %q: %w", name, err)
	}
	ttl, err := c.readUint32()
	if err != nil {
		return nil, fmt.Errorf("decoding record ttl for %q: %w", name, err)
	}
	rdlen, err := c.readUint16()
	if err != nil {
		return nil, fmt.Errorf("decoding record rdlength for %q: %w", name, err)
	}
	*cursor = c.pos

	rdataStart := *cursor
	rdataEnd := rdataStart + int(rdlen)
	if rdataEnd > len(msg) {
		return nil, fmt.Errorf("record %q rdata (%d bytes) runs past end of message: %w", name, rdlen, ErrInvalidDataSize)
	}

	h := RRHeader{
		Name:   name,
		Type:   RRType(rawType),
		Unique: rawClass&classUniqueBit != 0,
		Class:  RRClass(rawClass & classMask),
		TTL:    ttl,
	}

	rr, err := decodeRData(msg, cursor, h, int(rdlen))
	if err != nil {
		return nil, err
	}
	if *cursor != rdataEnd {
		return nil, fmt.Errorf("record %q rdata cursor at %d, expected %d: %w", name, *cursor, rdataEnd, ErrInvalidDataSize)
	}
	return rr, nil
}

// classField packs a class value and the mDNS unique/cache-flush bit into
// the 16-bit wire class field.
func classField(class RRClass, unique bool) uint16 {
	v := uint16(class) & classMask
	if unique {
		v |= classUniqueBit
	}
	return v
}
