package dnsmsg

// OpaqueRecord preserves the raw RDATA bytes of a record whose type this
// package does not have a typed variant for (§4.3). It re-emits those
// bytes verbatim, so an unrecognized record round-trips byte-for-byte
// even though this package never interprets its contents.
type OpaqueRecord struct {
	H    RRHeader
	Data []byte
}

// NewOpaqueRecord builds an opaque record carrying data verbatim.
func NewOpaqueRecord(name string, rrType RRType, ttl uint32, class RRClass, unique bool, data []byte) *OpaqueRecord {
	return &OpaqueRecord{
		H:    RRHeader{Name: name, Type: rrType, Class: class, Unique: unique, TTL: ttl},
		Data: data,
	}
}

func (r *OpaqueRecord) Header() RRHeader { return r.H }

func (r *OpaqueRecord) marshalRData(w *buffer, _ *nameCompressor) error {
	w.writeBytes(r.Data)
	return nil
}

func decodeOpaqueRData(msg []byte, cursor *int, h RRHeader, rdlen int) (ResourceRecord, error) {
	c := newCursor(msg)
	c.pos = *cursor
	data, err := c.readBytes(rdlen)
	if err != nil {
		return nil, err
	}
	*cursor = c.pos
	return &OpaqueRecord{H: h, Data: data}, nil
}
