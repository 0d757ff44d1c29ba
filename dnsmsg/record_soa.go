package dnsmsg

import "fmt"

// StartOfAuthorityRecord is a SOA record (RFC 1035 §3.3.13): two
// compressible names followed by five 32-bit timing fields.
type StartOfAuthorityRecord struct {
	H       RRHeader
	MName   string // primary nameserver
	RName   string // responsible-party mailbox, encoded as a name
	Serial  uint32
	Refresh int32
	Retry   int32
	Expire  int32
	Minimum uint32
}

// NewStartOfAuthorityRecord builds a SOA record.
func NewStartOfAuthorityRecord(name string, ttl uint32, class RRClass, unique bool, mname, rname string, serial uint32, refresh, retry, expire int32, minimum uint32) *StartOfAuthorityRecord {
	return &StartOfAuthorityRecord{
		H:       RRHeader{Name: name, Type: TypeSOA, Class: class, Unique: unique, TTL: ttl},
		MName:   mname,
		RName:   rname,
		Serial:  serial,
		Refresh: refresh,
		Retry:   retry,
		Expire:  expire,
		Minimum: minimum,
	}
}

func (r *StartOfAuthorityRecord) Header() RRHeader { return r.H }

func (r *StartOfAuthorityRecord) marshalRData(w *buffer, c *nameCompressor) error {
	if err := EncodeName(w, c, r.MName); err != nil {
		return fmt.Errorf("encoding SOA mname: %w", err)
	}
	if err := EncodeName(w, c, r.RName); err != nil {
		return fmt.Errorf("encoding SOA rname: %w", err)
	}
	w.writeUint32(r.Serial)
	w.writeInt32(r.Refresh)
	w.writeInt32(r.Retry)
	w.writeInt32(r.Expire)
	w.writeUint32(r.Minimum)
	return nil
}

func decodeSOARData(msg []byte, cursor *int, h RRHeader) (ResourceRecord, error) {
	mname, err := DecodeName(msg, cursor)
	if err != nil {
		return nil, fmt.Errorf("decoding SOA mname: %w", err)
	}
	rname, err := DecodeName(msg, cursor)
	if err != nil {
		return nil, fmt.Errorf("decoding SOA rname: %w", err)
	}

	c := newCursor(msg)
	c.pos = *cursor
	serial, err := c.readUint32()
	if err != nil {
		return nil, fmt.Errorf("decoding SOA serial: %w", err)
	}
	refresh, err := c.readInt32()
	if err != nil {
		return nil, fmt.Errorf("decoding SOA refresh: %w", err)
	}
	retry, err := c.readInt32()
	if err != nil {
		return nil, fmt.Errorf("decoding SOA retry: %w", err)
	}
	expire, err := c.readInt32()
	if err != nil {
		return nil, fmt.Errorf("decoding SOA expire: %w", err)
	}
	minimum, err := c.readUint32()
	if err != nil {
		return nil, fmt.Errorf("decoding SOA minimum: %w", err)
	}
	*cursor = c.pos

	return &StartOfAuthorityRecord{
		H: h, MName: mname, RName: rname,
		Serial: serial, Refresh: refresh, Retry: retry, Expire: expire, Minimum: minimum,
	}, nil
}
