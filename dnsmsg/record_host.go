package dnsmsg

import "fmt"

// HostRecord is an A or AAAA record: a fixed-size network-order address
// (RFC 1035 §3.4.1, RFC 3596 §2.2). The wire type (A vs AAAA) is carried
// in RRHeader.Type and fixed at construction time by which New* function
// was used, or by the wire type the decoder read (an RDLENGTH that does
// not fit that type is rejected).
type HostRecord struct {
	H    RRHeader
	IPv4 IPv4Addr
	IPv6 IPv6Addr
	// IsV6 selects which of IPv4/IPv6 is populated. A HostRecord only ever
	// carries one address; the unused field is the zero value.
	IsV6 bool
}

// NewHostRecordV4 builds an A record for addr, owned by name.
func NewHostRecordV4(name string, ttl uint32, class RRClass, unique bool, addr IPv4Addr) *HostRecord {
	return &HostRecord{
		H:    RRHeader{Name: name, Type: TypeA, Class: class, Unique: unique, TTL: ttl},
		IPv4: addr,
	}
}

// NewHostRecordV6 builds an AAAA record for addr, owned by name.
func NewHostRecordV6(name string, ttl uint32, class RRClass, unique bool, addr IPv6Addr) *HostRecord {
	return &HostRecord{
		H:    RRHeader{Name: name, Type: TypeAAAA, Class: class, Unique: unique, TTL: ttl},
		IPv6: addr,
		IsV6: true,
	}
}

func (r *HostRecord) Header() RRHeader { return r.H }

func (r *HostRecord) marshalRData(w *buffer, _ *nameCompressor) error {
	if r.IsV6 {
		w.writeBytes(r.IPv6[:])
		return nil
	}
	w.writeBytes(r.IPv4[:])
	return nil
}

// decodeHostRData parses A/AAAA RDATA. RDLENGTH must be exactly 4 (A) or
// 16 (AAAA); anything else is ErrInvalidIPAddress, per §4.4.
func decodeHostRData(msg []byte, cursor *int, h RRHeader, rdlen int) (ResourceRecord, error) {
	c := newCursor(msg)
	c.pos = *cursor

	switch h.Type {
	case TypeA:
		if rdlen != 4 {
			return nil, fmt.Errorf("A record rdlength %d, want 4: %w", rdlen, ErrInvalidIPAddress)
		}
		b, err := c.readBytes(4)
		if err != nil {
			return nil, fmt.Errorf("reading A record address: %w", ErrInvalidIPAddress)
		}
		*cursor = c.pos
		var addr IPv4Addr
		copy(addr[:], b)
		return &HostRecord{H: h, IPv4: addr}, nil
	case TypeAAAA:
		if rdlen != 16 {
			return nil, fmt.Errorf("AAAA record rdlength %d, want 16: %w", rdlen, ErrInvalidIPAddress)
		}
		b, err := c.readBytes(16)
		if err != nil {
			return nil, fmt.Errorf("reading AAAA record address: %w", ErrInvalidIPAddress)
		}
		*cursor = c.pos
		var addr IPv6Addr
		copy(addr[:], b)
		return &HostRecord{H: h, IPv6: addr, IsV6: true}, nil
	default:
		return nil, fmt.Errorf("decodeHostRData called with non-host type %s: %w", h.Type, ErrDNSMessage)
	}
}
