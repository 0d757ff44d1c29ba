package dnsmsg

import "fmt"

// ServiceRecord is an SRV record (RFC 2782): priority, weight, port, and a
// compressible target name. Used heavily by DNS-SD (RFC 6763).
type ServiceRecord struct {
	H        RRHeader
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

// NewServiceRecord builds an SRV record.
func NewServiceRecord(name string, ttl uint32, class RRClass, unique bool, priority, weight, port uint16, target string) *ServiceRecord {
	return &ServiceRecord{
		H:        RRHeader{Name: name, Type: TypeSRV, Class: class, Unique: unique, TTL: ttl},
		Priority: priority,
		Weight:   weight,
		Port:     port,
		Target:   target,
	}
}

func (r *ServiceRecord) Header() RRHeader { return r.H }

func (r *ServiceRecord) marshalRData(w *buffer, c *nameCompressor) error {
	w.writeUint16(r.Priority)
	w.writeUint16(r.Weight)
	w.writeUint16(r.Port)
	return EncodeName(w, c, r.Target)
}

func decodeSRVRData(msg []byte, cursor *int, h RRHeader) (ResourceRecord, error) {
	c := newCursor(msg)
	c.pos = *cursor
	priority, err := c.readUint16()
	if err != nil {
		return nil, fmt.Errorf("decoding SRV priority: %w", err)
	}
	weight, err := c.readUint16()
	if err != nil {
		return nil, fmt.Errorf("decoding SRV weight: %w", err)
	}
	port, err := c.readUint16()
	if err != nil {
		return nil, fmt.Errorf("decoding SRV port: %w", err)
	}
	*cursor = c.pos

	target, err := DecodeName(msg, cursor)
	if err != nil {
		return nil, fmt.Errorf("decoding SRV target: %w", err)
	}

	return &ServiceRecord{H: h, Priority: priority, Weight: weight, Port: port, Target: target}, nil
}
