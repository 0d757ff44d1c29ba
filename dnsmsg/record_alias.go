package dnsmsg

// AliasRecord is a CNAME record: RDATA is a single compressible name
// (RFC 1035 §3.3.1).
type AliasRecord struct {
	H      RRHeader
	Target string
}

// NewAliasRecord builds a CNAME record pointing at target.
func NewAliasRecord(name string, ttl uint32, class RRClass, unique bool, target string) *AliasRecord {
	return &AliasRecord{
		H:      RRHeader{Name: name, Type: TypeCNAME, Class: class, Unique: unique, TTL: ttl},
		Target: target,
	}
}

func (r *AliasRecord) Header() RRHeader { return r.H }

func (r *AliasRecord) marshalRData(w *buffer, c *nameCompressor) error {
	return EncodeName(w, c, r.Target)
}

func decodeAliasRData(msg []byte, cursor *int, h RRHeader) (ResourceRecord, error) {
	target, err := DecodeName(msg, cursor)
	if err != nil {
		return nil, err
	}
	return &AliasRecord{H: h, Target: target}, nil
}

// PointerRecord is a PTR record: RDATA is a single compressible name
// (RFC 1035 §3.3.12), used for reverse DNS and for DNS-SD service
// enumeration (RFC 6763 §4).
type PointerRecord struct {
	H      RRHeader
	Target string
}

// NewPointerRecord builds a PTR record pointing at target.
func NewPointerRecord(name string, ttl uint32, class RRClass, unique bool, target string) *PointerRecord {
	return &PointerRecord{
		H:      RRHeader{Name: name, Type: TypePTR, Class: class, Unique: unique, TTL: ttl},
		Target: target,
	}
}

func (r *PointerRecord) Header() RRHeader { return r.H }

func (r *PointerRecord) marshalRData(w *buffer, c *nameCompressor) error {
	return EncodeName(w, c, r.Target)
}

func decodePointerRData(msg []byte, cursor *int, h RRHeader) (ResourceRecord, error) {
	target, err := DecodeName(msg, cursor)
	if err != nil {
		return nil, err
	}
	return &PointerRecord{H: h, Target: target}, nil
}
