package dnsmsg

import "fmt"

// MessageType distinguishes a query from a response — the QR bit of the
// header (RFC 1035 §4.1.1).
type MessageType uint8

const (
	Query    MessageType = 0
	Response MessageType = 1
)

// OperationCode is the 4-bit OPCODE field. Standard values are named;
// others are accepted and round-tripped as plain integers (RFC 1035
// §4.1.1, RFC 2136 §1.3 for Update/Notify).
type OperationCode uint8

const (
	OpQuery  OperationCode = 0
	OpIQuery OperationCode = 1
	OpStatus OperationCode = 2
	OpNotify OperationCode = 4
	OpUpdate OperationCode = 5
)

// ReturnCode is the 4-bit RCODE field. RFC 1035 defines 0-5; RFC 2136 adds
// 6-10 for UPDATE. Other values are accepted and round-tripped.
type ReturnCode uint8

const (
	RCodeNoError  ReturnCode = 0
	RCodeFormErr  ReturnCode = 1
	RCodeServFail ReturnCode = 2
	RCodeNXDomain ReturnCode = 3
	RCodeNotImp   ReturnCode = 4
	RCodeRefused  ReturnCode = 5
	RCodeYXDomain ReturnCode = 6 // RFC 2136: name exists when it should not
	RCodeYXRRSet  ReturnCode = 7 // RFC 2136: RR set exists when it should not
	RCodeNXRRSet  ReturnCode = 8 // RFC 2136: RR set that should exist does not
	RCodeNotAuth  ReturnCode = 9 // RFC 2136: server not authoritative / not authorized
	RCodeNotZone  ReturnCode = 10
)

// String renders known return codes by name and falls back to "RCODE<n>".
func (r ReturnCode) String() string {
	switch r {
	case RCodeNoError:
		return "NOERROR"
	case RCodeFormErr:
		return "FORMERR"
	case RCodeServFail:
		return "SERVFAIL"
	case RCodeNXDomain:
		return "NXDOMAIN"
	case RCodeNotImp:
		return "NOTIMP"
	case RCodeRefused:
		return "REFUSED"
	case RCodeYXDomain:
		return "YXDOMAIN"
	case RCodeYXRRSet:
		return "YXRRSET"
	case RCodeNXRRSet:
		return "NXRRSET"
	case RCodeNotAuth:
		return "NOTAUTH"
	case RCodeNotZone:
		return "NOTZONE"
	default:
		return fmt.Sprintf("RCODE%d", uint8(r))
	}
}

// RRType is the 16-bit resource record type code (RFC 1035 §3.2.2, RFC
// 3596 for AAAA, RFC 2782 for SRV).
type RRType uint16

const (
	TypeA     RRType = 0x0001
	TypeCNAME RRType = 0x0005
	TypeSOA   RRType = 0x0006
	TypePTR   RRType = 0x000C
	TypeTXT   RRType = 0x0010
	TypeAAAA  RRType = 0x001C
	TypeSRV   RRType = 0x0021
)

// String renders known type codes by name and falls back to "TYPE<n>" for
// anything outside the closed variant set (which still round-trips fine
// via OpaqueRecord; this is just for readable error messages and logs).
func (t RRType) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeCNAME:
		return "CNAME"
	case TypeSOA:
		return "SOA"
	case TypePTR:
		return "PTR"
	case TypeTXT:
		return "TXT"
	case TypeAAAA:
		return "AAAA"
	case TypeSRV:
		return "SRV"
	default:
		return fmt.Sprintf("TYPE%d", uint16(t))
	}
}

// RRClass is the 16-bit class field. ClassIN is by far the common case; the
// mDNS cache-flush / unicast-response bit (the class field's high bit) is
// modeled separately as ResourceRecord.Unique / Question.Unique, not as
// part of this value.
type RRClass uint16

const ClassIN RRClass = 1

// classUniqueBit is the high bit of the class field, reused by mDNS
// (RFC 6762 §10.2) as the cache-flush bit on records and the
// unicast-response bit on questions.
const classUniqueBit uint16 = 0x8000

// classMask isolates the 15-bit class value, masking off the unique bit.
const classMask uint16 = 0x7FFF
