// Package dnsmsg encodes and decodes DNS protocol messages on the wire.
//
// It implements the binary packet layout from RFC 1035 (classic DNS), the
// UPDATE opcodes and return codes from RFC 2136, and the mDNS cache-flush
// bit convention used by multicast DNS and DNS-SD. It is a pure codec: no
// network I/O, no caching, no recursion, no DNSSEC, no EDNS(0). Callers that
// need those build them on top of Message, Question and ResourceRecord.
//
// Standards Compliance:
//
//   - RFC 1035: Domain Names - Implementation and Specification
//   - RFC 2136: Dynamic Updates in the Domain Name System (opcodes/rcodes)
//   - RFC 6762 §10.2: mDNS cache-flush bit
//   - RFC 6763: DNS-Based Service Discovery (SRV/TXT/PTR usage)
//
// Non-goals: DNSSEC records, EDNS(0) OPT records, zone-file text format,
// resolver caching, recursion, and IDNA/Punycode conversion. Names are
// treated as already-encoded byte labels.
package dnsmsg

import (
	"errors"
	"fmt"
)

// ErrDNSMessage is the sentinel wrapped by every decode error this package
// returns, including each of the more specific sentinels below (DecodeTCP's
// short-frame errors are the exception; see DecodeTCP). Callers can test
// errors.Is(err, ErrDNSMessage) for "this was a decode failure" or test
// against one of the more specific sentinels below for the exact cause.
var ErrDNSMessage = errors.New("dnsmsg: malformed message")

// Decode errors. Unknown OPCODE, RCODE, class and RR type values are NOT
// errors — they round-trip as plain integers.
var (
	// ErrInvalidMessageSize means the buffer was shorter than the 12-byte
	// header. A TCP frame shorter than its declared length prefix is not
	// reported with this sentinel (see DecodeTCP).
	ErrInvalidMessageSize = fmt.Errorf("%w: invalid message size", ErrDNSMessage)
	// ErrInvalidLabelSize means a label length byte would run past the
	// end of the buffer, or used a reserved high-bit pattern (0x40/0x80).
	ErrInvalidLabelSize = fmt.Errorf("%w: invalid label size", ErrDNSMessage)
	// ErrInvalidLabelOffset means a compression pointer's target was out
	// of range, or did not point strictly before the start of the name
	// containing the pointer.
	ErrInvalidLabelOffset = fmt.Errorf("%w: invalid label offset", ErrDNSMessage)
	// ErrUnicodeDecoding means label bytes were not valid UTF-8.
	ErrUnicodeDecoding = fmt.Errorf("%w: invalid label encoding", ErrDNSMessage)
	// ErrInvalidIntegerSize means a fixed-width integer read ran past the
	// end of the buffer.
	ErrInvalidIntegerSize = fmt.Errorf("%w: invalid integer size", ErrDNSMessage)
	// ErrInvalidIPAddress means an A/AAAA RDLENGTH was not 4/16, or the
	// address bytes could not be read.
	ErrInvalidIPAddress = fmt.Errorf("%w: invalid ip address", ErrDNSMessage)
	// ErrInvalidDataSize means a structured record's RDATA cursor did not
	// land exactly on the declared RDLENGTH boundary.
	ErrInvalidDataSize = fmt.Errorf("%w: invalid rdata size", ErrDNSMessage)
)
