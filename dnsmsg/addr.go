package dnsmsg

import (
	"fmt"
	"net"
)

// IPv4Addr is the 4-byte network-order address carried in an A record's
// RDATA (RFC 1035 §3.4.1).
type IPv4Addr [4]byte

// IPv6Addr is the 16-byte network-order address carried in an AAAA
// record's RDATA (RFC 3596 §2.2).
type IPv6Addr [16]byte

// String renders the address in its usual textual presentation. Textual
// parsing/formatting is a thin adapter over net.IP, not part of the wire
// codec this package specifies.
func (a IPv4Addr) String() string { return net.IP(a[:]).String() }

// String renders the address in its usual textual presentation.
func (a IPv6Addr) String() string { return net.IP(a[:]).String() }

// ParseIPv4Addr adapts a net.IP (or any 4-byte representation) into the
// wire value type. It fails if ip is not a valid IPv4 address.
func ParseIPv4Addr(ip net.IP) (IPv4Addr, error) {
	v4 := ip.To4()
	if v4 == nil {
		return IPv4Addr{}, fmt.Errorf("%v is not an IPv4 address: %w", ip, ErrInvalidIPAddress)
	}
	var a IPv4Addr
	copy(a[:], v4)
	return a, nil
}

// ParseIPv6Addr adapts a net.IP into the wire value type. It fails if ip
// cannot be represented in 16 bytes.
func ParseIPv6Addr(ip net.IP) (IPv6Addr, error) {
	v6 := ip.To16()
	if v6 == nil {
		return IPv6Addr{}, fmt.Errorf("%v is not an IPv6 address: %w", ip, ErrInvalidIPAddress)
	}
	var a IPv6Addr
	copy(a[:], v6)
	return a, nil
}
