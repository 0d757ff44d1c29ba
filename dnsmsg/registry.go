package dnsmsg

// decodeRData dispatches RDATA parsing by RR type (§4.3): a pure mapping
// from the 16-bit type code to the variant decoder. Unknown codes fall
// through to OpaqueRecord, which copies rdlen bytes verbatim for
// re-emission — this is the only place new RR types need to be taught to
// the decoder, and the fallback means an unrecognized type never fails a
// decode.
func decodeRData(msg []byte, cursor *int, h RRHeader, rdlen int) (ResourceRecord, error) {
	switch h.Type {
	case TypeA, TypeAAAA:
		return decodeHostRData(msg, cursor, h, rdlen)
	case TypeCNAME:
		return decodeAliasRData(msg, cursor, h)
	case TypePTR:
		return decodePointerRData(msg, cursor, h)
	case TypeSOA:
		return decodeSOARData(msg, cursor, h)
	case TypeSRV:
		return decodeSRVRData(msg, cursor, h)
	case TypeTXT:
		return decodeTXTRData(msg, cursor, h, rdlen)
	default:
		return decodeOpaqueRData(msg, cursor, h, rdlen)
	}
}
