package dnsmsg

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUDP_EmptyNXDOMAINResponse(t *testing.T) {
	m := Message{
		ID:         0x11B1,
		Type:       Response,
		ReturnCode: RCodeNXDomain,
	}
	got, err := EncodeUDP(m)
	require.NoError(t, err)
	assert.Equal(t, "11b180030000000000000000", hexDump(got))
}

func TestEncodeUDP_FlagsFullResponse(t *testing.T) {
	m := Message{
		ID:                  0x494D,
		Type:                Response,
		AuthoritativeAnswer: true,
		Truncation:          true,
		RecursionDesired:    true,
		RecursionAvailable:  true,
		ReturnCode:          RCodeNoError,
	}
	got, err := EncodeUDP(m)
	require.NoError(t, err)
	assert.Equal(t, "494d87800000000000000000", hexDump(got))
}

func TestDecodeUDP_EmptyNXDOMAINResponse(t *testing.T) {
	buf := fromHex("11b180030000000000000000")
	m, err := DecodeUDP(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x11B1), m.ID)
	assert.Equal(t, Response, m.Type)
	assert.Equal(t, RCodeNXDomain, m.ReturnCode)
	assert.False(t, m.AuthoritativeAnswer)
	assert.False(t, m.Truncation)
	assert.False(t, m.RecursionDesired)
	assert.False(t, m.RecursionAvailable)
	assert.Empty(t, m.Questions)
	assert.Empty(t, m.Answers)
}

func TestMessage_SinglePTRQuestionRoundTrip(t *testing.T) {
	m := Message{
		Type: Query,
		Questions: []Question{
			{Name: "_airplay._tcp._local.", Type: TypePTR, Class: ClassIN},
		},
	}
	buf, err := EncodeUDP(m)
	require.NoError(t, err)

	got, err := DecodeUDP(buf)
	require.NoError(t, err)
	assert.Equal(t, m.Type, got.Type)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, "_airplay._tcp._local.", got.Questions[0].Name)
	assert.Equal(t, TypePTR, got.Questions[0].Type)
}

func TestMessage_PTRQueryAndAnswerRoundTrip(t *testing.T) {
	const name = "_airplay._tcp._local."
	const destination = "example._airplay._tcp._local."

	m := Message{
		Type: Response,
		Questions: []Question{
			{Name: name, Type: TypePTR, Class: ClassIN},
		},
		Answers: []ResourceRecord{
			NewPointerRecord(name, 120, ClassIN, false, destination),
		},
	}

	buf, err := EncodeUDP(m)
	require.NoError(t, err)

	got, err := DecodeUDP(buf)
	require.NoError(t, err)
	require.Len(t, got.Answers, 1)
	ptr, ok := got.Answers[0].(*PointerRecord)
	require.True(t, ok)
	assert.Equal(t, destination, ptr.Target)
	assert.Equal(t, uint32(120), ptr.Header().TTL)
}

func TestMessage_MixedSectionsRoundTrip(t *testing.T) {
	v4, err := ParseIPv4Addr(net.ParseIP("10.0.1.2"))
	require.NoError(t, err)

	txt := NewTextRecord("example.local.", 60, ClassIN, false)
	txt.SetAttr("hello", "world")

	m := Message{
		Type: Response,
		Answers: []ResourceRecord{
			NewPointerRecord("_airplay._tcp.local.", 60, ClassIN, false, "example.local."),
			NewServiceRecord("example.local.", 60, ClassIN, false, 0, 0, 7000, "example.local."),
			NewHostRecordV4("example.local.", 60, ClassIN, false, v4),
			txt,
		},
	}

	buf, err := EncodeUDP(m)
	require.NoError(t, err)

	got, err := DecodeUDP(buf)
	require.NoError(t, err)
	require.Len(t, got.Answers, 4)

	host, ok := got.Answers[2].(*HostRecord)
	require.True(t, ok)
	assert.False(t, host.IsV6)
	assert.Equal(t, IPv4Addr{0x0a, 0x00, 0x01, 0x02}, host.IPv4)

	gotTXT, ok := got.Answers[3].(*TextRecord)
	require.True(t, ok)
	assert.Equal(t, "world", gotTXT.Attrs["hello"])
}

func TestDecodeName_CompressedExtraction(t *testing.T) {
	buf := fromHex(
		"000084000000000200000006075a6974686f656b0c5f6465766963652d696e666f045f746370056c6f63616c000010000100001194000d0c6d6f64656c3d4a3432644150085f616972706c6179c021000c000100001194000a075a6974686f656bc044")

	pos := 89
	name, err := DecodeName(buf, &pos)
	require.NoError(t, err)
	assert.Equal(t, "Zithoek._airplay._tcp.local.", name)
	assert.Equal(t, 99, pos)
}

func TestDecodeName_ForwardPointerRejected(t *testing.T) {
	// Length byte at offset 0 is a pointer (0xC0) whose target (offset 5)
	// is past its own position — forward, not strictly backward.
	buf := fromHex("c0050000000000")
	pos := 0
	_, err := DecodeName(buf, &pos)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLabelOffset)
}

func TestDecodeName_SelfPointerRejected(t *testing.T) {
	buf := fromHex("c000")
	pos := 0
	_, err := DecodeName(buf, &pos)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLabelOffset)
}

func TestProperty_RepeatedNameCompressesToSixBytes(t *testing.T) {
	base, err := EncodeUDP(Message{
		Questions: []Question{
			{Name: "example.local.", Type: TypeA, Class: ClassIN},
		},
	})
	require.NoError(t, err)

	withRepeat, err := EncodeUDP(Message{
		Questions: []Question{
			{Name: "example.local.", Type: TypeA, Class: ClassIN},
			{Name: "example.local.", Type: TypeA, Class: ClassIN},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, len(base)+6, len(withRepeat))
}

func TestProperty_SuffixCompressionSharesTail(t *testing.T) {
	buf, err := EncodeUDP(Message{
		Questions: []Question{
			{Name: "abc.def.ghi.jk.local.", Type: TypeA, Class: ClassIN},
			{Name: "def.ghi.jk.local.", Type: TypeA, Class: ClassIN},
		},
	})
	require.NoError(t, err)

	got, err := DecodeUDP(buf)
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, "abc.def.ghi.jk.local.", got.Questions[0].Name)
	assert.Equal(t, "def.ghi.jk.local.", got.Questions[1].Name)
}

func TestProperty_UniqueBitRoundTrips(t *testing.T) {
	m := Message{
		Type: Response,
		Answers: []ResourceRecord{
			NewAliasRecord("host.local.", 30, ClassIN, true, "target.local."),
		},
	}
	buf, err := EncodeUDP(m)
	require.NoError(t, err)

	got, err := DecodeUDP(buf)
	require.NoError(t, err)
	require.Len(t, got.Answers, 1)
	assert.True(t, got.Answers[0].Header().Unique)
}

func TestProperty_UnknownRRTypePreservedVerbatim(t *testing.T) {
	m := Message{
		Type: Response,
		Answers: []ResourceRecord{
			NewOpaqueRecord("weird.example.", 0x00FA, 30, ClassIN, false, []byte{0xDE, 0xAD, 0xBE, 0xEF}),
		},
	}
	buf, err := EncodeUDP(m)
	require.NoError(t, err)

	got, err := DecodeUDP(buf)
	require.NoError(t, err)
	require.Len(t, got.Answers, 1)
	opaque, ok := got.Answers[0].(*OpaqueRecord)
	require.True(t, ok)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, opaque.Data)

	reencoded, err := EncodeUDP(got)
	require.NoError(t, err)
	assert.Equal(t, buf, reencoded)
}

func TestDecodeUDP_RejectsShortBuffer(t *testing.T) {
	_, err := DecodeUDP([]byte{0x00, 0x01})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMessageSize)
}

func TestEncodeTCP_DecodeTCP_RoundTrip(t *testing.T) {
	m := Message{
		ID:   42,
		Type: Query,
		Questions: []Question{
			{Name: "example.com.", Type: TypeA, Class: ClassIN},
		},
	}
	framed, err := EncodeTCP(m)
	require.NoError(t, err)

	datagram, err := EncodeUDP(m)
	require.NoError(t, err)
	assert.Equal(t, len(datagram), int(framed[0])<<8|int(framed[1]))

	got, err := DecodeTCP(framed)
	require.NoError(t, err)
	assert.Equal(t, uint16(42), got.ID)
}

func TestDecodeTCP_RejectsShortFrame(t *testing.T) {
	_, err := DecodeTCP([]byte{0x00})
	require.Error(t, err)
}
