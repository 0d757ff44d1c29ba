package dnsmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackFlags_QueryAllBitsClear(t *testing.T) {
	f := packFlags(Message{Type: Query})
	assert.Equal(t, uint16(0), f)
}

func TestPackFlags_ResponseSetsQRBit(t *testing.T) {
	f := packFlags(Message{Type: Response})
	assert.Equal(t, flagQR, f)
}

func TestPackFlags_OpcodeShiftedIntoPlace(t *testing.T) {
	f := packFlags(Message{OperationCode: OpUpdate})
	assert.Equal(t, uint16(OpUpdate)<<opcodeShift, f&flagOpcode)
}

func TestPackUnpackFlags_RoundTrip(t *testing.T) {
	m := Message{
		Type:                Response,
		OperationCode:       OpNotify,
		AuthoritativeAnswer: true,
		Truncation:          true,
		RecursionDesired:    true,
		RecursionAvailable:  true,
		ReturnCode:          RCodeRefused,
	}
	f := packFlags(m)

	var got Message
	unpackFlags(&got, f)
	assert.Equal(t, m.Type, got.Type)
	assert.Equal(t, m.OperationCode, got.OperationCode)
	assert.Equal(t, m.AuthoritativeAnswer, got.AuthoritativeAnswer)
	assert.Equal(t, m.Truncation, got.Truncation)
	assert.Equal(t, m.RecursionDesired, got.RecursionDesired)
	assert.Equal(t, m.RecursionAvailable, got.RecursionAvailable)
	assert.Equal(t, m.ReturnCode, got.ReturnCode)
}

func TestUnpackFlags_ZBlockIgnored(t *testing.T) {
	var m Message
	unpackFlags(&m, flagZ) // only the reserved bits set
	assert.Equal(t, Query, m.Type)
	assert.Equal(t, OperationCode(0), m.OperationCode)
	assert.Equal(t, ReturnCode(0), m.ReturnCode)
}
