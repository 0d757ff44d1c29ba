package dnsmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRRType_StringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "A", TypeA.String())
	assert.Equal(t, "SRV", TypeSRV.String())
	assert.Equal(t, "TYPE65280", RRType(0xFF00).String())
}

func TestReturnCode_StringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "NOERROR", RCodeNoError.String())
	assert.Equal(t, "NXDOMAIN", RCodeNXDomain.String())
	assert.Equal(t, "NOTZONE", RCodeNotZone.String())
	assert.Equal(t, "RCODE15", ReturnCode(15).String())
}
