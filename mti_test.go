package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareMTIAndResolve(t *testing.T) {
	var f = NewFamily("test")
	require.NoError(t, f.DeclareMTI("0200", "financial_request"))

	var code, err = f.resolveMTI("financial_request")
	require.NoError(t, err)
	assert.Equal(t, "0200", code)

	var code2, err2 = f.resolveMTI("0200")
	require.NoError(t, err2)
	assert.Equal(t, "0200", code2)
}

func TestDeclareMTIConflict(t *testing.T) {
	var f = NewFamily("test")
	require.NoError(t, f.DeclareMTI("0200", "financial_request"))

	var err = f.DeclareMTI("0200", "something_else")
	require.Error(t, err)

	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, SchemaConflict, ie.Kind)
}

func TestResolveMTIUnknownCodeWhenAnyDeclared(t *testing.T) {
	var f = NewFamily("test")
	require.NoError(t, f.DeclareMTI("0200", "financial_request"))

	var _, err = f.resolveMTI("0400")
	require.Error(t, err)

	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, UnknownMti, ie.Kind)
}

func TestResolveMTIUnconstrainedWhenNoneDeclared(t *testing.T) {
	var f = NewFamily("test")

	var code, err = f.resolveMTI("0799")
	require.NoError(t, err)
	assert.Equal(t, "0799", code)
}

func TestIsRequest(t *testing.T) {
	assert.True(t, IsRequest("0200"))
	assert.False(t, IsRequest("0210"))
}

func TestResponseMTI(t *testing.T) {
	var resp, err = ResponseMTI("0200")
	require.NoError(t, err)
	assert.Equal(t, "0210", resp)

	var _, badErr = ResponseMTI("0210")
	require.Error(t, badErr)
}
