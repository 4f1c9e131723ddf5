package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderBuildsMessage(t *testing.T) {
	var f = NewStandardFamily("test")

	var msg, err = NewBuilder(f, "0200").
		PAN("474747474747").
		ProcessingCode("000000").
		Amount("000000010000").
		STAN("000001").
		Build()

	require.NoError(t, err)

	var pan, _ = msg.GetString(2)
	assert.Equal(t, "474747474747", pan)
}

func TestBuilderAccumulatesFirstError(t *testing.T) {
	var f = NewStandardFamily("test")

	var b = NewBuilder(f, "0200")
	b.Field(65, []byte("x")) // undeclared field
	b.PAN("474747474747")

	var _, err = b.Build()
	require.Error(t, err)

	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, UnknownField, ie.Kind)
}

func TestBuilderMustBuildPanicsOnError(t *testing.T) {
	var f = NewStandardFamily("test")

	assert.Panics(t, func() {
		NewBuilder(f, "0200").Field(65, []byte("x")).MustBuild()
	})
}

func TestBuilderRelease(t *testing.T) {
	var f = NewStandardFamily("test")
	var b = NewBuilder(f, "0200")
	b.PAN("474747474747")
	var _, err = b.Build()
	require.NoError(t, err)
	b.Release()
}
