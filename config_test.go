package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchemaYAML = `
name: acquirer
layout:
  has_header: false
  bitmap_mode: hex
mti:
  - code: "0200"
    name: financial_request
  - code: "0210"
    name: financial_response
fields:
  - number: 2
    name: primary_account_number
    class: N
    length: LLVAR
  - number: 3
    name: processing_code
    class: N
    length: "FIXED:6"
    mandatory: true
  - number: 7
    name: transmission_date_time
    class: "DATETIME:MMDDhhmmss"
    length: "FIXED:10"
    mandatory: true
aliases:
  pan: 2
`

func TestLoadSchemaConfigBytes(t *testing.T) {
	var cfg, err = LoadSchemaConfigBytes([]byte(testSchemaYAML))
	require.NoError(t, err)
	assert.Equal(t, "acquirer", cfg.Name)
	require.Len(t, cfg.Fields, 3)
}

func TestBuildFamilyFromConfig(t *testing.T) {
	var cfg, err = LoadSchemaConfigBytes([]byte(testSchemaYAML))
	require.NoError(t, err)

	var f, buildErr = cfg.BuildFamily()
	require.NoError(t, buildErr)

	var def, ok = f.Field(2)
	require.True(t, ok)
	assert.Equal(t, "primary_account_number", def.Name)

	var number, aliasOk = f.ResolveAlias("pan")
	require.True(t, aliasOk)
	assert.Equal(t, 2, number)

	var msg, msgErr = f.New("0200")
	require.NoError(t, msgErr)
	require.NoError(t, msg.SetString(3, "000000"))
	require.NoError(t, msg.SetString(7, "0131120000"))

	var wire, encErr = msg.Bytes()
	require.NoError(t, encErr)

	var parsed, parseErr = f.Parse(wire)
	require.NoError(t, parseErr)
	assert.Equal(t, "0200", parsed.MTI())
}

func TestParseClassSpecUnknown(t *testing.T) {
	var _, err = parseClassSpec("NOPE")
	require.Error(t, err)
}

func TestParseLengthSpecVariants(t *testing.T) {
	var fixed, err = parseLengthSpec("FIXED:8")
	require.NoError(t, err)
	assert.Equal(t, "FIXED:8", fixed.Name())

	var llvar, llErr = parseLengthSpec("LLVAR")
	require.NoError(t, llErr)
	assert.Equal(t, "LLVAR", llvar.Name())

	var v, vErr = parseLengthSpec("VAR4")
	require.NoError(t, vErr)
	assert.Equal(t, "VAR4", v.Name())
}

func TestBuildFamilyRejectsUnknownBitmapMode(t *testing.T) {
	var cfg = &SchemaConfig{Name: "bad", Layout: LayoutConfig{BitmapMode: "nonsense"}}
	var _, err = cfg.BuildFamily()
	require.Error(t, err)
}
