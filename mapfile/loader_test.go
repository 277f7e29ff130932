package mapfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"object-mapper/mapfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
version: "1"
mappings:
  - source: store.Order
    target: warehouse.Order
    fields:
      - target: OrderNumber
        source: Reference
      - target: Customer.Email
        source: Customer.Contact.Email
      - target: Origin
        constant: storefront
      - target: Status
        from_source: true
        converter: statusLabel
      - target: TotalAmount
        source: TotalCents
        condition: nonZero
      - target: PlacedAt
        skip: true
`

func TestParse(t *testing.T) {
	mf, err := mapfile.Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "1", mf.Version)
	require.Len(t, mf.TypeMappings, 1)

	tm := mf.TypeMappings[0]
	assert.Equal(t, "store.Order", tm.Source)
	assert.Equal(t, "warehouse.Order", tm.Target)
	require.Len(t, tm.Fields, 6)

	assert.Equal(t, "Reference", tm.Fields[0].Source)
	assert.Equal(t, "storefront", tm.Fields[2].Constant)
	assert.True(t, tm.Fields[3].FromSource)
	assert.Equal(t, "statusLabel", tm.Fields[3].Converter)
	assert.Equal(t, "nonZero", tm.Fields[4].Condition)
	assert.True(t, tm.Fields[5].Skip)
}

func TestParseDefaultsVersion(t *testing.T) {
	mf, err := mapfile.Parse([]byte("mappings: []"))
	require.NoError(t, err)
	assert.Equal(t, "1", mf.Version)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := mapfile.Parse([]byte("mappings: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	mf, err := mapfile.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, mf.TypeMappings, 1)

	_, err = mapfile.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
