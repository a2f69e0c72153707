package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtractedContract(t *testing.T) {
	f := ExtractContract(sampleContract)
	data, err := json.Marshal(f)
	require.NoError(t, err)

	assert.NoError(t, ValidateAgainstSchema(BuildContractJSONSchema(), data))
}

func TestValidateExtractedBid(t *testing.T) {
	f := ExtractBid(sampleBid)
	data, err := json.Marshal(f)
	require.NoError(t, err)

	assert.NoError(t, ValidateAgainstSchema(BuildBidJSONSchema(), data))
}

func TestValidateAgainstSchemaRejects(t *testing.T) {
	t.Run("missing contract number", func(t *testing.T) {
		err := ValidateAgainstSchema(BuildContractJSONSchema(), []byte(`{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "json does not match schema")
	})

	t.Run("wrong type", func(t *testing.T) {
		err := ValidateAgainstSchema(BuildContractJSONSchema(), []byte(`{"contract_no":5}`))
		assert.Error(t, err)
	})

	t.Run("unknown property", func(t *testing.T) {
		err := ValidateAgainstSchema(BuildContractJSONSchema(), []byte(`{"contract_no":"GEMC-1","bogus":1}`))
		assert.Error(t, err)
	})

	t.Run("malformed date", func(t *testing.T) {
		err := ValidateAgainstSchema(BuildBidJSONSchema(), []byte(`{"bid_number":"B1","dated":"15-05-2025"}`))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		err := ValidateAgainstSchema(BuildBidJSONSchema(), []byte(`not json`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmarshal data")
	})
}
