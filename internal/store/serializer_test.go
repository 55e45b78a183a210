package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONEncode_PrettyPrinted(t *testing.T) {
	data, err := JSON[StoreTestRecord]{}.Encode(StoreTestRecord{Token: "abc"})
	require.NoError(t, err)

	// the on-disk format is human-readable: indented, newline-terminated
	assert.Equal(t, "{\n  \"token\": \"abc\"\n}\n", string(data))
}

func TestJSONDecode_Invalid(t *testing.T) {
	_, err := JSON[StoreTestRecord]{}.Decode([]byte("{truncated"))
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	s := YAML[StoreTestRecord]{}

	data, err := s.Encode(StoreTestRecord{Token: "abc"})
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "token: abc"))

	record, err := s.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, StoreTestRecord{Token: "abc"}, record)
}

func TestSerializerFor(t *testing.T) {
	s, err := SerializerFor[StoreTestRecord]("json")
	require.NoError(t, err)
	assert.Equal(t, ".json", s.Ext())

	s, err = SerializerFor[StoreTestRecord]("yaml")
	require.NoError(t, err)
	assert.Equal(t, ".yaml", s.Ext())

	_, err = SerializerFor[StoreTestRecord]("toml")
	assert.ErrorContains(t, err, "invalid record format")
}
