package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshalNormalizesNumbersAndStrings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ID
	}{
		{"number", `7`, "7"},
		{"string", `"7"`, "7"},
		{"padded string", `" 7 "`, "7"},
		{"large number", `1234567`, "1234567"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tc.in), &id))
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestIDUnmarshalRejectsObjects(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &id))
}

func TestNumberAndStringIDsCompareEqual(t *testing.T) {
	var fromNumber, fromString ID
	require.NoError(t, json.Unmarshal([]byte(`42`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &fromString))
	assert.Equal(t, fromNumber, fromString)
}

func TestIDMarshalsAsString(t *testing.T) {
	data, err := json.Marshal(ID("42"))
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(data))
}
