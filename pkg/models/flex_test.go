package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"number", `7`, 7},
		{"quoted number", `"42"`, 42},
		{"quoted number with spaces", `" 13 "`, 13},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.input), &f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Int())
		})
	}

	t.Run("non-numeric string", func(t *testing.T) {
		var f FlexInt
		err := json.Unmarshal([]byte(`"abc"`), &f)
		assert.Error(t, err)
	})
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	t.Run("string stays a string", func(t *testing.T) {
		var f FlexString
		require.NoError(t, json.Unmarshal([]byte(`"1999"`), &f))
		assert.Equal(t, "1999", f.String())
	})

	t.Run("number becomes its text form", func(t *testing.T) {
		var f FlexString
		require.NoError(t, json.Unmarshal([]byte(`1999`), &f))
		assert.Equal(t, "1999", f.String())
	})

	t.Run("null becomes empty", func(t *testing.T) {
		var f FlexString
		require.NoError(t, json.Unmarshal([]byte(`null`), &f))
		assert.Equal(t, "", f.String())
	})
}
