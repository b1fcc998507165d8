package money_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/shared/money"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "decimal string", input: `"100.50"`, want: "100.5"},
		{name: "number", input: `250.25`, want: "250.25"},
		{name: "integer", input: `7`, want: "7"},
		{name: "null", input: `null`, want: "0"},
		{name: "blank string", input: `"  "`, want: "0"},
		{name: "garbage string", input: `"abc"`, want: "0"},
		{name: "boolean", input: `true`, want: "0"},
		{name: "object", input: `{"amount": 1}`, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var amount money.Amount

			require.NoError(t, json.Unmarshal([]byte(tt.input), &amount))
			assert.Equal(t, tt.want, amount.String())
		})
	}
}

func TestAmount_MissingField(t *testing.T) {
	var payload struct {
		Amount money.Amount `json:"amount"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
	assert.True(t, payload.Amount.IsZero())
}

func TestAmount_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(money.MustParse("12.30"))

	require.NoError(t, err)
	assert.JSONEq(t, `"12.3"`, string(data))
}

func TestAmount_Display(t *testing.T) {
	assert.Equal(t, "0.30", money.Sum(money.MustParse("0.1"), money.MustParse("0.2")).Display())
	assert.Equal(t, "10.01", money.MustParse("10.005").Display())
	assert.Equal(t, "-3.50", money.MustParse("-3.5").Display())
	assert.Equal(t, "0.00", money.Zero.Display())
}

func TestParse(t *testing.T) {
	assert.Equal(t, "42.1", money.Parse(" 42.10 ").String())
	assert.True(t, money.Parse("not a number").IsZero())
}

func TestArithmetic(t *testing.T) {
	a := money.MustParse("100")
	b := money.MustParse("33.335")

	assert.Equal(t, "133.335", a.Add(b).String())
	assert.Equal(t, "66.665", a.Sub(b).String())
	assert.True(t, money.Sum().IsZero())
}
