package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/ahmedhedefa/cashier-ca-web/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeChangeRequest_AmountForms(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantDue  dto.AmountInput
		wantPaid dto.AmountInput
	}{
		{"quoted", `{"due":"4.03","paid":"5.00"}`, "4.03", "5.00"},
		{"bare numbers", `{"due":4.03,"paid":5}`, "4.03", "5"},
		{"exponent", `{"due":1e2,"paid":"abc"}`, "1e2", "abc"},
		{"null and missing", `{"due":null}`, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.ComputeChangeRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.wantDue, req.Due)
			assert.Equal(t, tt.wantPaid, req.Paid)
		})
	}
}

func TestComputeChangeRequest_RejectsNonAmounts(t *testing.T) {
	for _, body := range []string{`{"due":true}`, `{"paid":{"v":1}}`, `{"due":[1]}`} {
		var req dto.ComputeChangeRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}

func TestAmountInput_MarshalsAsString(t *testing.T) {
	raw, err := json.Marshal(dto.ComputeChangeRequest{Due: "4.03", Paid: "5"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"4.03","paid":"5","enabled":null,"tillID":""}`, string(raw))
}
