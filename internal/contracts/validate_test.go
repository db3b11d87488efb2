package contracts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	uuid1 = "0f8fad5b-d9cb-469f-a165-70867728950e"
	uuid2 = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

func TestAllSchemasCompile(t *testing.T) {
	schemas, err := compiled()
	require.NoError(t, err)
	for _, name := range All {
		assert.Contains(t, schemas, name)
	}
}

func TestValidate_Valid(t *testing.T) {
	tests := []struct {
		schema Schema
		body   string
	}{
		{User, `{"id":"` + uuid1 + `","name":"QATMP1","email":"qa_tmp_1@example.com"}`},
		{UserList, `[]`},
		{Login, `{"name":"QA","email":"qa@example.com","access":"a.b.c","refresh":"d.e.f"}`},
		{Account, `{"id":"` + uuid1 + `","name":"QATMP1","income":"R$ 0,00","expense":"R$ 0,00","balance":"R$ 7,50"}`},
		{AccountList, `[{"id":"` + uuid1 + `","name":"x","income":"R$ 10,00","expense":"R$ 2,35","balance":"R$ -1234,56"}]`},
		{Balance, `{"balance":"R$ 100,00"}`},
		{Category, `{"id":"` + uuid2 + `","name":"QA Salario","type":"Entrada"}`},
		{CategoryList, `[{"id":"` + uuid2 + `","name":"QA Mercado","type":"Saída"}]`},
		{Transaction, `{"id":"` + uuid1 + `","value":"R$ 1,50","created_at":"Mon, 19 Oct 2026 10:00:00 GMT","category":{"id":"` + uuid2 + `","name":"QA Salario","type":"Entrada"}}`},
		{TransactionList, `[]`},
		{Error, `{"code":"BAD_REQUEST","message":"Nome inválido","details":["name"]}`},
		{Error, `{"code":"NOT_FOUND","message":"Conta não encontrada","details":[]}`},
		{TokenError, `{"msg":"Missing Authorization Header"}`},
	}
	for _, tt := range tests {
		res := Validate(tt.schema, []byte(tt.body))
		assert.True(t, res.OK, "%s: %s", tt.schema, res)
		assert.Empty(t, res.Errors, tt.schema)
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	res := Validate(Account, []byte(`{"id":"not-a-uuid","name":"x","income":"7.50","expense":"R$ 0,00","balance":"R$ 1,5"}`))
	require.False(t, res.OK)

	joined := strings.Join(res.Errors, "\n")
	assert.Contains(t, joined, "/id")
	assert.Contains(t, joined, "/income")
	assert.Contains(t, joined, "/balance")
	assert.NotContains(t, joined, "/expense")
}

func TestValidate_RejectsUnknownAndMissingProperties(t *testing.T) {
	res := Validate(TokenError, []byte(`{"msg":"x","code":"y"}`))
	assert.False(t, res.OK)

	res = Validate(Balance, []byte(`{}`))
	assert.False(t, res.OK)
}

func TestValidate_UUIDMustBeVersion4(t *testing.T) {
	v1 := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	res := Validate(User, []byte(`{"id":"`+v1+`","name":"a","email":"b"}`))
	assert.False(t, res.OK)
}

func TestValidate_CategoryTypeLabel(t *testing.T) {
	res := Validate(Category, []byte(`{"id":"`+uuid2+`","name":"x","type":"E"}`))
	assert.False(t, res.OK)
	assert.Contains(t, res.String(), "/type")
}

func TestValidate_ErrorShapesAreDistinct(t *testing.T) {
	tokenBody := []byte(`{"msg":"Token has expired"}`)
	apiBody := []byte(`{"code":"UNAUTHORIZED","message":"x","details":[]}`)

	assert.True(t, Validate(TokenError, tokenBody).OK)
	assert.False(t, Validate(Error, tokenBody).OK)
	assert.True(t, Validate(Error, apiBody).OK)
	assert.False(t, Validate(TokenError, apiBody).OK)
}

func TestValidate_NotJSON(t *testing.T) {
	res := Validate(User, []byte(`<html>`))
	assert.False(t, res.OK)
	assert.Contains(t, res.Errors[0], "not valid JSON")
}

func TestValidate_UnknownSchema(t *testing.T) {
	res := Validate(Schema("budget"), []byte(`{}`))
	assert.False(t, res.OK)
	assert.Contains(t, res.Errors[0], "unknown contract")
}
