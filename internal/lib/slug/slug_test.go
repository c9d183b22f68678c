package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple two words", in: "TechCorp Solutions", want: "techcorp-solutions"},
		{name: "single word", in: "Acme", want: "acme"},
		{name: "diacritics are stripped", in: "Opération Café", want: "operation-cafe"},
		{name: "portuguese name", in: "Soluções São João", want: "solucoes-sao-joao"},
		{name: "non-alphanumeric runs collapse", in: "a -- b__c!!d", want: "a-b-c-d"},
		{name: "leading and trailing separators trimmed", in: "--Acme Corp--", want: "acme-corp"},
		{name: "digits survive", in: "Loja 24x7", want: "loja-24x7"},
		{name: "empty input", in: "", want: ""},
		{name: "only separators", in: "!!! ---", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{"TechCorp Solutions", "Opération Café", "loja-24x7", "Acme"}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "re-normalizing %q must be a no-op", once)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("techcorp-solutions"))
	assert.True(t, IsValid("acme"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Acme"))
	assert.False(t, IsValid("acme--corp"))
	assert.False(t, IsValid("-acme"))
}
