package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/biztime-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"espacios simples", "Test Company 2", "test_company_2"},
		{"espacios en los extremos", "   Apple   Computer  ", "apple_computer"},
		{"tildes y eñes", "Compañía Ñandú S.A.", "compania_nandu_s_a"},
		{"separadores mezclados", "IBM/Red-Hat & Co.", "ibm_red_hat_co"},
		{"ya normalizado", "test_company_2", "test_company_2"},
		{"solo símbolos", "!!! ---", ""},
		{"vacío", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Make(tc.in))
		})
	}
}

func TestMake_Determinista(t *testing.T) {
	first := slug.Make("Ünïcode Hölding 42")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, slug.Make("Ünïcode Hölding 42"))
	}
	assert.Equal(t, "unicode_holding_42", first)
}
