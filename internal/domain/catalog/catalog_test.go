package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Caso 1: Fold ignora mayúsculas, espacios y diacríticos.
func TestFold(t *testing.T) {
	assert.Equal(t, "lancamentos", Fold("Lançamentos"))
	assert.Equal(t, "o boticario", Fold("  O Boticário "))
	assert.Equal(t, "perfumaria", Fold("PERFUMARIA"))
}

// Caso 2: Matches busca por contención, sin acentos ni mayúsculas.
func TestMatches(t *testing.T) {
	assert.True(t, Matches("Perfumaria Feminina", "femin"))
	assert.True(t, Matches("O Boticário", "boticario"))
	assert.True(t, Matches("Lançamentos", "LANCA"))
	assert.True(t, Matches("cualquier cosa", ""), "needle vacío empareja todo")
	assert.False(t, Matches("Natura", "avon"))
}

// Caso 3: La normalización devuelve el valor canónico del set aunque el input
// venga con otra capitalización o sin acentos.
func TestNormalize_ValorConocido(t *testing.T) {
	assert.Equal(t, "Natura", NormalizeBrand("natura"))
	assert.Equal(t, "O Boticário", NormalizeBrand("o boticario"))
	assert.Equal(t, "Perfumaria", NormalizeStyle("PERFUMARIA"))
	assert.Equal(t, "Eau de parfum", NormalizeType("eau de parfum"))
}

// Caso 4: Valores fuera del set se coercen al de reserva, nunca se rechazan.
func TestNormalize_ValorDesconocido(t *testing.T) {
	assert.Equal(t, BrandOther, NormalizeBrand("Marca Inventada"))
	assert.Equal(t, StyleOther, NormalizeStyle("???"))
	assert.Equal(t, TypeOther, NormalizeType("algo raro"))
	assert.Equal(t, BrandOther, NormalizeBrand(""))
}
