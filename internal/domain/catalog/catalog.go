package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Valores de reserva cuando el texto no coincide con el set recomendado.
const (
	BrandOther = "Outra"
	StyleOther = "Outro"
	TypeOther  = "Outro"
)

// Brands marcas recomendadas. Validación blanda: un valor desconocido se
// coerce a BrandOther en lugar de rechazarse (coincide con el comportamiento
// de importación observado).
var Brands = []string{
	"Eudora", "O Boticário", "Jequiti", "Avon", "Mary Kay", "Natura",
	"Oui-Original-Unique-Individuel", "Pierre Alexander", "Tupperware", "Outra",
}

// Styles categorías de estilo recomendadas.
var Styles = []string{
	"Perfumaria", "Skincare", "Cabelo", "Corpo e Banho", "Make", "Masculinos",
	"Femininos Nina Secrets", "Marcas", "Infantil", "Casa", "Solar", "Maquiage",
	"Teen", "Kits e Presentes", "Cuidados com o Corpo", "Lançamentos",
	"Acessórios de Casa", "Outro",
}

// Types tipos de producto recomendados.
var Types = []string{
	"Perfumaria masculina", "Perfumaria feminina", "Body splash", "Body spray",
	"Eau de parfum", "Desodorantes", "Perfumaria infantil", "Perfumaria vegana",
	"Família olfativa", "Clareador de manchas", "Anti-idade", "Protetor solar facial",
	"Rosto", "Tratamento para o rosto", "Acne", "Limpeza", "Esfoliante", "Tônico facial",
	"Kits de tratamento", "Tratamento para cabelos", "Shampoo", "Condicionador",
	"Leave-in e Creme para Pentear", "Finalizador", "Modelador", "Acessórios",
	"Kits e looks", "Boca", "Olhos", "Pincis", "Paleta", "Unhas", "Sobrancelhas",
	"Hidratante", "Cuidados pós-banho", "Cuidados para o banho", "Barba", "Óleo corporal",
	"Cuidados íntimos", "Unissex", "Bronzeamento", "Protetor solar", "Depilação",
	"Mãos", "Lábios", "Pés", "Pés sol", "Protetor solar corporal", "Colônias",
	"Estojo", "Sabonetes", "Sabonete líquido", "Sabonete em barra",
	"Creme hidratante para as mãos", "Creme hidratante para os pés", "Miniseries",
	"Kits de perfumes", "Antissinais", "Máscara", "Creme bisnaga",
	"Roll On Fragrânciado", "Roll On On Duty", "Shampoo 2 em 1", "Spray corporal",
	"Booster de Tratamento", "Creme para Pentear", "Óleo de Tratamento",
	"Pré-shampoo", "Sérum de Tratamento", "Shampoo e Condicionador", "Garrafas",
	"Armazenamentos", "Micro-ondas", "Servir", "Preparo", "Lazer/Outdoor",
	"Presentes", "Outro",
}

// Fold normaliza texto para comparación: minúsculas y sin diacríticos (NFD +
// remoción de marcas no espaciadoras). "Lançamentos" y "lancamentos" comparan igual.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Matches indica si haystack contiene needle, sin distinguir mayúsculas ni acentos.
func Matches(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

func coerce(value string, set []string, fallback string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return fallback
	}
	folded := Fold(v)
	for _, s := range set {
		if Fold(s) == folded {
			return s
		}
	}
	return fallback
}

// NormalizeBrand devuelve la marca canónica o BrandOther si no está en el set.
func NormalizeBrand(value string) string {
	return coerce(value, Brands, BrandOther)
}

// NormalizeStyle devuelve el estilo canónico o StyleOther si no está en el set.
func NormalizeStyle(value string) string {
	return coerce(value, Styles, StyleOther)
}

// NormalizeType devuelve el tipo canónico o TypeOther si no está en el set.
func NormalizeType(value string) string {
	return coerce(value, Types, TypeOther)
}
