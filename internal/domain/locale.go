package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Locales suportados pelo conteúdo multilíngue do site
const (
	LocaleID = "id" // Indonésio (idioma padrão do site)
	LocaleEN = "en" // Inglês
)

// SupportedLocales é o conjunto fechado de locales aceitos nos campos multilíngues
var SupportedLocales = []string{LocaleID, LocaleEN}

// MultilingualText representa um campo de conteúdo traduzido por locale.
// A ausência de uma chave de locale significa "não traduzido", nunca um erro;
// o consumidor deve usar Resolve para obter o valor de exibição.
type MultilingualText map[string]string

// IsSupportedLocale verifica se o locale informado faz parte do conjunto suportado
func IsSupportedLocale(locale string) bool {
	for _, supported := range SupportedLocales {
		if locale == supported {
			return true
		}
	}
	return false
}

// FirstUnsupportedLocale percorre os textos informados e retorna o primeiro
// locale fora do conjunto suportado, quando existir
func FirstUnsupportedLocale(texts ...MultilingualText) (string, bool) {
	for _, text := range texts {
		for locale := range text {
			if !IsSupportedLocale(locale) {
				return locale, true
			}
		}
	}
	return "", false
}

// Resolve retorna o valor de exibição para o locale informado seguindo a
// cadeia de fallback id -> en. Retorna string vazia quando não há nenhuma
// tradução disponível, nunca um valor indefinido.
func (m MultilingualText) Resolve(locale string) string {
	if m == nil {
		return ""
	}

	if value, ok := m[locale]; ok && value != "" {
		return value
	}

	// Cadeia de fallback: idioma padrão primeiro, depois inglês
	if value, ok := m[LocaleID]; ok && value != "" {
		return value
	}

	if value, ok := m[LocaleEN]; ok && value != "" {
		return value
	}

	return ""
}

// ResolveOr retorna o valor de exibição ou o placeholder quando não há tradução
func (m MultilingualText) ResolveOr(locale, placeholder string) string {
	if value := m.Resolve(locale); value != "" {
		return value
	}
	return placeholder
}

// IsEmpty retorna verdadeiro quando não existe nenhuma tradução não vazia
func (m MultilingualText) IsEmpty() bool {
	for _, value := range m {
		if value != "" {
			return false
		}
	}
	return true
}

// Value serializa o campo multilíngue como JSONB para o banco de dados
func (m MultilingualText) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan deserializa a coluna JSONB do banco de dados
func (m *MultilingualText) Scan(src interface{}) error {
	if src == nil {
		*m = MultilingualText{}
		return nil
	}

	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, m)
	case string:
		return json.Unmarshal([]byte(data), m)
	default:
		return fmt.Errorf("tipo inesperado para campo multilíngue: %T", src)
	}
}
