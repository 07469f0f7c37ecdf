package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultilingualText_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		text     MultilingualText
		locale   string
		expected string
	}{
		{
			name:     "Locale solicitado presente deve retornar a tradução direta",
			text:     MultilingualText{"id": "Halo", "en": "Hello"},
			locale:   "en",
			expected: "Hello",
		},
		{
			name:     "Locale solicitado ausente deve cair para o idioma padrão",
			text:     MultilingualText{"id": "Halo"},
			locale:   "en",
			expected: "Halo",
		},
		{
			name:     "Idioma padrão ausente deve cair para o inglês",
			text:     MultilingualText{"en": "Hello"},
			locale:   "id",
			expected: "Hello",
		},
		{
			name:     "Tradução vazia deve ser tratada como ausente",
			text:     MultilingualText{"en": "", "id": "Halo"},
			locale:   "en",
			expected: "Halo",
		},
		{
			name:     "Nenhuma tradução disponível deve retornar string vazia",
			text:     MultilingualText{},
			locale:   "id",
			expected: "",
		},
		{
			name:     "Mapa nil deve retornar string vazia",
			text:     nil,
			locale:   "id",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.text.Resolve(tt.locale))
		})
	}
}

func TestMultilingualText_ResolveOr(t *testing.T) {
	text := MultilingualText{}
	assert.Equal(t, "—", text.ResolveOr("id", "—"))

	text = MultilingualText{"id": "Halo"}
	assert.Equal(t, "Halo", text.ResolveOr("id", "—"))
}

func TestMultilingualText_IsEmpty(t *testing.T) {
	assert.True(t, MultilingualText(nil).IsEmpty())
	assert.True(t, MultilingualText{}.IsEmpty())
	assert.True(t, MultilingualText{"id": ""}.IsEmpty())
	assert.False(t, MultilingualText{"en": "Hello"}.IsEmpty())
}

func TestFirstUnsupportedLocale(t *testing.T) {
	tests := []struct {
		name        string
		texts       []MultilingualText
		expected    string
		unsupported bool
	}{
		{
			name:        "Todos os locales suportados não deve acusar nada",
			texts:       []MultilingualText{{"id": "Halo"}, {"en": "Hello", "id": "Halo"}},
			unsupported: false,
		},
		{
			name:        "Locale fora do conjunto deve ser retornado",
			texts:       []MultilingualText{{"id": "Halo"}, {"fr": "Bonjour"}},
			expected:    "fr",
			unsupported: true,
		},
		{
			name:        "Sem textos não deve acusar nada",
			texts:       nil,
			unsupported: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locale, found := FirstUnsupportedLocale(tt.texts...)
			assert.Equal(t, tt.unsupported, found)
			if tt.unsupported {
				assert.Equal(t, tt.expected, locale)
			}
		})
	}
}

func TestMultilingualText_Scan(t *testing.T) {
	var text MultilingualText
	assert.NoError(t, text.Scan([]byte(`{"id": "Halo", "en": "Hello"}`)))
	assert.Equal(t, "Halo", text["id"])
	assert.Equal(t, "Hello", text["en"])

	var fromString MultilingualText
	assert.NoError(t, fromString.Scan(`{"en": "Hello"}`))
	assert.Equal(t, "Hello", fromString["en"])

	var fromNil MultilingualText
	assert.NoError(t, fromNil.Scan(nil))
	assert.NotNil(t, fromNil)
	assert.True(t, fromNil.IsEmpty())

	var invalid MultilingualText
	assert.Error(t, invalid.Scan(42))
}
