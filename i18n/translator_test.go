package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	assert.Equal(t, "invalid type", T("invalid_type", nil))
	assert.Equal(t, "invalid type: expected string, got number",
		T("invalid_type", map[string]string{"expected": "string", "got": "number"}))
	assert.Equal(t, "required property missing: scope", T("required", map[string]string{"field": "scope"}))

	SetLanguage("ja")
	assert.Equal(t, "型が不正です", T("invalid_type", nil))
	assert.Equal(t, "判別子がありません", T("discriminator_missing", nil))
}

func TestTranslator_UnknownCodeAndLanguage(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	assert.Equal(t, "no_such_code", T("no_such_code", nil))

	SetLanguage("fr")
	assert.Equal(t, "truncated", T("truncated", nil))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X-" + code }

func TestSetTranslator(t *testing.T) {
	t.Cleanup(func() { SetTranslator(nil) })

	SetTranslator(upper{})
	assert.Equal(t, "X-overflow", T("overflow", nil))

	SetTranslator(nil)
	assert.Equal(t, "number out of range", T("overflow", nil))
}
