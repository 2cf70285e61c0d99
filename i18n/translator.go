package i18n

import (
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":          "invalid type: expected {expected}, got {got}",
		"required":              "required property missing: {field}",
		"unknown_key":           "unknown key",
		"duplicate_key":         "duplicate key",
		"invalid_enum":          "value not allowed: {value}",
		"invalid_format":        "invalid format",
		"no_matching_variant":   "no variant matched",
		"discriminator_missing": "discriminator missing",
		"discriminator_unknown": "unknown discriminator value",
		"parse_error":           "parse error",
		"overflow":              "number out of range",
		"truncated":             "truncated",
		"custom":                "validation failed",
	},
	"ja": {
		"invalid_type":          "型が不正です: {expected} を期待しましたが {got} でした",
		"required":              "必須プロパティが不足しています: {field}",
		"unknown_key":           "未知のキーです",
		"duplicate_key":         "キーが重複しています",
		"invalid_enum":          "許可されていない値です: {value}",
		"invalid_format":        "形式が不正です",
		"no_matching_variant":   "一致するバリアントがありません",
		"discriminator_missing": "判別子がありません",
		"discriminator_unknown": "未知の判別子です",
		"parse_error":           "解析エラー",
		"overflow":              "数値が範囲外です",
		"truncated":             "打ち切られました",
		"custom":                "検証に失敗しました",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return interpolate(msg, data)
}

// interpolate replaces {name} placeholders. Without data the detail after
// the first colon is dropped.
func interpolate(msg string, data map[string]string) string {
	if !strings.Contains(msg, "{") {
		return msg
	}
	if len(data) == 0 {
		if i := strings.Index(msg, ":"); i > 0 {
			return msg[:i]
		}
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// Languages lists the built-in dictionary languages.
func Languages() []string { return []string{"en", "ja"} }

// SetLanguage switches the built-in Translator language ("en"/"ja").
// Unknown languages fall back to English.
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
