package i18n

import (
	"regexp"
	"strings"
)

// Translator retrieves localized messages for diagnostic and error codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "card").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"parse::malformed_structure":         "metadata block never closed",
		"parse::invalid_header":              "invalid header",
		"parse::reserved_key_collision":      "reserved key {key} used as a field name",
		"parse::invalid_card_name":           "invalid card name {card}",
		"parse::misplaced_quill_tag":         "QUILL is only allowed on the first block",
		"parse::multiple_global_blocks":      "more than one global block",
		"parse::name_collision":              "card {card} collides with a global field",
		"schema::invalid_definition":         "invalid schema definition",
		"limits::resource_limit_exceeded":    "resource limit exceeded",
		"validation::missing_required_field": "required field \"{field}\" is missing{scope}",
		"validation::type_mismatch":          "field \"{field}\" expects {expected}, got {actual}{scope}",
		"validation::unknown_card_variant":   "unknown card \"{card}\": schema declares {known}",
	},
	"ja": {
		"parse::malformed_structure":         "メタデータブロックが閉じられていません",
		"parse::invalid_header":              "ヘッダが不正です",
		"parse::reserved_key_collision":      "予約キー {key} はフィールド名に使えません",
		"parse::invalid_card_name":           "カード名 {card} が不正です",
		"parse::misplaced_quill_tag":         "QUILL は先頭ブロックでのみ使用できます",
		"parse::multiple_global_blocks":      "グローバルブロックが複数あります",
		"parse::name_collision":              "カード {card} がグローバルフィールドと衝突しています",
		"schema::invalid_definition":         "スキーマ定義が不正です",
		"limits::resource_limit_exceeded":    "リソース上限を超えました",
		"validation::missing_required_field": "必須フィールド {field} がありません{scope}",
		"validation::type_mismatch":          "フィールド {field} は {expected} を要求しますが {actual} です{scope}",
		"validation::unknown_card_variant":   "未知のカード {card} です (定義済み: {known})",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict, ok := dictionaries[t.lang]
	if !ok {
		dict = dictionaries["en"]
	}
	tmpl, ok := dict[code]
	if !ok {
		if tmpl, ok = dictionaries["en"][code]; !ok {
			return code
		}
	}
	for k, v := range data {
		tmpl = strings.ReplaceAll(tmpl, "{"+k+"}", v)
	}
	// Placeholders the caller did not fill disappear rather than leak.
	return placeholderRe.ReplaceAllString(tmpl, "")
}

var placeholderRe = regexp.MustCompile(`\{[a-z_]+\}`)

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
