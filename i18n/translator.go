package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":        "invalid type",
		"required":            "required key {key} missing",
		"unknown_key":         "unexpected key {key}",
		"duplicate_key":       "duplicate key {key}",
		"invalid_enum":        "unknown enum value",
		"invalid_format":      "invalid format",
		"malformed_timestamp": "malformed timestamp",
		"parse_error":         "parse error",
		"truncated":           "truncated",
	},
	"ja": {
		"invalid_type":        "型が不正です",
		"required":            "必須キー {key} が不足しています",
		"unknown_key":         "未知のキー {key} です",
		"duplicate_key":       "キー {key} が重複しています",
		"invalid_enum":        "未知の列挙値です",
		"invalid_format":      "形式が不正です",
		"malformed_timestamp": "日時の形式が不正です",
		"parse_error":         "解析エラー",
		"truncated":           "打ち切られました",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", "'"+v+"'")
	}
	// Placeholders without data collapse to nothing.
	for strings.Contains(msg, "{") {
		i := strings.IndexByte(msg, '{')
		j := strings.IndexByte(msg[i:], '}')
		if j < 0 {
			break
		}
		msg = strings.Join(strings.Fields(msg[:i]+msg[i+j+1:]), " ")
	}
	return msg
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
