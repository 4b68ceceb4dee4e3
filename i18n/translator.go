package i18n

// Translator retrieves localized phrases for error codes. data provides
// optional metadata to embed in the message (unused by the built-in
// dictionary, kept for custom implementations).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "empty_schema":
			return "キーがありません"
		case "duplicate_key":
			return "キーが重複しています"
		case "reserved_key":
			return "予約済みのキーです"
		case "invalid_key_name":
			return "キー名が不正です"
		case "requires_keys":
			return "必須キー"
		case "missing_keys":
			return "不足キー"
		case "invalid_keys":
			return "不正キー"
		case "unknown_key":
			return "未知のキーです"
		case "too_many_values":
			return "位置指定の値が多すぎます"
		case "coercion_failed":
			return "型変換に失敗しました"
		case "invalid_coercion":
			return "型変換関数ではありません"
		}
	default: // "en"
		switch code {
		case "empty_schema":
			return "schema has no keys"
		case "duplicate_key":
			return "duplicate key"
		case "reserved_key":
			return "reserved key"
		case "invalid_key_name":
			return "invalid key name"
		case "requires_keys":
			return "requires keys"
		case "missing_keys":
			return "missing keys"
		case "invalid_keys":
			return "invalid keys"
		case "unknown_key":
			return "unknown key"
		case "too_many_values":
			return "too many positional values"
		case "coercion_failed":
			return "coercion failed"
		case "invalid_coercion":
			return "not a coercion function"
		}
	}
	return code
}

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

// T fetches a phrase for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
