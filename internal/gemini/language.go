package gemini

import "fmt"

type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case Chinese, English:
		return Language(s), nil
	default:
		return "", fmt.Errorf("unsupported language %q, want zh or en", s)
	}
}

// DisplayName is the language name used inside prompts. Anything other than
// zh is rendered as English.
func (l Language) DisplayName() string {
	if l == Chinese {
		return "Chinese"
	}
	return "English"
}
