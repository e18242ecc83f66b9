package services

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

const (
	ContentMinLength = 1
	ContentMaxLength = 140
)

// emojiRunes покрывает пиктограммы и служебные code points, из которых
// собираются эмодзи-кластеры: базовые символы, цифры и # * под keycap,
// региональные индикаторы, модификаторы тона кожи, ZWJ, variation selectors,
// tag-символы для флагов.
var emojiRunes = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0023, Hi: 0x0023, Stride: 1}, // #
		{Lo: 0x002A, Hi: 0x002A, Stride: 1}, // *
		{Lo: 0x0030, Hi: 0x0039, Stride: 1}, // 0-9
		{Lo: 0x00A9, Hi: 0x00A9, Stride: 1}, // ©
		{Lo: 0x00AE, Hi: 0x00AE, Stride: 1}, // ®
		{Lo: 0x200D, Hi: 0x200D, Stride: 1}, // ZWJ
		{Lo: 0x203C, Hi: 0x203C, Stride: 1},
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x20E3, Hi: 0x20E3, Stride: 1}, // combining keycap
		{Lo: 0x2122, Hi: 0x2122, Stride: 1},
		{Lo: 0x2139, Hi: 0x2139, Stride: 1},
		{Lo: 0x2194, Hi: 0x2199, Stride: 1},
		{Lo: 0x21A9, Hi: 0x21AA, Stride: 1},
		{Lo: 0x231A, Hi: 0x231B, Stride: 1},
		{Lo: 0x2328, Hi: 0x2328, Stride: 1},
		{Lo: 0x23CF, Hi: 0x23CF, Stride: 1},
		{Lo: 0x23E9, Hi: 0x23F3, Stride: 1},
		{Lo: 0x23F8, Hi: 0x23FA, Stride: 1},
		{Lo: 0x24C2, Hi: 0x24C2, Stride: 1},
		{Lo: 0x25AA, Hi: 0x25AB, Stride: 1},
		{Lo: 0x25B6, Hi: 0x25B6, Stride: 1},
		{Lo: 0x25C0, Hi: 0x25C0, Stride: 1},
		{Lo: 0x25FB, Hi: 0x25FE, Stride: 1},
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1}, // misc symbols + dingbats
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2B05, Hi: 0x2B07, Stride: 1},
		{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1},
		{Lo: 0x2B50, Hi: 0x2B50, Stride: 1},
		{Lo: 0x2B55, Hi: 0x2B55, Stride: 1},
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
		{Lo: 0x303D, Hi: 0x303D, Stride: 1},
		{Lo: 0x3297, Hi: 0x3297, Stride: 1},
		{Lo: 0x3299, Hi: 0x3299, Stride: 1},
		{Lo: 0xFE0E, Hi: 0xFE0F, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1FAFF, Stride: 1}, // основные эмодзи-блоки
		{Lo: 0xE0020, Hi: 0xE007F, Stride: 1}, // tag characters
	},
}

// ValidateContent проверяет контент поста: непустой, не длиннее 140
// графемных кластеров и состоит только из эмодзи. Длина считается по
// кластерам, чтобы составные эмодзи (флаги, семьи, тона кожи) шли за один
// символ.
func ValidateContent(content string) error {
	if content == "" {
		return &ValidationError{Reason: ReasonContentRequired}
	}
	if !utf8.ValidString(content) {
		return &ValidationError{Reason: ReasonEmojiOnly}
	}

	count := 0
	gr := uniseg.NewGraphemes(content)
	for gr.Next() {
		count++
		if count > ContentMaxLength {
			return &ValidationError{Reason: ReasonTooLong}
		}
		for _, r := range gr.Runes() {
			if !unicode.Is(emojiRunes, r) {
				return &ValidationError{Reason: ReasonEmojiOnly}
			}
		}
	}

	return nil
}
