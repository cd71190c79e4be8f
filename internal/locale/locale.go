// Package locale resolves the output locale and its localized fallback labels.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// SpecialMethod pairs an encounter-method keyword with its display label
type SpecialMethod struct {
	Keyword string
	Label   string
}

// Locale carries everything the transformers need to localize one run
type Locale struct {
	// Tag is the BCP 47 tag written into both documents
	Tag string
	// LanguageID is the PokeAPI local_language_id for name tables
	LanguageID int
	// Unknown labels a type or ability without a localized name
	Unknown string
	// Unidentified labels an encounter location that cannot be resolved
	Unidentified string
	// SpecialMethods is matched in order against encounter method identifiers
	SpecialMethods []SpecialMethod
}

// Korean is the default locale
var Korean = Locale{
	Tag:          "ko-KR",
	LanguageID:   3,
	Unknown:      "알수없음",
	Unidentified: "미확인",
	SpecialMethods: []SpecialMethod{
		{Keyword: "poke-radar", Label: "포켓트레"},
		{Keyword: "slot2", Label: "GBA 슬롯 장착"},
		{Keyword: "swarm", Label: "대량발생"},
		{Keyword: "radio-hoenn", Label: "호연 사운드"},
		{Keyword: "radio-sinnoh", Label: "신오 사운드"},
	},
}

// English is the en-US locale
var English = Locale{
	Tag:          "en-US",
	LanguageID:   9,
	Unknown:      "unknown",
	Unidentified: "unidentified",
	SpecialMethods: []SpecialMethod{
		{Keyword: "poke-radar", Label: "Poké Radar"},
		{Keyword: "slot2", Label: "GBA slot"},
		{Keyword: "swarm", Label: "Swarm"},
		{Keyword: "radio-hoenn", Label: "Hoenn Sound"},
		{Keyword: "radio-sinnoh", Label: "Sinnoh Sound"},
	},
}

var (
	supported = []Locale{Korean, English}
	matcher   = language.NewMatcher([]language.Tag{
		language.MustParse(Korean.Tag),
		language.MustParse(English.Tag),
	})
)

// Resolve matches a BCP 47 tag against the supported locales.
// "ko", "ko-KR" and "ko-Kore-KR" all resolve to Korean.
func Resolve(tag string) (Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Locale{}, fmt.Errorf("invalid locale %q: %w", tag, err)
	}

	// Low confidence is the matcher's default guess, not a match
	_, idx, conf := matcher.Match(t)
	if conf < language.High {
		return Locale{}, fmt.Errorf("unsupported locale %q", tag)
	}
	return supported[idx], nil
}

// Supported lists the tags Resolve accepts exactly
func Supported() []string {
	tags := make([]string, len(supported))
	for i, l := range supported {
		tags[i] = l.Tag
	}
	return tags
}
