package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ccojocar/zxcvbn-go/match"
)

const (
	suggestAddWord     = "Add another word or two. Uncommon words are better."
	suggestFewWords    = "Use a few words, avoid common phrases."
	suggestNoSymbols   = "No need for symbols, digits, or uppercase letters."
	suggestCapitalize  = "Capitalization doesn't help very much."
	suggestAllUpper    = "All-uppercase is almost as easy to guess as all-lowercase."
	suggestLeet        = "Predictable substitutions like '@' instead of 'a' don't help very much."
	suggestKeyboard    = "Use a longer keyboard pattern with more turns."
	suggestRepeat      = "Avoid repeated words and characters."
	suggestSequence    = "Avoid sequences."
	suggestDates       = "Avoid dates and years that are associated with you."
	suggestPersonal    = "Avoid names, dates and words that are associated with you."
	warnTopPassword    = "This is a very common password."
	warnCommonPassword = "This is similar to a commonly used password."
	warnSingleWord     = "A word by itself is easy to guess."
	warnSingleName     = "Names and surnames by themselves are easy to guess."
	warnCommonName     = "Common names and surnames are easy to guess."
	warnPersonal       = "Personal information like names and dates is easy to guess."
	warnKeyboard       = "Straight rows of keys are easy to guess."
	warnRepeat         = `Repeats like "aaa" are easy to guess.`
	warnSequence       = "Sequences like abc or 6543 are easy to guess."
	warnDate           = "Dates are often easy to guess."
)

// zxcvbn-go dictionary names
const (
	dictPasswords   = "Passwords"
	dictEnglish     = "English"
	dictMaleNames   = "MaleNames"
	dictFemaleNames = "FemaleNames"
	dictSurnames    = "Surname"
	dictUserInputs  = "user_inputs"
)

func defaultFeedback() Feedback {
	return Feedback{Suggestions: []string{suggestFewWords, suggestNoSymbols}}
}

// feedbackFor explains the longest match of a weak password
func feedbackFor(password string, score int, sequence []match.Match) Feedback {
	if len(sequence) == 0 {
		return defaultFeedback()
	}
	if score > 2 {
		return Feedback{}
	}
	longest := sequence[0]
	for _, m := range sequence[1:] {
		if len(m.Token) > len(longest.Token) {
			longest = m
		}
	}
	fb := matchFeedback(password, longest, len(sequence) == 1)
	fb.Suggestions = append([]string{suggestAddWord}, fb.Suggestions...)
	return fb
}

func matchFeedback(password string, m match.Match, soleMatch bool) Feedback {
	switch m.Pattern {
	case "dictionary":
		return dictionaryFeedback(password, m, soleMatch)
	case "spatial":
		return Feedback{Warning: warnKeyboard, Suggestions: []string{suggestKeyboard}}
	case "repeat":
		return Feedback{Warning: warnRepeat, Suggestions: []string{suggestRepeat}}
	case "sequence":
		return Feedback{Warning: warnSequence, Suggestions: []string{suggestSequence}}
	case "date":
		return Feedback{Warning: warnDate, Suggestions: []string{suggestDates}}
	}
	return Feedback{}
}

func dictionaryFeedback(password string, m match.Match, soleMatch bool) Feedback {
	var fb Feedback
	// leet matches carry a `_3117` suffix
	dict := strings.TrimSuffix(m.DictionaryName, "_3117")
	switch dict {
	case dictPasswords:
		if soleMatch {
			fb.Warning = warnTopPassword
		} else {
			fb.Warning = warnCommonPassword
		}
	case dictEnglish:
		if soleMatch {
			fb.Warning = warnSingleWord
		}
	case dictMaleNames, dictFemaleNames, dictSurnames:
		if soleMatch {
			fb.Warning = warnSingleName
		} else {
			fb.Warning = warnCommonName
		}
	case dictUserInputs:
		fb.Warning = warnPersonal
		fb.Suggestions = append(fb.Suggestions, suggestPersonal)
	}

	original := originalToken(password, m)
	switch {
	case isAllUpper(original):
		fb.Suggestions = append(fb.Suggestions, suggestAllUpper)
	case startsUpper(original):
		fb.Suggestions = append(fb.Suggestions, suggestCapitalize)
	}
	if dict != m.DictionaryName || !strings.EqualFold(original, m.Token) {
		fb.Suggestions = append(fb.Suggestions, suggestLeet)
	}
	return fb
}

// originalToken returns the part of password a match covers,
// tokens of leet matches are the unsubstituted dictionary word
func originalToken(password string, m match.Match) string {
	if m.I < 0 || m.J < m.I || m.J >= len(password) {
		return m.Token
	}
	return password[m.I : m.J+1]
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter && utf8.RuneCountInString(s) > 1
}
