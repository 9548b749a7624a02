package leetlist

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/projectdiscovery/gologger"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Table maps a lowercase rune to its replacement strings.
// Runes absent from the table are kept as they are.
type Table map[rune][]string

// DefaultTable is built from DefaultSubstitutions
var DefaultTable = mustTable(DefaultSubstitutions)

// NewTable validates substitutions and returns a Table.
// keys must be a single character and are folded to lowercase,
// duplicate replacements of a key are purged
func NewTable(substitutions map[string][]string) (Table, error) {
	t := make(Table, len(substitutions))
	for k, v := range substitutions {
		if utf8.RuneCountInString(k) != 1 {
			return nil, fmt.Errorf("substitution key `%v` must be a single character", k)
		}
		if len(v) == 0 {
			return nil, fmt.Errorf("substitution key `%v` has no replacements", k)
		}
		r, _ := utf8.DecodeRuneInString(k)
		r = unicode.ToLower(r)
		replacements := append(t[r], v...)
		dedupe := sliceutil.Dedupe(replacements)
		if len(replacements) != len(dedupe) {
			gologger.Warning().Msgf("%v duplicate replacements found for `%v`. purging them..", len(replacements)-len(dedupe), k)
		}
		t[r] = dedupe
	}
	return t, nil
}

func mustTable(substitutions map[string][]string) Table {
	t, err := NewTable(substitutions)
	if err != nil {
		panic(err)
	}
	return t
}

// choices returns the replacements used at a position holding r
func (t Table) choices(r rune) []string {
	if v, ok := t[unicode.ToLower(r)]; ok {
		return v
	}
	return []string{string(r)}
}

// Expand returns every leetspeak spelling of word.
// Membership is deterministic, order is not part of the contract.
func (t Table) Expand(word string) []string {
	positions := make([][]string, 0, utf8.RuneCountInString(word))
	for _, r := range word {
		positions = append(positions, t.choices(r))
	}
	return sliceutil.Dedupe(cartesian(positions))
}

// VariantCount returns the number of spellings Expand enumerates
// before duplicates collapse, saturating at math.MaxInt
func (t Table) VariantCount(word string) int {
	count := 1
	for _, r := range word {
		count = mulSat(count, len(t.choices(r)))
	}
	return count
}

// String renders the table as `a=4,@ e=3` sorted by key
func (t Table) String() string {
	keys := make([]rune, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteRune(k)
		sb.WriteString("=")
		sb.WriteString(strings.Join(t[k], ","))
	}
	return sb.String()
}

// Expand returns every leetspeak spelling of word using DefaultTable
func Expand(word string) []string {
	return DefaultTable.Expand(word)
}
