package leetlist

// DefaultSubstitutions is the builtin leetspeak table
var DefaultSubstitutions = map[string][]string{
	"a": {"4", "@"},
	"e": {"3"},
	"i": {"1", "!"},
	"o": {"0"},
	"s": {"$", "5"},
	"t": {"7"},
}

var DefaultPatterns = []string{
	"{{word}}{{year}}", // ex: rex2021
	"{{year}}{{word}}", // ex: 2021rex
}

// DefaultYearStart is the first year used when no range is given
const DefaultYearStart = 2000

// DefaultConfig is used by New when Options leave substitutions or patterns empty.
// cli overrides it with the user config from $HOME/.config/leetlist
var DefaultConfig = Config{
	Substitutions: DefaultSubstitutions,
	Patterns:      DefaultPatterns,
	YearStart:     DefaultYearStart,
}
