package leetlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

var (
	// ErrNoSeeds is returned when every seed is blank
	ErrNoSeeds = errors.New("no seeds provided to generate wordlist")
	// ErrSizeLimitExceeded is returned when the estimated wordlist is larger than Options.MaxSize
	ErrSizeLimitExceeded = errors.New("wordlist size limit exceeded")
	// ErrInvalidYearRange is returned when Start is after End
	ErrInvalidYearRange = errors.New("invalid year range")
	// ErrInvalidSeed is returned for seeds that are not valid UTF-8
	ErrInvalidSeed = errors.New("seed is not valid utf-8")
)

// YearRange is the inclusive-exclusive interval [Start, End)
type YearRange struct {
	Start int
	End   int
}

// DefaultYearRange returns [DefaultYearStart, now.Year()+1)
func DefaultYearRange(now time.Time) YearRange {
	return YearRange{Start: DefaultYearStart, End: now.Year() + 1}
}

// Len returns number of years in range, inverted ranges are empty
func (y YearRange) Len() int {
	if y.End <= y.Start {
		return 0
	}
	return y.End - y.Start
}

// Years renders every year of the range in decimal form
func (y YearRange) Years() []string {
	years := make([]string, 0, y.Len())
	for year := y.Start; year < y.End; year++ {
		years = append(years, strconv.Itoa(year))
	}
	return years
}

func (y YearRange) String() string {
	return fmt.Sprintf("[%d, %d)", y.Start, y.End)
}

// Generator Options
type Options struct {
	// Seeds are personal strings (name, date, pet name ..) to build guesses from.
	// blank seeds are dropped, seeds must be valid UTF-8
	Seeds []string
	// Years used to augment every base word, a zero width range adds no years.
	// if nil the range from DefaultConfig is used (End defaults to current year + 1)
	Years *YearRange
	// leetspeak table as letter => replacements
	// if empty DefaultConfig.Substitutions is used
	Substitutions map[string][]string
	// augmentation patterns using {{word}} and {{year}}
	// if empty DefaultConfig.Patterns is used
	Patterns []string
	// Limits output results (0 = no limit)
	Limit int
	// MaxSize is the max size in bytes of the exported wordlist (0 = no limit)
	MaxSize int
}

// Generator builds candidate wordlists from seeds
type Generator struct {
	Options  *Options
	table    Table
	patterns []*pattern
	years    YearRange
	// lowercased seeds
	seeds []string
}

// New creates and returns new generator instance from options
func New(opts *Options) (*Generator, error) {
	seeds := make([]string, 0, len(opts.Seeds))
	for _, v := range opts.Seeds {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if !utf8.ValidString(v) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSeed, v)
		}
		seeds = append(seeds, v)
	}
	if blank := len(opts.Seeds) - len(seeds); blank > 0 {
		gologger.Warning().Msgf("%v blank seeds found. skipping them..", blank)
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if len(opts.Substitutions) == 0 {
		if len(DefaultConfig.Substitutions) == 0 {
			return nil, fmt.Errorf("something went wrong, `DefaultSubstitutions` and input substitutions are empty")
		}
		opts.Substitutions = DefaultConfig.Substitutions
	}
	if len(opts.Patterns) == 0 {
		if len(DefaultConfig.Patterns) == 0 {
			return nil, fmt.Errorf("something went wrong, `DefaultPatterns` and input patterns are empty")
		}
		opts.Patterns = DefaultConfig.Patterns
	}
	if opts.Years == nil {
		years := configYearRange(DefaultConfig, time.Now())
		opts.Years = &years
	}
	if opts.Years.Start > opts.Years.End {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYearRange, *opts.Years)
	}
	patterns, err := compilePatterns(opts.Patterns)
	if err != nil {
		return nil, err
	}
	table, err := NewTable(opts.Substitutions)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		Options:  opts,
		table:    table,
		patterns: patterns,
		years:    *opts.Years,
		seeds:    normalize(seeds),
	}
	if opts.MaxSize > 0 {
		if size := g.EstimateSize(); size > opts.MaxSize {
			return nil, fmt.Errorf("%w: estimated %v bytes, max %v bytes", ErrSizeLimitExceeded, size, opts.MaxSize)
		}
	}
	return g, nil
}

// Build returns the sorted deduplicated wordlist of seeds using DefaultTable
// and DefaultPatterns. blank seeds are not filtered and an inverted range
// yields only the base words. seeds must be valid UTF-8, invalid bytes
// are rendered as U+FFFD
func Build(seeds []string, years YearRange) []string {
	g := &Generator{
		Options:  &Options{Seeds: seeds, Years: &years},
		table:    DefaultTable,
		patterns: defaultPatterns,
		years:    years,
		seeds:    normalize(seeds),
	}
	return g.Wordlist()
}

// configYearRange resolves the year range of cfg at now
func configYearRange(cfg Config, now time.Time) YearRange {
	years := DefaultYearRange(now)
	if cfg.YearStart != 0 {
		years.Start = cfg.YearStart
	}
	if cfg.YearEnd != 0 {
		years.End = cfg.YearEnd
	}
	return years
}

func normalize(seeds []string) []string {
	normalized := make([]string, 0, len(seeds))
	for _, v := range seeds {
		normalized = append(normalized, strings.ToLower(v))
	}
	return normalized
}

// BaseWords returns the seeds and all their leetspeak variants (unsorted, unique)
func (g *Generator) BaseWords() []string {
	seen := map[string]struct{}{}
	var base []string
	add := func(word string) {
		if _, ok := seen[word]; ok {
			return
		}
		seen[word] = struct{}{}
		base = append(base, word)
	}
	for _, seed := range g.seeds {
		add(seed)
		for _, variant := range g.table.Expand(seed) {
			add(variant)
		}
	}
	return base
}

// Execute calculates all candidates and writes them to a string channel.
// candidates are sent unsorted and may contain duplicates
func (g *Generator) Execute(ctx context.Context) <-chan string {
	results := make(chan string, len(g.patterns))
	go func() {
		defer close(results)
		send := func(value string) bool {
			select {
			case <-ctx.Done():
				return false
			case results <- value:
				return true
			}
		}
		years := g.years.Years()
		for _, word := range g.BaseWords() {
			if !send(word) {
				return
			}
			for _, year := range years {
				for _, pattern := range g.patterns {
					if !send(pattern.render(word, year)) {
						return
					}
				}
			}
		}
	}()
	return results
}

// Wordlist returns all unique candidates sorted in ascending order
func (g *Generator) Wordlist() []string {
	ch := g.Execute(context.Background())
	d := NewDedupe(ch, g.EstimateSize())
	d.Drain()
	return d.Sorted()
}

// Results returns Wordlist truncated to Options.Limit
func (g *Generator) Results() []string {
	words := g.Wordlist()
	if g.Options.Limit > 0 && len(words) > g.Options.Limit {
		words = words[:g.Options.Limit]
	}
	return words
}

// ExecuteWithWriter executes Generator and writes sorted results to type that implements io.Writer interface
func (g *Generator) ExecuteWithWriter(writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("leetlist", "writer destination cannot be nil")
	}
	return WriteWordlist(writer, g.Results())
}

// EstimateCount returns the number of candidates that will be created
// (including duplicates) without expanding any seed.
// saturates at math.MaxInt
func (g *Generator) EstimateCount() int {
	base := 0
	for _, seed := range g.seeds {
		base = addSat(base, addSat(1, g.table.VariantCount(seed)))
	}
	return mulSat(base, addSat(1, mulSat(g.years.Len(), len(g.patterns))))
}

// EstimateSize returns the size in bytes of all candidates (including duplicates)
// written one per line, without expanding any seed.
// saturates at math.MaxInt
func (g *Generator) EstimateSize() int {
	baseCount, baseBytes := 0, 0
	for _, seed := range g.seeds {
		baseCount = addSat(baseCount, addSat(1, g.table.VariantCount(seed)))
		baseBytes = addSat(baseBytes, addSat(len(seed), g.variantBytes(seed)))
	}
	yearBytes := 0
	for _, year := range g.years.Years() {
		yearBytes += len(year)
	}
	years := g.years.Len()
	size := addSat(baseBytes, baseCount) // +1 newline per base word
	for _, p := range g.patterns {
		size = addSat(size, mulSat(mulSat(years, baseCount), p.static+1))
		size = addSat(size, mulSat(mulSat(p.words, years), baseBytes))
		size = addSat(size, mulSat(mulSat(p.years, baseCount), yearBytes))
	}
	return size
}

// variantBytes returns the total length of all variants of word.
// every choice at position i appears in prod(c_j, j != i) variants
func (g *Generator) variantBytes(word string) int {
	var positions [][]string
	for _, r := range word {
		positions = append(positions, g.table.choices(r))
	}
	total := 0
	for i, choices := range positions {
		others := 1
		for j, v := range positions {
			if j != i {
				others = mulSat(others, len(v))
			}
		}
		for _, choice := range choices {
			total = addSat(total, mulSat(len(choice), others))
		}
	}
	return total
}
