package leetlist

import (
	"bytes"
	"context"
	"math"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func yearRange(start, end int) *YearRange {
	return &YearRange{Start: start, End: end}
}

func TestBuild(t *testing.T) {
	got := Build([]string{"Rex"}, YearRange{Start: 2020, End: 2022})

	expected := []string{
		"2020r3x", "2020rex", "2021r3x", "2021rex",
		"r3x", "r3x2020", "r3x2021",
		"rex", "rex2020", "rex2021",
	}
	require.Equal(t, expected, got)
	require.NotContains(t, got, "rex2022")
	require.NotContains(t, got, "2022rex")
}

func TestBuildProperties(t *testing.T) {
	seeds := []string{"Alice", "1990", "Toast"}
	years := YearRange{Start: 1995, End: 2005}

	first := Build(seeds, years)
	second := Build(seeds, years)
	require.Equal(t, first, second, "build should be idempotent")

	for i := 1; i < len(first); i++ {
		require.Less(t, first[i-1], first[i], "output should be strictly increasing")
	}
	require.True(t, slices.IsSorted(first))

	// every base word has every augmentation
	for _, base := range append([]string{"alice", "1990", "toast"}, Expand("alice")...) {
		require.Contains(t, first, base)
		require.Contains(t, first, base+"1995")
		require.Contains(t, first, "2004"+base)
	}
}

func TestBuildZeroWidthRange(t *testing.T) {
	got := Build([]string{"cat"}, YearRange{Start: 2020, End: 2020})
	require.Equal(t, []string{"c4t", "c@t", "cat"}, got)

	// inverted ranges are empty too
	require.Equal(t, got, Build([]string{"cat"}, YearRange{Start: 2021, End: 2020}))
}

func TestBuildEdgeSeeds(t *testing.T) {
	t.Run("empty seed is not filtered", func(t *testing.T) {
		require.Equal(t, []string{"", "2020"}, Build([]string{""}, YearRange{Start: 2020, End: 2021}))
	})
	t.Run("symbol only seed", func(t *testing.T) {
		require.Equal(t, []string{"#!", "#!2020", "2020#!"}, Build([]string{"#!"}, YearRange{Start: 2020, End: 2021}))
	})
	t.Run("no seeds", func(t *testing.T) {
		require.Empty(t, Build(nil, YearRange{Start: 2020, End: 2021}))
	})
}

func TestDefaultYearRange(t *testing.T) {
	now := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	years := DefaultYearRange(now)
	require.Equal(t, YearRange{Start: 2000, End: 2025}, years)
	require.Equal(t, 25, years.Len())
	require.Equal(t, "2024", years.Years()[24])

	// same day, same wordlist
	require.Equal(t, Build([]string{"rex"}, DefaultYearRange(now)), Build([]string{"rex"}, DefaultYearRange(now.Add(time.Hour))))
}

func TestGeneratorNew(t *testing.T) {
	t.Run("blank seeds", func(t *testing.T) {
		_, err := New(&Options{Seeds: []string{"", "  ", "\t"}})
		require.ErrorIs(t, err, ErrNoSeeds)
	})

	t.Run("blank seeds are dropped", func(t *testing.T) {
		g, err := New(&Options{Seeds: []string{"", "Rex"}, Years: yearRange(2020, 2022)})
		require.Nil(t, err)
		require.Equal(t, Build([]string{"Rex"}, YearRange{Start: 2020, End: 2022}), g.Wordlist())
	})

	t.Run("inverted year range", func(t *testing.T) {
		_, err := New(&Options{Seeds: []string{"rex"}, Years: yearRange(2022, 2020)})
		require.ErrorIs(t, err, ErrInvalidYearRange)
	})

	t.Run("size limit", func(t *testing.T) {
		_, err := New(&Options{Seeds: []string{"alice", "toast"}, Years: yearRange(1000, 3000), MaxSize: 1024})
		require.ErrorIs(t, err, ErrSizeLimitExceeded)
	})

	t.Run("size limit with long seed", func(t *testing.T) {
		// 2^64 spellings, the estimate must not wrap around
		opts := &Options{Seeds: []string{strings.Repeat("a", 64)}, Years: yearRange(2000, 2001), MaxSize: 1 << 20}
		_, err := New(opts)
		require.ErrorIs(t, err, ErrSizeLimitExceeded)
	})

	t.Run("zero width year range", func(t *testing.T) {
		g, err := New(&Options{Seeds: []string{"cat"}, Years: yearRange(2020, 2020)})
		require.Nil(t, err)
		require.Equal(t, []string{"c4t", "c@t", "cat"}, g.Wordlist())
		require.Equal(t, 3, g.EstimateCount())
	})

	t.Run("invalid utf-8 seed", func(t *testing.T) {
		_, err := New(&Options{Seeds: []string{"rex", "r\xffx"}, Years: yearRange(2020, 2021)})
		require.ErrorIs(t, err, ErrInvalidSeed)
	})

	t.Run("invalid pattern variable", func(t *testing.T) {
		_, err := New(&Options{Seeds: []string{"rex"}, Patterns: []string{"{{word}}{{month}}"}})
		require.NotNil(t, err)
	})

	t.Run("pattern without variables", func(t *testing.T) {
		_, err := New(&Options{Seeds: []string{"rex"}, Patterns: []string{"static"}})
		require.NotNil(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		opts := &Options{Seeds: []string{"rex"}}
		g, err := New(opts)
		require.Nil(t, err)
		require.Equal(t, DefaultYearRange(time.Now()), *opts.Years)
		require.Equal(t, DefaultPatterns, opts.Patterns)
		require.Contains(t, g.Wordlist(), "r3x2000")
	})
}

func TestGeneratorCustom(t *testing.T) {
	opts := &Options{
		Seeds:         []string{"Bob"},
		Years:         yearRange(99, 101),
		Substitutions: map[string][]string{"o": {"0", "()"}},
		Patterns:      []string{"{{word}}_{{year}}", "{{year}}{{word}}{{year}}"},
	}
	g, err := New(opts)
	require.Nil(t, err)

	expected := []string{
		"100b()b100", "100b0b100", "100bob100",
		"99b()b99", "99b0b99", "99bob99",
		"b()b", "b()b_100", "b()b_99",
		"b0b", "b0b_100", "b0b_99",
		"bob", "bob_100", "bob_99",
	}
	require.Equal(t, expected, g.Wordlist())
	require.Equal(t, len(expected), g.EstimateCount())

	var buf bytes.Buffer
	require.Nil(t, g.ExecuteWithWriter(&buf))
	require.Equal(t, len(buf.Bytes()), g.EstimateSize())
}

func TestGeneratorEstimate(t *testing.T) {
	g, err := New(&Options{Seeds: []string{"Alice", "Rex"}, Years: yearRange(2000, 2010)})
	require.Nil(t, err)

	words := g.Wordlist()
	// no seed equals one of its variants so nothing collapses
	require.Equal(t, len(words), g.EstimateCount())

	var buf bytes.Buffer
	require.Nil(t, WriteWordlist(&buf, words))
	require.Equal(t, buf.Len(), g.EstimateSize())
}

func TestGeneratorLimit(t *testing.T) {
	g, err := New(&Options{Seeds: []string{"rex"}, Years: yearRange(2020, 2022), Limit: 3})
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, g.ExecuteWithWriter(&buf))
	require.Equal(t, "2020r3x\n2020rex\n2021r3x\n", buf.String())

	require.Equal(t, []string{"2020r3x", "2020rex", "2021r3x"}, g.Results())
	require.NotNil(t, g.ExecuteWithWriter(nil))
}

func TestGeneratorExecuteCancel(t *testing.T) {
	g, err := New(&Options{Seeds: []string{"alice"}, Years: yearRange(1000, 3000)})
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch := g.Execute(ctx)
	<-ch
	cancel()
	count := 0
	for range ch {
		count++
	}
	require.Less(t, count, g.EstimateCount())
}

func TestGeneratorEstimateSaturates(t *testing.T) {
	g, err := New(&Options{Seeds: []string{strings.Repeat("a", 64), strings.Repeat("s", 70)}, Years: yearRange(2000, 2001)})
	require.Nil(t, err)
	require.Equal(t, math.MaxInt, g.table.VariantCount(strings.Repeat("a", 64)))
	require.Equal(t, math.MaxInt, g.EstimateCount())
	require.Equal(t, math.MaxInt, g.EstimateSize())
}

func TestMulAddSat(t *testing.T) {
	require.Equal(t, 0, mulSat(0, math.MaxInt))
	require.Equal(t, 12, mulSat(3, 4))
	require.Equal(t, math.MaxInt, mulSat(math.MaxInt/2, 3))
	require.Equal(t, math.MaxInt, mulSat(math.MaxInt, math.MaxInt))
	require.Equal(t, 7, addSat(3, 4))
	require.Equal(t, math.MaxInt, addSat(math.MaxInt, 1))
	require.Equal(t, math.MaxInt, addSat(math.MaxInt-1, 1))
}

func TestCompilePattern(t *testing.T) {
	p, err := compilePattern("{{year}}-{{word}}.{{year}}")
	require.Nil(t, err)
	require.Equal(t, 2, p.static)
	require.Equal(t, 1, p.words)
	require.Equal(t, 2, p.years)
	require.Equal(t, "2020-rex.2020", p.render("rex", "2020"))

	p, err = compilePattern("{{word}}{{year}}")
	require.Nil(t, err)
	require.Equal(t, "rex2020", p.render("rex", "2020"))
	// a compiled pattern renders many candidates
	require.Equal(t, "r3x1999", p.render("r3x", "1999"))

	_, err = compilePattern("{{word}}{{month}}")
	require.ErrorContains(t, err, "{{month}}")

	_, err = compilePattern("static")
	require.NotNil(t, err)

	_, err = compilePattern("{{word")
	require.NotNil(t, err)

	patterns, err := compilePatterns(DefaultPatterns)
	require.Nil(t, err)
	require.Len(t, patterns, len(DefaultPatterns))
}
