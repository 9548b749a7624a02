package leetlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// variables an augmentation pattern may reference
const (
	wordVar = "word"
	yearVar = "year"
)

// pattern is an augmentation template compiled once and rendered per candidate
type pattern struct {
	raw  string
	tmpl *fasttemplate.Template
	// length of text outside placeholders
	static int
	// number of {{word}} and {{year}} placeholders
	words int
	years int
}

// compilePattern compiles raw and makes sure it only uses {{word}} and {{year}}
func compilePattern(raw string) (*pattern, error) {
	tmpl, err := fasttemplate.NewTemplate(raw, ParenthesisOpen, ParenthesisClose)
	if err != nil {
		return nil, err
	}
	p := &pattern{raw: raw, tmpl: tmpl}
	var unknown []string
	p.static = len(tmpl.ExecuteFuncString(func(_ io.Writer, tag string) (int, error) {
		switch tag {
		case wordVar:
			p.words++
		case yearVar:
			p.years++
		default:
			unknown = append(unknown, ParenthesisOpen+tag+ParenthesisClose)
		}
		return 0, nil
	}))
	if len(unknown) > 0 {
		return nil, fmt.Errorf("pattern `%v`: values of `%v` variables not found", raw, strings.Join(unknown, ","))
	}
	if p.words+p.years == 0 {
		return nil, fmt.Errorf("pattern `%v` does not use any variable", raw)
	}
	return p, nil
}

func compilePatterns(raw []string) ([]*pattern, error) {
	patterns := make([]*pattern, 0, len(raw))
	for _, v := range raw {
		p, err := compilePattern(v)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// render replaces placeholders with word and year
func (p *pattern) render(word, year string) string {
	return p.tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if tag == wordVar {
			return io.WriteString(w, word)
		}
		return io.WriteString(w, year)
	})
}

// defaultPatterns are DefaultPatterns compiled, used by Build
var defaultPatterns = mustPatterns(DefaultPatterns)

func mustPatterns(raw []string) []*pattern {
	patterns, err := compilePatterns(raw)
	if err != nil {
		panic(err)
	}
	return patterns
}
