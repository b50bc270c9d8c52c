// Package rename computes new filenames from a rule and applies them in a
// single synchronous pass over the collected files.
package rename

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jfmartin/renamebatch/pkg/models"
)

// Generator computes a file's new basename from the rule and a counter
// value. Generation is pure: it never touches the filesystem.
type Generator struct {
	rule models.RenameRule
	re   *regexp.Regexp
	now  func() time.Time
}

// NewGenerator validates the rule, compiles the search expression if one is
// configured, and returns a generator.
func NewGenerator(rule models.RenameRule) (*Generator, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{rule: rule, now: time.Now}
	if rule.Search != "" {
		re, err := regexp.Compile(rule.Search)
		if err != nil {
			return nil, fmt.Errorf("invalid search pattern: %w", err)
		}
		g.re = re
	}

	return g, nil
}

// Generate returns the new basename for file. The transformation order is
// fixed: search/replace, prefix, suffix, numbering, date. The extension is
// never touched and is appended last.
func (g *Generator) Generate(file models.CandidateFile, counter int) string {
	stem := file.Stem

	// All non-overlapping matches are replaced, not just the first.
	if g.re != nil {
		stem = g.re.ReplaceAllString(stem, g.rule.Replace)
	}

	if g.rule.Prefix != "" {
		stem = g.rule.Prefix + stem
	}

	if g.rule.Suffix != "" {
		stem = stem + g.rule.Suffix
	}

	if n := g.rule.Numbering; n != nil {
		num := padNumber(counter, n.Padding)
		if n.Mode == models.NumberSequential {
			stem = num
		} else {
			stem = stem + "_" + num
		}
	}

	if d := g.rule.Date; d != nil {
		date := g.dateString(file, d.Source)
		if d.Position == models.PositionPrefix {
			stem = date + "_" + stem
		} else {
			stem = stem + "_" + date
		}
	}

	return stem + file.Ext
}

// padNumber formats n left-padded with zeros to width. A value wider than
// the padding is kept in full, never truncated.
func padNumber(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

func (g *Generator) dateString(file models.CandidateFile, source models.DateSource) string {
	var t time.Time
	switch source {
	case models.DateModified:
		t = file.ModTime
	case models.DateCreated:
		t = file.CreateTime
	default:
		t = g.now()
	}
	return t.Format("20060102")
}
