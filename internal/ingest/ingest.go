// Package ingest parses raw Vivado-style static-timing-analysis report text
// into the typed summary model. Every operation is a pure function of its
// input string and degrades to nil fields instead of failing: a missing
// section, an unmatched line, or a malformed number never aborts parsing.
package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// floatPat matches a signed decimal the way the report prints them.
	floatPat = `[-+]?(?:\d+\.\d+|\d+)`
	// pctPat matches a percentage value without its % sign.
	pctPat = `(?:\d+\.\d+|\d+)`
)

// between returns the text after the first match of start, up to (not
// including) the first match of end in the remainder. Missing end runs to
// the end of text; missing start yields "".
func between(text string, start, end *regexp.Regexp) string {
	loc := start.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	rest := text[loc[1]:]
	if e := end.FindStringIndex(rest); e != nil {
		return rest[:e[0]]
	}

	return rest
}

func firstString(re *regexp.Regexp, s string) *string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	v := strings.TrimSpace(m[1])

	return &v
}

func firstFloat(re *regexp.Regexp, s string) *float64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}

	return &v
}

func firstInt(re *regexp.Regexp, s string) *int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	v, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	return &v
}

// capRunes truncates s to at most n characters (code points, not bytes).
func capRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
