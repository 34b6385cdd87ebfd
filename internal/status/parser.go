// Package status parses the line-oriented output of git status --porcelain
// into structured records.
package status

import (
	"fmt"
	"strings"
)

// Placeholder is the character printed in place of a blank "no change"
// status position. A literal space is ambiguous once codes are column
// aligned with other annotations, so blanks are normalized to this
// character as soon as a line is parsed.
const Placeholder = '.'

// validCodeChars are the characters git emits in either position of the
// two-character XY status code, plus the placeholder itself so that
// already-normalized input parses too.
const validCodeChars = " MTADRCU?!."

// Record is one parsed status entry: a two-character code and the path
// it applies to. Blank code positions are already normalized to
// Placeholder. Immutable once parsed.
type Record struct {
	// Code is the two-character XY status code, e.g. "MM" or ".M".
	Code string
	// Path is the slash-separated path, without any trailing slash.
	Path string
	// IsDirEntry is set when git reported the path with a trailing
	// slash (directories show up as blobs with git status --ignored).
	IsDirEntry bool
}

// Segments returns the path split on the path separator.
func (r Record) Segments() []string {
	return strings.Split(r.Path, "/")
}

// ParseError reports a status line that does not match the expected
// two-character-code-plus-path shape. Malformed lines are skipped, not
// fatal: a single bad line must not abort an otherwise valid tree.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed status line %q: %s", e.Line, e.Reason)
}

// Parse converts one raw status line into a Record. The line must be a
// two-character code, exactly one separating space, and a non-empty
// path.
func Parse(line string) (Record, error) {
	if len(line) < 3 {
		return Record{}, &ParseError{Line: line, Reason: "shorter than code plus separator"}
	}
	code := line[:2]
	if !strings.ContainsRune(validCodeChars, rune(code[0])) ||
		!strings.ContainsRune(validCodeChars, rune(code[1])) {
		return Record{}, &ParseError{Line: line, Reason: "unrecognized status code"}
	}
	if line[2] != ' ' {
		return Record{}, &ParseError{Line: line, Reason: "missing separator after status code"}
	}

	path := line[3:]
	if strings.TrimSpace(path) == "" {
		return Record{}, &ParseError{Line: line, Reason: "empty path"}
	}

	rec := Record{Code: normalizeCode(code), Path: path}
	if strings.HasSuffix(path, "/") {
		rec.IsDirEntry = true
		rec.Path = strings.TrimSuffix(path, "/")
		if rec.Path == "" {
			return Record{}, &ParseError{Line: line, Reason: "empty path"}
		}
	}
	return rec, nil
}

// ParseLines parses every line, applying the skip-and-continue policy:
// blank lines are ignored, malformed lines are counted and dropped.
// The caller is expected to log the skipped count.
func ParseLines(lines []string) (records []Record, skipped int) {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := Parse(line)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

func normalizeCode(code string) string {
	return strings.ReplaceAll(code, " ", string(Placeholder))
}
