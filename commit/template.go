// Package commit turns a raw commit object into a reusable template in
// which only the author and committer timestamps vary. Everything else
// in the object is preserved byte for byte, so rendering a template
// with its original values reproduces the input exactly.
package commit

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	authorPlaceholder    = "%(author_date_timestamp)i"
	committerPlaceholder = "%(committer_date_timestamp)i"
)

// Values holds the two date fields extracted from a commit object.
// Timezone strings are opaque and passed through unchanged.
type Values struct {
	AuthorTimestamp    int64
	AuthorTZ           string
	CommitterTimestamp int64
	CommitterTZ        string
}

// WithOffsets returns a copy with the given number of seconds added to
// each timestamp.
func (v Values) WithOffsets(authorOffset, committerOffset int64) Values {
	v.AuthorTimestamp += authorOffset
	v.CommitterTimestamp += committerOffset
	return v
}

// AuthorDate formats the author date as "<unix-seconds> <tz>", the
// shape git accepts for GIT_AUTHOR_DATE.
func (v Values) AuthorDate() string {
	return fmt.Sprintf("%d %s", v.AuthorTimestamp, v.AuthorTZ)
}

// CommitterDate formats the committer date as "<unix-seconds> <tz>".
func (v Values) CommitterDate() string {
	return fmt.Sprintf("%d %s", v.CommitterTimestamp, v.CommitterTZ)
}

// Template is a commit object with both date timestamps replaced by
// placeholders. Immutable once built; safe to share across candidates.
type Template struct {
	text string
}

// ParseTemplate splits the raw commit text into lines, replaces the
// timestamp field of the author and committer lines with placeholders
// and collects the original values. Any line whose first field is
// "author" or "committer" is treated as a date line, matching how git
// lays out commit headers. A timestamp field that does not parse as a
// base-10 integer degrades to zero rather than failing.
func ParseTemplate(raw string) (*Template, Values) {
	var values Values

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}

		switch fields[0] {
		case "author":
			values.AuthorTimestamp = parseTimestamp(fields[len(fields)-2])
			values.AuthorTZ = fields[len(fields)-1]
			fields[len(fields)-2] = authorPlaceholder
		case "committer":
			values.CommitterTimestamp = parseTimestamp(fields[len(fields)-2])
			values.CommitterTZ = fields[len(fields)-1]
			fields[len(fields)-2] = committerPlaceholder
		default:
			continue
		}

		lines[i] = strings.Join(fields, " ")
	}

	// Split/Join on "\n" is exactly invertible, so a trailing newline
	// in the input survives as a trailing empty element.
	return &Template{text: strings.Join(lines, "\n")}, values
}

// Render substitutes both placeholders with the decimal timestamps
// from v and returns the candidate commit object.
func (t *Template) Render(v Values) string {
	s := strings.ReplaceAll(t.text, authorPlaceholder, strconv.FormatInt(v.AuthorTimestamp, 10))
	return strings.ReplaceAll(s, committerPlaceholder, strconv.FormatInt(v.CommitterTimestamp, 10))
}

func parseTimestamp(s string) int64 {
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}
