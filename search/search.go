// Package search implements the vanity-hash search: it enumerates
// timestamp offsets over a bounded window, rehashes the candidate
// commit for each pair and reports the first digest matching the
// requested prefix.
package search

import (
	"context"
	"math"
	"strings"

	"github.com/vanitygit/vanitygit/commit"
	"github.com/vanitygit/vanitygit/errors"
	"github.com/vanitygit/vanitygit/hash"
)

// Progress callbacks fire at most once per this many candidates, so
// callback overhead stays bounded on large searches.
const minProgressBatch = 5000

type Options struct {
	// Prefix is the desired lowercase hex prefix of the commit hash.
	Prefix string
	// MaxMinutes bounds the committer-date offset; the search window is
	// [0, MaxMinutes*60] seconds.
	MaxMinutes int
	// Progress, when set, receives a percentage in [0, 100]. Values are
	// non-decreasing across one search. The callback runs on the
	// searching goroutine. A final 100% emission is not guaranteed.
	Progress func(percent int)
}

// Result describes a successful search. AlreadyMatches means the
// unmodified commit already has the prefix and nothing needs amending;
// otherwise CommitterDate and AuthorDate are "<unix-seconds> <tz>"
// strings ready to hand to git.
type Result struct {
	AlreadyMatches bool
	CommitterDate  string
	AuthorDate     string
	Hash           string
	Examined       uint64
}

// Possibilities returns the number of offset pairs a search with the
// given time budget will examine at most.
func Possibilities(maxMinutes int) uint64 {
	return Count(int64(maxMinutes) * 60)
}

// Probability estimates the chance of finding a match, capped at 0.999.
// Advisory only; the search itself never consults it.
func Probability(prefix string, maxMinutes int) float64 {
	hashCount := math.Pow(16, float64(len(prefix)))
	return math.Min(float64(Possibilities(maxMinutes))/hashCount, 0.999)
}

// Run searches for an encoding of rawCommit whose hash starts with
// opts.Prefix, perturbing only the two date timestamps. rawCommit must
// end in a newline; the framing is byte-sensitive. The context is
// checked once per committer-offset value, so cancellation takes
// effect between outer iterations without changing result semantics.
func Run(ctx context.Context, rawCommit string, opts Options) (*Result, error) {
	if !hash.ValidatePrefix(opts.Prefix) {
		return nil, errors.NewSearchError(opts.Prefix, errors.ErrInvalidPrefix)
	}
	if !strings.HasSuffix(rawCommit, "\n") {
		return nil, errors.NewSearchError(opts.Prefix, errors.ErrMissingTrailingNewline)
	}
	if opts.MaxMinutes < 0 {
		return nil, errors.NewSearchError(opts.Prefix, errors.ErrInvalidMinutes)
	}

	tmpl, oldValues := commit.ParseTemplate(rawCommit)

	possibilities := Possibilities(opts.MaxMinutes)
	batch := possibilities / 100
	if batch < minProgressBatch {
		batch = minProgressBatch
	}

	var examined uint64
	prevCommitter := int64(-1)

	it := NewOffsetIter(int64(opts.MaxMinutes) * 60)
	for {
		committerOffset, authorOffset, ok := it.Next()
		if !ok {
			break
		}

		if committerOffset != prevCommitter {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			prevCommitter = committerOffset
		}

		newValues := oldValues.WithOffsets(authorOffset, committerOffset)
		digest := hash.CommitHash(tmpl.Render(newValues))
		examined++

		if opts.Progress != nil && examined%batch == 0 {
			opts.Progress(int(examined * 100 / possibilities))
		}

		if !strings.HasPrefix(digest, opts.Prefix) {
			continue
		}

		if committerOffset == 0 && authorOffset == 0 {
			return &Result{
				AlreadyMatches: true,
				Hash:           digest,
				Examined:       examined,
			}, nil
		}
		return &Result{
			CommitterDate: newValues.CommitterDate(),
			AuthorDate:    newValues.AuthorDate(),
			Hash:          digest,
			Examined:      examined,
		}, nil
	}

	return nil, errors.NewSearchError(opts.Prefix, errors.ErrSearchExhausted)
}
