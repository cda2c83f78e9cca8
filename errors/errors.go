package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrInvalidPrefix          = stderrors.New("invalid prefix: only lowercase hex digits are allowed")
	ErrMissingTrailingNewline = stderrors.New("commit text does not end in a newline")
	ErrSearchExhausted        = stderrors.New("search space exhausted without a match")
	ErrNotGitRepository       = stderrors.New("not a git repository")
	ErrNotACommit             = stderrors.New("revision does not point to a commit")
	ErrInvalidMinutes         = stderrors.New("time budget must be a positive number of minutes")
)

type SearchError struct {
	Prefix string
	Err    error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search %q: %v", e.Prefix, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

func NewSearchError(prefix string, err error) *SearchError {
	return &SearchError{
		Prefix: prefix,
		Err:    err,
	}
}

type RepoError struct {
	Op  string
	Rev string
	Err error
}

func (e *RepoError) Error() string {
	if e.Rev == "" {
		return fmt.Sprintf("repository %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("repository %s %s: %v", e.Op, e.Rev, e.Err)
}

func (e *RepoError) Unwrap() error {
	return e.Err
}

func NewRepoError(op, rev string, err error) *RepoError {
	return &RepoError{
		Op:  op,
		Rev: rev,
		Err: err,
	}
}
