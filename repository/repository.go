// Package repository is the boundary to the enclosing git repository:
// it reads the raw stored bytes of a commit object (the byte-exact
// input the hasher needs) and derives prefix proposals from existing
// history.
package repository

import (
	"fmt"
	"io"
	"strconv"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/vanitygit/vanitygit/errors"
)

type Repository struct {
	repo *git.Repository
}

// Open finds the repository enclosing path, walking up to the nearest
// .git directory.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if err == git.ErrRepositoryNotExists {
			return nil, errors.NewRepoError("open", "", errors.ErrNotGitRepository)
		}
		return nil, errors.NewRepoError("open", "", err)
	}
	return &Repository{repo: repo}, nil
}

// ResolveHash resolves a revision (HEAD, branch, hash prefix, ...) to
// a full 40-character commit hash.
func (r *Repository) ResolveHash(rev string) (string, error) {
	h, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", errors.NewRepoError("resolve", rev, err)
	}
	return h.String(), nil
}

// RawCommit returns the stored commit object for rev exactly as git
// hashes it, trailing newline included. The bytes come straight from
// the object store, not from a re-serialized parse, so rehashing them
// reproduces the commit's hash.
func (r *Repository) RawCommit(rev string) (string, error) {
	h, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", errors.NewRepoError("resolve", rev, err)
	}

	obj, err := r.repo.Storer.EncodedObject(plumbing.AnyObject, *h)
	if err != nil {
		return "", errors.NewRepoError("read", rev, err)
	}
	if obj.Type() != plumbing.CommitObject {
		return "", errors.NewRepoError("read", rev, errors.ErrNotACommit)
	}

	reader, err := obj.Reader()
	if err != nil {
		return "", errors.NewRepoError("read", rev, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", errors.NewRepoError("read", rev, err)
	}

	return string(data), nil
}

// ProposedPrefix suggests the next vanity prefix from the hash of rev
// (typically HEAD^): its first digits characters are read as a decimal
// number n and the proposal is zero-padded n+1 followed by "a". When
// rev does not resolve or the characters are not decimal, counting
// starts at 1.
func (r *Repository) ProposedPrefix(rev string, digits int) string {
	var previous string
	if h, err := r.ResolveHash(rev); err == nil {
		previous = h
	}
	return NextNumericPrefix(previous, digits)
}

// NextNumericPrefix implements the counting scheme behind
// ProposedPrefix on a bare hash string.
func NextNumericPrefix(hash string, digits int) string {
	n := uint64(1)
	if len(hash) >= digits {
		if parsed, err := strconv.ParseUint(hash[:digits], 10, 64); err == nil {
			n = parsed + 1
		}
	}
	return fmt.Sprintf("%0*da", digits, n)
}

// AmendCommand renders the git invocation that rewrites HEAD with the
// dates a search found, ready to paste into a shell.
func AmendCommand(committerDate, authorDate string) string {
	return fmt.Sprintf("GIT_COMMITTER_DATE='%s' git commit --amend -C HEAD --date='%s'",
		committerDate, authorDate)
}
