package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupParams(t *testing.T) {
	s := NewSetupView(func(SearchParams) {}, func() {})

	s.prefixInput.SetText("1234a")
	s.minutesInput.SetText("60")
	s.revisionInput.SetText("")

	params, ok := s.Params()
	require.True(t, ok)
	assert.Equal(t, "1234a", params.Prefix)
	assert.Equal(t, 60, params.MaxMinutes)
	assert.Equal(t, "HEAD", params.Revision, "empty revision defaults to HEAD")
}

func TestSetupParamsRejectsBadPrefix(t *testing.T) {
	s := NewSetupView(func(SearchParams) {}, func() {})

	s.prefixInput.SetText("12g4")
	s.minutesInput.SetText("60")

	_, ok := s.Params()
	assert.False(t, ok)
}

func TestSetupParamsRejectsBadMinutes(t *testing.T) {
	s := NewSetupView(func(SearchParams) {}, func() {})

	s.prefixInput.SetText("ab")

	for _, minutes := range []string{"", "-5", "ten"} {
		s.minutesInput.SetText(minutes)
		_, ok := s.Params()
		assert.False(t, ok, "minutes=%q", minutes)
	}
}

func TestSetProposedPrefixOnlyFillsEmptyField(t *testing.T) {
	s := NewSetupView(func(SearchParams) {}, func() {})

	s.SetProposedPrefix("0001a")
	assert.Equal(t, "0001a", s.prefixInput.GetText())

	s.SetProposedPrefix("0002a")
	assert.Equal(t, "0001a", s.prefixInput.GetText(), "user input is not overwritten")
}
