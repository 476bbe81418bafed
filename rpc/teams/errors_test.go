package teams

import (
	"errors"
	"fmt"
	"testing"

	"github.com/satireball/teams-contract/contracts/teams/teamsconst"
	"github.com/stretchr/testify/require"
)

func TestParseFault(t *testing.T) {
	for _, tc := range []struct {
		exception string
		expected  error
	}{
		{exception: "at instruction 42 (THROW): unhandled exception: \"" + teamsconst.ErrNotManager + "\"", expected: ErrNotManager},
		{exception: "unhandled exception: \"" + teamsconst.ErrNotProposedManager + "\"", expected: ErrNotProposedManager},
		{exception: teamsconst.ErrTeamsPaused, expected: ErrTeamsPaused},
		{exception: teamsconst.ErrInvalidRosterSize + ": 3", expected: ErrInvalidRosterSize},
		{exception: teamsconst.ErrMalformedRoster + ": no players", expected: ErrMalformedRoster},
		{exception: teamsconst.ErrSameManager, expected: ErrSameManager},
		{exception: teamsconst.ErrNoProposal, expected: ErrNoProposal},
		{exception: teamsconst.ErrTeamNotFound, expected: ErrTeamNotFound},
	} {
		err := ParseFault(tc.exception)
		require.ErrorIs(t, err, tc.expected, tc.exception)
		require.Contains(t, err.Error(), tc.exception)
	}

	t.Run("not proposed manager is not manager", func(t *testing.T) {
		err := ParseFault(teamsconst.ErrNotProposedManager)
		require.False(t, errors.Is(err, ErrNotManager))
	})

	t.Run("unknown", func(t *testing.T) {
		err := ParseFault("out of gas")
		for _, known := range knownFaults {
			require.NotErrorIs(t, err, known)
		}
		require.EqualError(t, err, "out of gas")
	})
}

func TestWrap(t *testing.T) {
	require.NoError(t, Wrap(nil))

	other := errors.New("connection refused")
	require.Equal(t, other, Wrap(other))

	cause := fmt.Errorf("script failed (FAULT state) due to an error: %s", teamsconst.ErrTeamsPaused)
	err := Wrap(cause)
	require.ErrorIs(t, err, ErrTeamsPaused)
	require.ErrorIs(t, err, cause)
}
