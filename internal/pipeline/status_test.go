package pipeline

import (
	"testing"
	"time"

	"jobhunter/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	for _, s := range Statuses {
		parsed, err := Parse(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := Parse("ghosted")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = Parse("")
	require.Error(t, err)
}

func TestSetStatus_StampsAppliedAtOnce(t *testing.T) {
	change, err := SetStatus(Saved, nil, Applied, now)
	require.NoError(t, err)
	require.NotNil(t, change.AppliedAt)
	assert.Equal(t, now, *change.AppliedAt)
	assert.True(t, change.Changed())

	later := now.Add(48 * time.Hour)
	change, err = SetStatus(Applied, change.AppliedAt, Interviewing, later)
	require.NoError(t, err)
	assert.Equal(t, now, *change.AppliedAt, "stamp must not move")

	change, err = SetStatus(Interviewing, change.AppliedAt, Saved, later)
	require.NoError(t, err)
	require.NotNil(t, change.AppliedAt, "stamp is never cleared")
	assert.Equal(t, now, *change.AppliedAt)
}

func TestSetStatus_SavedDoesNotStamp(t *testing.T) {
	change, err := SetStatus(Saved, nil, Saved, now)
	require.NoError(t, err)
	assert.Nil(t, change.AppliedAt)
	assert.False(t, change.Changed())
}

func TestSetStatus_SkippingAppliedStillStamps(t *testing.T) {
	change, err := SetStatus(Saved, nil, Offer, now)
	require.NoError(t, err)
	require.NotNil(t, change.AppliedAt)
}

func TestSetStatus_TerminalStatesAreNotLocked(t *testing.T) {
	change, err := SetStatus(Rejected, &now, Interviewing, now)
	require.NoError(t, err)
	assert.Equal(t, Interviewing, change.To)

	change, err = SetStatus(Accepted, &now, Saved, now)
	require.NoError(t, err)
	assert.Equal(t, Saved, change.To)
}

func TestSetStatus_Invalid(t *testing.T) {
	_, err := SetStatus(Saved, nil, Status("bogus"), now)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestOnInterviewScheduled(t *testing.T) {
	cases := []struct {
		from Status
		want Status
	}{
		{Saved, Interviewing},
		{Applied, Interviewing},
		{Interviewing, Interviewing},
		{Offer, Offer},
		{Accepted, Accepted},
		{Rejected, Rejected},
	}
	for _, tc := range cases {
		t.Run(string(tc.from), func(t *testing.T) {
			change := OnInterviewScheduled(tc.from, nil, now)
			assert.Equal(t, tc.want, change.To)
			assert.Equal(t, tc.from != tc.want, change.Changed())
		})
	}
}

func TestOnInterviewScheduled_StampsWhenAdvancing(t *testing.T) {
	change := OnInterviewScheduled(Saved, nil, now)
	require.NotNil(t, change.AppliedAt)
	assert.Equal(t, now, *change.AppliedAt)

	change = OnInterviewScheduled(Offer, nil, now)
	assert.Nil(t, change.AppliedAt)
}
