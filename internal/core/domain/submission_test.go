package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionTransitions(t *testing.T) {
	allowed := map[SubmissionState][]SubmissionState{
		StateReadingViews:     {StateCheckingContent, StateRejected},
		StateCheckingContent:  {StateApproved, StateRejected},
		StateApproved:         {StatePaymentRequested, StateCreatorRejected, StateRejected},
		StatePaymentRequested: {StatePaid, StateCreatorRejected},
		StateRejected:         {StateApproved},
		StateCreatorRejected:  {StateApproved},
	}
	for _, from := range AllSubmissionStates {
		for _, to := range AllSubmissionStates {
			want := false
			for _, next := range allowed[from] {
				want = want || next == to
			}
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.True(t, StatePaid.Terminal())
	assert.True(t, StatePaymentFailed.Terminal())
	assert.False(t, StateRejected.Terminal())
	assert.False(t, SubmissionState("BOGUS").Valid())
}

func TestSubmissionTransitionError(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Submission{ID: "s1", State: StatePaid}

	err := s.Transition(StateApproved, now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.Equal(t, StatePaid, s.State)

	s.State = StateApproved
	require.NoError(t, s.Transition(StatePaymentRequested, now))
	assert.Equal(t, now, s.UpdatedAt)
}

func TestSubmissionStale(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lease := 2 * time.Minute

	s := Submission{State: StateReadingViews, UpdatedAt: now.Add(-time.Minute)}
	assert.False(t, s.Stale(now, lease))
	assert.True(t, s.Stale(now, 0))

	s.UpdatedAt = now.Add(-lease)
	assert.True(t, s.Stale(now, lease))

	s.State = StateApproved
	assert.False(t, s.Stale(now, 0))
}

func TestAllocatedStates(t *testing.T) {
	var held []SubmissionState
	for _, st := range AllSubmissionStates {
		if st.Allocated() {
			held = append(held, st)
		}
	}
	assert.Equal(t, []SubmissionState{StateApproved, StatePaymentRequested, StatePaid}, held)
}

func TestRejectReason(t *testing.T) {
	text, err := RejectReason(" fake_engagement ")
	require.NoError(t, err)
	assert.Equal(t, "Engagement appears to be fake or purchased", text)

	text, err = RejectReason("reposted someone else's video")
	require.NoError(t, err)
	assert.Equal(t, "reposted someone else's video", text)

	_, err = RejectReason("  ")
	assert.Equal(t, CodeInvalidInput, CodeOf(err))
}

func TestErrorIsMatchesCode(t *testing.T) {
	err := Errorf(CodeDuplicate, "post %s already submitted", "p1")
	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "DUPLICATE: post p1 already submitted", err.Error())
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
}
