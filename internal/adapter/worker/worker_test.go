package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payout-engine/internal/adapter/memory"
	"payout-engine/internal/adapter/usecase"
	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
	"payout-engine/internal/core/port/mocks"
)

func appendMessages(t *testing.T, store *memory.Store, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, store.AppendOutbox(context.Background(), port.OutboxMessage{
			ID: id, Topic: "payout.notifications", Payload: []byte(`{"id":"` + id + `"}`),
		}))
	}
}

func TestOutboxRelayPublishesAndMarks(t *testing.T) {
	store := memory.NewStore()
	appendMessages(t, store, "m1", "m2")

	pub := mocks.NewMockPublisher(t)
	pub.EXPECT().Publish(mock.Anything, "payout.notifications", []byte(`{"id":"m1"}`)).Return(nil).Once()
	pub.EXPECT().Publish(mock.Anything, "payout.notifications", []byte(`{"id":"m2"}`)).Return(nil).Once()

	relay := OutboxRelay{Outbox: store, Publisher: pub}
	require.NoError(t, relay.RunOnce(context.Background()))

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Nothing left to publish on the next pass.
	require.NoError(t, relay.RunOnce(context.Background()))
}

func TestOutboxRelayStopsOnPublishError(t *testing.T) {
	store := memory.NewStore()
	appendMessages(t, store, "m1", "m2")

	boom := errors.New("broker down")
	pub := mocks.NewMockPublisher(t)
	pub.EXPECT().Publish(mock.Anything, mock.Anything, []byte(`{"id":"m1"}`)).Return(boom).Once()

	relay := OutboxRelay{Outbox: store, Publisher: pub, BatchSize: 10}
	require.ErrorIs(t, relay.RunOnce(context.Background()), boom)

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestDeadlineSweeperFinishesExpired(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)
	for id, deadline := range map[string]*time.Time{"expired": &past, "running": &future, "open-ended": nil} {
		require.NoError(t, store.InsertCampaign(ctx, domain.Campaign{
			ID: id, CreatorID: "creator", Type: domain.TaskTypeCampaign,
			TotalBudget: 1_000, BudgetRemaining: 1_000, CPM: 10,
			Status: domain.CampaignOpen, Deadline: deadline,
		}))
	}

	uc := usecase.NewPayoutUseCase(usecase.Deps{Store: store, Referrals: store}, usecase.DefaultConfig())
	require.NoError(t, DeadlineSweeper{Campaigns: uc}.RunOnce(ctx))

	for id, want := range map[string]domain.CampaignStatus{
		"expired":    domain.CampaignCompleted,
		"running":    domain.CampaignOpen,
		"open-ended": domain.CampaignOpen,
	} {
		c, err := store.GetCampaign(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, c.Status, id)
	}
}

type countingJob struct {
	calls  atomic.Int32
	cancel context.CancelFunc
}

func (j *countingJob) RunOnce(context.Context) error {
	if j.calls.Add(1) == 2 {
		j.cancel()
	}
	return errors.New("ignored")
}

func TestRunLoopsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	job := &countingJob{cancel: cancel}

	require.NoError(t, Run(ctx, "test", time.Millisecond, job, nil))
	assert.Equal(t, int32(2), job.calls.Load())
}
