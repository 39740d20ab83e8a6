package store

import (
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/saveeasy/internal/models"
)

func newTestStore() *Store {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(Seed(), log)
}

func TestSnapshotIsIsolated(t *testing.T) {
	st := newTestStore()

	snap := st.Snapshot()
	snap.User.TotalSavings = 1
	snap.SavingsGoals[0].CurrentAmount = 1
	snap.Groups[0].Members[0].Name = "changed"

	fresh := st.Snapshot()
	assert.Equal(t, 25000.0, fresh.User.TotalSavings)
	assert.Equal(t, 25000.0, fresh.SavingsGoals[0].CurrentAmount)
	assert.Equal(t, "Adebayo Johnson", fresh.Groups[0].Members[0].Name)
}

func TestReadsAreIdempotent(t *testing.T) {
	st := newTestStore()
	assert.Equal(t, st.Snapshot(), st.Snapshot())
	assert.Equal(t, st.Analytics(now), st.Analytics(now))
	assert.Equal(t, Seed().Analytics, st.Snapshot().Analytics)
}

func TestDispatchReturnsNewState(t *testing.T) {
	st := newTestStore()

	out := st.Dispatch(AddTransaction{Transaction: tx("d1", models.TxDeposit, 5000)})
	assert.Equal(t, 30000.0, out.User.TotalSavings)
	assert.Equal(t, 30000.0, st.TotalSavings())
	assert.Equal(t, out, st.Snapshot())
}

func TestConcurrentDispatch(t *testing.T) {
	st := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := "c" + string(rune('A'+i%26)) + string(rune('a'+i/26))
			st.Dispatch(AddTransaction{Transaction: tx(id, models.TxDeposit, 100)})
			_ = st.Snapshot()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 30000.0, st.TotalSavings())
	assert.Len(t, st.Snapshot().Transactions, 55)
}

func TestSubscribeReceivesLatest(t *testing.T) {
	st := newTestStore()
	ch, cancel := st.Subscribe()

	st.Dispatch(AddTransaction{Transaction: tx("s1", models.TxDeposit, 100)})
	st.Dispatch(AddTransaction{Transaction: tx("s2", models.TxDeposit, 100)})

	snap := <-ch
	assert.Equal(t, 25200.0, snap.User.TotalSavings)

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)

	require.NotPanics(t, func() {
		st.Dispatch(AddTransaction{Transaction: tx("s3", models.TxDeposit, 100)})
	})
}
