package articlesystem

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fsi-tue/rri/internal/articleerrors"
	"github.com/fsi-tue/rri/internal/clock"
	"github.com/fsi-tue/rri/internal/ledger"
	"github.com/fsi-tue/rri/internal/models"
)

// newMemorySystem wires an ArticleSystem against the real in-memory ledger
func newMemorySystem(now time.Time) (*ArticleSystem, *ledger.MemoryLedger) {
	memLedger := ledger.NewMemoryLedger()
	system := NewArticleSystem(memLedger, clock.Fixed{Instant: now}, newFakeFileStore(), &fakeMailer{}, "admin@example.org")
	return system, memLedger
}

func mustCreate(t *testing.T, system *ArticleSystem, owner string, price int64, expiresOn time.Time) models.Article {
	t.Helper()
	article, err := system.CreateArticle(owner, "article of "+owner, price, expiresOn, "", nil)
	require.NoError(t, err)
	return article
}

func TestSweepExpired(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	system, _ := newMemorySystem(day)

	expiring := mustCreate(t, system, "owner1", 1000, day)              // expires end of day
	surviving := mustCreate(t, system, "owner2", 1000, day.AddDate(0, 0, 7)) // expires next week

	// the day after: only the first article is overdue
	sweepAt := day.AddDate(0, 0, 1)

	transitioned, err := system.SweepExpired(sweepAt)
	require.NoError(t, err)
	require.Len(t, transitioned, 1)
	require.Equal(t, expiring.ArticleID, transitioned[0].ArticleID)
	require.Equal(t, models.StatusExpired, transitioned[0].Status)

	got, err := system.GetArticle(expiring.ArticleID)
	require.NoError(t, err)
	require.Equal(t, models.StatusExpired, got.Status)

	got, err = system.GetArticle(surviving.ArticleID)
	require.NoError(t, err)
	require.Equal(t, models.StatusActive, got.Status)

	// a repeat sweep with the same now reports nothing
	transitioned, err = system.SweepExpired(sweepAt)
	require.NoError(t, err)
	require.Empty(t, transitioned)
}

func TestSweepExpired_BoundaryIsStrict(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	system, _ := newMemorySystem(day)
	article := mustCreate(t, system, "owner1", 1000, day)

	// exactly the expiry instant: not yet expired, comparison is strict
	transitioned, err := system.SweepExpired(article.ExpiresAt)
	require.NoError(t, err)
	require.Empty(t, transitioned)

	transitioned, err = system.SweepExpired(article.ExpiresAt.Add(time.Second))
	require.NoError(t, err)
	require.Len(t, transitioned, 1)
}

// A bid racing an expiry on the same article must serialize: either the bid
// lands before the transition or it is rejected afterwards, never both.
func TestSweepExpired_RacingBid(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	system, _ := newMemorySystem(day)
	article := mustCreate(t, system, "owner1", 1000, day)

	sweepAt := day.AddDate(0, 0, 1)

	var wg sync.WaitGroup
	var bidErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, bidErr = system.PlaceBid(article.ArticleID, 1100, "user1")
	}()
	go func() {
		defer wg.Done()
		_, err := system.SweepExpired(sweepAt)
		require.NoError(t, err)
	}()
	wg.Wait()

	// ensure the article ends up expired even if the sweep lost the race
	_, err := system.SweepExpired(sweepAt)
	require.NoError(t, err)

	got, err := system.GetArticle(article.ArticleID)
	require.NoError(t, err)
	require.Equal(t, models.StatusExpired, got.Status)

	if bidErr == nil {
		require.Len(t, got.Biddings, 1)
	} else {
		require.True(t, errors.Is(bidErr, articleerrors.ErrArticleNotActive), "got: %v", bidErr)
		require.Empty(t, got.Biddings)
	}
}

// N concurrent bids with strictly increasing amounts: every bid that was
// admitted must exceed all bids admitted before it, and the history order is
// the acceptance order.
func TestPlaceBid_ConcurrentBidsAreLinearized(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	system, _ := newMemorySystem(day)
	article := mustCreate(t, system, "owner1", 1000, day.AddDate(0, 0, 7))

	const concurrentCount = 50

	var wg sync.WaitGroup
	accepted := make([]bool, concurrentCount)
	for i := 0; i < concurrentCount; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			_, err := system.PlaceBid(article.ArticleID, int64(1001+i), "bidder")
			accepted[i] = err == nil
		}()
	}
	wg.Wait()

	got, err := system.GetArticle(article.ArticleID)
	require.NoError(t, err)

	// the highest amount always wins regardless of interleaving
	require.True(t, accepted[concurrentCount-1] || HighestBid(got) >= int64(1000+concurrentCount))

	var admitted int
	for _, ok := range accepted {
		if ok {
			admitted++
		}
	}
	require.Equal(t, admitted, len(got.Biddings))
	require.NotEmpty(t, got.Biddings)

	// strictly increasing in acceptance order
	prev := got.StartingPrice
	for _, bid := range got.Biddings {
		require.Greater(t, bid.Amount, prev)
		prev = bid.Amount
	}
	require.Equal(t, prev, HighestBid(got))
}

// Two simultaneous bids of 1500 and 1600 against a starting price of 1000:
// both may be admitted (1500 first) or only 1600 (1600 first); the final
// highest bid is 1600 either way.
func TestPlaceBid_ConcurrentPair(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	system, _ := newMemorySystem(day)
	article := mustCreate(t, system, "owner1", 1000, day.AddDate(0, 0, 7))

	var wg sync.WaitGroup
	for _, amount := range []int64{1500, 1600} {
		wg.Add(1)
		amount := amount
		go func() {
			defer wg.Done()
			_, _ = system.PlaceBid(article.ArticleID, amount, "bidder")
		}()
	}
	wg.Wait()

	got, err := system.GetArticle(article.ArticleID)
	require.NoError(t, err)
	require.Equal(t, int64(1600), HighestBid(got))

	switch len(got.Biddings) {
	case 1:
		require.Equal(t, int64(1600), got.Biddings[0].Amount)
	case 2:
		require.Equal(t, int64(1500), got.Biddings[0].Amount)
		require.Equal(t, int64(1600), got.Biddings[1].Amount)
	default:
		t.Fatalf("unexpected bid history: %+v", got.Biddings)
	}
}
