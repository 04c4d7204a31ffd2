package swipe_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kingRayhan/dating-app/internal/app"
	"github.com/kingRayhan/dating-app/internal/cache"
	"github.com/kingRayhan/dating-app/internal/config"
	"github.com/kingRayhan/dating-app/internal/db"
	svcErr "github.com/kingRayhan/dating-app/internal/errors"
	"github.com/kingRayhan/dating-app/internal/service/swipe"
)

func setupService(t *testing.T) (*swipe.Service, *gorm.DB, *miniredis.Miniredis) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbase, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, dbase.AutoMigrate(&db.User{}, &db.Swipe{}, &db.Match{}, &db.Message{}))

	// two users are enough for every pairing scenario
	users := []db.User{
		{Phone: "+1", FirstName: "A", Gender: "male"},
		{Phone: "+2", FirstName: "B", Gender: "female"},
	}
	require.NoError(t, dbase.Create(&users).Error)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	appCtx := app.New(dbase, redisCache, cfg, logger)
	return swipe.NewService(appCtx, nil), dbase, mr
}

func TestMutualLikeCreatesExactlyOneMatch(t *testing.T) {
	ctx := context.Background()
	svc, dbase, _ := setupService(t)

	// first like: no match yet
	res, err := svc.Record(ctx, 1, 2, db.ActionLike)
	require.NoError(t, err)
	assert.NotZero(t, res.SwipeID)
	assert.False(t, res.IsMatch)
	assert.Nil(t, res.MatchID)

	// reciprocal like: match materializes on the second call
	res, err = svc.Record(ctx, 2, 1, db.ActionLike)
	require.NoError(t, err)
	assert.True(t, res.IsMatch)
	require.NotNil(t, res.MatchID)

	var matches []db.Match
	require.NoError(t, dbase.Find(&matches).Error)
	require.Len(t, matches, 1)
	assert.Equal(t, uint64(1), matches[0].UserAID)
	assert.Equal(t, uint64(2), matches[0].UserBID)
	assert.True(t, matches[0].IsActive)
}

func TestMutualLikeReverseOrder(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	res, err := svc.Record(ctx, 2, 1, db.ActionLike)
	require.NoError(t, err)
	assert.False(t, res.IsMatch)

	res, err = svc.Record(ctx, 1, 2, db.ActionLike)
	require.NoError(t, err)
	assert.True(t, res.IsMatch)
	assert.NotNil(t, res.MatchID)
}

func TestDuplicateSwipeIsConflict(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	_, err := svc.Record(ctx, 1, 2, db.ActionLike)
	require.NoError(t, err)

	// same pair again, regardless of action value
	_, err = svc.Record(ctx, 1, 2, db.ActionLike)
	assert.ErrorIs(t, err, svcErr.ErrSwipeExists)

	_, err = svc.Record(ctx, 1, 2, db.ActionPass)
	assert.ErrorIs(t, err, svcErr.ErrSwipeExists)
}

func TestPassNeverMatches(t *testing.T) {
	ctx := context.Background()
	svc, dbase, _ := setupService(t)

	// B already liked A
	res, err := svc.Record(ctx, 2, 1, db.ActionLike)
	require.NoError(t, err)
	assert.False(t, res.IsMatch)

	// A passes on B: no match, whatever B did before
	res, err = svc.Record(ctx, 1, 2, db.ActionPass)
	require.NoError(t, err)
	assert.False(t, res.IsMatch)
	assert.Nil(t, res.MatchID)

	var count int64
	require.NoError(t, dbase.Model(&db.Match{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLikeRaisesCachedCount(t *testing.T) {
	ctx := context.Background()
	svc, _, mr := setupService(t)

	// user 2 has a cached liked-you count
	require.NoError(t, mr.Set("likes:count:2", "4"))

	_, err := svc.Record(ctx, 1, 2, db.ActionLike)
	require.NoError(t, err)

	cached, err := mr.Get("likes:count:2")
	require.NoError(t, err)
	assert.Equal(t, "5", cached)
}

func TestPassOnLikerLowersCachedCount(t *testing.T) {
	ctx := context.Background()
	svc, _, mr := setupService(t)

	// B liked A; A's count is cached
	_, err := svc.Record(ctx, 2, 1, db.ActionLike)
	require.NoError(t, err)
	require.NoError(t, mr.Set("likes:count:1", "1"))

	// A passes B: B no longer counts toward A's liked-you number
	_, err = svc.Record(ctx, 1, 2, db.ActionPass)
	require.NoError(t, err)

	cached, err := mr.Get("likes:count:1")
	require.NoError(t, err)
	assert.Equal(t, "0", cached)
}

func TestPassOnStrangerLeavesCacheAlone(t *testing.T) {
	ctx := context.Background()
	svc, _, mr := setupService(t)

	require.NoError(t, mr.Set("likes:count:1", "3"))

	// B never liked A, so A's count is untouched by the pass
	_, err := svc.Record(ctx, 1, 2, db.ActionPass)
	require.NoError(t, err)

	cached, err := mr.Get("likes:count:1")
	require.NoError(t, err)
	assert.Equal(t, "3", cached)
}

func TestSwipeValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	_, err := svc.Record(ctx, 1, 1, db.ActionLike)
	assert.ErrorIs(t, err, svcErr.ErrInvalidArgument)

	_, err = svc.Record(ctx, 0, 2, db.ActionLike)
	assert.ErrorIs(t, err, svcErr.ErrInvalidArgument)

	_, err = svc.Record(ctx, 1, 2, "superlike")
	assert.ErrorIs(t, err, svcErr.ErrInvalidArgument)

	// unknown target
	_, err = svc.Record(ctx, 1, 999, db.ActionLike)
	assert.ErrorIs(t, err, svcErr.ErrNotFound)
}

// Reciprocal likes racing in overlapping transactions must still end
// with exactly one match. Needs a real MySQL server: SQLite admits a
// single writer at a time, so the transactions cannot overlap there.
func TestReciprocalLikesUnderConcurrency(t *testing.T) {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}

	dbase, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, dbase.AutoMigrate(&db.User{}, &db.Swipe{}, &db.Match{}, &db.Message{}))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	appCtx := app.New(dbase, cache.NewRedisCache(cfg), cfg, logger)
	svc := swipe.NewService(appCtx, nil)

	for round := 0; round < 20; round++ {
		users := []db.User{
			{Phone: fmt.Sprintf("+race-a-%d-%d", round, time.Now().UnixNano()), FirstName: "A"},
			{Phone: fmt.Sprintf("+race-b-%d-%d", round, time.Now().UnixNano()), FirstName: "B"},
		}
		require.NoError(t, dbase.Create(&users).Error)
		a, b := users[0].ID, users[1].ID

		var wg sync.WaitGroup
		start := make(chan struct{})
		results := make([]swipe.Result, 2)
		errs := make([]error, 2)

		run := func(i int, actor, target uint64) {
			defer wg.Done()
			<-start
			results[i], errs[i] = svc.Record(context.Background(), actor, target, db.ActionLike)
		}
		wg.Add(2)
		go run(0, a, b)
		go run(1, b, a)
		close(start)
		wg.Wait()

		require.NoError(t, errs[0], "round %d", round)
		require.NoError(t, errs[1], "round %d", round)

		low, high := db.NormalizePair(a, b)
		var count int64
		require.NoError(t, dbase.Model(&db.Match{}).
			Where("user_a_id = ? AND user_b_id = ?", low, high).
			Count(&count).Error)
		require.Equal(t, int64(1), count, "round %d", round)
		require.True(t, results[0].IsMatch || results[1].IsMatch, "round %d", round)
	}
}
