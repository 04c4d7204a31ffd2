package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kingRayhan/dating-app/internal/db"
	"github.com/kingRayhan/dating-app/internal/repository"
)

func TestSwipeCreateIsInsertOnly(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewSwipeRepository(dbase)

	swipe, err := repo.Create(ctx, 1, 2, db.ActionLike)
	require.NoError(t, err)
	assert.NotZero(t, swipe.ID)

	// second swipe on the same pair is a constraint violation, even
	// with a different action
	_, err = repo.Create(ctx, 1, 2, db.ActionPass)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// the original row is untouched
	var stored db.Swipe
	require.NoError(t, dbase.First(&stored, swipe.ID).Error)
	assert.Equal(t, db.ActionLike, stored.Action)

	// reverse direction is a distinct pair
	_, err = repo.Create(ctx, 2, 1, db.ActionLike)
	assert.NoError(t, err)
}

func TestSwipeHasLiked(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewSwipeRepository(dbase)

	_, err := repo.Create(ctx, 1, 2, db.ActionLike)
	require.NoError(t, err)
	_, err = repo.Create(ctx, 1, 3, db.ActionPass)
	require.NoError(t, err)

	liked, err := repo.HasLiked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, liked)

	// a pass is not a like
	liked, err = repo.HasLiked(ctx, 1, 3)
	require.NoError(t, err)
	assert.False(t, liked)

	// direction matters
	liked, err = repo.HasLiked(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestSwipeGetLikersExcludesPassed(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewSwipeRepository(dbase)

	// actors 1,2 liked recipient 99
	_, err := repo.Create(ctx, 1, 99, db.ActionLike)
	require.NoError(t, err)
	_, err = repo.Create(ctx, 2, 99, db.ActionLike)
	require.NoError(t, err)
	// recipient passed actor 2 → excluded from the list
	_, err = repo.Create(ctx, 99, 2, db.ActionPass)
	require.NoError(t, err)

	likers, _, err := repo.GetLikers(ctx, 99, nil, 10)
	require.NoError(t, err)
	require.Len(t, likers, 1)
	assert.Equal(t, uint64(1), likers[0].ActorID)

	count, err := repo.CountLikers(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSwipeGetLikersPagination(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewSwipeRepository(dbase)

	for actor := uint64(1); actor <= 5; actor++ {
		_, err := repo.Create(ctx, actor, 99, db.ActionLike)
		require.NoError(t, err)
	}

	first, token, err := repo.GetLikers(ctx, 99, nil, 3)
	require.NoError(t, err)
	require.Len(t, first, 3)
	require.NotNil(t, token)

	second, token, err := repo.GetLikers(ctx, 99, token, 3)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Nil(t, token)

	// pages are disjoint
	seen := map[uint64]bool{}
	for _, s := range append(first, second...) {
		assert.False(t, seen[s.ActorID])
		seen[s.ActorID] = true
	}
	assert.Len(t, seen, 5)
}
