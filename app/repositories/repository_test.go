package repositories_test

import (
	"testing"

	"profeed/app/repositories"
	"profeed/app/repositories/repotest"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newBadgerStores(t *testing.T) repotest.Stores {
	db := setupTestDB(t)
	posts := repositories.NewBadgerPostRepository(db)
	return repotest.Stores{
		Posts:    posts,
		Comments: repositories.NewBadgerCommentRepository(db, posts),
	}
}

func TestBadgerPostRepository(t *testing.T) {
	repotest.RunPostRepository(t, newBadgerStores)
}

func TestBadgerCommentRepository(t *testing.T) {
	repotest.RunCommentRepository(t, newBadgerStores)
}

func TestBadgerPostRepositoryClosedDB(t *testing.T) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	posts := repositories.NewBadgerPostRepository(db)
	require.NoError(t, db.Close())

	err = posts.Create(repotest.NewPost("Store is closed for maintenance"))
	require.ErrorIs(t, err, repositories.ErrUnavailable)

	_, err = posts.All()
	require.ErrorIs(t, err, repositories.ErrUnavailable)
}
