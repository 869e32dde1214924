package repositories

import (
	"sort"
	"sync"

	"profeed/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
	// createMu serializes sequence allocation so concurrent creates never
	// conflict on the sequence key.
	createMu sync.Mutex
	locks    *LockTable
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db, locks: NewLockTable()}
}

// Create assigns an id and insertion sequence and stores the post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	r.createMu.Lock()
	defer r.createMu.Unlock()

	post.ID = uuid.NewString()
	err := r.db.Update(func(txn *badger.Txn) error {
		seq, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		stored := post.Clone()
		stored.Seq = seq
		if err := setEntity(txn, postKey(stored.ID), stored); err != nil {
			return err
		}
		post.Seq = seq
		return nil
	})
	return storeErr(err)
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, postKey(id), &post)
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return &post, nil
}

// All reads every post inside one read transaction, so the result is a
// consistent snapshot.
func (r *BadgerPostRepository) All() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(PostKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err)
	}

	// Keys are ordered by id; the feed needs insertion order.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Seq < posts[j].Seq
	})
	return posts, nil
}

// Mutate runs fn against the stored post under the post's lock and writes
// the result back in the same transaction.
func (r *BadgerPostRepository) Mutate(id string, fn func(post *models.Post) error) (*models.Post, error) {
	unlock := r.locks.Lock(id)
	defer unlock()

	var (
		post  models.Post
		fnErr error
	)
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getEntity(txn, postKey(id), &post); err != nil {
			return err
		}
		if fnErr = fn(&post); fnErr != nil {
			return fnErr
		}
		return setEntity(txn, postKey(id), &post)
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &post, nil
}
