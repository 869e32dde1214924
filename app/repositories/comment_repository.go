package repositories

import (
	"profeed/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db    *badger.DB
	locks *LockTable
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository. It
// shares the post repository's locks because creating a comment also
// writes the parent post.
func NewBadgerCommentRepository(db *badger.DB, posts *BadgerPostRepository) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db, locks: posts.locks}
}

// Create stores a comment and increments the parent post's counter
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	unlock := r.locks.Lock(comment.PostID)
	defer unlock()

	comment.ID = uuid.NewString()
	err := r.db.Update(func(txn *badger.Txn) error {
		var post models.Post
		if err := getEntity(txn, postKey(comment.PostID), &post); err != nil {
			return err
		}
		if err := post.AddComment(comment); err != nil {
			return err
		}

		seq, err := getNextID(txn, CommentSeqKeyPrefix+comment.PostID)
		if err != nil {
			return err
		}
		if err := setEntity(txn, commentKey(comment.PostID, seq), comment); err != nil {
			return err
		}
		return setEntity(txn, postKey(post.ID), &post)
	})
	return storeErr(err)
}

// ListByPost returns a post's comments oldest first
func (r *BadgerCommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	err := r.db.View(func(txn *badger.Txn) error {
		if _, err := txn.Get(postKey(postID)); err != nil {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = commentPrefix(postID)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return comments, nil
}
