package service

import (
	"fmt"

	"profeed/app/repositories"
	"profeed/app/repositories/memory"
	"profeed/config"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// store bundles the repositories the router needs with a way to release them.
type store struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	close    func() error
}

// badgerLogger routes Badger's internal logging through zap.
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

func openDB(path string, logger *zap.SugaredLogger) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(badgerLogger{logger.Named("badger")})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return db, nil
}

// openStore picks the in-memory repositories or a Badger database under
// cfg.DataDir.
func openStore(cfg config.Config, logger *zap.SugaredLogger) (*store, error) {
	if cfg.InMemory {
		posts := memory.NewPostRepository()
		logger.Infow("using in-memory store")
		return &store{
			posts:    posts,
			comments: memory.NewCommentRepository(posts),
			close:    func() error { return nil },
		}, nil
	}

	db, err := openDB(cfg.DataDir, logger)
	if err != nil {
		return nil, err
	}
	logger.Infow("opened badger store", "path", cfg.DataDir)
	posts := repositories.NewBadgerPostRepository(db)
	return &store{
		posts:    posts,
		comments: repositories.NewBadgerCommentRepository(db, posts),
		close:    db.Close,
	}, nil
}
