package service

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"profeed/app/models"
	"profeed/app/repositories"
	"profeed/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func captureOutput(f func()) string {
	var buf bytes.Buffer
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(&buf, r)
		close(done)
	}()

	f()
	_ = w.Close()
	os.Stdout = oldStdout
	<-done

	return buf.String()
}

func mockStdin(input string, f func()) {
	oldStdin := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r

	go func() {
		w.Write([]byte(input))
		w.Close()
	}()

	f()

	os.Stdin = oldStdin
}

func setupTestMaintainer(t *testing.T) maintainer {
	tmpDir := t.TempDir()
	return maintainer{
		cfg: config.Config{
			DataDir:   filepath.Join(tmpDir, "badger"),
			BackupDir: filepath.Join(tmpDir, "backups"),
		},
		logger: zap.NewNop().Sugar(),
	}
}

func TestHandleCommand(t *testing.T) {
	m := setupTestMaintainer(t)

	tests := []struct {
		name           string
		args           []string
		expectedOutput string
		expectedExit   int
	}{
		{
			name:           "no arguments",
			args:           []string{},
			expectedOutput: "Usage: profeed store <command>\n\nCommands:",
			expectedExit:   1,
		},
		{
			name:           "help command",
			args:           []string{"help"},
			expectedOutput: "Usage: profeed store <command>\n\nCommands:",
			expectedExit:   0,
		},
		{
			name:           "unknown command",
			args:           []string{"unknown"},
			expectedOutput: "Unknown store command: unknown",
			expectedExit:   1,
		},
		{
			name:           "restore without file",
			args:           []string{"restore"},
			expectedOutput: "Error: backup file path required for restore",
			expectedExit:   1,
		},
		{
			name:           "init",
			args:           []string{"init"},
			expectedOutput: "Database initialized successfully",
			expectedExit:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exitCode int
			output := captureOutput(func() {
				exitCode = HandleCommand(m.cfg, m.logger, tt.args)
			})

			assert.Contains(t, output, tt.expectedOutput)
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestInitDb(t *testing.T) {
	m := setupTestMaintainer(t)

	t.Run("initialize new database", func(t *testing.T) {
		output := captureOutput(func() {
			m.initDb()
		})

		assert.Contains(t, output, "Database initialized successfully")
		assert.DirExists(t, m.cfg.DataDir)
	})

	t.Run("initialize existing database", func(t *testing.T) {
		output := captureOutput(func() {
			m.initDb()
		})

		assert.Contains(t, output, "Database already exists")
	})
}

func TestClean(t *testing.T) {
	m := setupTestMaintainer(t)

	t.Run("clean non-existent database", func(t *testing.T) {
		output := captureOutput(func() {
			m.clean()
		})

		assert.Contains(t, output, "Database is already clean")
	})

	t.Run("clean existing database - cancelled", func(t *testing.T) {
		captureOutput(func() { m.initDb() })
		require.DirExists(t, m.cfg.DataDir)

		var output string
		mockStdin("n\n", func() {
			output = captureOutput(func() {
				m.clean()
			})
		})

		assert.Contains(t, output, "Operation cancelled")
		assert.DirExists(t, m.cfg.DataDir)
	})

	t.Run("clean existing database - confirmed", func(t *testing.T) {
		var output string
		mockStdin("y\n", func() {
			output = captureOutput(func() {
				m.clean()
			})
		})

		assert.Contains(t, output, "Database cleaned successfully")
		assert.NoDirExists(t, m.cfg.DataDir)
	})
}

func TestBackupAndRestore(t *testing.T) {
	m := setupTestMaintainer(t)

	t.Run("backup non-existent database", func(t *testing.T) {
		output := captureOutput(func() {
			m.backup()
		})

		assert.Contains(t, output, "no database exists to backup")
	})

	t.Run("restore non-existent backup", func(t *testing.T) {
		output := captureOutput(func() {
			m.restore(filepath.Join(t.TempDir(), "nonexistent.db"))
		})

		assert.Contains(t, output, "Backup file does not exist")
	})

	t.Run("round trip", func(t *testing.T) {
		db, err := openDB(m.cfg.DataDir, m.logger)
		require.NoError(t, err)
		post := &models.Post{
			Author:     models.Author{ID: "a1", Name: "Acme", Role: models.RoleSupplier},
			Content:    "Pallets of recycled paper available",
			Category:   models.CategoryOffer,
			Visibility: models.VisibilityPublic,
		}
		post.BeforeCreate()
		require.NoError(t, repositories.NewBadgerPostRepository(db).Create(post))
		require.NoError(t, db.Close())

		var backupFile string
		captureOutput(func() {
			backupFile, err = m.writeBackup()
		})
		require.NoError(t, err)
		assert.FileExists(t, backupFile)

		mockStdin("y\n", func() {
			captureOutput(func() { m.clean() })
		})
		require.NoDirExists(t, m.cfg.DataDir)

		var code int
		output := captureOutput(func() {
			code = m.restore(backupFile)
		})
		assert.Contains(t, output, "Database restored successfully")
		assert.Equal(t, 0, code)

		db, err = openDB(m.cfg.DataDir, m.logger)
		require.NoError(t, err)
		defer db.Close()
		restored, err := repositories.NewBadgerPostRepository(db).GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.Content, restored.Content)
		assert.WithinDuration(t, post.CreatedAt, restored.CreatedAt, time.Millisecond)
	})

	t.Run("restore with existing database - cancelled", func(t *testing.T) {
		backupFile := filepath.Join(t.TempDir(), "test_backup.db")
		require.NoError(t, os.WriteFile(backupFile, []byte("test backup data"), 0644))

		var output string
		mockStdin("n\n", func() {
			output = captureOutput(func() {
				m.restore(backupFile)
			})
		})

		assert.Contains(t, output, "Operation cancelled")
		assert.DirExists(t, m.cfg.DataDir)
	})

	t.Run("restore empty backup", func(t *testing.T) {
		backupFile := filepath.Join(t.TempDir(), "empty.db")
		require.NoError(t, os.WriteFile(backupFile, nil, 0644))

		output := captureOutput(func() {
			m.restore(backupFile)
		})

		assert.Contains(t, output, "Backup file is empty")
	})
}
