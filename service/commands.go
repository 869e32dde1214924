package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"profeed/config"

	"go.uber.org/zap"
)

// HandleCommand runs a store maintenance subcommand and returns an exit code.
func HandleCommand(cfg config.Config, logger *zap.SugaredLogger, args []string) int {
	if len(args) < 1 {
		printStoreHelp()
		return 1
	}

	m := maintainer{cfg: cfg, logger: logger}
	switch args[0] {
	case "clean":
		return m.clean()
	case "init":
		return m.initDb()
	case "backup":
		return m.backup()
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			return 1
		}
		return m.restore(args[1])
	case "help":
		printStoreHelp()
		return 0
	default:
		fmt.Printf("Unknown store command: %s\n\n", args[0])
		printStoreHelp()
		return 1
	}
}

// printStoreHelp prints help for store subcommands.
func printStoreHelp() {
	helpText := `Usage: profeed store <command>

Commands:
  init                            Initialize a new empty database
  clean                           Remove the feed database
  backup                          Create a backup of the database
  restore <file>                  Restore database from backup
  help                            Display this help message

The database lives in $PROFEED_DATA_DIR, backups in $PROFEED_BACKUP_DIR.
`
	fmt.Println(helpText)
}

type maintainer struct {
	cfg    config.Config
	logger *zap.SugaredLogger
}

func confirm(question string) bool {
	fmt.Print(question + " [y/N] ")
	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y"
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// clean removes the database.
func (m maintainer) clean() int {
	if !exists(m.cfg.DataDir) {
		fmt.Println("Database is already clean (does not exist)")
		return 0
	}

	if !confirm("Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Println("Operation cancelled")
		return 1
	}

	if err := os.RemoveAll(m.cfg.DataDir); err != nil {
		fmt.Printf("Failed to clean database: %v\n", err)
		return 1
	}
	m.logger.Infow("database removed", "path", m.cfg.DataDir)
	fmt.Println("Database cleaned successfully")
	return 0
}

// initDb initializes a new empty database.
func (m maintainer) initDb() int {
	if exists(m.cfg.DataDir) {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return 1
	}

	if err := os.MkdirAll(m.cfg.DataDir, 0755); err != nil {
		fmt.Printf("Failed to create database directory: %v\n", err)
		return 1
	}

	db, err := openDB(m.cfg.DataDir, m.logger)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		return 1
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
	return 0
}

// backup writes a full Badger backup into the backup directory.
func (m maintainer) backup() int {
	backupFile, err := m.writeBackup()
	if err != nil {
		fmt.Printf("Failed to backup database: %v\n", err)
		return 1
	}
	fmt.Printf("Database backed up successfully to %s\n", backupFile)
	return 0
}

var errNoDatabase = errors.New("no database exists to backup")

func (m maintainer) writeBackup() (string, error) {
	if !exists(m.cfg.DataDir) {
		return "", errNoDatabase
	}
	if err := os.MkdirAll(m.cfg.BackupDir, 0755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	db, err := openDB(m.cfg.DataDir, m.logger)
	if err != nil {
		return "", err
	}
	defer db.Close()

	backupFile := filepath.Join(m.cfg.BackupDir, fmt.Sprintf("backup_%d.db", time.Now().UnixNano()))
	f, err := os.Create(backupFile)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	m.logger.Infow("database backed up", "file", backupFile)
	return backupFile, nil
}

// restore replaces the database with the contents of a backup file.
func (m maintainer) restore(backupFile string) int {
	fi, err := os.Stat(backupFile)
	if err != nil {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Printf("Backup file is empty: %s\n", backupFile)
		return 1
	}

	if exists(m.cfg.DataDir) {
		if !confirm("Existing database found. Do you want to replace it?") {
			fmt.Println("Operation cancelled")
			return 1
		}
		if err := os.RemoveAll(m.cfg.DataDir); err != nil {
			fmt.Printf("Failed to remove existing database: %v\n", err)
			return 1
		}
	}

	if err := m.load(backupFile); err != nil {
		fmt.Printf("Failed to restore database: %v\n", err)
		return 1
	}
	m.logger.Infow("database restored", "file", backupFile)
	fmt.Println("Database restored successfully")
	return 0
}

func (m maintainer) load(backupFile string) (err error) {
	if err := os.MkdirAll(m.cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	db, err := openDB(m.cfg.DataDir, m.logger)
	if err != nil {
		return err
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic occurred during restore: %v", r)
		}
	}()
	return db.Load(f, 4)
}
