package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	sqliteEncrypt "github.com/Daskott/gorm-sqlite-cipher"
	"github.com/Daskott/kontacts/logger"
	"github.com/Daskott/kontacts/models"
	"github.com/Daskott/kontacts/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const DB_NAME = "kontacts.db"

var logg = logger.NewLogger()

// SqliteStorage keeps persons in an encrypted sqlite database
type SqliteStorage struct {
	db   *gorm.DB
	path string
}

var _ Storage = (*SqliteStorage)(nil)

// NewSqliteStorage opens (or creates) the database in '<dbRootDir>/db' & migrates its schema
func NewSqliteStorage(passPhrase string, dbRootDir string) (*SqliteStorage, error) {
	dbDir, err := DbDirectory(dbRootDir)
	if err != nil {
		return nil, err
	}

	dbFilePath := filepath.Join(dbDir, DB_NAME)
	db, err := openDB(dbDSN(passPhrase, dbFilePath))
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.Person{}, &models.EmergencyContact{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return &SqliteStorage{db: db, path: dbFilePath}, nil
}

func (s *SqliteStorage) Load() ([]*models.Person, error) {
	persons := []*models.Person{}

	err := s.db.Preload("EmergencyContacts", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Order("position").Find(&persons).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load persons")
	}

	return persons, nil
}

// Save replaces everything stored with 'persons'
func (s *SqliteStorage) Save(persons []*models.Person) error {
	records := make([]*models.Person, 0, len(persons))
	for i, person := range persons {
		record := person.Clone()
		record.Position = i

		for j := range record.EmergencyContacts {
			record.EmergencyContacts[j].ID = 0
			record.EmergencyContacts[j].PersonID = record.ID
			record.EmergencyContacts[j].Position = j
		}

		records = append(records, record)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.EmergencyContact{}).Error; err != nil {
			return err
		}

		if err := tx.Where("1 = 1").Delete(&models.Person{}).Error; err != nil {
			return err
		}

		if len(records) == 0 {
			return nil
		}

		return tx.Create(&records).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to save persons")
	}

	logg.Debugf("Saved %v persons to %v", len(records), s.path)
	return nil
}

func (s *SqliteStorage) Path() string {
	return s.path
}

// Close releases the underlying connection
func (s *SqliteStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func openDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqliteEncrypt.Open(dsn), &gorm.Config{
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				LogLevel:                  gormLogger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %v", err)
	}

	return db, nil
}

func dbDSN(passPhrase string, dbFilePath string) string {
	return fmt.Sprintf(
		"file:%v?_pragma_key=%s&_pragma_cipher_page_size=4096&_journal_mode=WAL",
		dbFilePath,
		passPhrase,
	)
}

func DbDirectory(dbRootDir string) (string, error) {
	dbDir := filepath.Join(dbRootDir, "db")

	err := utils.EnsureDir(dbDir)
	if err != nil {
		return "", err
	}

	return dbDir, nil
}
