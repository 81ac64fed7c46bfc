package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/Daskott/kontacts/logger"
	"github.com/Daskott/kontacts/shared"
	"github.com/go-co-op/gocron"
)

const (
	backupJobTag  = "backup"
	uploadTimeout = 50 * time.Second
)

var logg = logger.NewLogger()

// Scheduler periodically uploads the database file
type Scheduler struct {
	cronScheduler *gocron.Scheduler
	uploader      Uploader
	config        shared.GoogleStorageConfig
	filePath      string
}

func NewScheduler(uploader Uploader, config shared.GoogleStorageConfig, filePath, timeZone string) *Scheduler {
	location, err := time.LoadLocation(timeZone)
	if err != nil {
		logg.Warnf("Unknown time zone %q, using UTC", timeZone)
		location = time.UTC
	}

	cronScheduler := gocron.NewScheduler(location)
	cronScheduler.TagsUnique()

	return &Scheduler{
		cronScheduler: cronScheduler,
		uploader:      uploader,
		config:        config,
		filePath:      filePath,
	}
}

// Start schedules backups based on the configured cron expression
func (s *Scheduler) Start() error {
	if s.filePath == "" {
		return fmt.Errorf("nothing to back up, storage has no file")
	}

	_, err := s.cronScheduler.Cron(s.config.BackupSchedule).Tag(backupJobTag).Do(func() {
		if err := s.BackupNow(context.Background()); err != nil {
			logg.Error(err)
		}
	})
	if err != nil {
		return fmt.Errorf("unable to schedule backup %q: %v", s.config.BackupSchedule, err)
	}

	logg.Infof("Backing up %v on schedule %q", s.filePath, s.config.BackupSchedule)
	s.cronScheduler.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.cronScheduler.Stop()
}

// BackupNow uploads the database file right away
func (s *Scheduler) BackupNow(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	err := s.uploader.UploadFile(ctx, s.config.Bucket, s.config.Prefix, s.filePath)
	if err != nil {
		return fmt.Errorf("backup of %v failed: %v", s.filePath, err)
	}

	return nil
}
