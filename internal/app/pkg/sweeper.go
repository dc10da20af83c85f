package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// UploadSweeper removes stale files from the upload directory. Uploads are
// deleted right after import, so anything old was left by a crashed request.
type UploadSweeper struct {
	Dir      string
	MaxAge   time.Duration
	schedule string
	now      func() time.Time
}

func NewUploadSweeper(dir string, maxAge time.Duration, schedule string) *UploadSweeper {
	return &UploadSweeper{Dir: dir, MaxAge: maxAge, schedule: schedule, now: time.Now}
}

func (s *UploadSweeper) Schedule() string {
	return s.schedule
}

// Sweep deletes regular files older than MaxAge and returns how many it removed.
func (s *UploadSweeper) Sweep() (int, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := s.now().Add(-s.MaxAge)
	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(s.Dir, entry.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logrus.WithFields(logrus.Fields{"path": path, "error": err}).Warn("sweep remove failed")
			continue
		}
		removed++
	}
	return removed, nil
}

func (s *UploadSweeper) Execute() {
	removed, err := s.Sweep()
	if err != nil {
		logrus.WithField("error", err).Error("upload sweep failed")
		return
	}
	if removed > 0 {
		logrus.WithField("removed", removed).Info("stale uploads removed")
	}
}

// Job is a scheduled unit of background work.
type Job interface {
	Schedule() string
	Execute()
}

// StartScheduler registers the jobs and starts the cron runner. The caller
// stops it on shutdown.
func StartScheduler(jobs ...Job) (*cron.Cron, error) {
	c := cron.New()
	for _, job := range jobs {
		if _, err := c.AddFunc(job.Schedule(), job.Execute); err != nil {
			return nil, err
		}
	}
	c.Start()
	return c, nil
}
