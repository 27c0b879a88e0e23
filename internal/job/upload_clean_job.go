package job

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/repository"
	"context"
	log "log/slog"
	"os"
	"path/filepath"
	"time"
)

// UploadCleanupJob sweeps the upload directory and removes files no post
// references anymore, for example thumbnails of deleted posts. Files younger
// than a day are left alone in case their post is still being created.
type UploadCleanupJob struct {
	postRepo repository.PostRepo
}

func NewUploadCleanupJob(postRepo repository.PostRepo) *UploadCleanupJob {
	return &UploadCleanupJob{postRepo: postRepo}
}

func (s *UploadCleanupJob) Run() {
	ctx := context.Background()
	log.Info("start upload cleanup job")

	filenames, err := s.postRepo.ListImageFilenames(ctx)
	if err != nil {
		log.Error("failed to list referenced images", "err", err)
		return
	}
	referenced := make(map[string]struct{}, len(filenames))
	for _, name := range filenames {
		referenced[name] = struct{}{}
	}

	dir := config.Cfg.Upload.Dir
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error("failed to read upload dir", "dir", dir, "err", err)
		}
		return
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, ok := referenced[path]; ok {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(path); err != nil {
			log.Error("failed to remove orphaned upload", "path", path, "err", err)
			continue
		}
		count++
	}

	if count > 0 {
		log.Info("upload cleanup job finished", "cleaned_count", count)
	}
}
