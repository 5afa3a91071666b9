package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/store"
)

type backupService struct {
	store *store.Store
	now   func() time.Time
}

func NewBackupService(st *store.Store) BackupService {
	return &backupService{store: st, now: time.Now}
}

func (s *backupService) Export(ctx context.Context, dir string) (string, error) {
	data, err := s.store.ExportJSON()
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("compass-backup-%s.json", dateutil.Today(s.now()))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return path, nil
}
