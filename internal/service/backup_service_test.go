package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupExport(t *testing.T) {
	st := testutil.NewTestStore(t, "2026-03-10")
	svc := &backupService{store: st, now: func() time.Time { return fixedNow }}

	dir := t.TempDir()
	path, err := svc.Export(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "compass-backup-2026-03-10.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var exported domain.State
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.True(t, exported.Settings.RemindersEnabled)
	assert.Equal(t, "2026-03-10", exported.Profile.FirstUseDate)
}

func TestBackupExport_BadDirectory(t *testing.T) {
	st := testutil.NewTestStore(t, "2026-03-10")
	svc := &backupService{store: st, now: func() time.Time { return fixedNow }}

	_, err := svc.Export(context.Background(), "/nonexistent/path")
	assert.Error(t, err)
}
