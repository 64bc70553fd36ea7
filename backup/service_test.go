package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emerchan23/sisvendas1-sub004/db"
	"github.com/Emerchan23/sisvendas1-sub004/db/dbtest"
)

func newService(t *testing.T, cfg Config) *Service {
	t.Helper()
	database := dbtest.New(t)
	_, err := database.Exec(`INSERT INTO clientes (id, nome) VALUES ('c1', 'ACME'), ('c2', 'Beta')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO acertos (id, data, titulo, linha_ids) VALUES ('s1', '2024-01-31', 'Jan', '["l1"]')`)
	require.NoError(t, err)

	if cfg.Dir == "" {
		cfg.Dir = t.TempDir()
	}
	cfg.Tables = db.Tables
	cfg.RetryDelay = time.Millisecond
	return New(database, cfg)
}

func TestForceCheckWritesValidBackup(t *testing.T) {
	svc := newService(t, Config{})

	res, err := svc.ForceCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Attempts)
	assert.True(t, res.Validation.Valid, res.Validation.Errors)
	assert.Equal(t, 2, res.Counts["clientes"])
	assert.Equal(t, 1, res.Counts["acertos"])
	assert.Positive(t, res.Size)
	assert.Regexp(t, `^backup-\d{8}-\d{6}\.json\.gz$`, res.File)

	snap, err := readFile(filepath.Join(svc.cfg.Dir, res.File))
	require.NoError(t, err)
	assert.Len(t, snap.Tables, len(db.Tables))
	assert.Equal(t, "Jan", snap.Tables["acertos"][0]["titulo"])

	files, err := svc.Files()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, res.File, files[0].Name)

	st := svc.Status()
	assert.Equal(t, 1, st.Runs)
	assert.Equal(t, res.File, st.LastFile)
	assert.Empty(t, st.LastError)
	assert.NotNil(t, st.LastRun)
	assert.False(t, st.Active)

	assert.Len(t, svc.ValidationHistory(), 1)
	assert.NotEmpty(t, svc.Logs())
}

func TestForceCheckTwiceInSameSecond(t *testing.T) {
	svc := newService(t, Config{})
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	first, err := svc.ForceCheck(context.Background())
	require.NoError(t, err)
	second, err := svc.ForceCheck(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.File, second.File)
}

func TestForceCheckFailsWithoutDatabase(t *testing.T) {
	svc := newService(t, Config{})
	require.NoError(t, svc.db.Close())

	res, err := svc.ForceCheck(context.Background())
	require.Error(t, err)
	assert.Equal(t, maxAttempts, res.Attempts)
	assert.NotEmpty(t, svc.Status().LastError)
}

func TestValidateFileDetectsProblems(t *testing.T) {
	dir := t.TempDir()
	now := time.Now().UTC()
	snap := Snapshot{
		Version:   snapshotVersion,
		CreatedAt: now,
		Counts:    map[string]int{"clientes": 3},
		Tables: map[string][]map[string]any{
			"clientes": {{"id": "c1"}, {"nome": "sem id"}},
		},
	}
	path, err := writeSnapshot(dir, snap)
	require.NoError(t, err)

	v := validateFile(path, []string{"clientes", "acertos"}, now)
	assert.False(t, v.Valid)
	assert.Len(t, v.Errors, 3)

	garbage := filepath.Join(dir, "backup-garbage.json.gz")
	require.NoError(t, os.WriteFile(garbage, []byte("not gzip"), 0644))
	v = validateFile(garbage, []string{"clientes"}, now)
	assert.False(t, v.Valid)
	assert.NotEmpty(t, v.Errors)
}

func touch(t *testing.T, dir, name string, mod time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(path, mod, mod))
}

func TestPruneByAgeAndCount(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	touch(t, dir, "backup-20240630-110000.json.gz", now.Add(-time.Hour))
	touch(t, dir, "backup-20240629-110000.json.gz", now.Add(-25*time.Hour))
	touch(t, dir, "backup-20240628-110000.json.gz", now.Add(-49*time.Hour))
	touch(t, dir, "backup-20240501-110000.json.gz", now.Add(-60*24*time.Hour))
	touch(t, dir, "notes.txt", now.Add(-60*24*time.Hour))

	removed, err := prune(dir, "backup-20240630-110000.json.gz", 30*24*time.Hour, 2, now)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"backup-20240628-110000.json.gz", "backup-20240501-110000.json.gz"}, removed)

	files, err := listFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "backup-20240630-110000.json.gz", files[0].Name)

	_, err = os.Stat(filepath.Join(dir, "notes.txt"))
	assert.NoError(t, err)
}

func TestPruneNeverRemovesKept(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, dir, "backup-20200101-000000.json.gz", now.Add(-365*24*time.Hour))

	removed, err := prune(dir, "backup-20200101-000000.json.gz", time.Hour, 1, now)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestStartStopLifecycle(t *testing.T) {
	svc := newService(t, Config{Interval: 20 * time.Millisecond})

	assert.False(t, svc.IsActive())
	svc.Start()
	svc.Start()
	assert.True(t, svc.IsActive())
	assert.NotNil(t, svc.Status().NextRun)

	require.Eventually(t, func() bool { return svc.Status().Runs >= 1 }, 5*time.Second, 10*time.Millisecond)

	svc.Stop()
	svc.Stop()
	assert.False(t, svc.IsActive())
	assert.Nil(t, svc.Status().NextRun)
}

func TestValidateByName(t *testing.T) {
	svc := newService(t, Config{})
	res, err := svc.ForceCheck(context.Background())
	require.NoError(t, err)

	v, err := svc.Validate(res.File)
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Len(t, svc.ValidationHistory(), 2)

	_, err = svc.Validate("../etc/passwd")
	assert.Error(t, err)

	_, err = svc.Validate("backup-missing.json.gz")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
