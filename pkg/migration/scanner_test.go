package migration

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/migralint/migralint/pkg/errors"
	"github.com/migralint/migralint/pkg/migration/status"
	"github.com/migralint/migralint/pkg/model"
)

func testFS(t *testing.T, files map[string]string) afero.Fs {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("migrations", 0o755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, "migrations/"+name, []byte(content), 0o644))
	}
	return fs
}

func TestScanSortsByFileName(t *testing.T) {
	fs := testFS(t, map[string]string{
		"002_users.py": `revision = "bbb"` + "\n" + `down_revision = "aaa"`,
		"001_init.py":  `revision = "aaa"` + "\n" + `down_revision = None`,
		"003_email.py": `revision = "ccc"` + "\n" + `down_revision = "bbb"`,
		"notes.txt":    `not a migration`,
	})
	files, err := NewScanner(WithFS(fs)).Scan("migrations")
	require.NoError(t, err)
	require.Len(t, files, 3)
	require.Equal(t, []string{"001_init.py", "002_users.py", "003_email.py"},
		[]string{files[0].Name, files[1].Name, files[2].Name})
	require.Equal(t, model.Revision("aaa"), files[0].Revision)
	require.True(t, files[0].IsInitial())
}

func TestScanMissingDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := NewScanner(WithFS(fs)).Scan("nowhere")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrNotFound))
	require.Contains(t, err.Error(), "nowhere")
}

func TestScanMalformedFileAborts(t *testing.T) {
	fs := testFS(t, map[string]string{
		"001_init.py":   `revision = "aaa"`,
		"002_broken.py": `"""no revision declared"""`,
	})
	_, err := NewScanner(WithFS(fs)).Scan("migrations")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrNoRevision))
	require.Contains(t, err.Error(), "002_broken.py")
}

func TestScanCustomPattern(t *testing.T) {
	fs := testFS(t, map[string]string{
		"001_init.sql.py": `revision = "aaa"`,
		"001_init.go":     `// revision = "zzz"`,
	})
	files, err := NewScanner(WithFS(fs), WithPattern("*.go")).Scan("migrations")
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, model.Revision("zzz"), files[0].Revision)
}

func TestScanEmptyDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("migrations", 0o755))
	files, err := NewScanner(WithFS(fs)).Scan("migrations")
	require.NoError(t, err)
	require.Empty(t, files)
}
