package migration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/migralint/migralint/pkg/errors"
	"github.com/migralint/migralint/pkg/migration/status"
	"github.com/migralint/migralint/pkg/model"
)

func TestReadRevisionAndDown(t *testing.T) {
	content := []byte(`"""add users table"""
revision = "ae1027a6acf"
down_revision = "1975ea83b712"
`)
	m, err := Read("002_add_users.py", content)
	require.NoError(t, err)
	require.Equal(t, model.Revision("ae1027a6acf"), m.Revision)
	require.Equal(t, model.Revision("1975ea83b712"), m.DownRevision)
	require.False(t, m.IsInitial())
}

func TestReadInitialMigration(t *testing.T) {
	m, err := Read("001_init.py", []byte(`revision = "1975ea83b712"
down_revision = None
`))
	require.NoError(t, err)
	require.Equal(t, model.Revision("1975ea83b712"), m.Revision)
	require.True(t, m.IsInitial())
}

func TestReadNoDownRevisionField(t *testing.T) {
	// a file that never mentions down_revision is an initial migration too
	m, err := Read("001_init.py", []byte(`revision = "1975ea83b712"`))
	require.NoError(t, err)
	require.True(t, m.IsInitial())
}

func TestReadSingleQuotes(t *testing.T) {
	m, err := Read("003_single.py", []byte(`revision = 'abc'
down_revision = 'def'
`))
	require.NoError(t, err)
	require.Equal(t, model.Revision("abc"), m.Revision)
	require.Equal(t, model.Revision("def"), m.DownRevision)
}

func TestReadMissingRevision(t *testing.T) {
	_, err := Read("broken.py", []byte(`"""no fields here"""`))
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrNoRevision))
	require.True(t, errors.Is(err, status.ErrMigrationFile))
	require.Contains(t, err.Error(), "broken.py")
}

func TestReadEmptyDownRevision(t *testing.T) {
	_, err := Read("empty.py", []byte(`revision = "abc"
down_revision = ""
`))
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrEmptyDownRevision))
	require.True(t, errors.Is(err, status.ErrMigrationFile))
	require.Contains(t, err.Error(), "Perhaps you meant to use None?")
}
