package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/migralint/migralint/pkg/chain/status"
	"github.com/migralint/migralint/pkg/errors"
	"github.com/migralint/migralint/pkg/model"
)

func TestBuilderAdd(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("aaa", ""))
	require.NoError(t, b.Add("bbb", "aaa"))
	require.NoError(t, b.Add("ccc", "bbb"))

	c := b.Chain()
	require.Equal(t, 3, c.Len())
	down, ok := c.Down("bbb")
	require.True(t, ok)
	require.Equal(t, model.Revision("aaa"), down)
	require.Equal(t, model.Revisions{"aaa", "bbb", "ccc"}, c.Revisions())
}

func TestBuilderDuplicateRevision(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("aaa", ""))
	err := b.Add("aaa", "zzz")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrDuplicateRevision))
	require.Equal(t, "Duplicate revision 'aaa' found.", err.Error())
}

func TestBuilderDuplicateDownRevision(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("bbb", "aaa"))
	err := b.Add("ccc", "aaa")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrDuplicateDownRevision))
	require.Equal(t, "Duplicate down_revision 'aaa' found.", err.Error())
}

func TestBuilderTwoInitialMigrations(t *testing.T) {
	// the second None predecessor trips the early pairwise check: this is
	// position-dependent, which is why insertion follows filename order
	b := NewBuilder()
	require.NoError(t, b.Add("aaa", ""))
	err := b.Add("bbb", "")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrDuplicateDownRevision))
	require.Equal(t, "Duplicate down_revision 'None' found.", err.Error())
}

func TestBuildFromFiles(t *testing.T) {
	files := []model.MigrationFile{
		{Name: "001_init.py", Revision: "aaa"},
		{Name: "002_users.py", Revision: "bbb", DownRevision: "aaa"},
	}
	c, err := Build(files)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	require.NoError(t, c.Validate())
}

func TestBuildStopsOnFirstError(t *testing.T) {
	files := []model.MigrationFile{
		{Name: "001_init.py", Revision: "aaa"},
		{Name: "002_users.py", Revision: "aaa", DownRevision: "zzz"},
		{Name: "003_email.py", Revision: "bbb", DownRevision: "zzz"},
	}
	_, err := Build(files)
	require.Error(t, err)
	// the duplicate revision in position 2 wins over the duplicate down in position 3
	require.True(t, errors.Is(err, status.ErrDuplicateRevision))
}

func TestFromLinksBypassesPairwiseChecks(t *testing.T) {
	c := FromLinks(map[model.Revision]model.Revision{
		"bbb": "aaa",
		"ccc": "aaa",
		"aaa": "",
	})
	require.Equal(t, 3, c.Len())
	// the complete grouping check still catches the shared predecessor
	err := c.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrDuplicateDownRevision))
}
