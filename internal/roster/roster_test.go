package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/props-advisor/internal/logger"
)

func newTestRoster() *Roster {
	return New(logger.NewLogger("error"))
}

func TestLookupNormalizesNames(t *testing.T) {
	r := newTestRoster()

	tests := []struct {
		name   string
		team   string
		player string
		wantID int
	}{
		{"exact", "Denver Nuggets", "Nikola Jokic", 246},
		{"lowercase", "denver nuggets", "nikola jokic", 246},
		{"punctuation", "Memphis Grizzlies", "jaren jackson jr", 3418},
		{"apostrophe", "San Antonio Spurs", "DeAaron Fox", 158},
		{"extra spacing", "Los Angeles Lakers", "  LeBron   James ", 237},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := r.Lookup(tt.team, tt.player)
			require.True(t, ok)
			assert.Equal(t, tt.wantID, p.ID)
		})
	}
}

func TestLookupMisses(t *testing.T) {
	r := newTestRoster()

	_, ok := r.Lookup("Denver Nuggets", "Bench Player")
	assert.False(t, ok)

	// Rostered player, wrong team
	_, ok = r.Lookup("Denver Nuggets", "Stephen Curry")
	assert.False(t, ok)

	_, ok = r.Lookup("Seattle SuperSonics", "Nikola Jokic")
	assert.False(t, ok)
}

func TestFindChecksBothTeams(t *testing.T) {
	r := newTestRoster()

	m, ok := r.Find("Denver Nuggets", "Golden State Warriors", "Stephen Curry")
	require.True(t, ok)
	assert.Equal(t, "Golden State Warriors", m.Team)
	assert.Equal(t, 115, m.Player.ID)

	m, ok = r.Find("Denver Nuggets", "Golden State Warriors", "Jamal Murray")
	require.True(t, ok)
	assert.Equal(t, "Denver Nuggets", m.Team)

	_, ok = r.Find("Denver Nuggets", "Golden State Warriors", "Jayson Tatum")
	assert.False(t, ok)
}

func TestDefaultRosterCoversAllTeams(t *testing.T) {
	r := newTestRoster()

	assert.GreaterOrEqual(t, r.Size(), 60)
	for team := range defaultRoster {
		assert.NotEmpty(t, r.Players(team), "team %s has no players", team)
	}
}

func TestLoadFileReplacesRoster(t *testing.T) {
	r := newTestRoster()

	path := filepath.Join(t.TempDir(), "roster.yaml")
	contents := `teams:
  Springfield Atoms:
    - name: Test Player
      id: 999
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	require.NoError(t, r.LoadFile(path))

	p, ok := r.Lookup("Springfield Atoms", "Test Player")
	require.True(t, ok)
	assert.Equal(t, 999, p.ID)

	// The built-in list is gone after a reload
	_, ok = r.Lookup("Denver Nuggets", "Nikola Jokic")
	assert.False(t, ok)
	assert.Equal(t, 1, r.Size())
}

func TestLoadFileRejectsMissingOrEmpty(t *testing.T) {
	r := newTestRoster()

	assert.Error(t, r.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("teams: {}\n"), 0o644))
	assert.Error(t, r.LoadFile(empty))

	// Failed loads keep the previous roster intact
	_, ok := r.Lookup("Denver Nuggets", "Nikola Jokic")
	assert.True(t, ok)
}
