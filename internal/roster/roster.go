// Package roster maintains the curated list of star players whose props
// are worth analyzing. Player props for bench and role players carry thin
// markets and noisy lines, so candidates are filtered down to this
// allow-list before any feature engineering happens.
package roster

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/yourusername/props-advisor/internal/logger"
)

// Player identifies one rostered star by display name and stats-provider id.
type Player struct {
	Name string `mapstructure:"name"`
	ID   int    `mapstructure:"id"`
}

// Match is a successful roster lookup, carrying the team the player was
// found under.
type Match struct {
	Player Player
	Team   string
}

type teamEntry struct {
	name    string
	players []Player
}

// Roster is a concurrency-safe star-player allow-list keyed by team.
// Lookups normalize both team and player names, so "Jaren Jackson Jr."
// and "jaren jackson jr" resolve identically.
type Roster struct {
	log *logrus.Entry

	mu    sync.RWMutex
	teams map[string]teamEntry
}

// New builds a roster seeded with the built-in star list.
func New(log *logrus.Logger) *Roster {
	r := &Roster{
		log:   logger.WithComponent(log, "roster"),
		teams: make(map[string]teamEntry),
	}
	r.replace(defaultRoster)
	return r
}

// LoadFile replaces the roster contents from a YAML file of the form:
//
//	teams:
//	  Boston Celtics:
//	    - name: Jayson Tatum
//	      id: 434
//
// The built-in roster is kept untouched when the file cannot be read, so
// a broken reload never leaves the service without an allow-list.
func (r *Roster) LoadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading roster file: %w", err)
	}

	var teams map[string][]Player
	if err := v.UnmarshalKey("teams", &teams); err != nil {
		return fmt.Errorf("parsing roster file: %w", err)
	}
	if len(teams) == 0 {
		return fmt.Errorf("roster file %s contains no teams", path)
	}

	r.replace(teams)
	r.log.WithFields(logrus.Fields{
		"path":  path,
		"teams": len(teams),
	}).Info("Roster reloaded from file")
	return nil
}

func (r *Roster) replace(teams map[string][]Player) {
	next := make(map[string]teamEntry, len(teams))
	for team, players := range teams {
		next[normalize(team)] = teamEntry{name: team, players: players}
	}

	r.mu.Lock()
	r.teams = next
	r.mu.Unlock()
}

// Lookup finds a player on a single team's star list.
func (r *Roster) Lookup(team, playerName string) (Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.teams[normalize(team)]
	if !ok {
		return Player{}, false
	}
	want := normalize(playerName)
	for _, p := range entry.players {
		if normalize(p.Name) == want {
			return p, true
		}
	}
	return Player{}, false
}

// Find checks the player against both matchup teams and reports which
// side they play for. Home is checked first.
func (r *Roster) Find(homeTeam, awayTeam, playerName string) (Match, bool) {
	if p, ok := r.Lookup(homeTeam, playerName); ok {
		return Match{Player: p, Team: homeTeam}, true
	}
	if p, ok := r.Lookup(awayTeam, playerName); ok {
		return Match{Player: p, Team: awayTeam}, true
	}
	return Match{}, false
}

// Players returns the star list for one team.
func (r *Roster) Players(team string) []Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.teams[normalize(team)]
	if !ok {
		return nil
	}
	out := make([]Player, len(entry.players))
	copy(out, entry.players)
	return out
}

// Size reports the total number of rostered players.
func (r *Roster) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, entry := range r.teams {
		total += len(entry.players)
	}
	return total
}

// normalize lowercases and strips everything that is not a letter or
// digit, making lookups insensitive to punctuation and spacing.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
