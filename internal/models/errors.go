package models

import "errors"

// Custom errors
var (
	ErrEventNotFound    = errors.New("no matching event found")
	ErrNoOddsData       = errors.New("no odds data available for event")
	ErrNoRosterMatches  = errors.New("no tracked players found in event props")
	ErrUnsupportedSport = errors.New("unsupported sport")
	ErrMissingTeams     = errors.New("both team names are required")
	ErrRunNotFound      = errors.New("analysis run not found")
)
