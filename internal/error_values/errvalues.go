package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("resource belongs to another user")
	ErrValidation       = errors.New("validation error")

	ErrMeasurementNotFound = errors.New("measurement doesn't exist")
	ErrGoalNotFound        = errors.New("goal is not set")

	ErrAchievementExists   = errors.New("milestone already recorded for this goal")
	ErrAchievementNotFound = errors.New("achievement doesn't exist")

	// Engine outcomes. Empty history and undefined progress are normal states, callers branch on them.
	ErrEmptyHistory      = errors.New("no measurements recorded")
	ErrUndefinedProgress = errors.New("start weight equals goal weight, progress is undefined")
	ErrInvalidThreshold  = errors.New("approaching threshold conversion is not usable")
	ErrLedgerWrite       = errors.New("achievement ledger write failed")
)
