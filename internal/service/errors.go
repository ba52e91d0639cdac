package service

import "errors"

var (
	// ErrNotFound covers both missing rows and rows owned by another user,
	// so callers cannot distinguish the two cases.
	ErrNotFound = errors.New("not found")

	// ErrEmptyPlan is returned when grocery generation runs against a plan
	// with no assignments.
	ErrEmptyPlan = errors.New("no meals planned for this week")

	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
