package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// Timeouts
const (
	DefaultTimeout        = 30 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// Database settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
)

// Background task types
const (
	TaskSweepMissedEvents = "event:sweep_missed"
)
