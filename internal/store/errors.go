package store

import "errors"

// Error taxonomy surfaced by the store. Every failure wraps exactly one of
// these sentinels and is checkable with errors.Is; the underlying driver error
// stays in the chain.
var (
	// ErrConfiguration reports missing or invalid connection parameters.
	ErrConfiguration = errors.New("invalid store configuration")
	// ErrParse reports a connection url that could not be parsed.
	ErrParse = errors.New("connection url parse failure")
	// ErrConnection reports a failure opening or using a server connection.
	ErrConnection = errors.New("database connection failure")
	// ErrSchema reports a tracking table bootstrap failure.
	ErrSchema = errors.New("schema bootstrap failure")
	// ErrQuery reports any other statement execution failure, including
	// primary key violations on duplicate migration names.
	ErrQuery = errors.New("query execution failure")
)
