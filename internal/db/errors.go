package db

import "errors"

// ErrKeyNotFound signals a missing or empty key.
var ErrKeyNotFound = errors.New("db: key not found")

// Redis command names, used as Error.Op.
const (
	OpPing     = "PING"
	OpSMembers = "SMEMBERS"
	OpSCard    = "SCARD"
	OpSAdd     = "SADD"
)

// Error records the command that failed and its cause.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return "redis " + e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
