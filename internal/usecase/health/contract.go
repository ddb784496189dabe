package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// Dictionary reports the number of loaded charged words.
type Dictionary interface {
	Len() int
}
