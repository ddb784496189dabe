package article

// Status is the terminal outcome of one article pipeline.
type Status string

// Article status values. The set is closed.
const (
	StatusOK           Status = "OK"
	StatusFetchError   Status = "FETCH_ERROR"
	StatusParsingError Status = "PARSING_ERROR"
	StatusTimeout      Status = "TIMEOUT"
)

// Statuses lists every status value in a stable order.
func Statuses() []Status {
	return []Status{StatusOK, StatusFetchError, StatusParsingError, StatusTimeout}
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusOK, StatusFetchError, StatusParsingError, StatusTimeout:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }
