package chi

// ErrorCode is the machine-readable error kind of an ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeTooManyURLs      ErrorCode = "too_many_urls"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeMethodNotAllowed ErrorCode = "method_not_allowed"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	URLs []string `json:"urls"`
}

// ArticleResult is one element of the /analyze response.
// Title, Score and WordCount are null unless Status is OK.
type ArticleResult struct {
	URL       string   `json:"url"`
	Status    string   `json:"status"`
	Title     *string  `json:"title"`
	Score     *float64 `json:"score"`
	WordCount *int     `json:"word_count"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string            `json:"status"`
	Checks       map[string]string `json:"checks"`
	ChargedWords int               `json:"charged_words"`
}

// UsageResponse is the body of GET /.
type UsageResponse struct {
	OK      bool   `json:"ok"`
	Usage   string `json:"usage"`
	MaxURLs int    `json:"max_urls"`
	Version string `json:"version"`
}
