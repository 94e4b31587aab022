package responses

// APIResponse is the envelope every successful endpoint returns.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// APIError is the envelope for every failure. Data is always null and
// Errors carries one entry per underlying cause.
type APIError struct {
	StatusCode int      `json:"statusCode"`
	Data       any      `json:"data"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func New(statusCode int, data any, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

func NewError(statusCode int, message string, errs ...string) APIError {
	if errs == nil {
		errs = []string{}
	}
	return APIError{
		StatusCode: statusCode,
		Data:       nil,
		Message:    message,
		Success:    false,
		Errors:     errs,
	}
}
