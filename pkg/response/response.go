package response

import "errors"

// Response represents a standard API response format
type Response struct {
	Status     string            `json:"status"`      // "success" or "error"
	StatusCode int               `json:"status_code"` // HTTP status code
	Data       interface{}       `json:"data,omitempty"`
	Error      string            `json:"error,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// Detailer is implemented by errors that can name the record they refer to
type Detailer interface {
	Details() map[string]string
}

// Fail is Error for pipeline failures: when err (or an error it wraps)
// implements Detailer, its details are copied into the response.
func Fail(statusCode int, err error) Response {
	resp := Error(statusCode, err.Error())
	var d Detailer
	if errors.As(err, &d) {
		if details := d.Details(); len(details) > 0 {
			resp.Details = details
		}
	}
	return resp
}
