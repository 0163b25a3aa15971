package pkg

// AppError is the error shape crossing the HTTP boundary: a stable machine
// code, a human-readable message and the status used for the response.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

// HTTPError is the JSON body written for a failed request.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError projects the error into its response body. The wrapped cause is
// only surfaced as details, never replacing the stable message.
func (e *AppError) ToHTTPError() HTTPError {
	he := HTTPError{Code: e.Code, Message: e.Message}
	if e.Err != nil {
		he.Details = e.Err.Error()
	}
	return he
}
