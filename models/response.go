package models

// FormErrorKey holds errors that do not belong to a single field.
const FormErrorKey = "_form"

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeDuplicateName = "DUPLICATE_NAME"
	CodeStorage       = "STORAGE_ERROR"
	CodeIDRequired    = "ID_REQUIRED"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
)

// ActionResult is returned by every write operation. Failures are reported
// here rather than as Go errors so the caller only has to present them.
type ActionResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Code    string              `json:"code,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
}

func (r *ActionResult) AddError(field, msg string) {
	if r.Errors == nil {
		r.Errors = map[string][]string{}
	}
	r.Errors[field] = append(r.Errors[field], msg)
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
