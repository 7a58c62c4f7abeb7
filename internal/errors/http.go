package errors

import "net/http"

// HTTPStatusFromErr maps a marked error to the HTTP status the REST layer
// should respond with.
func HTTPStatusFromErr(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case IsValidation(err):
		return http.StatusBadRequest
	case IsAlreadyExists(err):
		return http.StatusConflict
	case IsCadenceMismatch(err), IsInvalidOperation(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
