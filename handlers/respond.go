package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"plyquote/services"
)

type errorBody struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// ErrorJSON writes {"message": ...} with the given status.
func ErrorJSON(e *core.RequestEvent, statusCode int, message string) error {
	return e.JSON(statusCode, errorBody{Message: message})
}

// respondError maps the service error taxonomy onto a status code and an
// operator-facing message. Store details are logged, never returned.
func respondError(e *core.RequestEvent, op string, err error) error {
	var (
		verr     *services.ValidationError
		notFound *services.NotFoundError
		conflict *services.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		return e.JSON(http.StatusBadRequest, errorBody{Message: verr.Error(), Fields: verr.Fields})
	case errors.As(err, &notFound):
		return ErrorJSON(e, http.StatusNotFound, notFound.Error())
	case errors.As(err, &conflict):
		log.Printf("%s: %v", op, err)
		return ErrorJSON(e, http.StatusConflict, conflict.Error()+", please try again")
	default:
		log.Printf("%s: %v", op, err)
		return ErrorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
