package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// HandleHealth reports that the server is up.
func HandleHealth() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]string{"message": "Backend is running!"})
	}
}
