package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth reports liveness. It is served at the root, outside the /api base path of the API docs.
func getHealth(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}
