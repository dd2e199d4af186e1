package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-context-mcp/internal/dto"
	appErrors "github.com/noah-isme/student-context-mcp/pkg/errors"
)

// JSON sends a successful envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	Result(c, status, dto.Success(data))
}

// Result sends an envelope produced by a query operation.
func Result(c *gin.Context, status int, result dto.Result) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, result)
}

// StatusFor maps an envelope to the HTTP status a resource read answers with.
func StatusFor(result dto.Result) int {
	if result.Success {
		return http.StatusOK
	}
	if result.Error != nil && result.Error.Status != 0 {
		return result.Error.Status
	}
	return http.StatusInternalServerError
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	Result(c, appErr.Status, dto.Failure(appErr))
}
