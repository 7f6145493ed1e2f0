package response

import "github.com/gin-gonic/gin"

// RespondJSON writes the standard envelope.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, envelope(status, code, message, data, errors))
}

// AbortJSON writes an error envelope and stops the handler chain.
func AbortJSON(c *gin.Context, code int, message string, errors interface{}) {
	c.AbortWithStatusJSON(code, envelope("error", code, message, nil, errors))
}

func envelope(status string, code int, message string, data interface{}, errors interface{}) StandardApiResponse {
	return StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	}
}
