package response

import (
	"github.com/gin-gonic/gin"
)

// ListMeta reports "showing X of Y" counts for directory listings.
type ListMeta struct {
	TotalCount  int `json:"total_count"`
	ResultCount int `json:"result_count"`
}

func NewListMeta(total, result int) ListMeta {
	return ListMeta{
		TotalCount:  total,
		ResultCount: result,
	}
}

type ApiEnvelope struct {
	Ok    bool      `json:"ok"`
	Data  any       `json:"data,omitempty"`
	Meta  *ListMeta `json:"meta,omitempty"`
	Error any       `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *ListMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
