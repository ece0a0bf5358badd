package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 统一响应信封：
// 成功 {status:"success", status_code, data, message?}
// 失败 {error, code, status}，HTTP状态码与status字段一致

// Success 成功响应
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"status":      "success",
		"status_code": statusCode,
		"data":        data,
	})
}

// SuccessWithMessage 带提示信息的成功响应
func SuccessWithMessage(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, gin.H{
		"status":      "success",
		"status_code": statusCode,
		"data":        data,
		"message":     message,
	})
}

// Error 错误响应
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"error":  message,
		"code":   code,
		"status": statusCode,
	})
}

// ErrorMissingField 缺少必填字段的400响应，附带字段名
func ErrorMissingField(c *gin.Context, code string, field string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "Missing required field: " + field,
		"code":   code,
		"status": http.StatusBadRequest,
		"field":  field,
	})
}
