package utils

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: {success, message?, data?}.

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONSuccessMessage(c *gin.Context, code int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}
