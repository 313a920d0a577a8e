package api

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// DecodeJSON binds the request body into dst. An empty body leaves dst
// untouched so that required-field checks report the missing fields.
func DecodeJSON(c *gin.Context, dst interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}

	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return MalformedRequest(err)
	}

	return nil
}
