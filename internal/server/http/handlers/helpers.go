package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/mywallet/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// validationMessages turns a binding failure into per-field messages.
func validationMessages(err error) []string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return []string{"malformed request body"}
	}
	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		msgs = append(msgs, fmt.Sprintf("%q fails %q validation", fe.Field(), fe.Tag()))
	}
	return msgs
}
