package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"brandpulse-srv/pkg/discord"
	"brandpulse-srv/pkg/errors"
)

// OK writes a 200 success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Success: true, Data: data})
}

// OKWithMetadata writes a 200 success envelope with a metadata block.
func OKWithMetadata(c *gin.Context, data, metadata any) {
	c.JSON(http.StatusOK, Resp{Success: true, Data: data, Metadata: metadata})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Resp{Success: true, Data: data})
}

// Error renders err. HTTPError and ValidationErrors keep their status; anything else is a 500
// and is reported to Discord when a client is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var verrs errors.ValidationErrors
	if stderrors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, Resp{Success: false, Message: msgValidationFailed, Errors: verrs})
		return
	}

	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{Success: false, Message: httpErr.Message, Errors: []string{httpErr.Message}})
		return
	}

	reportBug(c.Request.Context(), d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	c.JSON(http.StatusInternalServerError, Resp{Success: false, Message: msgInternal, Errors: []string{msgInternal}})
}

// ErrorWithMap renders the HTTPError mapped to err, falling back to Error.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range mapping {
		if stderrors.Is(err, target) {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, err, d)
}

// PanicError renders a recovered panic as a 500 and reports the stack trace.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	reportBug(c.Request.Context(), d, fmt.Sprintf("panic: %v\n%s", recovered, debug.Stack()))
	c.JSON(http.StatusInternalServerError, Resp{Success: false, Message: msgInternal, Errors: []string{msgInternal}})
}

// TooManyRequests writes a 429 envelope.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{Success: false, Message: errors.ErrTooMany.Message, Errors: []string{errors.ErrTooMany.Message}})
}

func reportBug(ctx context.Context, d discord.IDiscord, msg string) {
	if d == nil {
		return
	}
	go func() {
		_ = d.ReportBug(context.WithoutCancel(ctx), msg)
	}()
}
