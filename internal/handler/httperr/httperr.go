package httperr

import (
	"errors"
	"net/http"

	"storefront-console/internal/usecase/commands"
	"storefront-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithUsecaseError maps the usecase sentinel errors onto HTTP statuses
// so handlers do not repeat the same errors.Is ladder.
func AbortWithUsecaseError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrPermissionDenied):
		AbortWithError(c, http.StatusForbidden, err, "Permission denied", nil)
	case errors.Is(err, commands.ErrPromotionNotFound), errors.Is(err, queries.ErrPromotionNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Promotion not found", nil)
	case errors.Is(err, commands.ErrDuplicateCode):
		AbortWithError(c, http.StatusConflict, err, "Voucher code already exists", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
