package request

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/apperr"
	"catalog-backend/internal/shared/paging"
)

var ErrInvalidPathParam = apperr.New(apperr.KindValidation, "INVALID_PATH_PARAM", "Invalid path parameter")

// Page reads ?page=&size= with defaults 0 and paging.DefaultSize
func Page(c *gin.Context) (paging.Request, error) {
	page, err := queryInt(c, "page", 0)
	if err != nil {
		return paging.Request{}, paging.ErrInvalidPage.WithCause(err)
	}
	size, err := queryInt(c, "size", paging.DefaultSize)
	if err != nil {
		return paging.Request{}, paging.ErrInvalidPage.WithCause(err)
	}
	return paging.NewRequest(page, size)
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// Int64Param parses a numeric path segment
func Int64Param(c *gin.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, ErrInvalidPathParam.WithCause(err)
	}
	return v, nil
}
