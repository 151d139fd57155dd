package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rwidjojo/freelancer-directory-api/internal/constants"
)

// NormalizePaging applies the listing rules: page clamps to 1, a non-positive
// pageSize falls back to the default (not to 1), and pageSize caps at the
// maximum.
func NormalizePaging(page, pageSize int) (int, int) {
	if page < constants.MinPage {
		page = constants.MinPage
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}

// GetPageParams extracts normalized pagination parameters from the request.
func GetPageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPage)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(constants.DefaultPageSize)))
	return NormalizePaging(page, pageSize)
}

// TotalPages guards the zero-pageSize division even though normalization never
// lets it through.
func TotalPages(totalCount int64, pageSize int) int {
	if pageSize == 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(pageSize)))
}
