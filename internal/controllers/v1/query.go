package v1

import (
	"strconv"

	"github.com/dailyledger/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// monthFromQuery parses the required month query parameter.
func monthFromQuery(c *gin.Context) (types.Month, error) {
	m := c.Query("month")
	if m == "" {
		return types.Month{}, errMonthNotSetInQuery
	}

	return types.ParseMonth(m)
}

// yearFromQuery parses the required year query parameter.
func yearFromQuery(c *gin.Context) (int, error) {
	y := c.Query("year")
	if y == "" {
		return 0, errYearNotSetInQuery
	}

	year, err := strconv.Atoi(y)
	if err != nil {
		return 0, errYearNotSetInQuery
	}

	return year, nil
}
