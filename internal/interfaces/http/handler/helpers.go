package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
)

const maxPageSize = 100

// parseFilter extracts common pagination and ordering query parameters
func parseFilter(c *gin.Context) shared.Filter {
	f := shared.DefaultFilter()
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		f.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil && size > 0 {
		if size > maxPageSize {
			size = maxPageSize
		}
		f.PageSize = size
	}
	if v := c.Query("order_by"); v != "" {
		f.OrderBy = v
	}
	if v := c.Query("order_dir"); v != "" {
		f.OrderDir = v
	}
	f.Search = c.Query("search")
	return f
}

// parseMoney parses a string amount with an optional currency code,
// defaulting to USD. Amounts cross the API as decimal strings.
func parseMoney(amount, currency string) (valueobject.Money, error) {
	cur := valueobject.DefaultCurrency
	if currency != "" {
		cur = valueobject.Currency(currency)
	}
	return valueobject.NewMoneyFromString(amount, cur)
}
