package v1

import (
	"net/http"
	"strconv"

	"github.com/dailyledger/backend/internal/httputil"
	"github.com/dailyledger/backend/internal/models"
	"github.com/dailyledger/backend/internal/types"
	ledger_uuid "github.com/dailyledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterPurchaseRoutes registers the routes for monthly purchases with
// the RouterGroup that is passed.
func RegisterPurchaseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPurchases)
	r.GET("", GetPurchases)
	r.PATCH("", UpdatePurchases)

	r.OPTIONS("/list", OptionsPurchaseList)
	r.GET("/list", GetPurchaseList)
}

// PurchaseEditable represents all configurable parameters of a monthly purchase total
type PurchaseEditable struct {
	User           uuid.UUID       `json:"user"`                                     // Optional user to write for, defaults to the caller
	Month          types.Month     `json:"month" example:"2025-01"`                  // The month the total belongs to, required
	TotalPurchases decimal.Decimal `json:"totalPurchases" example:"320" default:"0"` // The cumulative purchase total for the month
	Notes          string          `json:"notes" example:"stock refill" default:""`  // Free-form notes
}

type Purchase struct {
	UserID         uuid.UUID       `json:"userId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Month          types.Month     `json:"month" example:"2025-01"`
	TotalPurchases decimal.Decimal `json:"totalPurchases" example:"320"`
	Notes          string          `json:"notes" example:"stock refill"`
}

func newPurchase(model models.MonthlyPurchase) Purchase {
	return Purchase{
		UserID:         model.UserID,
		Month:          model.YearMonth,
		TotalPurchases: model.TotalPurchases,
		Notes:          model.Notes,
	}
}

type PurchaseResponse struct {
	Data  *Purchase `json:"data"`                                                   // Data for the monthly purchase total
	Error *string   `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type PurchaseListResponse struct {
	Data  []Purchase `json:"data"`                                                  // List of monthly purchase totals, newest month first
	Error *string    `json:"error" example:"the year query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Purchases
// @Success		204
// @Router			/v1/purchases [options]
func OptionsPurchases(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Purchases
// @Success		204
// @Router			/v1/purchases/list [options]
func OptionsPurchaseList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly purchases
// @Description	Returns the cumulative purchase total of a user for one month
// @Tags			Purchases
// @Produce		json
// @Success		200		{object}	PurchaseResponse
// @Failure		400		{object}	PurchaseResponse
// @Failure		401		{object}	PurchaseResponse
// @Failure		403		{object}	PurchaseResponse
// @Failure		500		{object}	PurchaseResponse
// @Param			user	query		string	false	"User ID to read the total of. Defaults to the caller."
// @Param			month	query		string	true	"The month, YYYY-MM"
// @Router			/v1/purchases [get]
func GetPurchases(c *gin.Context) {
	explicit, err := ledger_uuid.Parse(c.Query("user"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseResponse{Error: &e})
		return
	}

	target, err := resolveTarget(c, explicit.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseResponse{Error: &e})
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseResponse{Error: &e})
		return
	}

	purchase, err := models.PurchasesForMonth(models.DB, target, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseResponse{Error: &e})
		return
	}

	apiResource := newPurchase(purchase)
	c.JSON(http.StatusOK, PurchaseResponse{Data: &apiResource})
}

// @Summary		List monthly purchases
// @Description	Returns all cumulative purchase totals of a user, newest month first
// @Tags			Purchases
// @Produce		json
// @Success		200		{object}	PurchaseListResponse
// @Failure		400		{object}	PurchaseListResponse
// @Failure		401		{object}	PurchaseListResponse
// @Failure		403		{object}	PurchaseListResponse
// @Failure		500		{object}	PurchaseListResponse
// @Param			user	query		string	false	"User ID to list the totals of. Defaults to the caller."
// @Param			year	query		int		false	"Only totals of this year"
// @Router			/v1/purchases/list [get]
func GetPurchaseList(c *gin.Context) {
	explicit, err := ledger_uuid.Parse(c.Query("user"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseListResponse{Error: &e})
		return
	}

	target, err := resolveTarget(c, explicit.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseListResponse{Error: &e})
		return
	}

	year := 0
	if y := c.Query("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil {
			e := errYearNotSetInQuery.Error()
			c.JSON(status(errYearNotSetInQuery), PurchaseListResponse{Error: &e})
			return
		}
	}

	purchases, err := models.PurchasesByUser(models.DB, target, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseListResponse{Error: &e})
		return
	}

	apiResources := make([]Purchase, 0, len(purchases))
	for _, purchase := range purchases {
		apiResources = append(apiResources, newPurchase(purchase))
	}

	c.JSON(http.StatusOK, PurchaseListResponse{Data: apiResources})
}

// @Summary		Update monthly purchases
// @Description	Sets the cumulative purchase total for a (user, month) pair
// @Tags			Purchases
// @Accept			json
// @Produce		json
// @Success		200			{object}	PurchaseResponse
// @Failure		400			{object}	PurchaseResponse
// @Failure		401			{object}	PurchaseResponse
// @Failure		403			{object}	PurchaseResponse
// @Failure		500			{object}	PurchaseResponse
// @Param			purchase	body		PurchaseEditable	true	"Purchase total"
// @Router			/v1/purchases [patch]
func UpdatePurchases(c *gin.Context) {
	admin, err := requireAdmin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseResponse{Error: &e})
		return
	}

	var data PurchaseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseResponse{Error: &e})
		return
	}

	target := data.User
	if target == uuid.Nil {
		target = admin.userID
	}

	purchase := models.MonthlyPurchase{
		UserID:         target,
		YearMonth:      data.Month,
		TotalPurchases: data.TotalPurchases,
		Notes:          data.Notes,
	}
	err = purchase.Upsert(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseResponse{Error: &e})
		return
	}

	apiResource := newPurchase(purchase)
	c.JSON(http.StatusOK, PurchaseResponse{Data: &apiResource})
}
