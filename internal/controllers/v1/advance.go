package v1

import (
	"net/http"

	"github.com/dailyledger/backend/internal/httputil"
	"github.com/dailyledger/backend/internal/models"
	"github.com/dailyledger/backend/internal/types"
	ledger_uuid "github.com/dailyledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterAdvanceRoutes registers the routes for monthly advances with
// the RouterGroup that is passed.
func RegisterAdvanceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAdvances)
	r.GET("", GetAdvances)
	r.PATCH("", UpdateAdvances)
}

// AdvanceEditable represents all configurable parameters of a monthly advance total
type AdvanceEditable struct {
	User          uuid.UUID       `json:"user"`                                          // Optional user to write for, defaults to the caller
	Month         types.Month     `json:"month" example:"2025-01"`                       // The month the total belongs to, required
	TotalAdvances decimal.Decimal `json:"totalAdvances" example:"150" default:"0"`       // The cumulative advance total for the month
}

type Advance struct {
	UserID        uuid.UUID       `json:"userId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Month         types.Month     `json:"month" example:"2025-01"`
	TotalAdvances decimal.Decimal `json:"totalAdvances" example:"150"`
}

type AdvanceResponse struct {
	Data  *Advance `json:"data"`                                                          // Data for the monthly advance total
	Error *string  `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Advances
// @Success		204
// @Router			/v1/advances [options]
func OptionsAdvances(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get monthly advances
// @Description	Returns the cumulative advance total of a user for one month
// @Tags			Advances
// @Produce		json
// @Success		200		{object}	AdvanceResponse
// @Failure		400		{object}	AdvanceResponse
// @Failure		401		{object}	AdvanceResponse
// @Failure		403		{object}	AdvanceResponse
// @Failure		500		{object}	AdvanceResponse
// @Param			user	query		string	false	"User ID to read the total of. Defaults to the caller."
// @Param			month	query		string	true	"The month, YYYY-MM"
// @Router			/v1/advances [get]
func GetAdvances(c *gin.Context) {
	explicit, err := ledger_uuid.Parse(c.Query("user"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdvanceResponse{Error: &e})
		return
	}

	target, err := resolveTarget(c, explicit.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdvanceResponse{Error: &e})
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdvanceResponse{Error: &e})
		return
	}

	total, err := models.AdvancesForMonth(models.DB, target, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdvanceResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AdvanceResponse{Data: &Advance{
		UserID:        target,
		Month:         month,
		TotalAdvances: total,
	}})
}

// @Summary		Update monthly advances
// @Description	Sets the cumulative advance total for a (user, month) pair
// @Tags			Advances
// @Accept			json
// @Produce		json
// @Success		200		{object}	AdvanceResponse
// @Failure		400		{object}	AdvanceResponse
// @Failure		401		{object}	AdvanceResponse
// @Failure		403		{object}	AdvanceResponse
// @Failure		500		{object}	AdvanceResponse
// @Param			advance	body		AdvanceEditable	true	"Advance total"
// @Router			/v1/advances [patch]
func UpdateAdvances(c *gin.Context) {
	admin, err := requireAdmin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdvanceResponse{Error: &e})
		return
	}

	var data AdvanceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdvanceResponse{Error: &e})
		return
	}

	target := data.User
	if target == uuid.Nil {
		target = admin.userID
	}

	advance := models.MonthlyAdvance{
		UserID:        target,
		YearMonth:     data.Month,
		TotalAdvances: data.TotalAdvances,
	}
	err = advance.Upsert(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdvanceResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AdvanceResponse{Data: &Advance{
		UserID:        advance.UserID,
		Month:         advance.YearMonth,
		TotalAdvances: advance.TotalAdvances,
	}})
}
