package v1

import (
	"net/http"

	"github.com/dailyledger/backend/internal/httputil"
	"github.com/dailyledger/backend/internal/models"
	ledger_uuid "github.com/dailyledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes registers the routes for summaries with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/month", OptionsSummary)
	r.GET("/month", GetMonthlySummary)

	r.OPTIONS("/year", OptionsSummary)
	r.GET("/year", GetYearlySummary)

	r.OPTIONS("/month/days", OptionsSummary)
	r.GET("/month/days", GetComprehensiveSummary)

	r.OPTIONS("/month/users", OptionsSummary)
	r.GET("/month/users", GetUsersSummary)
}

type MonthlySummaryResponse struct {
	Data  *models.MonthlySummary `json:"data"`                                                   // The monthly summary
	Error *string                `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type YearlySummaryResponse struct {
	Data  *models.YearlySummary `json:"data"`                                                  // The yearly summary
	Error *string               `json:"error" example:"the year query parameter must be set"` // The error, if any occurred
}

type ComprehensiveSummaryResponse struct {
	Data  *models.ComprehensiveSummary `json:"data"`                                                   // The month across all users, grouped by day
	Error *string                      `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type UsersSummaryResponse struct {
	Data  []models.UserMonthSummary `json:"data"`                                                   // One row per profile, sorted by total amount descending
	Error *string                   `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summaries
// @Success		204
// @Router			/v1/summaries/month [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly summary
// @Description	Returns the summary of one user's month
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	MonthlySummaryResponse
// @Failure		400		{object}	MonthlySummaryResponse
// @Failure		401		{object}	MonthlySummaryResponse
// @Failure		403		{object}	MonthlySummaryResponse
// @Failure		500		{object}	MonthlySummaryResponse
// @Param			user	query		string	false	"User ID to summarize. Defaults to the caller."
// @Param			month	query		string	true	"The month, YYYY-MM"
// @Router			/v1/summaries/month [get]
func GetMonthlySummary(c *gin.Context) {
	explicit, err := ledger_uuid.Parse(c.Query("user"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlySummaryResponse{Error: &e})
		return
	}

	target, err := resolveTarget(c, explicit.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlySummaryResponse{Error: &e})
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlySummaryResponse{Error: &e})
		return
	}

	summary, err := models.MonthlyUserSummary(models.DB, target, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlySummaryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthlySummaryResponse{Data: &summary})
}

// @Summary		Yearly summary
// @Description	Returns the per-month and total summary of one user's year
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	YearlySummaryResponse
// @Failure		400		{object}	YearlySummaryResponse
// @Failure		401		{object}	YearlySummaryResponse
// @Failure		403		{object}	YearlySummaryResponse
// @Failure		500		{object}	YearlySummaryResponse
// @Param			user	query		string	false	"User ID to summarize. Defaults to the caller."
// @Param			year	query		int		true	"The year"
// @Router			/v1/summaries/year [get]
func GetYearlySummary(c *gin.Context) {
	explicit, err := ledger_uuid.Parse(c.Query("user"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearlySummaryResponse{Error: &e})
		return
	}

	target, err := resolveTarget(c, explicit.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearlySummaryResponse{Error: &e})
		return
	}

	year, err := yearFromQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearlySummaryResponse{Error: &e})
		return
	}

	summary, err := models.YearlyUserSummary(models.DB, target, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearlySummaryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, YearlySummaryResponse{Data: &summary})
}

// @Summary		Comprehensive monthly summary
// @Description	Returns the month across all users, grouped by day
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	ComprehensiveSummaryResponse
// @Failure		400		{object}	ComprehensiveSummaryResponse
// @Failure		401		{object}	ComprehensiveSummaryResponse
// @Failure		403		{object}	ComprehensiveSummaryResponse
// @Failure		500		{object}	ComprehensiveSummaryResponse
// @Param			month	query		string	true	"The month, YYYY-MM"
// @Router			/v1/summaries/month/days [get]
func GetComprehensiveSummary(c *gin.Context) {
	_, err := requireAdmin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ComprehensiveSummaryResponse{Error: &e})
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ComprehensiveSummaryResponse{Error: &e})
		return
	}

	summary, err := models.ComprehensiveMonthlySummary(models.DB, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ComprehensiveSummaryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ComprehensiveSummaryResponse{Data: &summary})
}

// @Summary		Per-user monthly summary
// @Description	Returns one summary row per profile for a month
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	UsersSummaryResponse
// @Failure		400		{object}	UsersSummaryResponse
// @Failure		401		{object}	UsersSummaryResponse
// @Failure		403		{object}	UsersSummaryResponse
// @Failure		500		{object}	UsersSummaryResponse
// @Param			month	query		string	true	"The month, YYYY-MM"
// @Router			/v1/summaries/month/users [get]
func GetUsersSummary(c *gin.Context) {
	_, err := requireAdmin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UsersSummaryResponse{Error: &e})
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UsersSummaryResponse{Error: &e})
		return
	}

	summaries, err := models.UsersMonthlySummary(models.DB, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UsersSummaryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, UsersSummaryResponse{Data: summaries})
}
