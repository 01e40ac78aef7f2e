package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dailyledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// PeriodSummary is the fold over a set of daily entries.
type PeriodSummary struct {
	TotalCash      decimal.Decimal `json:"totalCash" example:"1250"`       // Sum of all cash amounts
	TotalNetwork   decimal.Decimal `json:"totalNetwork" example:"730.50"`  // Sum of all network amounts
	TotalAmount    decimal.Decimal `json:"totalAmount" example:"1980.50"`  // Sum of cash + network
	TotalPurchases decimal.Decimal `json:"totalPurchases" example:"240"`   // Sum of per-day purchase amounts
	TotalAdvances  decimal.Decimal `json:"totalAdvances" example:"100"`    // Sum of per-day advance amounts
	TotalRemaining decimal.Decimal `json:"totalRemaining" example:"1740.50"`
	ActiveDays     int             `json:"activeDays" example:"22"` // Number of distinct dates with an entry
}

// fold accumulates the entries into a PeriodSummary.
//
// TotalRemaining is the sum of the stored per-entry remainders here.
// The month and year summaries deliberately overwrite it with
// TotalAmount - TotalPurchases afterwards, so the two figures disagree
// whenever purchases and remainders were written under older formulas.
func fold(entries []DailyEntry) PeriodSummary {
	var s PeriodSummary

	dates := make(map[string]struct{})
	for _, entry := range entries {
		s.TotalCash = s.TotalCash.Add(entry.CashAmount)
		s.TotalNetwork = s.TotalNetwork.Add(entry.NetworkAmount)
		s.TotalAmount = s.TotalAmount.Add(entry.CashAmount).Add(entry.NetworkAmount)
		s.TotalPurchases = s.TotalPurchases.Add(entry.PurchasesAmount)
		s.TotalAdvances = s.TotalAdvances.Add(entry.AdvanceAmount)
		s.TotalRemaining = s.TotalRemaining.Add(entry.Remaining)
		dates[entry.Date] = struct{}{}
	}

	s.ActiveDays = len(dates)

	return s
}

// averagePerDay returns round(total / days), or zero when there are no days.
func averagePerDay(total decimal.Decimal, days int) decimal.Decimal {
	if days == 0 {
		return decimal.Zero
	}

	return total.Div(decimal.NewFromInt(int64(days))).Round(0)
}

// filterByPrefix returns the entries whose date starts with the prefix.
//
// Periods are matched on the date string, not on parsed dates: a month is
// the "YYYY-MM" prefix, a year the "YYYY" prefix.
func filterByPrefix(entries []DailyEntry, prefix string) []DailyEntry {
	filtered := make([]DailyEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Date, prefix) {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}

func formatYearPrefix(year int) string {
	return fmt.Sprintf("%04d", year)
}

// MonthlySummary is the summary of one user's month.
type MonthlySummary struct {
	PeriodSummary
	Deductions         decimal.Decimal `json:"deductions" example:"500"`       // The user's fixed monthly deduction
	MonthlyPurchases   decimal.Decimal `json:"monthlyPurchases" example:"320"` // Cumulative monthly purchase total, tracked separately
	DaysInMonth        int             `json:"daysInMonth" example:"31"`
	AverageDailyAmount decimal.Decimal `json:"averageDailyAmount" example:"90"` // round(TotalAmount / ActiveDays)
}

// MonthlyUserSummary computes the summary of one user's month.
func MonthlyUserSummary(db *gorm.DB, userID uuid.UUID, month types.Month) (MonthlySummary, error) {
	entries, err := EntriesByUser(db, userID)
	if err != nil {
		return MonthlySummary{}, err
	}

	s := fold(filterByPrefix(entries, month.String()))

	// At the monthly level "remaining" ignores advances as well as the
	// stored per-entry remainders.
	s.TotalRemaining = s.TotalAmount.Sub(s.TotalPurchases)

	deductions := decimal.Zero
	profile, err := ProfileByUser(db, userID)
	if err == nil {
		deductions = profile.Deductions
	}

	purchases, err := PurchasesForMonth(db, userID, month)
	if err != nil {
		return MonthlySummary{}, err
	}

	return MonthlySummary{
		PeriodSummary:      s,
		Deductions:         deductions,
		MonthlyPurchases:   purchases.TotalPurchases,
		DaysInMonth:        month.Days(),
		AverageDailyAmount: averagePerDay(s.TotalAmount, s.ActiveDays),
	}, nil
}

// monthNames are the Gregorian month names the dashboard displays.
var monthNames = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// MonthOfYear is one month's block inside a yearly summary.
type MonthOfYear struct {
	Month     int    `json:"month" example:"3"`
	MonthName string `json:"monthName" example:"مارس"`
	PeriodSummary
	DaysInMonth int `json:"daysInMonth" example:"31"`
}

// YearlyTotals sums the twelve months of a yearly summary.
type YearlyTotals struct {
	PeriodSummary
	Deductions           decimal.Decimal `json:"deductions" example:"6000"` // Twelve months of the fixed deduction
	AverageMonthlyAmount decimal.Decimal `json:"averageMonthlyAmount" example:"1650"`
	AverageDailyAmount   decimal.Decimal `json:"averageDailyAmount" example:"90"`
}

// YearlySummary is the summary of one user's year.
type YearlySummary struct {
	MonthlyData  []MonthOfYear `json:"monthlyData"`
	YearlyTotals YearlyTotals  `json:"yearlyTotals"`
}

// YearlyUserSummary computes the per-month and total summary of one
// user's year.
func YearlyUserSummary(db *gorm.DB, userID uuid.UUID, year int) (YearlySummary, error) {
	entries, err := EntriesByUser(db, userID)
	if err != nil {
		return YearlySummary{}, err
	}

	yearEntries := filterByPrefix(entries, formatYearPrefix(year))

	var totals YearlyTotals
	monthlyData := make([]MonthOfYear, 0, 12)
	for m := 1; m <= 12; m++ {
		month := types.NewMonth(year, time.Month(m))

		s := fold(filterByPrefix(yearEntries, month.String()))
		s.TotalRemaining = s.TotalAmount.Sub(s.TotalPurchases)

		monthlyData = append(monthlyData, MonthOfYear{
			Month:         m,
			MonthName:     monthNames[m-1],
			PeriodSummary: s,
			DaysInMonth:   month.Days(),
		})

		totals.TotalCash = totals.TotalCash.Add(s.TotalCash)
		totals.TotalNetwork = totals.TotalNetwork.Add(s.TotalNetwork)
		totals.TotalAmount = totals.TotalAmount.Add(s.TotalAmount)
		totals.TotalPurchases = totals.TotalPurchases.Add(s.TotalPurchases)
		totals.TotalAdvances = totals.TotalAdvances.Add(s.TotalAdvances)
		totals.ActiveDays += s.ActiveDays
	}

	totals.TotalRemaining = totals.TotalAmount.Sub(totals.TotalPurchases)

	deductions := decimal.Zero
	profile, err := ProfileByUser(db, userID)
	if err == nil {
		deductions = profile.Deductions
	}
	totals.Deductions = deductions.Mul(decimal.NewFromInt(12))

	if totals.TotalAmount.IsPositive() {
		totals.AverageMonthlyAmount = totals.TotalAmount.Div(decimal.NewFromInt(12)).Round(0)
	}
	totals.AverageDailyAmount = averagePerDay(totals.TotalAmount, totals.ActiveDays)

	return YearlySummary{
		MonthlyData:  monthlyData,
		YearlyTotals: totals,
	}, nil
}

// DaySummary groups all users' entries of one date.
type DaySummary struct {
	Date           string          `json:"date" example:"2025-01-05"`
	TotalCash      decimal.Decimal `json:"totalCash" example:"430"`
	TotalNetwork   decimal.Decimal `json:"totalNetwork" example:"210.25"`
	TotalAmount    decimal.Decimal `json:"totalAmount" example:"640.25"`
	TotalPurchases decimal.Decimal `json:"totalPurchases" example:"55"`
	TotalAdvances  decimal.Decimal `json:"totalAdvances" example:"0"`
	TotalRemaining decimal.Decimal `json:"totalRemaining" example:"585.25"`
	EntriesCount   int             `json:"entriesCount" example:"3"`
}

// ComprehensiveTotals sums an admin-wide month across all users.
type ComprehensiveTotals struct {
	TotalGross         decimal.Decimal `json:"totalGross" example:"4200"`
	TotalCash          decimal.Decimal `json:"totalCash" example:"2800"`
	TotalNetwork       decimal.Decimal `json:"totalNetwork" example:"1400"`
	TotalPurchases     decimal.Decimal `json:"totalPurchases" example:"320"`
	TotalAdvances      decimal.Decimal `json:"totalAdvances" example:"150"`
	TotalNet           decimal.Decimal `json:"totalNet" example:"3880"` // Sum of the stored per-entry remainders
	ActiveDays         int             `json:"activeDays" example:"24"`
	ActiveUsers        int             `json:"activeUsers" example:"4"`
	AverageDailyAmount decimal.Decimal `json:"averageDailyAmount" example:"175"`
	DaysInMonth        int             `json:"daysInMonth" example:"31"`
}

// ComprehensiveSummary is the admin-wide per-day view of a month.
type ComprehensiveSummary struct {
	DailySummary []DaySummary        `json:"dailySummary"`
	Totals       ComprehensiveTotals `json:"totals"`
}

// ComprehensiveMonthlySummary computes the per-day summary of a month
// across all users.
func ComprehensiveMonthlySummary(db *gorm.DB, month types.Month) (ComprehensiveSummary, error) {
	entries, err := AllEntries(db)
	if err != nil {
		return ComprehensiveSummary{}, err
	}

	monthEntries := filterByPrefix(entries, month.String())
	if len(monthEntries) == 0 {
		return ComprehensiveSummary{
			DailySummary: []DaySummary{},
			Totals: ComprehensiveTotals{
				DaysInMonth: month.Days(),
			},
		}, nil
	}

	days := make(map[string]*DaySummary)
	users := make(map[uuid.UUID]struct{})
	for _, entry := range monthEntries {
		day, ok := days[entry.Date]
		if !ok {
			day = &DaySummary{Date: entry.Date}
			days[entry.Date] = day
		}

		day.TotalCash = day.TotalCash.Add(entry.CashAmount)
		day.TotalNetwork = day.TotalNetwork.Add(entry.NetworkAmount)
		day.TotalAmount = day.TotalAmount.Add(entry.CashAmount).Add(entry.NetworkAmount)
		day.TotalPurchases = day.TotalPurchases.Add(entry.PurchasesAmount)
		day.TotalAdvances = day.TotalAdvances.Add(entry.AdvanceAmount)
		day.TotalRemaining = day.TotalRemaining.Add(entry.Remaining)
		day.EntriesCount++

		users[entry.UserID] = struct{}{}
	}

	dailySummary := make([]DaySummary, 0, len(days))
	for _, day := range days {
		dailySummary = append(dailySummary, *day)
	}
	slices.SortFunc(dailySummary, func(a, b DaySummary) int {
		return strings.Compare(a.Date, b.Date)
	})

	totals := ComprehensiveTotals{
		ActiveUsers: len(users),
		DaysInMonth: month.Days(),
	}
	for _, day := range dailySummary {
		totals.TotalGross = totals.TotalGross.Add(day.TotalAmount)
		totals.TotalCash = totals.TotalCash.Add(day.TotalCash)
		totals.TotalNetwork = totals.TotalNetwork.Add(day.TotalNetwork)
		totals.TotalPurchases = totals.TotalPurchases.Add(day.TotalPurchases)
		totals.TotalAdvances = totals.TotalAdvances.Add(day.TotalAdvances)
		totals.TotalNet = totals.TotalNet.Add(day.TotalRemaining)
		totals.ActiveDays++
	}
	totals.AverageDailyAmount = averagePerDay(totals.TotalGross, totals.ActiveDays)

	return ComprehensiveSummary{
		DailySummary: dailySummary,
		Totals:       totals,
	}, nil
}

// UserMonthSummary is one user's row in the admin-wide per-user view.
type UserMonthSummary struct {
	UserID     uuid.UUID       `json:"userId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Username   string          `json:"username" example:"sara"`
	IsAdmin    bool            `json:"isAdmin" example:"false"`
	Deductions decimal.Decimal `json:"deductions" example:"500"`
	PeriodSummary
}

// UsersMonthlySummary computes one row per profile for a month, sorted
// by total amount descending.
//
// Unlike the single-user views, TotalRemaining here keeps the stored
// per-entry remainders and subtracts the user's fixed deduction.
func UsersMonthlySummary(db *gorm.DB, month types.Month) ([]UserMonthSummary, error) {
	entries, err := AllEntries(db)
	if err != nil {
		return nil, err
	}
	monthEntries := filterByPrefix(entries, month.String())

	var profiles []UserProfile
	err = db.Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]UserMonthSummary, 0, len(profiles))
	for _, profile := range profiles {
		var userEntries []DailyEntry
		for _, entry := range monthEntries {
			if entry.UserID == profile.UserID {
				userEntries = append(userEntries, entry)
			}
		}

		s := fold(userEntries)
		s.TotalRemaining = s.TotalRemaining.Sub(profile.Deductions)

		summaries = append(summaries, UserMonthSummary{
			UserID:        profile.UserID,
			Username:      profile.Username,
			IsAdmin:       profile.IsAdmin,
			Deductions:    profile.Deductions,
			PeriodSummary: s,
		})
	}

	slices.SortFunc(summaries, func(a, b UserMonthSummary) int {
		return b.TotalAmount.Cmp(a.TotalAmount)
	})

	return summaries, nil
}
