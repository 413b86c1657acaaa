package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-faster/errors"

	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/ports"
)

// HoursPerDay is the length of a working day used to express vacation.
const HoursPerDay = 8

// Balance is the user's time balance as reported by Zebra.
type Balance struct {
	HoursBalance     float64
	BalanceAfterPush float64
	WeekHours        float64
	TodayHours       float64
	PendingHours     float64
	VacationDays     int
	VacationHours    float64
}

// BalanceUseCase computes the user's balance.
type BalanceUseCase struct {
	Log   *slog.Logger
	Zebra ports.ZebraClient
	Now   func() time.Time // defaults to time.Now
}

// Run computes the balance; pending is the number of hours not pushed yet.
func (uc *BalanceUseCase) Run(ctx context.Context, pending float64) (Balance, error) {
	if uc.Zebra == nil {
		return Balance{}, errors.New("usecase not initialized: missing dependencies")
	}
	now := time.Now
	if uc.Now != nil {
		now = uc.Now
	}
	today := now()

	user, err := uc.Zebra.GetUserInfo(ctx)
	if err != nil {
		return Balance{}, err
	}
	week, err := uc.Zebra.GetTimesheets(ctx, FirstDayOfWeek(today), LastDayOfWeek(today))
	if err != nil {
		return Balance{}, err
	}
	day, err := uc.Zebra.GetTimesheets(ctx, today, today)
	if err != nil {
		return Balance{}, err
	}

	b := Balance{
		HoursBalance:     user.HoursBalance,
		BalanceAfterPush: user.HoursBalance + pending,
		WeekHours:        domain.TotalHours(week),
		TodayHours:       domain.TotalHours(day),
		PendingHours:     pending,
	}
	b.VacationDays, b.VacationHours = HoursToDays(user.Vacation.Left())

	uc.Log.Debug("computed balance",
		slog.Int("week_entries", len(week)),
		slog.Int("today_entries", len(day)),
	)
	return b, nil
}

// HoursToDays splits hours in whole working days and the hours left.
func HoursToDays(hours float64) (int, float64) {
	days := math.Floor(hours / HoursPerDay)
	return int(days), hours - days*HoursPerDay
}

// SignedNumber formats n with the given precision, prefixed with + when
// positive.
func SignedNumber(n float64, precision int) string {
	s := fmt.Sprintf("%.*f", precision, n)
	if n > 0 {
		return "+" + s
	}
	return s
}

// FirstDayOfWeek returns the Monday of the week of t.
func FirstDayOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// LastDayOfWeek returns the Sunday of the week of t.
func LastDayOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, 6-offset)
}
