package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"taxi-zebra/internal/apperr"
	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/logger"
	mockports "taxi-zebra/internal/ports/mock"
	"taxi-zebra/internal/usecase"
)

func TestHoursToDays(t *testing.T) {
	days, hours := usecase.HoursToDays(20)
	require.Equal(t, 2, days)
	require.Equal(t, 4.0, hours)

	days, hours = usecase.HoursToDays(7.5)
	require.Equal(t, 0, days)
	require.Equal(t, 7.5, hours)

	days, hours = usecase.HoursToDays(-4)
	require.Equal(t, -1, days)
	require.Equal(t, 4.0, hours)
}

func TestSignedNumber(t *testing.T) {
	require.Equal(t, "+1.50", usecase.SignedNumber(1.5, 2))
	require.Equal(t, "-3.25", usecase.SignedNumber(-3.25, 2))
	require.Equal(t, "0.00", usecase.SignedNumber(0, 2))
	require.Equal(t, "+2", usecase.SignedNumber(2, 0))
}

func TestWeekBounds(t *testing.T) {
	wed := time.Date(2025, 8, 6, 15, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 8, 4, 15, 0, 0, 0, time.UTC), usecase.FirstDayOfWeek(wed))
	require.Equal(t, time.Date(2025, 8, 10, 15, 0, 0, 0, time.UTC), usecase.LastDayOfWeek(wed))

	sun := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC), usecase.FirstDayOfWeek(sun))
	require.Equal(t, sun, usecase.LastDayOfWeek(sun))
}

func TestBalanceUseCase_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	zebra := mockports.NewMockZebraClient(ctrl)
	now := time.Date(2025, 8, 6, 10, 0, 0, 0, time.UTC)

	zebra.EXPECT().GetUserInfo(gomock.Any()).Return(domain.UserInfo{
		HoursBalance: -2.5,
		Vacation:     domain.Vacation{TotalAvailable: 200, Planned: 16, Used: 160},
	}, nil)
	zebra.EXPECT().GetTimesheets(gomock.Any(), usecase.FirstDayOfWeek(now), usecase.LastDayOfWeek(now)).
		Return([]domain.Timesheet{{Time: 8}, {Time: 4.5}}, nil)
	zebra.EXPECT().GetTimesheets(gomock.Any(), now, now).Return([]domain.Timesheet{{Time: 4.5}}, nil)

	uc := &usecase.BalanceUseCase{Log: logger.Discard(), Zebra: zebra, Now: func() time.Time { return now }}
	b, err := uc.Run(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, -2.5, b.HoursBalance)
	require.Equal(t, 0.5, b.BalanceAfterPush)
	require.Equal(t, 12.5, b.WeekHours)
	require.Equal(t, 4.5, b.TodayHours)
	require.Equal(t, 3.0, b.PendingHours)
	require.Equal(t, 3, b.VacationDays)
	require.Equal(t, 0.0, b.VacationHours)
}

func TestBalanceUseCase_authError(t *testing.T) {
	ctrl := gomock.NewController(t)
	zebra := mockports.NewMockZebraClient(ctrl)
	zebra.EXPECT().GetUserInfo(gomock.Any()).Return(domain.UserInfo{}, apperr.With(apperr.ErrUnauthorized, "denied"))

	uc := &usecase.BalanceUseCase{Log: logger.Discard(), Zebra: zebra}
	_, err := uc.Run(context.Background(), 0)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}
