package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/usecase"
)

func TestParseDate(t *testing.T) {
	def := time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local)

	d, err := parseDate("", def)
	require.NoError(t, err)
	require.Equal(t, def, d)

	d, err = parseDate("2026-10-12", def)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.Local), d)

	_, err = parseDate("12.10.2026", def)
	require.Error(t, err)
}

func TestPrintBalance(t *testing.T) {
	var buf bytes.Buffer
	printBalance(&buf, usecase.Balance{
		HoursBalance:     -2.5,
		BalanceAfterPush: 1.5,
		WeekHours:        32,
		TodayHours:       4.25,
		PendingHours:     4,
		VacationDays:     3,
		VacationHours:    4,
	})
	require.Equal(t, `Hours balance: -2.50
Hours balance after push: +1.50
Hours done this week: 32.00
Hours done today: 4.25
Hours to be pushed: 4.00
Vacation left: 3 days, 4.00 hours
`, buf.String())
}

func TestPrintProjects(t *testing.T) {
	var buf bytes.Buffer
	printProjects(&buf, []domain.Project{{
		ID:      12,
		Backend: "zebra",
		Name:    "Internal",
		Activities: []domain.Activity{
			{ID: 3, Name: "Meeting", Alias: "_meeting"},
			{ID: 4, Name: "Support"},
		},
	}})
	require.Equal(t, "zebra 12 Internal\n  12/3 Meeting (_meeting)\n  12/4 Support\n", buf.String())
}
