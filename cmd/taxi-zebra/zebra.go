package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/usecase"
)

func zebraCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zebra",
		Short: "Zebra-related commands",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			e.teardown()
		},
	}
	cmd.AddCommand(
		balanceCommand(e),
		updateCommand(e),
		projectsCommand(e),
		pushCommand(e),
		aliasesCommand(e),
	)
	return cmd
}

func balanceCommand(e *env) *cobra.Command {
	var (
		pending     float64
		backendName string
	)
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show Zebra balance",
		Long:  "Show Zebra balance, like the hours balance and vacation left.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := e.app.Balance(cmd.Context(), backendName, pending)
			if err != nil {
				return err
			}
			printBalance(cmd.OutOrStdout(), b)
			return nil
		},
	}
	cmd.Flags().Float64Var(&pending, "pending", 0, "hours not pushed yet")
	cmd.Flags().StringVarP(&backendName, "backend", "b", "", "zebra backend to use (default: the first one configured)")
	return cmd
}

func printBalance(w io.Writer, b usecase.Balance) {
	fmt.Fprintf(w, "Hours balance: %s\n", usecase.SignedNumber(b.HoursBalance, 2))
	fmt.Fprintf(w, "Hours balance after push: %s\n", usecase.SignedNumber(b.BalanceAfterPush, 2))
	fmt.Fprintf(w, "Hours done this week: %.2f\n", b.WeekHours)
	fmt.Fprintf(w, "Hours done today: %.2f\n", b.TodayHours)
	fmt.Fprintf(w, "Hours to be pushed: %.2f\n", b.PendingHours)
	fmt.Fprintf(w, "Vacation left: %d days, %.2f hours\n", b.VacationDays, b.VacationHours)
}

func updateCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Fetch projects and activities from every backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			counts, err := e.app.Update(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range e.app.ZebraBackendNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d projects\n", name, counts[name])
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.app.UI().Success("Projects database updated"))
			return nil
		},
	}
}

func projectsCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "projects [search]",
		Short: "List stored projects and their activities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var search string
			if len(args) == 1 {
				search = args[0]
			}
			projects, err := e.app.Projects(cmd.Context(), search)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found, run `taxi-zebra zebra update` first.")
				return nil
			}
			printProjects(cmd.OutOrStdout(), projects)
			return nil
		},
	}
}

func printProjects(w io.Writer, projects []domain.Project) {
	for _, p := range projects {
		fmt.Fprintf(w, "%s %d %s\n", p.Backend, p.ID, p.Name)
		for _, a := range p.Activities {
			line := fmt.Sprintf("  %d/%d %s", p.ID, a.ID, a.Name)
			if a.Alias != "" {
				line += " (" + a.Alias + ")"
			}
			fmt.Fprintln(w, line)
		}
	}
}

func pushCommand(e *env) *cobra.Command {
	var (
		alias       string
		duration    float64
		date        string
		description string
	)
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push a single entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDate(date, time.Now())
			if err != nil {
				return err
			}
			info, err := e.app.Push(cmd.Context(), day, domain.TimeEntry{
				Alias:       alias,
				Duration:    duration,
				Description: description,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, e.app.UI().Success(fmt.Sprintf("Pushed %s %s on %s",
				alias, strconv.FormatFloat(duration, 'f', -1, 64), day.Format("2006-01-02"))))
			if info != "" {
				fmt.Fprintln(out, info)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&alias, "alias", "a", "", "alias of the activity")
	cmd.Flags().Float64VarP(&duration, "duration", "d", 0, "duration in hours")
	cmd.Flags().StringVar(&date, "date", "", "date of the entry, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&description, "description", "m", "", "description of the entry")
	_ = cmd.MarkFlagRequired("alias")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

// parseDate parses a YYYY-MM-DD date in the local time zone.
// If empty, defaultVal is returned.
func parseDate(val string, defaultVal time.Time) (time.Time, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseInLocation("2006-01-02", val, time.Local)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q, expected YYYY-MM-DD", val)
	}
	return d, nil
}

func aliasesCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "List aliases and what they map to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, a := range e.app.Aliases() {
				line := fmt.Sprintf("%s -> %s", a.Name, a.Mapping)
				if a.Mapping.Backend != "" {
					line += " (" + a.Mapping.Backend + ")"
				}
				if a.Derived {
					line += " [zebra]"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
