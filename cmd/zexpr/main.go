// Command zexpr is a small demonstrator for the zexpr library: it builds a
// "weekday(s) at time-of-day" schedule from flags and prints its next
// firing instant at or after a given reference time.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kesh-oss/zexpr"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zexpr",
		Short: "Evaluate zexpr schedule expressions",
		Long: `zexpr is a boolean algebra scheduler: build a schedule out of
weekday, day-of-month, time-range, at, and every predicates combined with
AND/OR/NOT, then ask it for its next firing instant. This command's only
subcommand, next, evaluates schedules of the form Weekday(s) & At(time).`,
	}

	root.AddCommand(newNextCmd())
	return root
}

var weekdayNames = map[string]zexpr.Node{
	"mon": zexpr.Monday, "monday": zexpr.Monday,
	"tue": zexpr.Tuesday, "tuesday": zexpr.Tuesday,
	"wed": zexpr.Wednesday, "wednesday": zexpr.Wednesday,
	"thu": zexpr.Thursday, "thursday": zexpr.Thursday,
	"fri": zexpr.Friday, "friday": zexpr.Friday,
	"sat": zexpr.Saturday, "saturday": zexpr.Saturday,
	"sun": zexpr.Sunday, "sunday": zexpr.Sunday,
}

func newNextCmd() *cobra.Command {
	var (
		weekdays string
		atTime   string
		from     string
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the next firing instant of Weekday(s) & At(time)",
		RunE: func(_ *cobra.Command, _ []string) error {
			gate, err := parseWeekdays(weekdays)
			if err != nil {
				return err
			}

			tod, err := zexpr.ParseTimeOfDay(atTime)
			if err != nil {
				return fmt.Errorf("parsing --at: %w", err)
			}

			at, err := zexpr.At(tod)
			if err != nil {
				return err
			}

			root, err := zexpr.And(gate, at)
			if err != nil {
				return err
			}

			schedule, err := zexpr.New(root)
			if err != nil {
				return err
			}

			ref, err := zexpr.ParseInstant(from)
			if err != nil {
				return fmt.Errorf("parsing --from: %w", err)
			}

			next, err := schedule.Next(ref)
			if err != nil {
				return fmt.Errorf("computing next firing: %w", err)
			}

			fmt.Println(next)
			return nil
		},
	}

	cmd.Flags().StringVar(&weekdays, "weekdays", "mon,tue,wed,thu,fri,sat,sun", "comma-separated weekdays to fire on")
	cmd.Flags().StringVar(&atTime, "at", "00:00:00", "time-of-day to fire at (HH, HH:MM, or HH:MM:SS)")
	cmd.Flags().StringVar(&from, "from", "", `reference instant, "YYYY-MM-DD HH:MM:SS" (required)`)
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func parseWeekdays(raw string) (zexpr.Node, error) {
	var nodes []zexpr.Node
	for _, name := range strings.Split(raw, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		node, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		nodes = append(nodes, node)
	}
	return zexpr.Or(nodes...)
}
