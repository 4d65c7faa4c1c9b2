package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/calendar"
)

// MonthOptions moves the displayed month.
type MonthOptions struct {
	Prev  bool
	Next  bool
	Shift int
	Year  int
	Month int
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().BoolVar(&o.Prev, "prev", false, "Show the previous month.")
	cmd.Flags().BoolVar(&o.Next, "next", false, "Show the next month.")
	cmd.Flags().IntVar(&o.Shift, "shift", 0, "Move the view by this many months, negative goes back.")
	cmd.Flags().IntVar(&o.Year, "year", 0, "Jump to this year, used together with --month.")
	cmd.Flags().IntVar(&o.Month, "month", 0, "Jump to this month, 1 to 12.")
}

// Delta is the relative move requested by --prev, --next and --shift.
func (o *MonthOptions) Delta() int {
	d := o.Shift
	if o.Prev {
		d--
	}
	if o.Next {
		d++
	}
	return d
}

// Jump returns the absolute view requested by --year and --month. Missing
// parts come from current.
func (o *MonthOptions) Jump(current calendar.View) (calendar.View, bool, error) {
	if o.Year == 0 && o.Month == 0 {
		return current, false, nil
	}
	v := current
	if o.Year != 0 {
		if o.Year < 0 {
			return current, false, errors.New("--year must be positive")
		}
		v.Year = o.Year
	}
	if o.Month != 0 {
		if o.Month < 1 || o.Month > 12 {
			return current, false, errors.New("--month must be between 1 and 12")
		}
		v.Month = o.Month - 1
	}
	return v, true, nil
}
