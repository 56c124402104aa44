package money

import (
	"math"
	"strconv"
)

type unit struct {
	size      float64
	suffix    string
	precision int
}

// Ascending; each unit is 1000 of the previous one.
var units = []unit{
	{size: 1, precision: 0},
	{size: 1e3, suffix: "K", precision: 1},
	{size: 1e6, suffix: "M", precision: 2},
	{size: 1e9, suffix: "B", precision: 2},
}

// Abbreviate renders an amount as a short dollar string: 2400000 -> "$2.40M".
// The unit is settled after rounding, so 999960 is "$1.00M" rather than "$1000.0K".
func Abbreviate(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	i := 0
	for i < len(units)-1 && amount >= units[i+1].size {
		i++
	}

	for {
		u := units[i]
		v := amount / u.size
		if u.precision == 0 {
			v = math.Round(v)
		}
		s := strconv.FormatFloat(v, 'f', u.precision, 64)
		if i < len(units)-1 {
			if rounded, err := strconv.ParseFloat(s, 64); err == nil && rounded >= 1000 {
				i++
				continue
			}
		}
		return sign + "$" + s + u.suffix
	}
}
