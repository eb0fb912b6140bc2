package domain

import (
	"fmt"
	"math"
)

type Side int

const (
	SideYes Side = iota
	SideNo
)

// Pool is one currency's two-sided stake. Percentages always sum to 100;
// an empty pool reads 50/50.
type Pool struct {
	Yes        float64
	No         float64
	Total      float64
	YesPercent int
	NoPercent  int
}

// NewPool builds a pool from raw sub-totals. A missing total (<= 0) is
// derived from yes+no, a missing side is derived from total minus the other.
func NewPool(yes, no, total float64) Pool {
	yes = nonNegative(yes)
	no = nonNegative(no)
	total = nonNegative(total)
	if total == 0 {
		total = yes + no
	}
	if no == 0 && total > yes {
		no = total - yes
	} else if yes == 0 && total > no {
		yes = total - no
	}
	yp := Percent(yes, total)
	return Pool{
		Yes:        yes,
		No:         no,
		Total:      total,
		YesPercent: yp,
		NoPercent:  100 - yp,
	}
}

// Percent returns round(100*side/total) clamped to [0,100], or 50 when the
// total is zero.
func Percent(side, total float64) int {
	if total <= 0 {
		return 50
	}
	p := int(math.Round(side * 100 / total))
	return min(max(p, 0), 100)
}

// Percent returns the share of the given side.
func (p Pool) Percent(side Side) int {
	if side == SideNo {
		return p.NoPercent
	}
	return p.YesPercent
}

// Multiplier returns the payout multiplier for the given side.
func (p Pool) Multiplier(side Side) float64 {
	return Multiplier(p.Percent(side))
}

// MultiplierLabel returns the multiplier formatted for display, e.g. "2.0x".
func (p Pool) MultiplierLabel(side Side) string {
	return FormatMultiplier(p.Multiplier(side))
}

// Multiplier returns 100/percent rounded to one decimal, or 1.0 for a side
// with no share.
func Multiplier(percent int) float64 {
	if percent <= 0 {
		return 1.0
	}
	return math.Round(1000/float64(percent)) / 10
}

func FormatMultiplier(m float64) string {
	return fmt.Sprintf("%.1fx", m)
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
