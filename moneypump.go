package garp

import (
	"fmt"

	"github.com/revealedpref/garp/graphbuild"
	"github.com/revealedpref/garp/matrix"
	"github.com/revealedpref/garp/moneypump"
)

// MoneyPumpIndex computes the money-pump statistics over every elementary
// strict cycle of the revealed-preference graph built from P,Q (spec §4.8,
// §6's money_pump_index). It can be exponential in T and is advertised as
// such by package moneypump.
func MoneyPumpIndex(P, Q *matrix.Dense) (*moneypump.Stats, error) {
	g, err := graphbuild.Build(P, Q)
	if err != nil {
		return nil, fmt.Errorf("garp: %w", err)
	}

	return moneypump.Compute(g), nil
}
