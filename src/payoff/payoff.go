// Package payoff holds the two-player payoff model and the strategy domain the
// best-response chart is drawn over.
//
// Both players pick a continuous strategy: player 1 picks s1, player 2 picks s2.
// The functions here are pure and total over the reals; nothing in this package
// solves for equilibria.
package payoff

// Illustrative domain bounds. They are not validated or enforced anywhere.
const (
	S1Min = 0.1
	S1Max = 3.1
	S2Min = 0.2
	S2Max = 3.2
)

// marginDivisor splits each axis span into the padding used by the guide lines.
const marginDivisor = 30

// Formulas is a one-line rendering of U1 and U2, used as a chart caption.
const Formulas = "U1 = s1 + 2s2 + s1s2 - s1^2    U2 = 3s2 + 3s1 + s1s2 - s2^2"

// ResponseFunc maps one player's strategy to the other player's response.
type ResponseFunc func(float64) float64

// U1 is player 1's payoff.
func U1(s1, s2 float64) float64 {
	return s1 + 2*s2 + s1*s2 - s1*s1
}

// U2 is player 2's payoff.
func U2(s1, s2 float64) float64 {
	return 3*s2 + 3*s1 + s1*s2 - s2*s2
}

// Domain is the rectangle in (s2, s1) space the chart covers.
// Callers are expected to keep min < max on both axes; it is not checked.
type Domain struct {
	S1Min float64 `yaml:"s1_min"`
	S1Max float64 `yaml:"s1_max"`
	S2Min float64 `yaml:"s2_min"`
	S2Max float64 `yaml:"s2_max"`
}

// DefaultDomain returns the illustrative bounds.
func DefaultDomain() Domain {
	return Domain{S1Min: S1Min, S1Max: S1Max, S2Min: S2Min, S2Max: S2Max}
}

// Eps1 is the padding applied to vertical guides along the s1 axis.
func (d Domain) Eps1() float64 { return (d.S1Max - d.S1Min) / marginDivisor }

// Eps2 is the padding applied to horizontal guides along the s2 axis.
func (d Domain) Eps2() float64 { return (d.S2Max - d.S2Min) / marginDivisor }

// Degenerate reports whether either axis has min >= max. Rendering still
// proceeds; the guides just collapse or overlap.
func (d Domain) Degenerate() bool {
	return !(d.S1Min < d.S1Max) || !(d.S2Min < d.S2Max)
}
