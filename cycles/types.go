package cycles

// ResidualCost reports the cost of removing edge idx under whatever
// accounting the calling index solver uses (plain edge weight for
// Houtman-Maks and Swaps, w^α for NMCI, the weight above the vertex's
// current removal threshold for Varian/InvVarian). CriticalDFS always
// removes the edge on the closing cycle with the smallest residual cost.
type ResidualCost func(idx int32) float64
