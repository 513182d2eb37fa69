package symmetric

import "errors"

// ErrTooManyGoods is returned when G exceeds the configured MaxGoods and
// the caller has not raised the guard: G! permutations grow too fast to
// enumerate safely beyond a handful of goods.
var ErrTooManyGoods = errors.New("symmetric: too many goods for permutation enumeration")
