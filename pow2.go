package flagkit

import "github.com/pkg/errors"

// MaxRoundInput is the largest input RoundUpPow2 accepts; its result is 1<<31.
const MaxRoundInput int64 = 1 << 31

var ErrInvalidSize = errors.New("size out of range")

// RoundUpPow2 returns the smallest power of two >= n.
// n must be in [1, MaxRoundInput].
func RoundUpPow2(n int64) (int64, error) {
	if n <= 0 || n > MaxRoundInput {
		return 0, errors.Wrapf(ErrInvalidSize, "round up %d", n)
	}
	// propagate the highest set bit of n-1 into every lower bit
	v := uint64(n - 1)
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return int64(v + 1), nil
}

func IsPow2(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// AdjustCacheSize rounds a cache capacity up to a power of two.
func AdjustCacheSize(size int) (int, error) {
	adjusted, err := RoundUpPow2(int64(size))
	if err != nil {
		return 0, errors.Wrap(err, "adjust cache size")
	}
	return int(adjusted), nil
}
