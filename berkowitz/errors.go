package berkowitz

import "github.com/pkg/errors"

// Sentinel errors. Returned errors wrap these with context; use errors.Is.
var (
	ErrEmptyInput         = errors.New("berkowitz: no observations")
	ErrLengthMismatch     = errors.New("berkowitz: samples and forecasts differ in length")
	ErrInvalidProbability = errors.New("berkowitz: forecast CDF value outside [0, 1]")
	ErrInvalidAlpha       = errors.New("berkowitz: alpha must lie in (0, 1)")
	ErrNormalityTest      = errors.New("berkowitz: normality test failed")
)
