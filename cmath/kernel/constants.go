package kernel

// =============================================================================
// Mathematical constants
// =============================================================================

const (
	Pi     = 3.141592653589793
	Tau    = 6.283185307179586
	HalfPi = 1.5707963267948966
	E      = 2.718281828459045
	Phi    = 1.618033988749895
	Ln2    = 0.6931471805599453
	Ln10   = 2.302585092994046
)

// =============================================================================
// Tolerances and limits
// =============================================================================

const (
	// SnapTolerance is the distance under which a table lookup returns the
	// sample at the node instead of interpolating.
	SnapTolerance = 1e-4

	// ShortCircuitTolerance is the distance under which Exp and Ln return the
	// exact value of a well-known point.
	ShortCircuitTolerance = 1e-5

	// InfThreshold is the magnitude above which Tan reports a signed infinity.
	InfThreshold = 1e4

	// TangentSentinel is the clamped tangent sample at ±π/2.
	TangentSentinel = 1e16

	// MaxNewtonIterations caps every Newton-Raphson loop.
	MaxNewtonIterations = 100

	// NewtonTolerance is the relative residual |e^n - v| / |v| at which a
	// root estimate is accepted.
	NewtonTolerance = 1e-12

	// RootTolerance is the absolute residual accepted when Newton stalls at
	// float64 resolution before reaching NewtonTolerance.
	RootTolerance = 1e-4

	// RootDecimals is the number of decimal places root results are rounded to.
	RootDecimals = 7

	// intTolerance bounds |x - round(x)| for IsInt.
	intTolerance = 1e-8
)

// Exp constants
var (
	expOverflow_f64  float64 = 709.782712893384
	expUnderflow_f64 float64 = -708.3964185322641

	// Taylor coefficients for e^a on [0, ln2): 1/k!
	expC1_f64 float64 = 1.0
	expC2_f64 float64 = 0.5
	expC3_f64 float64 = 0.16666666666666666
	expC4_f64 float64 = 0.041666666666666664
	expC5_f64 float64 = 0.008333333333333333
	expC6_f64 float64 = 0.001388888888888889
	expC7_f64 float64 = 0.0001984126984126984
)

// Ln constants
var (
	// ln(m) = 2*atanh((m-1)/(m+1)) = 2*y*(1 + y²/3 + y⁴/5 + ... + y¹²/13)
	logC1_f64 float64 = 1.0
	logC2_f64 float64 = 1.0 / 3
	logC3_f64 float64 = 1.0 / 5
	logC4_f64 float64 = 1.0 / 7
	logC5_f64 float64 = 1.0 / 9
	logC6_f64 float64 = 1.0 / 11
	logC7_f64 float64 = 1.0 / 13

	// Reduction window for the mantissa.
	logUpper_f64 float64 = 1.33
	logLower_f64 float64 = 0.665
)

// Atan constants
var (
	atanTanPiOver8_f64 float64 = 0.4142135623730950488 // tan(π/8) = sqrt(2) - 1
	atanPiOver4_f64    float64 = 0.7853981633974483

	// Odd Taylor coefficients of atan(t) = t*(1 + c1 t² + c2 t⁴ + ...)
	atanC1_f64  float64 = -1.0 / 3
	atanC2_f64  float64 = 1.0 / 5
	atanC3_f64  float64 = -1.0 / 7
	atanC4_f64  float64 = 1.0 / 9
	atanC5_f64  float64 = -1.0 / 11
	atanC6_f64  float64 = 1.0 / 13
	atanC7_f64  float64 = -1.0 / 15
	atanC8_f64  float64 = 1.0 / 17
	atanC9_f64  float64 = -1.0 / 19
	atanC10_f64 float64 = 1.0 / 21
	atanC11_f64 float64 = -1.0 / 23

	// Fast approximation: atan(x) ≈ x*(π/4 + 0.273*(1-x)) on [0, 1].
	atanFastK_f64 float64 = 0.273
)

// Tanh constants
var (
	tanhClamp_f64 float64 = 19.0
)

// Sinh series constants: sinh(x) = x + x³/3! + x⁵/5! + x⁷/7! + x⁹/9!,
// used for |x| < sinhSeriesBound_f64 where e^x - e^-x cancels.
var (
	sinhSeriesBound_f64 float64 = 0.5
	sinhC3_f64          float64 = 1.0 / 6
	sinhC5_f64          float64 = 1.0 / 120
	sinhC7_f64          float64 = 1.0 / 5040
	sinhC9_f64          float64 = 1.0 / 362880
)
