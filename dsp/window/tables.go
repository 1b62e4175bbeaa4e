package window

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name                string
	ENBW                float64
	HighestSidelobe     float64
	CoherentGain        float64
	CoherentGainSquared float64
}

// Cosine-sum coefficients evaluated as sum(c[k] * cos(k * 2*pi*x)).
var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular: {
		Name:                "Rectangular",
		ENBW:                1.0,
		HighestSidelobe:     -13.3,
		CoherentGain:        1.0,
		CoherentGainSquared: 1.0,
	},
	TypeHann: {
		Name:                "Hann",
		ENBW:                1.5,
		HighestSidelobe:     -31.5,
		CoherentGain:        0.5,
		CoherentGainSquared: 0.25,
	},
	TypeHamming: {
		Name:                "Hamming",
		ENBW:                1.3628,
		HighestSidelobe:     -42.7,
		CoherentGain:        0.54,
		CoherentGainSquared: 0.2916,
	},
	TypeBlackman: {
		Name:                "Blackman",
		ENBW:                1.7268,
		HighestSidelobe:     -58.1,
		CoherentGain:        0.42,
		CoherentGainSquared: 0.1764,
	},
	TypeBlackmanHarris4Term: {
		Name:                "Blackman-Harris 4-term",
		ENBW:                2.0044,
		HighestSidelobe:     -92.0,
		CoherentGain:        0.35875,
		CoherentGainSquared: 0.1287,
	},
	TypeKaiser: {
		Name: "Kaiser",
	},
	TypeFreeCosine: {
		Name: "Free cosine",
	},
}
