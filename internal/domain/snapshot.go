package domain

// TrendDirection classifies the prevailing price direction.
type TrendDirection string

const (
	TrendUp       TrendDirection = "uptrend"
	TrendDown     TrendDirection = "downtrend"
	TrendSideways TrendDirection = "sideways"
)

// TrendStrength grades how pronounced the trend is.
type TrendStrength string

const (
	TrendStrong   TrendStrength = "strong"
	TrendModerate TrendStrength = "moderate"
	TrendWeak     TrendStrength = "weak"
)

// EMAStack classifies the ordering of the 9/21/50 EMAs.
type EMAStack string

const (
	StackBullish EMAStack = "bullish"
	StackBearish EMAStack = "bearish"
	StackMixed   EMAStack = "mixed"
)

// MomentumDirection classifies short-term price momentum.
type MomentumDirection string

const (
	MomentumBullish MomentumDirection = "bullish"
	MomentumBearish MomentumDirection = "bearish"
	MomentumNeutral MomentumDirection = "neutral"
)

// Acceleration classifies whether momentum is speeding up or slowing down.
type Acceleration string

const (
	Accelerating Acceleration = "accelerating"
	Decelerating Acceleration = "decelerating"
	Stable       Acceleration = "stable"
)

// VolumeProfile grades recent volume against the window average.
type VolumeProfile string

const (
	VolumeHigh         VolumeProfile = "high"
	VolumeAboveAverage VolumeProfile = "above-average"
	VolumeAverage      VolumeProfile = "average"
	VolumeBelowAverage VolumeProfile = "below-average"
	VolumeLow          VolumeProfile = "low"
)

// VolumeTrend classifies the drift of volume across the window.
type VolumeTrend string

const (
	VolumeIncreasing VolumeTrend = "increasing"
	VolumeDecreasing VolumeTrend = "decreasing"
	VolumeNeutral    VolumeTrend = "neutral"
)

// BandPosition locates the current close within the Bollinger bands.
type BandPosition string

const (
	BandUpper  BandPosition = "upper"
	BandMiddle BandPosition = "middle"
	BandLower  BandPosition = "lower"
)

// LevelStrength grades a support/resistance level by confluence.
type LevelStrength string

const (
	LevelStrong   LevelStrength = "strong"
	LevelModerate LevelStrength = "moderate"
	LevelWeak     LevelStrength = "weak"
)

// LevelType identifies how a support/resistance level was derived.
type LevelType string

const (
	LevelSwingLow  LevelType = "swing-low"
	LevelSwingHigh LevelType = "swing-high"
	LevelVWAP      LevelType = "vwap"
)

// MACDResult holds the MACD line, its signal line, and their difference.
type MACDResult struct {
	Value     float64 // EMA12 - EMA26 of closes
	Signal    float64 // EMA9 of the MACD value series
	Histogram float64 // Value - Signal
}

// BollingerBands holds the band levels and derived position metrics.
type BollingerBands struct {
	Upper    float64
	Middle   float64
	Lower    float64
	Width    float64 // (Upper-Lower)/Middle * 100
	Position BandPosition
}

// VolumeAnalysis classifies recent volume behaviour.
type VolumeAnalysis struct {
	Profile  VolumeProfile
	Trend    VolumeTrend
	Strength float64 // Score in [10,90]
	Ratio    float64 // avg(last 5) / avg(all)
}

// Momentum classifies short-term price momentum.
type Momentum struct {
	Direction    MomentumDirection
	Strength     float64 // Score in [10,90]
	Acceleration Acceleration
	ROC          float64 // Percent change between the last two 5-bar averages
}

// TrendAnalysis classifies the prevailing trend and the EMA structure.
type TrendAnalysis struct {
	Direction TrendDirection
	Strength  TrendStrength
	EMA20     float64
	EMA50     float64
	EMAStack  EMAStack
}

// PriceLevel is a detected support or resistance level.
type PriceLevel struct {
	Price    float64
	Strength LevelStrength
	Type     LevelType
}

// IndicatorSnapshot is the fully-populated result of analysing one bar
// window plus the current quote. Every field is always set; callers never
// need to guard against missing sub-indicators.
type IndicatorSnapshot struct {
	Symbol           string
	Interval         string
	Price            float64 // Quote last price used for the computation
	VWAP             float64
	RSI              float64 // [0,100]
	MACD             MACDResult
	StochRSI         float64 // [0,100], 50 when insufficient data
	ATR              float64 // >= 0, 0 below 15 bars
	MFI              float64 // [0,100]
	Bollinger        BollingerBands
	VolumeAnalysis   VolumeAnalysis
	Momentum         Momentum
	Trend            TrendAnalysis
	SupportLevels    []PriceLevel // At most 3, strongest first
	ResistanceLevels []PriceLevel // At most 3, strongest first
	Strength         float64      // Composite score in [10,90]
}
