package outline

// Params holds the layout heuristics. DefaultParams returns the values the
// pipeline is tuned for; callers normally only override a few of them.
type Params struct {
	LineTolerance    float64 `yaml:"line_tolerance" json:"line_tolerance"`
	ProfilePages     int     `yaml:"profile_pages" json:"profile_pages"`
	TitlePages       int     `yaml:"title_pages" json:"title_pages"`
	TitleSizeRatio   float64 `yaml:"title_size_ratio" json:"title_size_ratio"`
	MaxLineLength    int     `yaml:"max_line_length" json:"max_line_length"`
	MinLineLength    int     `yaml:"min_line_length" json:"min_line_length"`
	MaxHeadingSizes  int     `yaml:"max_heading_sizes" json:"max_heading_sizes"`
	CommonColors     int     `yaml:"common_colors" json:"common_colors"`
	HeadingScore     float64 `yaml:"heading_score" json:"heading_score"`
	BodySizeRatio    float64 `yaml:"body_size_ratio" json:"body_size_ratio"`
	IndentLimit      float64 `yaml:"indent_limit" json:"indent_limit"`
	GapRatio         float64 `yaml:"gap_ratio" json:"gap_ratio"`
	FallbackGapRatio float64 `yaml:"fallback_gap_ratio" json:"fallback_gap_ratio"`
	DefaultGap       float64 `yaml:"default_gap" json:"default_gap"`
	UpperMaxLength   int     `yaml:"upper_max_length" json:"upper_max_length"`
}

func DefaultParams() Params {
	return Params{
		LineTolerance:    3,
		ProfilePages:     5,
		TitlePages:       2,
		TitleSizeRatio:   0.95,
		MaxLineLength:    150,
		MinLineLength:    3,
		MaxHeadingSizes:  3,
		CommonColors:     5,
		HeadingScore:     4,
		BodySizeRatio:    1.05,
		IndentLimit:      80,
		GapRatio:         1.5,
		FallbackGapRatio: 2,
		DefaultGap:       5,
		UpperMaxLength:   50,
	}
}

// WithDefaults returns DefaultParams for the zero value. Otherwise it fills
// non-positive fields from DefaultParams, except MinLineLength and
// IndentLimit, where zero is a real setting and only negative values are
// replaced.
func (p Params) WithDefaults() Params {
	d := DefaultParams()
	if p == (Params{}) {
		return d
	}
	if p.LineTolerance <= 0 {
		p.LineTolerance = d.LineTolerance
	}
	if p.ProfilePages <= 0 {
		p.ProfilePages = d.ProfilePages
	}
	if p.TitlePages <= 0 {
		p.TitlePages = d.TitlePages
	}
	if p.TitleSizeRatio <= 0 {
		p.TitleSizeRatio = d.TitleSizeRatio
	}
	if p.MaxLineLength <= 0 {
		p.MaxLineLength = d.MaxLineLength
	}
	if p.MinLineLength < 0 {
		p.MinLineLength = d.MinLineLength
	}
	if p.MaxHeadingSizes <= 0 || p.MaxHeadingSizes > 3 {
		p.MaxHeadingSizes = d.MaxHeadingSizes
	}
	if p.CommonColors <= 0 {
		p.CommonColors = d.CommonColors
	}
	if p.HeadingScore <= 0 {
		p.HeadingScore = d.HeadingScore
	}
	if p.BodySizeRatio <= 0 {
		p.BodySizeRatio = d.BodySizeRatio
	}
	if p.IndentLimit < 0 {
		p.IndentLimit = d.IndentLimit
	}
	if p.GapRatio <= 0 {
		p.GapRatio = d.GapRatio
	}
	if p.FallbackGapRatio <= 0 {
		p.FallbackGapRatio = d.FallbackGapRatio
	}
	if p.DefaultGap <= 0 {
		p.DefaultGap = d.DefaultGap
	}
	if p.UpperMaxLength <= 0 {
		p.UpperMaxLength = d.UpperMaxLength
	}
	return p
}
