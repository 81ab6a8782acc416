package rank

// Params tunes section scoring and excerpt selection.
type Params struct {
	TitleWeight      float64 `yaml:"title_weight" json:"title_weight"`
	ContentWeight    float64 `yaml:"content_weight" json:"content_weight"`
	JobPhraseBonus   float64 `yaml:"job_phrase_bonus" json:"job_phrase_bonus"`
	JobPhraseMinLen  int     `yaml:"job_phrase_min_len" json:"job_phrase_min_len"`
	LevelBoost       float64 `yaml:"level_boost" json:"level_boost"`
	MinResults       int     `yaml:"min_results" json:"min_results"`
	MaxSentences     int     `yaml:"max_sentences" json:"max_sentences"`
	MinSentenceWords int     `yaml:"min_sentence_words" json:"min_sentence_words"`
}

func DefaultParams() Params {
	return Params{
		TitleWeight:      3,
		ContentWeight:    1,
		JobPhraseBonus:   2,
		JobPhraseMinLen:  5,
		LevelBoost:       1.2,
		MinResults:       5,
		MaxSentences:     3,
		MinSentenceWords: 5,
	}
}

// WithDefaults returns DefaultParams for the zero value. Otherwise it fills
// non-positive fields from DefaultParams, except ContentWeight,
// JobPhraseBonus, MinResults and MinSentenceWords: for those zero is a real
// setting and only negative values are replaced.
func (p Params) WithDefaults() Params {
	d := DefaultParams()
	if p == (Params{}) {
		return d
	}
	if p.TitleWeight <= 0 {
		p.TitleWeight = d.TitleWeight
	}
	if p.ContentWeight < 0 {
		p.ContentWeight = d.ContentWeight
	}
	if p.JobPhraseBonus < 0 {
		p.JobPhraseBonus = d.JobPhraseBonus
	}
	if p.JobPhraseMinLen <= 0 {
		p.JobPhraseMinLen = d.JobPhraseMinLen
	}
	if p.LevelBoost <= 0 {
		p.LevelBoost = d.LevelBoost
	}
	if p.MinResults < 0 {
		p.MinResults = d.MinResults
	}
	if p.MaxSentences <= 0 {
		p.MaxSentences = d.MaxSentences
	}
	if p.MinSentenceWords < 0 {
		p.MinSentenceWords = d.MinSentenceWords
	}
	return p
}
