package model

// DeepgramResponse is the pre-recorded transcription payload returned by
// the Deepgram /v1/listen endpoint
type DeepgramResponse struct {
	Metadata *DeepgramMetadata `json:"metadata,omitempty"`
	Results  *DeepgramResults  `json:"results,omitempty"`
}

type DeepgramMetadata struct {
	TransactionKey string                       `json:"transaction_key,omitempty"`
	RequestID      string                       `json:"request_id,omitempty"`
	SHA256         string                       `json:"sha256,omitempty"`
	Created        string                       `json:"created,omitempty"`
	Duration       float64                      `json:"duration"`
	Channels       int                          `json:"channels,omitempty"`
	Models         []string                     `json:"models,omitempty"`
	ModelInfo      map[string]DeepgramModelInfo `json:"model_info,omitempty"`
}

type DeepgramModelInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Arch    string `json:"arch"`
}

type DeepgramResults struct {
	Channels []DeepgramChannel `json:"channels"`
}

type DeepgramChannel struct {
	Alternatives     []DeepgramAlternative `json:"alternatives"`
	DetectedLanguage string                `json:"detected_language,omitempty"`
}

type DeepgramAlternative struct {
	Transcript string         `json:"transcript"`
	Confidence float64        `json:"confidence"`
	Words      []DeepgramWord `json:"words"`
}

// DeepgramWord is a single recognized word token. Speaker is only present
// when diarization was requested.
type DeepgramWord struct {
	Word              string  `json:"word"`
	Start             float64 `json:"start"`
	End               float64 `json:"end"`
	Confidence        float64 `json:"confidence"`
	PunctuatedWord    string  `json:"punctuated_word,omitempty"`
	Speaker           *int    `json:"speaker,omitempty"`
	SpeakerConfidence float64 `json:"speaker_confidence,omitempty"`
}

// FirstAlternative returns the first alternative of the first channel, if any
func (r *DeepgramResponse) FirstAlternative() (*DeepgramAlternative, bool) {
	if r == nil || r.Results == nil || len(r.Results.Channels) == 0 {
		return nil, false
	}
	alts := r.Results.Channels[0].Alternatives
	if len(alts) == 0 {
		return nil, false
	}
	return &alts[0], true
}

// Duration returns the audio duration in seconds reported by the metadata
func (r *DeepgramResponse) Duration() (float64, bool) {
	if r == nil || r.Metadata == nil {
		return 0, false
	}
	return r.Metadata.Duration, true
}
