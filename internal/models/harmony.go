package models

// ProgressionRequest is the body of the progression endpoints
type ProgressionRequest struct {
	Chords  []string `json:"chords" binding:"required,min=1,dive,required"`
	Key     string   `json:"key"`
	Context string   `json:"context" binding:"omitempty,oneof=tonal modal"`
}

// ChordRequest is the body of the single-chord endpoints
type ChordRequest struct {
	Chord string `json:"chord" binding:"required"`
	Key   string `json:"key"`
}

// VoiceLeadingRequest is the body of the voice-leading check
type VoiceLeadingRequest struct {
	Chords []string `json:"chords" binding:"required,min=1,dive,required"`
}

// ReharmonizationRequest is the body of the reharmonization endpoint
type ReharmonizationRequest struct {
	Chords []string `json:"chords" binding:"required,min=1,dive,required"`
	Key    string   `json:"key"`
	Style  string   `json:"style"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
