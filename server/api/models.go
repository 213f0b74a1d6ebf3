package api

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type TranscriptionResponse struct {
	Transcription string  `json:"transcription"`
	Language      *string `json:"language"`
}

type SpeechRequest struct {
	Text string `json:"text"`

	Language string `json:"language,omitempty"`
	Speaker  string `json:"speaker,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
