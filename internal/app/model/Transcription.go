package model

import "time"

// Transcription is the outcome of one upload, successful or not
type Transcription struct {
	RequestID          string
	FileName           string
	Model              string
	Language           string
	LastConversionTime time.Time
	AudioDuration      float64
	Transcription      string
	ErrorMessage       string
	WordCount          int
	Words              []DeepgramWord
}
