// Package fixtures holds canned provider payloads shared by tests.
package fixtures

// SampleDeepgramResponse is a trimmed pre-recorded response for a short Hindi
// clip with diarization enabled.
const SampleDeepgramResponse = `{
  "metadata": {
    "transaction_key": "deprecated",
    "request_id": "sample-request-id",
    "sha256": "5324da68ede209a16ac69a38e8cd29cee4d754434a041166cda3a1f5e0b24566",
    "created": "2024-05-01T10:00:00.000Z",
    "duration": 2.5,
    "channels": 1,
    "models": ["30089e05-99d1-4376-b32e-c263170674af"],
    "model_info": {
      "30089e05-99d1-4376-b32e-c263170674af": {
        "name": "2-general-nova",
        "version": "2024-01-09.29447",
        "arch": "nova-2"
      }
    }
  },
  "results": {
    "channels": [
      {
        "alternatives": [
          {
            "transcript": "नमस्ते, आप कैसे हैं?",
            "confidence": 0.97,
            "words": [
              {"word": "नमस्ते", "start": 0.08, "end": 0.56, "confidence": 0.98, "speaker": 0, "speaker_confidence": 0.91, "punctuated_word": "नमस्ते,"},
              {"word": "आप", "start": 0.64, "end": 0.88, "confidence": 0.99, "speaker": 0, "speaker_confidence": 0.91, "punctuated_word": "आप"},
              {"word": "कैसे", "start": 0.88, "end": 1.28, "confidence": 0.97, "speaker": 0, "speaker_confidence": 0.9, "punctuated_word": "कैसे"},
              {"word": "हैं", "start": 1.28, "end": 1.76, "confidence": 0.95, "speaker": 0, "speaker_confidence": 0.9, "punctuated_word": "हैं?"}
            ]
          }
        ]
      }
    ]
  }
}`

// SampleTranscript is the flat text SampleDeepgramResponse extracts to.
const SampleTranscript = "नमस्ते आप कैसे हैं"

// SampleErrorResponse is the envelope Deepgram returns on a rejected request.
const SampleErrorResponse = `{"err_code":"INVALID_AUTH","err_msg":"Invalid credentials.","request_id":"sample-error-id"}`
