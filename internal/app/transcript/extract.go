// Package transcript turns a serialized Deepgram response into flat text.
package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Kind classifies why extraction failed
type Kind string

const (
	KindEmptyResponse    Kind = "empty_response"
	KindInvalidJSON      Kind = "invalid_json"
	KindInvalidStructure Kind = "invalid_structure"
)

const (
	MsgEmptyResponse    = "Error: Empty response from Deepgram API."
	MsgInvalidJSON      = "Error: Invalid JSON response. Raw response: %s"
	MsgInvalidStructure = "Error: Invalid JSON structure in API response."
)

// ExtractError reports a response that could not be turned into a transcript
type ExtractError struct {
	Kind    Kind
	Message string
	Raw     string
}

func (e *ExtractError) Error() string {
	return e.Message
}

// AsExtractError unwraps err into an *ExtractError if it holds one
func AsExtractError(err error) (*ExtractError, bool) {
	var eErr *ExtractError
	if errors.As(err, &eErr) {
		return eErr, true
	}
	return nil, false
}

// responseView is the slice of the response extraction depends on. Pointer
// and nil-able fields let a missing key be told apart from an empty one.
type responseView struct {
	Results *struct {
		Channels []struct {
			Alternatives []struct {
				Words []wordToken `json:"words"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

type wordToken struct {
	Word *string `json:"word"`
}

// Extract joins the word tokens of the first alternative of the first
// channel with single spaces. The input is never modified.
func Extract(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", &ExtractError{Kind: KindEmptyResponse, Message: MsgEmptyResponse}
	}

	data := []byte(raw)
	if !json.Valid(data) {
		return "", &ExtractError{
			Kind:    KindInvalidJSON,
			Message: fmt.Sprintf(MsgInvalidJSON, raw),
			Raw:     raw,
		}
	}

	var view responseView
	if err := json.Unmarshal(data, &view); err != nil {
		// Valid JSON of the wrong shape, e.g. an array or a string
		return "", invalidStructure(raw)
	}

	words, ok := view.firstWords()
	if !ok {
		return "", invalidStructure(raw)
	}

	if lo.SomeBy(words, func(w wordToken) bool { return w.Word == nil }) {
		return "", invalidStructure(raw)
	}

	tokens := lo.Map(words, func(w wordToken, _ int) string { return *w.Word })
	return strings.TrimSpace(strings.Join(tokens, " ")), nil
}

// ExtractText returns the transcript, or the error message when extraction
// fails, for callers that only display text
func ExtractText(raw string) string {
	text, err := Extract(raw)
	if err != nil {
		return err.Error()
	}
	return text
}

// WordCount reports how many tokens the transcript was built from
func WordCount(raw string) (int, error) {
	var view responseView
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		return 0, invalidStructure(raw)
	}
	words, ok := view.firstWords()
	if !ok {
		return 0, invalidStructure(raw)
	}
	return len(words), nil
}

func (v *responseView) firstWords() ([]wordToken, bool) {
	if v.Results == nil || len(v.Results.Channels) == 0 {
		return nil, false
	}
	alts := v.Results.Channels[0].Alternatives
	if len(alts) == 0 || alts[0].Words == nil {
		return nil, false
	}
	return alts[0].Words, true
}

func invalidStructure(raw string) *ExtractError {
	return &ExtractError{Kind: KindInvalidStructure, Message: MsgInvalidStructure, Raw: raw}
}
