package export

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/tealeg/xlsx"

	"deepgram-transcriber/internal/app/model"
)

type Format string

const (
	FormatText  Format = "txt"
	FormatJSON  Format = "json"
	FormatExcel Format = "xlsx"
)

// DownloadFileName and DownloadContentType describe the plain text attachment
const (
	DownloadFileName    = "transcription.txt"
	DownloadContentType = "text/plain"
)

var formats = []Format{FormatText, FormatJSON, FormatExcel}

// DownloadDisposition is the Content-Disposition header of the plain text
// attachment
func DownloadDisposition() string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": DownloadFileName})
}

// ParseFormat accepts txt, json or xlsx (case-insensitive). Empty means txt.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	if !lo.Contains(formats, f) {
		return "", fmt.Errorf("unsupported export format %q (want one of %s)", s, strings.Join(lo.Map(formats, func(f Format, _ int) string { return string(f) }), ", "))
	}
	return f, nil
}

// Write renders t in the given format
func Write(w io.Writer, format Format, t *model.Transcription) error {
	switch format {
	case FormatText, "":
		return ToText(w, t)
	case FormatJSON:
		return ToJSON(w, t)
	case FormatExcel:
		return ToExcel(w, t)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteFile renders t into path, replacing any existing file
func WriteFile(path string, format Format, t *model.Transcription) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, format, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ToText writes the transcript exactly as shown to the user
func ToText(w io.Writer, t *model.Transcription) error {
	_, err := io.WriteString(w, t.Transcription)
	return err
}

type jsonWord struct {
	Word           string  `json:"word"`
	PunctuatedWord string  `json:"punctuated_word,omitempty"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	Confidence     float64 `json:"confidence"`
	Speaker        *int    `json:"speaker,omitempty"`
}

type jsonDocument struct {
	RequestID     string     `json:"request_id,omitempty"`
	FileName      string     `json:"file_name"`
	Model         string     `json:"model,omitempty"`
	Language      string     `json:"language,omitempty"`
	Duration      float64    `json:"duration"`
	ConvertedAt   string     `json:"converted_at"`
	Transcription string     `json:"transcription"`
	Error         string     `json:"error,omitempty"`
	Words         []jsonWord `json:"words"`
}

func ToJSON(w io.Writer, t *model.Transcription) error {
	doc := jsonDocument{
		RequestID:     t.RequestID,
		FileName:      t.FileName,
		Model:         t.Model,
		Language:      t.Language,
		Duration:      t.AudioDuration,
		ConvertedAt:   t.LastConversionTime.Format(time.RFC3339),
		Transcription: t.Transcription,
		Error:         t.ErrorMessage,
		Words: lo.Map(t.Words, func(dw model.DeepgramWord, _ int) jsonWord {
			return jsonWord{
				Word:           dw.Word,
				PunctuatedWord: dw.PunctuatedWord,
				Start:          dw.Start,
				End:            dw.End,
				Confidence:     dw.Confidence,
				Speaker:        dw.Speaker,
			}
		}),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// ToExcel writes a workbook with a Summary sheet and a Words sheet holding
// one row per recognized word
func ToExcel(w io.Writer, t *model.Transcription) error {
	file := xlsx.NewFile()

	summary, err := file.AddSheet("Summary")
	if err != nil {
		return err
	}
	addPair := func(k, v string) {
		row := summary.AddRow()
		row.AddCell().Value = k
		row.AddCell().Value = v
	}
	addPair("Request ID", t.RequestID)
	addPair("File Name", t.FileName)
	addPair("Model", t.Model)
	addPair("Language", t.Language)
	addPair("Last Conversion Time", t.LastConversionTime.Format(time.RFC3339))
	addPair("Audio Duration", fmt.Sprintf("%.2f", t.AudioDuration))
	addPair("Transcription", t.Transcription)
	addPair("Error Message", t.ErrorMessage)

	words, err := file.AddSheet("Words")
	if err != nil {
		return err
	}

	headerRow := words.AddRow()
	headerRow.AddCell().Value = "#"
	headerRow.AddCell().Value = "Word"
	headerRow.AddCell().Value = "Punctuated Word"
	headerRow.AddCell().Value = "Start"
	headerRow.AddCell().Value = "End"
	headerRow.AddCell().Value = "Confidence"
	headerRow.AddCell().Value = "Speaker"

	for i, dw := range t.Words {
		row := words.AddRow()
		row.AddCell().Value = fmt.Sprint(i + 1)
		row.AddCell().Value = dw.Word
		row.AddCell().Value = dw.PunctuatedWord
		row.AddCell().Value = fmt.Sprintf("%.2f", dw.Start)
		row.AddCell().Value = fmt.Sprintf("%.2f", dw.End)
		row.AddCell().Value = fmt.Sprintf("%.4f", dw.Confidence)
		if dw.Speaker != nil {
			row.AddCell().Value = fmt.Sprint(*dw.Speaker)
		} else {
			row.AddCell().Value = ""
		}
	}

	return file.Write(w)
}
