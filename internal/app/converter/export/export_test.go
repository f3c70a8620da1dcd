package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"deepgram-transcriber/internal/app/model"
)

func sampleTranscription() *model.Transcription {
	speaker := 1
	return &model.Transcription{
		RequestID:          "req-1",
		FileName:           "greeting.wav",
		Model:              "nova-2",
		Language:           "hi",
		LastConversionTime: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		AudioDuration:      2.5,
		Transcription:      "नमस्ते आप",
		Words: []model.DeepgramWord{
			{Word: "नमस्ते", PunctuatedWord: "नमस्ते,", Start: 0.08, End: 0.56, Confidence: 0.98, Speaker: &speaker},
			{Word: "आप", Start: 0.64, End: 0.88, Confidence: 0.99},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "txt", want: FormatText},
		{in: "JSON", want: FormatJSON},
		{in: ".xlsx", want: FormatExcel},
		{in: "srt", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, sampleTranscription()))
	assert.Equal(t, "नमस्ते आप", buf.String())
}

func TestToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleTranscription()))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "req-1", doc["request_id"])
	assert.Equal(t, "नमस्ते आप", doc["transcription"])
	assert.Equal(t, "2024-05-01T10:00:00Z", doc["converted_at"])
	assert.NotContains(t, doc, "error")

	words := doc["words"].([]interface{})
	require.Len(t, words, 2)
	first := words[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["speaker"])
	assert.NotContains(t, words[1].(map[string]interface{}), "speaker")
}

func TestToExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatExcel, sampleTranscription()))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	words, ok := file.Sheet["Words"]
	require.True(t, ok)
	require.Len(t, words.Rows, 3)
	assert.Equal(t, "Word", words.Rows[0].Cells[1].Value)
	assert.Equal(t, "नमस्ते", words.Rows[1].Cells[1].Value)
	assert.Equal(t, "1", words.Rows[1].Cells[6].Value)
	assert.Equal(t, "आप", words.Rows[2].Cells[1].Value)

	summary, ok := file.Sheet["Summary"]
	require.True(t, ok)
	assert.Equal(t, "Request ID", summary.Rows[0].Cells[0].Value)
	assert.Equal(t, "req-1", summary.Rows[0].Cells[1].Value)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteFile(path, FormatText, sampleTranscription()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "नमस्ते आप", string(data))
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("srt"), sampleTranscription())
	assert.Error(t, err)
}

func TestDownloadDisposition(t *testing.T) {
	assert.Equal(t, "attachment; filename=transcription.txt", DownloadDisposition())
}
