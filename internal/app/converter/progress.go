package converter

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"deepgram-transcriber/internal/app/model"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

// Spinner marks a single blocking step of unknown length
type Spinner struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		// mpb disables refresh for writers that are not a terminal
		mpb.WithAutoRefresh(),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

func (pm *ProgressManager) CreateSpinner(description string) *Spinner {
	if !pm.enabled || pm.container == nil {
		return &Spinner{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.New(0,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncWidth),
			decor.OnAbort(decor.OnComplete(decor.Name(""), " ✓"), " ✗"),
		),
	)

	return &Spinner{
		bar:     bar,
		enabled: true,
	}
}

// Done completes the spinner
func (s *Spinner) Done() {
	if s.enabled && s.bar != nil {
		s.bar.SetTotal(-1, true)
	}
}

// Fail aborts the spinner but leaves its line on screen
func (s *Spinner) Fail() {
	if s.enabled && s.bar != nil {
		s.bar.Abort(false)
	}
}

func (pm *ProgressManager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func (pm *ProgressManager) Shutdown() {
	if pm.enabled && pm.container != nil {
		pm.container.Shutdown()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}

// ProgressAwareConverter shows a spinner while waiting on the provider.
// ConvertWithProgress waits for the progress container, so each instance
// serves a single call.
type ProgressAwareConverter struct {
	*Converter
	progressManager *ProgressManager
}

func NewProgressAwareConverter(converter *Converter, config ProgressConfig) *ProgressAwareConverter {
	return &ProgressAwareConverter{
		Converter:       converter,
		progressManager: NewProgressManager(config),
	}
}

func (pac *ProgressAwareConverter) ConvertWithProgress(ctx context.Context, src Source) (*model.Transcription, error) {
	spinner := pac.progressManager.CreateSpinner("Transcribing " + src.FileName)

	result, err := pac.Convert(ctx, src)
	if err != nil {
		spinner.Fail()
	} else {
		spinner.Done()
	}
	pac.progressManager.Wait()

	return result, err
}
