package output

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"

	"github.com/jfmartin/renamebatch/pkg/models"
)

// ProgressFormatter shows a progress bar while files are being processed and
// delegates the final listing to the human formatter. The bar is finished
// before any listing or warning is printed, so progress output never
// interleaves with results.
type ProgressFormatter struct {
	human *HumanFormatter
	bar   *pb.ProgressBar
}

// NewProgressFormatter creates a new progress bar formatter
func NewProgressFormatter() *ProgressFormatter {
	return &ProgressFormatter{human: NewHumanFormatter(false)}
}

// Start initializes the bar and the underlying human formatter
func (f *ProgressFormatter) Start(writer io.Writer, totalFiles int) error {
	if writer == nil {
		writer = os.Stdout
	}

	if err := f.human.Start(writer, totalFiles); err != nil {
		return err
	}

	if totalFiles > 0 {
		f.bar = pb.New(totalFiles)
		f.bar.SetTemplate(pb.Simple)
		f.bar.SetWriter(writer)
		f.bar.Start()
	}

	return nil
}

// FileProcessed advances the bar
func (f *ProgressFormatter) FileProcessed(index int, relativePath string) error {
	if f.bar != nil {
		f.bar.Increment()
	}
	return nil
}

// Complete finishes the bar, then prints the listing and warnings
func (f *ProgressFormatter) Complete(report *models.Report) error {
	f.finishBar()
	return f.human.Complete(report)
}

// Error finishes the bar, then reports the error
func (f *ProgressFormatter) Error(err error) error {
	f.finishBar()
	return f.human.Error(err)
}

func (f *ProgressFormatter) finishBar() {
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
