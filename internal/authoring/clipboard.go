package authoring

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Sink receives the finished fragment.
type Sink interface {
	Write(fragment string) error
}

type SystemClipboard struct{}

func (SystemClipboard) Write(fragment string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available, rerun with --stdout")
	}
	if err := clipboard.WriteAll(fragment); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Write(fragment string) error {
	_, err := fmt.Fprintln(s.W, fragment)
	return err
}
