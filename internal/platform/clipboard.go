package platform

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard places secrets on the system clipboard and removes them again.
type Clipboard interface {
	// Set replaces the clipboard contents with text.
	Set(text string) error

	// Clear empties the clipboard if it still holds the last text passed to
	// Set. Contents copied by the user in the meantime are left alone.
	Clear() error
}

type systemClipboard struct {
	write func(string) error
	read  func() (string, error)

	mu   sync.Mutex
	last string
	set  bool
}

// NewClipboard returns a Clipboard backed by the system clipboard. When no
// clipboard utility is available every call fails with
// ErrClipboardUnsupported.
func NewClipboard() Clipboard {
	if clipboard.Unsupported {
		return unsupportedClipboard{}
	}
	return newSystemClipboard(clipboard.WriteAll, clipboard.ReadAll)
}

func newSystemClipboard(write func(string) error, read func() (string, error)) *systemClipboard {
	return &systemClipboard{write: write, read: read}
}

func (c *systemClipboard) Set(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	c.last = text
	c.set = true
	return nil
}

func (c *systemClipboard) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.set {
		return nil
	}

	current, err := c.read()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	if current != c.last {
		c.last, c.set = "", false
		return nil
	}

	if err = c.write(""); err != nil {
		return fmt.Errorf("clear clipboard: %w", err)
	}
	c.last, c.set = "", false
	return nil
}

type unsupportedClipboard struct{}

func (unsupportedClipboard) Set(string) error { return ErrClipboardUnsupported }
func (unsupportedClipboard) Clear() error     { return nil }
