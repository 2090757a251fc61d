package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// ClipboardManager defines the interface for clipboard operations.
type ClipboardManager interface {
	SetContent(content string) error
}

// SystemClipboardManager implements ClipboardManager using the OS clipboard.
type SystemClipboardManager struct{}

// NewSystemClipboardManager creates a new SystemClipboardManager.
func NewSystemClipboardManager() *SystemClipboardManager {
	return &SystemClipboardManager{}
}

// SetContent sets the clipboard content.
func (c *SystemClipboardManager) SetContent(content string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available")
	}
	return clipboard.WriteAll(content)
}
