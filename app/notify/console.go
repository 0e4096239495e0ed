package notify

import (
	"fmt"
	"io"
	"sync"
)

// Console prints " -> <link> <title>" lines
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(title, link string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.w, " -> %s %s\n", link, title); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}
	return nil
}
