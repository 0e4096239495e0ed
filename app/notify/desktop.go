package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Desktop raises a native desktop notification with the entry title and link
type Desktop struct {
	icon string
}

func NewDesktop(icon string) *Desktop {
	return &Desktop{icon: icon}
}

func (d *Desktop) Notify(title, link string) error {
	if err := beeep.Notify(title, link, d.icon); err != nil {
		return fmt.Errorf("failed to show desktop notification: %w", err)
	}
	return nil
}
