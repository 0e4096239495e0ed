package notify

import (
	"errors"
	"fmt"
	"io"
)

const (
	KindDesktop = "desktop"
	KindConsole = "console"
)

type Notifier interface {
	Notify(title, link string) error
}

// Fanout delivers each notification to every notifier
type Fanout []Notifier

// PartialError reports a notification that reached some but not all notifiers
type PartialError struct {
	Delivered int
	Failed    int
	Err       error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("delivered to %d of %d notifiers: %v", e.Delivered, e.Delivered+e.Failed, e.Err)
}

func (e *PartialError) Unwrap() error {
	return e.Err
}

// Notify calls every notifier in order.
// A *PartialError is returned when at least one notifier succeeded.
func (f Fanout) Notify(title, link string) error {
	var errs []error
	for _, n := range f {
		if err := n.Notify(title, link); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	if delivered := len(f) - len(errs); delivered > 0 {
		return &PartialError{Delivered: delivered, Failed: len(errs), Err: errors.Join(errs...)}
	}
	return errors.Join(errs...)
}

// New builds a notifier from the configured kinds
func New(kinds []string, icon string, w io.Writer) (Notifier, error) {
	if len(kinds) == 0 {
		return nil, fmt.Errorf("at least one notifier is required")
	}

	var fanout Fanout
	seen := make(map[string]bool)
	for _, kind := range kinds {
		if seen[kind] {
			continue
		}
		seen[kind] = true

		switch kind {
		case KindDesktop:
			fanout = append(fanout, NewDesktop(icon))
		case KindConsole:
			fanout = append(fanout, NewConsole(w))
		default:
			return nil, fmt.Errorf("unknown notifier: %s", kind)
		}
	}

	if len(fanout) == 1 {
		return fanout[0], nil
	}
	return fanout, nil
}
