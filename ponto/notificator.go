package ponto

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
)

type Notificator interface {
	Notify(title, message string) error
}

// NewNotificator returns the platform notificator: desktop notifications on
// macOS, a no-op everywhere else.
func NewNotificator() Notificator {
	if runtime.GOOS == "darwin" {
		return &MacNotificator{}
	}
	return &NopNotificator{}
}

type MacNotificator struct{}

func (no *MacNotificator) Notify(title string, message string) error {
	var errOut bytes.Buffer
	cmd := exec.Command("osascript", "-e", `display notification "`+message+`" with title "ponto" subtitle "`+title+`"`)
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return fmt.Errorf(errOut.String())
	}
	return nil
}

type NopNotificator struct{}

func (no *NopNotificator) Notify(title, message string) error {
	return nil
}
