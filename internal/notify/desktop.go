// Package notify sends desktop notifications for task reminders.
package notify

import "github.com/gen2brain/beeep"

// Desktop posts OS notifications via beeep.
type Desktop struct {
	AppName string
}

func NewDesktop() *Desktop {
	return &Desktop{AppName: "prodomo"}
}

func (d *Desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Silent discards notifications; used when the notifications setting is off
// and in tests.
type Silent struct{}

func (Silent) Notify(string, string) error { return nil }
