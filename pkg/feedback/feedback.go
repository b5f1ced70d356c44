// Package feedback relays selection/success/error signals to the kiosk
// hardware (haptics, sounds). Purely observational: emitters never affect
// control flow and their calls are fire-and-forget.
package feedback

import "log"

type Emitter interface {
	Selection()
	Success()
	Error()
	Warning()
}

// LogEmitter writes feedback events to the standard logger. The real kiosk
// front-end maps these to haptic pulses.
type LogEmitter struct{}

func (LogEmitter) Selection() { log.Println("feedback: selection") }
func (LogEmitter) Success()   { log.Println("feedback: success") }
func (LogEmitter) Error()     { log.Println("feedback: error") }
func (LogEmitter) Warning()   { log.Println("feedback: warning") }

// NopEmitter discards every signal.
type NopEmitter struct{}

func (NopEmitter) Selection() {}
func (NopEmitter) Success()   {}
func (NopEmitter) Error()     {}
func (NopEmitter) Warning()   {}
