package entity

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/vmath"
)

// Forever is the duration of a time sheet that never ends on its own.
const Forever float32 = -1

// TimeSheet is one scripted step of a ship or vehicle: hold a speed, turn at
// a rate, optionally fire, for Duration seconds.
type TimeSheet struct {
	Duration      float32    `json:"duration"`
	Speed         float32    `json:"speed"`
	Acceleration  float32    `json:"acceleration"`  // units/s², 0 reaches Speed at once
	RotationSpeed rl.Vector3 `json:"rotationSpeed"` // deg/s
	Fire          bool       `json:"fire"`

	elapsed float32
}

// AddTimeSheet appends sheets to the queue.
func (o *Object3D) AddTimeSheet(sheets ...TimeSheet) {
	o.TimeSheets = append(o.TimeSheets, sheets...)
}

// CurrentTimeSheet returns the head of the queue.
func (o *Object3D) CurrentTimeSheet() (TimeSheet, bool) {
	if len(o.TimeSheets) == 0 {
		return TimeSheet{}, false
	}
	return o.TimeSheets[0], true
}

// runTimeSheet advances the head sheet by TimeDelta. It moves *speed toward
// the sheet speed and returns the rotation to apply and the fire flag. The
// sheet is dropped once its duration has elapsed.
func (o *Object3D) runTimeSheet(speed *float32) (rl.Vector3, bool) {
	if len(o.TimeSheets) == 0 || o.TimeDelta == 0 {
		return rl.Vector3{}, false
	}
	ts := &o.TimeSheets[0]
	dt := o.TimeDelta

	if ts.Acceleration <= 0 {
		*speed = ts.Speed
	} else {
		*speed, _ = vmath.Approach(*speed, ts.Speed, ts.Acceleration*dt)
	}
	rot := rl.Vector3Scale(ts.RotationSpeed, dt)
	fire := ts.Fire

	if ts.Duration != Forever {
		ts.elapsed += dt
		if ts.elapsed >= ts.Duration {
			o.TimeSheets = o.TimeSheets[1:]
		}
	}
	return rot, fire
}
