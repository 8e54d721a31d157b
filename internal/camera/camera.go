// Package camera is the free-flight spectator camera of the sandbox.
package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is one frame of camera controls.
type Input struct {
	Forward, Back, Left, Right, Up, Down bool

	Look  rl.Vector2 // mouse delta, pixels
	Boost bool
}

// ReadInput samples the keyboard and mouse. Look is only read while the right
// mouse button is held so the control panel stays clickable.
func ReadInput() Input {
	in := Input{
		Forward: rl.IsKeyDown(rl.KeyW),
		Back:    rl.IsKeyDown(rl.KeyS),
		Left:    rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyD),
		Up:      rl.IsKeyDown(rl.KeyE),
		Down:    rl.IsKeyDown(rl.KeyQ),
		Boost:   rl.IsKeyDown(rl.KeyLeftShift),
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		in.Look = rl.GetMouseDelta()
	}
	return in
}

type FlyCamera struct {
	Position  rl.Vector3
	Yaw       float32 // degrees, 90 looks down +Z
	Pitch     float32
	MoveSpeed float32 // units per second
	LookSpeed float32 // degrees per pixel
	Fovy      float32
}

func New(pos rl.Vector3) *FlyCamera {
	return &FlyCamera{
		Position:  pos,
		Yaw:       90,
		Pitch:     -15,
		MoveSpeed: 30,
		LookSpeed: 0.15,
		Fovy:      60,
	}
}

func (c *FlyCamera) Update(in Input, deltaTime float32) {
	c.Yaw += in.Look.X * c.LookSpeed
	c.Pitch -= in.Look.Y * c.LookSpeed
	c.Pitch = min(max(c.Pitch, -89), 89)

	forward, right := c.getDirections()

	var moveDir rl.Vector3
	if in.Forward {
		moveDir = rl.Vector3Add(moveDir, forward)
	}
	if in.Back {
		moveDir = rl.Vector3Subtract(moveDir, forward)
	}
	if in.Right {
		moveDir = rl.Vector3Add(moveDir, right)
	}
	if in.Left {
		moveDir = rl.Vector3Subtract(moveDir, right)
	}
	if in.Up {
		moveDir.Y++
	}
	if in.Down {
		moveDir.Y--
	}

	// Normalize diagonal movement so you don't go faster diagonally
	if rl.Vector3Length(moveDir) == 0 {
		return
	}
	speed := c.MoveSpeed
	if in.Boost {
		speed *= 4
	}
	step := rl.Vector3Scale(rl.Vector3Normalize(moveDir), speed*deltaTime)
	c.Position = rl.Vector3Add(c.Position, step)
}

// getDirections returns the look direction and its right-hand side, both
// in the horizontal plane.
func (c *FlyCamera) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Z: float32(math.Cos(yawRad)),
	}
	return
}

func (c *FlyCamera) GetRaylibCamera() rl.Camera3D {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	target := rl.Vector3{
		X: c.Position.X + float32(math.Cos(yawRad)*math.Cos(pitchRad)),
		Y: c.Position.Y + float32(math.Sin(pitchRad)),
		Z: c.Position.Z + float32(math.Sin(yawRad)*math.Cos(pitchRad)),
	}

	return rl.Camera3D{
		Position:   c.Position,
		Target:     target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
