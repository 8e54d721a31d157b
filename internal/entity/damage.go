package entity

// Damage has two channels, kinetic and electromagnetic, scaled together.
type Damage struct {
	kinetic float32
	em      float32
}

// NewDamage returns a damage value.
func NewDamage(kinetic, em float32) Damage {
	return Damage{kinetic: kinetic, em: em}
}

func (d Damage) Kinetic() float32 { return d.kinetic }
func (d Damage) EM() float32      { return d.em }

// Full is the sum of both channels.
func (d Damage) Full() float32 {
	return d.kinetic + d.em
}

// Mul scales both channels by f.
func (d Damage) Mul(f float32) Damage {
	return Damage{kinetic: d.kinetic * f, em: d.em * f}
}

// Div divides both channels by f. Division by zero leaves d unchanged.
func (d Damage) Div(f float32) Damage {
	if f == 0 {
		return d
	}
	return Damage{kinetic: d.kinetic / f, em: d.em / f}
}
