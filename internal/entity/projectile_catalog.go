package entity

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ProjectileSpec is one catalog entry.
type ProjectileSpec struct {
	Name     string
	Type     ProjectileType
	Behavior Behavior
	Damage   Damage

	SpeedStart, SpeedEnd float32
	Lifetime             float32 // Unlimited for mines
	Radius               float32 // used when Geometry is empty
	BeamLength           float32 // reach of a beam along its orientation
	Geometry             Geometry
	Armor                float32 // > 0 lets the projectile be shot down

	RotationSpeed  float32 // homing turn rate, deg/s
	MaxTargetRange float32

	MineSpeed         float32 // vertical tracking speed
	SpinSpeed         float32 // deg/s of chunk SpinChunk
	SpinChunk         int
	ChildProjectileID int
	Reload            float32
	FallSpeed         float32

	Trails []rl.Vector3
	Sound  string // played when fired
}

func missileGeometry(length, width float32) Geometry {
	return BoxGeometry(
		BoxPart{Name: "body", Size: rl.Vector3{X: width, Y: width, Z: length}},
		BoxPart{
			Name:     "fins",
			Location: rl.Vector3{Z: -length * 0.4},
			Size:     rl.Vector3{X: width * 3, Y: width * 0.2, Z: length * 0.2},
		},
	)
}

func mineGeometry(size float32) Geometry {
	return BoxGeometry(
		BoxPart{Name: "body", Size: rl.Vector3{X: size, Y: size, Z: size}},
		BoxPart{Name: "rotor", Size: rl.Vector3{X: size * 2, Y: size * 0.2, Z: size * 2}},
	)
}

var missileTrail = []rl.Vector3{{Z: -0.8}}

var projectileCatalog = map[int]*ProjectileSpec{
	1: {
		Name:       "laser",
		Type:       ProjectileBullet,
		Damage:     NewDamage(0, 10),
		SpeedStart: 120,
		SpeedEnd:   120,
		Lifetime:   2,
		Radius:     0.3,
		Sound:      "weapon_laser",
	},
	2: {
		Name:       "kinetic",
		Type:       ProjectileBullet,
		Damage:     NewDamage(15, 0),
		SpeedStart: 100,
		SpeedEnd:   90,
		Lifetime:   2.5,
		Radius:     0.25,
		Sound:      "weapon_kinetic",
	},
	3: {
		Name:       "plasma",
		Type:       ProjectileBullet,
		Damage:     NewDamage(10, 15),
		SpeedStart: 80,
		SpeedEnd:   80,
		Lifetime:   2.5,
		Radius:     0.5,
		Sound:      "weapon_plasma",
	},
	4: {
		Name:       "ion beam",
		Type:       ProjectileBeam,
		Damage:     NewDamage(0, 40),
		Lifetime:   0.2,
		Radius:     0.6,
		BeamLength: 60,
		Sound:      "weapon_beam",
	},
	5: {
		Name:       "gauss",
		Type:       ProjectileBullet,
		Damage:     NewDamage(30, 0),
		SpeedStart: 200,
		SpeedEnd:   200,
		Lifetime:   1.5,
		Radius:     0.2,
		Sound:      "weapon_gauss",
	},
	10: {
		Name:       "flare",
		Type:       ProjectileFlare,
		Behavior:   BehaviorFlare,
		SpeedStart: 20,
		SpeedEnd:   2,
		Lifetime:   4,
		Radius:     0.5,
		FallSpeed:  1.5,
		Sound:      "flare",
	},
	11: {
		Name:           "homing missile",
		Type:           ProjectileMissile,
		Behavior:       BehaviorHoming,
		Damage:         NewDamage(40, 0),
		SpeedStart:     30,
		SpeedEnd:       60,
		Lifetime:       8,
		Geometry:       missileGeometry(1.6, 0.3),
		Armor:          1,
		RotationSpeed:  90,
		MaxTargetRange: 300,
		Trails:         missileTrail,
		Sound:          "missile",
	},
	12: {
		Name:           "swarm missile",
		Type:           ProjectileMissile,
		Behavior:       BehaviorHoming,
		Damage:         NewDamage(15, 0),
		SpeedStart:     40,
		SpeedEnd:       50,
		Lifetime:       5,
		Geometry:       missileGeometry(1, 0.2),
		Armor:          1,
		RotationSpeed:  150,
		MaxTargetRange: 200,
		Trails:         missileTrail,
		Sound:          "missile",
	},
	13: {
		Name:           "torpedo",
		Type:           ProjectileMissile,
		Behavior:       BehaviorHoming,
		Damage:         NewDamage(80, 40),
		SpeedStart:     20,
		SpeedEnd:       35,
		Lifetime:       12,
		Geometry:       missileGeometry(2.4, 0.5),
		Armor:          5,
		RotationSpeed:  40,
		MaxTargetRange: 500,
		Trails:         missileTrail,
		Sound:          "torpedo",
	},
	14: {
		Name:           "nuke",
		Type:           ProjectileMissile,
		Behavior:       BehaviorHoming,
		Damage:         NewDamage(300, 300),
		SpeedStart:     15,
		SpeedEnd:       25,
		Lifetime:       15,
		Geometry:       missileGeometry(3, 0.7),
		Armor:          10,
		RotationSpeed:  30,
		MaxTargetRange: 600,
		Trails:         missileTrail,
		Sound:          "torpedo",
	},
	101: {
		Name:       "alien bolt",
		Type:       ProjectileBullet,
		Damage:     NewDamage(0, 12),
		SpeedStart: 90,
		SpeedEnd:   90,
		Lifetime:   2,
		Radius:     0.4,
		Sound:      "weapon_alien",
	},
	102: {
		Name:           "alien seeker",
		Type:           ProjectileMissile,
		Behavior:       BehaviorHoming,
		Damage:         NewDamage(0, 35),
		SpeedStart:     35,
		SpeedEnd:       45,
		Lifetime:       7,
		Geometry:       missileGeometry(1.2, 0.4),
		Armor:          2,
		RotationSpeed:  80,
		MaxTargetRange: 250,
		Trails:         missileTrail,
		Sound:          "missile",
	},
	201: {
		Name:           "hover mine",
		Type:           ProjectileMine,
		Behavior:       BehaviorHoverMine,
		Damage:         NewDamage(60, 0),
		Lifetime:       Unlimited,
		Geometry:       mineGeometry(1),
		Armor:          10,
		MaxTargetRange: 100,
		MineSpeed:      5,
		SpinSpeed:      60,
		SpinChunk:      1,
	},
	202: {
		Name:              "gun mine",
		Type:              ProjectileMine,
		Behavior:          BehaviorGunMine,
		Damage:            NewDamage(30, 0),
		Lifetime:          Unlimited,
		Geometry:          mineGeometry(1.2),
		Armor:             15,
		MaxTargetRange:    120,
		MineSpeed:         4,
		SpinSpeed:         90,
		SpinChunk:         1,
		ChildProjectileID: 101,
		Reload:            2,
	},
	203: {
		Name:           "drift mine",
		Type:           ProjectileMine,
		Behavior:       BehaviorHoverMine,
		Damage:         NewDamage(80, 0),
		SpeedStart:     2,
		SpeedEnd:       2,
		Lifetime:       Unlimited,
		Geometry:       mineGeometry(1.5),
		Armor:          20,
		MaxTargetRange: 80,
		MineSpeed:      3,
		SpinSpeed:      30,
		SpinChunk:      1,
	},
}

// ProjectileIDs returns the catalog ids in ascending order.
func ProjectileIDs() []int {
	return sortedKeys(projectileCatalog)
}
