package entity

import rl "github.com/gen2brain/raylib-go/raylib"

// WeaponSpec places a weapon on a ship.
type WeaponSpec struct {
	Location     rl.Vector3
	ProjectileID int
	Reload       float32
}

// ShipSpec is one ship catalog entry.
type ShipSpec struct {
	Name     string
	Geometry Geometry

	Armor, Shield, ShieldRecharge float32
	MaxSpeed                      float32

	Engines []rl.Vector3
	Weapons []WeaponSpec
}

var shipCatalog = map[int]*ShipSpec{
	1: {
		Name: "earth fighter",
		Geometry: BoxGeometry(
			BoxPart{Name: "hull", Size: rl.Vector3{X: 2, Y: 0.8, Z: 4}},
			BoxPart{Name: "wings", Location: rl.Vector3{Z: -0.5}, Size: rl.Vector3{X: 6, Y: 0.2, Z: 1.5}},
		),
		Armor:          100,
		Shield:         30,
		ShieldRecharge: 5,
		MaxSpeed:       40,
		Engines:        []rl.Vector3{{X: -0.6, Z: -2}, {X: 0.6, Z: -2}},
		Weapons: []WeaponSpec{
			{Location: rl.Vector3{X: -2.5, Z: 0.5}, ProjectileID: 1, Reload: 0.3},
			{Location: rl.Vector3{X: 2.5, Z: 0.5}, ProjectileID: 1, Reload: 0.3},
			{Location: rl.Vector3{Y: -0.5, Z: 1}, ProjectileID: 11, Reload: 3},
		},
	},
	2: {
		Name: "earth bomber",
		Geometry: BoxGeometry(
			BoxPart{Name: "hull", Size: rl.Vector3{X: 3, Y: 1.2, Z: 6}},
			BoxPart{Name: "wings", Location: rl.Vector3{Z: -1}, Size: rl.Vector3{X: 8, Y: 0.3, Z: 2}},
			BoxPart{Name: "tail", Location: rl.Vector3{Y: 1, Z: -2.5}, Size: rl.Vector3{X: 0.3, Y: 1.5, Z: 1}},
		),
		Armor:          250,
		Shield:         60,
		ShieldRecharge: 4,
		MaxSpeed:       25,
		Engines:        []rl.Vector3{{X: -1, Z: -3}, {X: 1, Z: -3}},
		Weapons: []WeaponSpec{
			{Location: rl.Vector3{Z: 3}, ProjectileID: 2, Reload: 0.5},
			{Location: rl.Vector3{Y: -0.8}, ProjectileID: 13, Reload: 6},
		},
	},
	101: {
		Name: "alien fighter",
		Geometry: BoxGeometry(
			BoxPart{Name: "core", Size: rl.Vector3{X: 2.5, Y: 1, Z: 2.5}},
			BoxPart{Name: "blade left", Location: rl.Vector3{X: -2}, Size: rl.Vector3{X: 1.5, Y: 0.3, Z: 3}},
			BoxPart{Name: "blade right", Location: rl.Vector3{X: 2}, Size: rl.Vector3{X: 1.5, Y: 0.3, Z: 3}},
		),
		Armor:          80,
		Shield:         40,
		ShieldRecharge: 8,
		MaxSpeed:       45,
		Engines:        []rl.Vector3{{Z: -1.3}},
		Weapons: []WeaponSpec{
			{Location: rl.Vector3{Z: 1.5}, ProjectileID: 101, Reload: 0.6},
		},
	},
	102: {
		Name: "alien hunter",
		Geometry: BoxGeometry(
			BoxPart{Name: "core", Size: rl.Vector3{X: 3, Y: 1.5, Z: 5}},
			BoxPart{Name: "pod", Location: rl.Vector3{Y: -1}, Size: rl.Vector3{X: 1.5, Y: 0.8, Z: 2}},
		),
		Armor:          160,
		Shield:         80,
		ShieldRecharge: 6,
		MaxSpeed:       35,
		Engines:        []rl.Vector3{{X: -0.8, Z: -2.5}, {X: 0.8, Z: -2.5}},
		Weapons: []WeaponSpec{
			{Location: rl.Vector3{Z: 2.5}, ProjectileID: 101, Reload: 0.5},
			{Location: rl.Vector3{Y: -1.4, Z: 1}, ProjectileID: 102, Reload: 4},
		},
	},
	103: {
		Name: "alien drone",
		Geometry: BoxGeometry(
			BoxPart{Name: "core", Size: rl.Vector3{X: 1.2, Y: 1.2, Z: 1.2}},
		),
		Armor:    30,
		MaxSpeed: 55,
		Engines:  []rl.Vector3{{Z: -0.6}},
		Weapons: []WeaponSpec{
			{Location: rl.Vector3{Z: 0.7}, ProjectileID: 101, Reload: 1.2},
		},
	},
	201: {
		Name: "pirate gunship",
		Geometry: BoxGeometry(
			BoxPart{Name: "hull", Size: rl.Vector3{X: 4, Y: 1.5, Z: 7}},
			BoxPart{Name: "turret", Location: rl.Vector3{Y: 1.1, Z: 1}, Size: rl.Vector3{X: 1.2, Y: 0.7, Z: 1.2}},
		),
		Armor:          300,
		Shield:         20,
		ShieldRecharge: 2,
		MaxSpeed:       20,
		Engines:        []rl.Vector3{{X: -1.2, Z: -3.5}, {X: 1.2, Z: -3.5}},
		Weapons: []WeaponSpec{
			{Location: rl.Vector3{X: -2, Z: 3}, ProjectileID: 2, Reload: 0.4},
			{Location: rl.Vector3{X: 2, Z: 3}, ProjectileID: 2, Reload: 0.4},
			{Location: rl.Vector3{Y: 1.5, Z: 1.6}, ProjectileID: 12, Reload: 5},
		},
	},
}

// ShipIDs returns the catalog ids in ascending order.
func ShipIDs() []int {
	return sortedKeys(shipCatalog)
}
