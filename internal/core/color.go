package core

// Color is a palette slot for a screen cell. The host maps each slot to a
// terminal color, so game code names roles instead of ANSI codes.
type Color uint8

// Palette slots.
const (
	ColorDefault Color = iota
	ColorShip
	ColorThrust
	ColorProjectile
	ColorObstacle
	ColorDebris
	ColorDebrisHot // Debris that is still large and bright
	ColorHUD
	ColorAlert
	ColorBorder
)

// String returns the slot name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorShip:
		return "ship"
	case ColorThrust:
		return "thrust"
	case ColorProjectile:
		return "projectile"
	case ColorObstacle:
		return "obstacle"
	case ColorDebris:
		return "debris"
	case ColorDebrisHot:
		return "debris-hot"
	case ColorHUD:
		return "hud"
	case ColorAlert:
		return "alert"
	case ColorBorder:
		return "border"
	default:
		return "unknown"
	}
}
