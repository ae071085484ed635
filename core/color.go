package core

// RGB is a presentation color carried on snapshots and particle requests
// The core never interprets it; drivers map it to their output device
type RGB struct {
	R, G, B uint8
}

// Common entity colors
var (
	ColorPlayer     = RGB{R: 80, G: 250, B: 180}
	ColorRunner     = RGB{R: 250, G: 90, B: 90}
	ColorTank       = RGB{R: 200, G: 140, B: 60}
	ColorSniper     = RGB{R: 170, G: 110, B: 250}
	ColorBoss       = RGB{R: 250, G: 60, B: 160}
	ColorDrone      = RGB{R: 220, G: 80, B: 80}
	ColorShot       = RGB{R: 250, G: 240, B: 120}
	ColorHostile    = RGB{R: 250, G: 140, B: 40}
	ColorMine       = RGB{R: 120, G: 200, B: 250}
	ColorEnergy     = RGB{R: 120, G: 220, B: 250}
	ColorHealth     = RGB{R: 120, G: 250, B: 120}
	ColorShieldCore = RGB{R: 150, G: 150, B: 250}
)
