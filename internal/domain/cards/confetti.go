package cards

import (
	"fmt"
	"html/template"
	"math/rand/v2"
	"time"
)

const (
	ConfettiPieces   = 30
	ConfettiLifetime = 4 * time.Second
)

var ConfettiColours = []string{
	"#ff6b6b", "#6bcaff", "#6bffb0", "#fdff6b",
	"#d36bff", "#ff6bd1", "#6b84ff", "#ffa46b",
}

type Particle struct {
	Colour   string
	Left     float64 // vw, [0,100)
	Delay    float64 // s, [0,0.5)
	Duration float64 // s, [2.5,4)
}

func (p Particle) Style() template.CSS {
	return template.CSS(fmt.Sprintf(
		"background-color: %s; left: %.2fvw; animation-delay: %.2fs; animation-duration: %.2fs;",
		p.Colour, p.Left, p.Delay, p.Duration,
	))
}

// Confetti es el efecto decorativo; el contenedor se borra solo a los
// LifetimeMS milisegundos.
type Confetti struct {
	Particles  []Particle
	LifetimeMS int64
}

func NewConfetti(rng *rand.Rand) *Confetti {
	ps := make([]Particle, 0, ConfettiPieces)
	for range ConfettiPieces {
		ps = append(ps, Particle{
			Colour:   ConfettiColours[rng.IntN(len(ConfettiColours))],
			Left:     rng.Float64() * 100,
			Delay:    rng.Float64() * 0.5,
			Duration: 2.5 + rng.Float64()*1.5,
		})
	}
	return &Confetti{
		Particles:  ps,
		LifetimeMS: ConfettiLifetime.Milliseconds(),
	}
}
