package palette

// Color is one of the eight standard terminal colors.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Palette assigns each tag a stable terminal color for the lifetime of a
// run. Black is reserved for backgrounds, leaving seven usable colors, so
// a brand-new tag claims whichever color was used least recently. Tags
// already assigned keep their color forever; only the choice for the next
// unseen tag shifts.
type Palette struct {
	known map[string]Color
	ring  []Color // the seven reusable colors, least recently used first
}

// New creates a Palette pre-seeded with the well-known Android tags, so
// the core runtime components look the same from session to session.
func New() *Palette {
	return &Palette{
		known: map[string]Color{
			"dalvikvm":        Blue,
			"Process":         Blue,
			"ActivityManager": Cyan,
			"ActivityThread":  Cyan,
		},
		ring: []Color{Red, Green, Yellow, Blue, Magenta, Cyan, White},
	}
}

// ColorFor returns the color for tag, assigning the least recently used
// one if the tag is new. Every lookup refreshes the color's recency, so a
// chatty tag is never robbed of its color by newcomers.
func (p *Palette) ColorFor(tag string) Color {
	c, ok := p.known[tag]
	if !ok {
		c = p.ring[0]
		p.known[tag] = c
	}
	p.touch(c)
	return c
}

// touch moves c to the most recently used end of the ring. The ring holds
// exactly seven elements, so a linear scan is fine.
func (p *Palette) touch(c Color) {
	for i, v := range p.ring {
		if v == c {
			copy(p.ring[i:], p.ring[i+1:])
			p.ring[len(p.ring)-1] = c
			return
		}
	}
}
