package materialcolors

// Color is a single named entry of a palette.
type Color struct {
	Name  string
	Value ARGB
}

// Palette is a named group of colors, kept in the order they were found.
type Palette struct {
	Name string

	colors []Color
	index  map[string]int
}

// NewPalette creates an empty palette.
func NewPalette(name string) *Palette {
	return &Palette{
		Name:  name,
		index: make(map[string]int),
	}
}

// Put sets the color for name. A new name is appended, an existing one
// keeps its position.
func (p *Palette) Put(name string, value ARGB) {
	if p.index == nil {
		p.index = make(map[string]int)
	}

	if i, exist := p.index[name]; exist {
		p.colors[i].Value = value
		return
	}

	p.index[name] = len(p.colors)
	p.colors = append(p.colors, Color{Name: name, Value: value})
}

// Get returns the color stored under name.
func (p *Palette) Get(name string) (ARGB, bool) {
	i, exist := p.index[name]
	if !exist {
		return 0, false
	}
	return p.colors[i].Value, true
}

// Colors returns a copy of the palette entries in insertion order.
func (p *Palette) Colors() []Color {
	colors := make([]Color, len(p.colors))
	copy(colors, p.colors)
	return colors
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}
