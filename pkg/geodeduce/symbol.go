package geodeduce

// Symbol is a node in the symbol graph: a Point, a Line, or a Circle. All
// three share identity-by-name; Line and Circle additionally carry
// union-find state.
type Symbol interface {
	SymbolName() string
}

// Point is a numerical point: identity is its name, attributes are its
// coordinates. Once created, name and coordinates are immutable; points
// are never merged — only derived Line/Circle symbols merge.
type Point struct {
	Name_ string
	Coord Coord

	// Dep is the dependency that introduced this point, if any (points
	// materialized directly by a problem's construction clause usually
	// have none recorded at this layer; the construction front-end is
	// out of scope).
	Dep *Dependency
}

// SymbolName implements Symbol.
func (p *Point) SymbolName() string { return p.Name_ }

// line and circle both carry a union-find representative and a fellows
// history; this type factors the common bookkeeping so Line and Circle
// don't duplicate it.
type unionFindState struct {
	rep     Symbol
	fellows []Symbol
}

// Line is a synthetic symbol naming a set of points known to be
// collinear, plus its canonical numeric representation.
type Line struct {
	Name_  string
	Points map[string]*Point
	Coef   LineCoef
	Dep    *Dependency

	uf unionFindState
}

// SymbolName implements Symbol.
func (l *Line) SymbolName() string { return l.Name_ }

// Rep returns the union-find representative of l, path-compressing along
// the way.
func (l *Line) Rep() *Line {
	if l.uf.rep == nil {
		l.uf.rep = l
	}
	if l.uf.rep != Symbol(l) {
		rep := l.uf.rep.(*Line).Rep()
		l.uf.rep = rep
	}
	if r, ok := l.uf.rep.(*Line); ok {
		return r
	}
	return l
}

// Fellows returns the lines absorbed into l's representative class,
// preserved for witness reconstruction.
func (l *Line) Fellows() []*Line {
	out := make([]*Line, 0, len(l.uf.fellows))
	for _, f := range l.uf.fellows {
		out = append(out, f.(*Line))
	}
	return out
}

func (l *Line) absorb(other *Line) {
	selfRep, otherRep := l.Rep(), other.Rep()
	if selfRep == otherRep {
		return
	}
	otherRep.uf.rep = selfRep
	selfRep.uf.fellows = append(selfRep.uf.fellows, otherRep)
}

// Circle is a synthetic symbol naming a set of (at least 3) concyclic
// points, plus its canonical numeric representation.
type Circle struct {
	Name_  string
	Points map[string]*Point
	Coef   CircleCoef
	Dep    *Dependency

	uf unionFindState
}

// SymbolName implements Symbol.
func (c *Circle) SymbolName() string { return c.Name_ }

// Rep returns the union-find representative of c, path-compressing along
// the way.
func (c *Circle) Rep() *Circle {
	if c.uf.rep == nil {
		c.uf.rep = c
	}
	if c.uf.rep != Symbol(c) {
		rep := c.uf.rep.(*Circle).Rep()
		c.uf.rep = rep
	}
	if r, ok := c.uf.rep.(*Circle); ok {
		return r
	}
	return c
}

// Fellows returns the circles absorbed into c's representative class.
func (c *Circle) Fellows() []*Circle {
	out := make([]*Circle, 0, len(c.uf.fellows))
	for _, f := range c.uf.fellows {
		out = append(out, f.(*Circle))
	}
	return out
}

func (c *Circle) absorb(other *Circle) {
	selfRep, otherRep := c.Rep(), other.Rep()
	if selfRep == otherRep {
		return
	}
	otherRep.uf.rep = selfRep
	selfRep.uf.fellows = append(selfRep.uf.fellows, otherRep)
}
