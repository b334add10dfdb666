package paddle

import "github.com/go-gl/mathgl/mgl64"

// MoveUp moves the paddle one step up if it stays within travel
func (p *Paddle) MoveUp() {
	p.moveBy(StepSize)
}

// MoveDown moves the paddle one step down if it stays within travel
func (p *Paddle) MoveDown() {
	p.moveBy(-StepSize)
}

// moveBy drops the move instead of clamping when it would leave [MinY, MaxY].
func (p *Paddle) moveBy(dy float64) {
	y := p.Center.Y() + dy
	if y < p.MinY || y > p.MaxY {
		return
	}
	p.Center[1] = y
}

// Hits detects whether pos is inside the paddle's collision box
func (p Paddle) Hits(pos mgl64.Vec2) bool {
	x, y := p.Center.X(), p.Center.Y()
	return pos.X() <= x+ReachX && pos.X() >= x-ReachX &&
		pos.Y() <= y+ReachY && pos.Y() >= y-ReachY
}
