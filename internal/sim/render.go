package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/babaam/internal/core"
)

// Render draws the current game state onto the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderWall(dst)
	g.renderPickups(dst)
	g.renderBeam(dst)
	g.renderEntities(dst)
	g.renderDrones(dst)
	g.renderShip(dst)
	g.renderDebris(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, health, weapon, and active effect timers.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightYellow)

	hearts := strings.Repeat("♥", g.ship.Health) +
		strings.Repeat("·", g.ship.MaxHealth-g.ship.Health)
	dst.DrawTextColored(dst.Width()/2-g.ship.MaxHealth/2, 0, hearts, core.ColorBrightRed)

	weapon := g.ship.Weapon.String()
	if g.ship.Weapon == WeaponBeam {
		weapon = fmt.Sprintf("%s %s", weapon, g.beam.Phase)
	}
	dst.DrawTextColored(dst.Width()-len(weapon)-14, 0, weapon, core.ColorBrightCyan)

	var badges []string
	if r := g.powerups.EffectRemaining(EffectRapidFire, g.tickCount); r > 0 {
		badges = append(badges, fmt.Sprintf("R%d", (r+g.runtime.TickRate-1)/g.runtime.TickRate))
	}
	if r := g.powerups.EffectRemaining(EffectShield, g.tickCount); r > 0 {
		badges = append(badges, fmt.Sprintf("S%d", (r+g.runtime.TickRate-1)/g.runtime.TickRate))
	}
	if len(badges) > 0 {
		text := strings.Join(badges, " ")
		dst.DrawTextColored(dst.Width()-len(text)-1, 0, text, core.ColorBrightGreen)
	}
}

// renderWall draws the defended line at the left edge.
func (g *Game) renderWall(dst *core.Screen) {
	dst.DrawVLine(wallCol, hudRows, dst.Height()-hudRows, '║', core.ColorBrightBlue)
}

func (g *Game) renderShip(dst *core.Screen) {
	sprite := shipSprite
	if g.powerups.HasEffect(EffectShield) {
		sprite = shipSpriteShield
	}
	color := core.ColorBrightGreen
	if g.ship.Flash > 0 && g.ship.Flash%2 == 0 {
		color = core.ColorBrightWhite
	}
	x, y := g.ship.X.ToCell(), g.ship.Y.ToCell()
	for row, line := range sprite {
		col := 0
		for _, r := range line {
			dst.SetCell(x+col, y+row, r, color)
			col++
		}
	}
	if g.ship.Spark > 0 {
		dst.SetCell(x+ShipW, y+1, '×', core.ColorBrightRed)
	}
}

// renderBeam draws the lit beam rows in front of the ship.
func (g *Game) renderBeam(dst *core.Screen) {
	if g.ship.Weapon != WeaponBeam || !g.beam.Firing() || !g.beam.Visible() {
		return
	}
	nose := g.ship.NoseX().ToCell()
	shipY := g.ship.Y.ToCell()
	color := core.ColorBrightCyan
	if g.beam.Phase == BeamFlickering {
		color = core.ColorCyan
	}
	for _, seg := range g.beam.Segments() {
		if seg.Length <= 0 {
			continue
		}
		dst.DrawHLine(nose, shipY+seg.RowOffset, seg.Length, '═', color)
	}
}

func (g *Game) renderEntities(dst *core.Screen) {
	g.store.Each(KindEnemy, func(e *Entity) bool {
		g.renderSprite(dst, e, e.Enemy.Stats().Sprite)
		return true
	})
	if boss := g.store.First(KindBoss); boss != nil {
		g.renderSprite(dst, boss, bossSprite)
		g.renderBossBar(dst, boss)
	}
	g.store.Each(KindBullet, func(b *Entity) bool {
		color := b.Color
		if b.Owner == OwnerBoss {
			color = core.ColorBrightRed
		}
		dst.SetCell(b.X.ToCell(), b.Y.ToCell(), b.Glyph, color)
		return true
	})
}

// renderSprite draws a multi-row sprite, flashing white when hit.
func (g *Game) renderSprite(dst *core.Screen, e *Entity, sprite []string) {
	color := e.Color
	if e.Flash > 0 && e.Flash%2 == 0 {
		color = core.ColorBrightWhite
	}
	x, y := e.X.ToCell(), e.Y.ToCell()
	for row, line := range sprite {
		col := 0
		for _, r := range line {
			dst.SetCell(x+col, y+row, r, color)
			col++
		}
	}
}

// renderBossBar draws the boss health bar under the HUD.
func (g *Game) renderBossBar(dst *core.Screen, boss *Entity) {
	width := 20
	filled := 0
	if boss.MaxHP > 0 {
		filled = boss.HP * width / boss.MaxHP
	}
	filled = core.Clamp(filled, 0, width)
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat(" ", width-filled) + "]"
	dst.DrawTextColored(dst.Width()-width-3, 1, bar, core.ColorBrightRed)
}

func (g *Game) renderPickups(dst *core.Screen) {
	g.store.Each(KindPickup, func(p *Entity) bool {
		dst.SetCell(p.X.ToCell(), p.Y.ToCell(), p.Glyph, p.Color)
		return true
	})
}

func (g *Game) renderDrones(dst *core.Screen) {
	g.store.Each(KindDrone, func(d *Entity) bool {
		dst.SetCell(d.X.ToCell(), d.Y.ToCell(), d.Glyph, d.Color)
		return true
	})
}

func (g *Game) renderDebris(dst *core.Screen) {
	g.store.Each(KindDebris, func(d *Entity) bool {
		dst.SetCell(d.X.ToCell(), d.Y.ToCell(), d.Glyph, d.Color)
		return true
	})
}

// renderOverlay draws the pause and game-over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
		dst.DrawTextCentered(dst.Height()/2+1, "Press P to resume")
	case StateGameOver:
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-2, "GAME OVER")
		dst.DrawTextCentered(mid-1, fmt.Sprintf("Final Score: %d", g.score))
		switch g.cause {
		case core.CauseBossBreach:
			dst.DrawTextCentered(mid, "The boss ran you over")
		case core.CauseHealthExhausted:
			dst.DrawTextCentered(mid, "The wall fell")
		}
		for i, a := range g.achievements {
			dst.DrawTextCentered(mid+1+i, "* "+a)
		}
		dst.DrawTextCentered(mid+2+len(g.achievements), "Press R to restart")
	}
}
