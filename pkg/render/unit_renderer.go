// pkg/render/unit_renderer.go
package render

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/olivia-tucker23/bevy-space-rts/internal/app"
	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/config"
	"github.com/olivia-tucker23/bevy-space-rts/internal/entity"
	"github.com/olivia-tucker23/bevy-space-rts/internal/utils"
)

// hudArchetypes caps how many archetype rows the HUD lists.
const hudArchetypes = 8

var bodyMask = component.MaskOf(component.KindBody, component.KindUnitIdentity)

// UnitRenderer draws unit footprints, hardpoints and a diagnostics HUD.
type UnitRenderer struct {
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	fontFace font.Face
}

func NewUnitRenderer() *UnitRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &UnitRenderer{
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 8),
		fillIs:   make([]uint16, 0, 12),
		strokeVs: make([]ebiten.Vertex, 0, 32),
		strokeIs: make([]uint16, 0, 48),
		fontFace: basicfont.Face7x13,
	}
}

// Draw renders the whole simulation. One world unit is one screen pixel.
func (r *UnitRenderer) Draw(screen *ebiten.Image, game *app.Game) {
	screen.Fill(config.BackgroundColor)

	ecs := game.ECS
	local := game.LocalPlayer()
	for id := range ecs.Query(bodyMask) {
		body, _ := entity.Get[component.Body](ecs, id)
		ident, _ := entity.Get[component.UnitIdentity](ecs, id)

		if ecs.Has(id, component.KindSubEntity) {
			r.drawFootprint(screen, body, config.TurretColor, config.TurretColor)
			continue
		}

		x, y := float32(body.Position.X), float32(body.Position.Y)
		vector.DrawFilledCircle(screen, x, y, float32(body.SelectionRadius), config.SelectionRadiusFill, true)
		r.drawFootprint(screen, body, config.FootprintColor, OwnerColor(ident.Player, local))
		if ecs.Has(id, component.KindSelected) {
			vector.StrokeCircle(screen, x, y, float32(body.SelectionRadius)+2, config.SelectionStrokeWidth, config.SelectedColor, true)
		}
		if health, ok := entity.Get[component.Health](ecs, id); ok && health.Max > 0 {
			r.drawHealthBar(screen, body, health)
		}
	}

	r.drawHUD(screen, game)
}

// drawFootprint fills and outlines the rotated footprint rectangle.
func (r *UnitRenderer) drawFootprint(target *ebiten.Image, body *component.Body, fill, stroke color.RGBA) {
	hw := body.Size.X * config.SpriteScale / 2
	hh := body.Size.Y * config.SpriteScale / 2
	corners := [4]component.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}

	path := vector.Path{}
	for i, c := range corners {
		p := utils.Offset(body.Position, c, 1)
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	tint(r.fillVs, fill)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: config.SelectionStrokeWidth,
	})
	tint(r.strokeVs, stroke)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *UnitRenderer) drawHealthBar(target *ebiten.Image, body *component.Body, health *component.Health) {
	const barHeight = 3
	width := float32(body.SelectionRadius * 2)
	x := float32(body.Position.X) - width/2
	y := float32(body.Position.Y-body.SelectionRadius) - 6
	frac := float32(health.Current) / float32(health.Max)
	vector.DrawFilledRect(target, x, y, width, barHeight, DarkenColor(config.FriendlyColor), false)
	vector.DrawFilledRect(target, x, y, width*frac, barHeight, LightenColor(config.FriendlyColor, 40), false)
}

func (r *UnitRenderer) drawHUD(screen *ebiten.Image, game *app.Game) {
	counts := game.Stats.Snapshot()
	lines := []string{
		fmt.Sprintf("entities: %d  archetypes: %d", game.ECS.Len(), game.ECS.ArchetypeCount()),
		fmt.Sprintf("spawned: %d  hardpoints: %d  rejected: %d", counts.Total(), counts.Hardpoints, counts.TotalRejected()),
		fmt.Sprintf("unit ids issued: %d  queued: %d", game.IDs.Issued(), game.SpawnSystem.Pending()),
		fmt.Sprintf("speed: x%.0f  time: %.1fs", game.SpeedMultiplier, game.GetGameTime()),
	}
	if game.IsPaused() {
		lines = append(lines, "PAUSED")
	}
	if game.SpawnSystem.Halted() {
		lines = append(lines, "SPAWNING HALTED: unit ids exhausted")
	}
	if msg := game.LastRejection(); msg != "" {
		lines = append(lines, "last rejection: "+msg)
	}

	type row struct {
		mask  component.Mask
		count int
	}
	var rows []row
	for mask, n := range game.ECS.Archetypes() {
		if n > 0 {
			rows = append(rows, row{mask, n})
		}
	}
	slices.SortFunc(rows, func(a, b row) int { return b.count - a.count })
	for i, rw := range rows {
		if i == hudArchetypes {
			lines = append(lines, fmt.Sprintf("  ... %d more", len(rows)-hudArchetypes))
			break
		}
		lines = append(lines, fmt.Sprintf("  %4d %s", rw.count, rw.mask))
	}

	y := config.HUDLineHeight
	for _, line := range lines {
		text.Draw(screen, line, r.fontFace, 8, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
	help := "1: DefaultUnit  2: Fighter  3: Tank  H: hostile  R: skirmish  LMB: select  RMB: move  Space: pause  F: speed"
	text.Draw(screen, help, r.fontFace, 8, config.ScreenHeight-8, config.TextLightColor)
}

func tint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
