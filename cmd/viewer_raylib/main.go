// cmd/viewer_raylib/main.go
package main

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/olivia-tucker23/bevy-space-rts/internal/app"
	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/config"
	"github.com/olivia-tucker23/bevy-space-rts/internal/defs"
	"github.com/olivia-tucker23/bevy-space-rts/internal/entity"
	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
	"github.com/olivia-tucker23/bevy-space-rts/internal/ui"
	"github.com/olivia-tucker23/bevy-space-rts/pkg/logger"
)

const (
	panSpeed = 400.0
	minZoom  = 0.2
	maxZoom  = 4.0
)

var spawnKeys = []struct {
	key      int32
	unitType defs.UnitType
}{
	{rl.KeyOne, defs.DefaultUnit},
	{rl.KeyTwo, defs.Fighter},
	{rl.KeyThree, defs.Tank},
}

var unitMask = component.MaskOf(component.KindBody, component.KindUnitIdentity)

func main() {
	settings, err := config.LoadSettings(".env")
	if err != nil {
		logger.Log.Fatalf("Failed to load settings: %v", err)
	}
	logger.Init(settings.LogLevel, settings.LogFormat)

	game, err := app.NewGame(settings, 0)
	if err != nil {
		logger.Log.Fatalf("Failed to create game: %v", err)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Space RTS | WASD - Pan, Mouse Wheel - Zoom")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := rl.Camera2D{
		Offset: rl.NewVector2(0, 0),
		Target: rl.NewVector2(0, 0),
		Zoom:   1,
	}

	pauseButton := ui.NewPauseButton(config.ScreenWidth-40, 60, 12, config.SelectedColor, config.FriendlyColor)
	speedButton := ui.NewSpeedButton(config.ScreenWidth-90, 60, 12, []rl.Color{config.FriendlyColor, config.SelectedColor, config.HostileColor})

	for !rl.WindowShouldClose() {
		deltaTime := math.Min(float64(rl.GetFrameTime()), config.MaxDeltaTime)
		handleCamera(&camera, deltaTime)
		mouse := rl.GetMousePosition()
		switch {
		case pauseButton.Clicked(mouse):
			game.HandlePauseClick()
		case speedButton.Clicked(mouse):
			game.HandleSpeedClick()
		default:
			handleInput(game, camera)
		}

		if err := game.Update(deltaTime); err != nil {
			logger.Log.Fatalf("Simulation stopped: %v", err)
		}

		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)
		rl.BeginMode2D(camera)
		drawUnits(game)
		rl.EndMode2D()
		drawHUD(game)
		pauseButton.Draw(game.IsPaused())
		speedButton.Draw(game.SpeedLevel())
		rl.EndDrawing()
	}
}

func handleCamera(camera *rl.Camera2D, deltaTime float64) {
	step := float32(panSpeed*deltaTime) / camera.Zoom
	if rl.IsKeyDown(rl.KeyW) {
		camera.Target.Y -= step
	}
	if rl.IsKeyDown(rl.KeyS) {
		camera.Target.Y += step
	}
	if rl.IsKeyDown(rl.KeyA) {
		camera.Target.X -= step
	}
	if rl.IsKeyDown(rl.KeyD) {
		camera.Target.X += step
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		camera.Zoom = float32(math.Max(minZoom, math.Min(maxZoom, float64(camera.Zoom)*(1+0.1*float64(wheel)))))
	}
}

func handleInput(game *app.Game, camera rl.Camera2D) {
	mouse := rl.GetScreenToWorld2D(rl.GetMousePosition(), camera)
	x, y := float64(mouse.X), float64(mouse.Y)
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	if rl.IsKeyPressed(rl.KeySpace) {
		game.HandlePauseClick()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		game.HandleSpeedClick()
	}

	owner := game.LocalPlayer()
	if rl.IsKeyDown(rl.KeyH) {
		owner = app.HostilePlayer
	}
	for _, k := range spawnKeys {
		if rl.IsKeyPressed(k.key) {
			if err := game.RequestSpawn(k.unitType, owner, x, y, 0); err != nil {
				logger.Log.WithError(err).Warn("Spawn request dropped.")
			}
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := game.QueueSkirmish(6, config.ScreenWidth, config.ScreenHeight); err != nil {
			logger.Log.WithError(err).Warn("Skirmish only partly queued.")
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		game.SelectionSystem.SelectAt(x, y, shift)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		game.SelectionSystem.Order(x, y, shift)
	}
}

func drawUnits(game *app.Game) {
	ecs := game.ECS
	for id := range ecs.Query(unitMask) {
		body, _ := entity.Get[component.Body](ecs, id)
		ident, _ := entity.Get[component.UnitIdentity](ecs, id)

		w := float32(body.Size.X * config.SpriteScale)
		h := float32(body.Size.Y * config.SpriteScale)
		rec := rl.NewRectangle(float32(body.Position.X), float32(body.Position.Y), w, h)
		origin := rl.NewVector2(w/2, h/2)
		angle := float32(body.Position.Facing * 180 / math.Pi)

		if ecs.Has(id, component.KindSubEntity) {
			rl.DrawRectanglePro(rec, origin, angle, config.TurretColor)
			continue
		}

		center := rl.NewVector2(float32(body.Position.X), float32(body.Position.Y))
		rl.DrawCircleV(center, float32(body.SelectionRadius), config.SelectionRadiusFill)
		rl.DrawRectanglePro(rec, origin, angle, hullColor(ident.Player, game.LocalPlayer()))
		if ecs.Has(id, component.KindSelected) {
			rl.DrawCircleLines(int32(body.Position.X), int32(body.Position.Y), float32(body.SelectionRadius)+2, config.SelectedColor)
		}
	}
}

// hullColor is kept local: the ebiten renderer package must not be linked
// into this binary alongside raylib.
func hullColor(owner, local types.PlayerID) rl.Color {
	if owner == local {
		return rl.ColorBrightness(config.FriendlyColor, -0.5)
	}
	return rl.ColorBrightness(config.HostileColor, -0.5)
}

func drawHUD(game *app.Game) {
	counts := game.Stats.Snapshot()
	lines := []string{
		fmt.Sprintf("entities: %d  archetypes: %d", game.ECS.Len(), game.ECS.ArchetypeCount()),
		fmt.Sprintf("spawned: %d  rejected: %d  ids: %d", counts.Total(), counts.TotalRejected(), game.IDs.Issued()),
		fmt.Sprintf("speed: x%.0f", game.SpeedMultiplier),
	}
	if game.IsPaused() {
		lines = append(lines, "PAUSED")
	}
	for i, line := range lines {
		rl.DrawText(line, 10, int32(10+i*20), 18, config.TextLightColor)
	}
	rl.DrawFPS(config.ScreenWidth-90, 10)
}
