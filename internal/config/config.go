// internal/config/config.go
package config

import (
	"image/color"

	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// SpriteScale converts sprite pixels into world units. Footprints in the
	// unit catalogue are in sprite pixels.
	SpriteScale = 0.1

	// LocalPlayerID is the player sitting at this client unless overridden by
	// RTS_LOCAL_PLAYER.
	LocalPlayerID types.PlayerID = 0

	TurretName = "Turret"

	SpawnQueueSize = 1024

	// Units without a Thruster move at this speed, in world units per second.
	DefaultMoveSpeed = 20.0

	// Warn once fewer than this fraction of unit ids remain.
	IDExhaustionWarnFraction = 0.01

	SelectionStrokeWidth = 1.5
	HUDLineHeight        = 16
)

// HardpointOwner decides who owns the turrets spawned with a unit.
type HardpointOwner string

const (
	HardpointOwnerLocal  HardpointOwner = "local"  // Always the local player
	HardpointOwnerParent HardpointOwner = "parent" // Whoever owns the parent unit
)

var (
	BackgroundColor     = color.RGBA{10, 10, 20, 255}
	FriendlyColor       = color.RGBA{80, 200, 120, 255}
	HostileColor        = color.RGBA{220, 70, 70, 255}
	FootprintColor      = color.RGBA{255, 0, 0, 26}   // Debug rect, 10% red
	SelectionRadiusFill = color.RGBA{0, 255, 0, 51}   // Debug radius, 20% green
	TurretColor         = color.RGBA{200, 200, 220, 255}
	SelectedColor       = color.RGBA{255, 215, 0, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
)
