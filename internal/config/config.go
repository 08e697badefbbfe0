// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 540
	TicksPerSec  = 60
	FixedDelta   = 1.0 / TicksPerSec
	MaxDeltaTime = 0.06

	// Тайминги неуязвимости по умолчанию, если в определении персонажа нули
	DefaultIFrameDuration    = 0.5
	DefaultIFrameFlickerRate = 0.1
	DefaultTurnSmoothTime    = 0.1
	DefaultInteractRadius    = 2.0

	TransitionStoppingDistance = 0.25 // дистанция остановки скриптового перехода
	MinionFollowDistance       = 1.5
	ExitTriggerRadius          = 1.0

	CharacterRadius     = 0.5
	PickupRadius        = 0.6
	ProjectileSpeed     = 10.0
	ProjectileRange     = 8.0
	ProjectileRadius    = 0.3
	MinionAggroRange    = 2.0 // миньон бьёт врага в этом радиусе
	WanderSpeedModifier = 0.5

	PixelsPerUnit = 16.0

	HealthUpgradeCost   = 10
	HealthUpgradeAmount = 10
	SpeedUpgradeCost    = 5
	SpeedUpgradeAmount  = 5.0

	HUDLineHeight = 16
)

var (
	BackgroundColor = color.RGBA{18, 16, 24, 255}
	RoomColor       = color.RGBA{48, 44, 60, 255}
	ExitOpenColor   = color.RGBA{90, 200, 120, 255}
	ExitClosedColor = color.RGBA{200, 70, 70, 255}
	LeaderColor     = color.RGBA{240, 200, 80, 255}
	MinionColor     = color.RGBA{120, 170, 240, 255}
	EnemyColor      = color.RGBA{220, 80, 80, 255}
	NPCColor        = color.RGBA{180, 180, 180, 255}
	PickupColor     = color.RGBA{200, 120, 240, 255}
	HitboxColor     = color.RGBA{255, 255, 255, 120}
	ProjectileColor = color.RGBA{240, 240, 200, 255}
)
