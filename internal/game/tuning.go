package game

import "time"

// screen and world layout
const (
	ScreenWidth  = 800
	ScreenHeight = 480

	GroundY       = 400.0
	ScrollTrigger = ScreenWidth / 2 // player x at which rightward moves scroll the world
)

// player
const (
	Gravity      = 0.6
	JumpForce    = -12.0
	SpeedForward = 8.0
	// moving away from where you aim is slower
	SpeedBackward = 6.0

	PlayerHalfWidth = 15.0
	PlayerHeight    = 40.0
	MuzzleHeight    = 20.0 // muzzle and torso sit this far above the feet

	PlayerStartX = 400.0
	PlayerStartY = 350.0

	MaxAmmo      = 50
	MaxBombs     = 3
	ReloadTime   = 3 * time.Second
	FireInterval = 100 * time.Millisecond
)

// monster
const (
	MonsterMaxHP  = 1000
	MonsterSpeed  = 6.0
	MonsterStartX = 100.0
	MonsterStartY = 320.0
	MonsterRadius = 60.0 // bullet hit radius and drawn size
	ContactRadius = 80.0 // torso closer than this gets the player caught
	StunTime      = 3 * time.Second
)

// projectiles
const (
	BulletSpeed  = 15.0
	BulletDamage = 1

	BombSpeed         = 12.0
	BombDamage        = 20
	BombDirectRadius  = 70.0
	ExplosionRadius   = 80.0
	SplashPadding     = 60.0 // arrival explosions reach ExplosionRadius+SplashPadding
	ExplosionDuration = 500 * time.Millisecond
)

// obstacles
const (
	ObstacleWidth       = 30.0
	ObstacleSpawnX      = ScreenWidth + 50
	ObstacleCullX       = -50.0
	ObstacleSpawnChance = 5   // out of ObstacleSpawnRoll
	ObstacleSpawnRoll   = 101 // a roll in [0,100]
	ObstacleHeightStep  = 10.0
	ObstacleHeightSteps = 9
)
