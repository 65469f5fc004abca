package entity

// Defaults applied when a configuration key is missing or malformed.
const (
	DefaultPlayerHealth       = 1
	DefaultPlayerSpeed        = 5.0
	DefaultPlayerX            = 350.0
	DefaultPlayerY            = 350.0
	DefaultPlayerHitbox       = 25.0
	DefaultPlayerBulletAmount = 8
	DefaultPlayerBulletSpeed  = 2.0
	DefaultPlayerBulletDelay  = 0.1

	DefaultEnemyHealth       = 200
	DefaultEnemySpeed        = 2.0
	DefaultEnemyX            = 350.0
	DefaultEnemyY            = 100.0
	DefaultEnemyHitbox       = 100.0
	DefaultEnemyBulletAmount = 5
	DefaultEnemyBulletSpeed  = 5.0
	DefaultEnemyBulletDelay  = 0.5
	DefaultEnemyMoveDelay    = 1.5

	DefaultParticleTTL   = 2.0
	DefaultParticleSpeed = 5.0
)

var DefaultEnemyPattern = []float64{-1, 0, 1, 0, 1, 0, -1, 0}

// MaxSpellSize bounds a configured bullet pool. Larger values fall back to
// the default amount.
const MaxSpellSize = 4096
