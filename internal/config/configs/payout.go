package configs

import "time"

// Payout holds the fee constants and timing knobs of the engine.
type Payout struct {
	// AntiSpamFee is the exact amount, in smallest token units, every
	// submitter transfers to SystemAddress with a submission.
	AntiSpamFee   int64  `env:"ANTI_SPAM_FEE" envDefault:"100000000"`
	SystemAddress string `env:"SYSTEM_ADDRESS"`
	// PlatformFeeBps is the platform's share of every paid bundle in basis
	// points.
	PlatformFeeBps int64 `env:"PLATFORM_FEE_BPS" envDefault:"1000"`
	// StuckLease protects in-flight submissions from being reclaimed by a
	// retry of the same post. Zero reclaims immediately.
	StuckLease time.Duration `env:"STUCK_LEASE" envDefault:"2m"`
	// PublicURL prefixes links in notifications.
	PublicURL string `env:"PUBLIC_URL"`
}
