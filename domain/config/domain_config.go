package config

import "time"

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Question constraints
	MaxTitleLength       int
	MaxDescriptionLength int
	MaxTagsPerQuestion   int
	MaxTagLength         int

	// Answer/comment constraints
	MaxAnswerLength  int
	MaxCommentLength int

	// Session settings
	BcryptCost        int
	AvatarURLTemplate string // %s is replaced by the username

	// SimulatedLatency delays login, register and question submission,
	// mimicking a remote API. Zero in tests.
	SimulatedLatency time.Duration
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxTitleLength:       200,
		MaxDescriptionLength: 50000,
		MaxTagsPerQuestion:   5,
		MaxTagLength:         30,

		MaxAnswerLength:  50000,
		MaxCommentLength: 1000,

		BcryptCost:        10,
		AvatarURLTemplate: "https://api.dicebear.com/7.x/avataaars/svg?seed=%s",

		SimulatedLatency: time.Second,
	}
}

// TestDomainConfig returns a configuration suitable for tests: no simulated
// latency and the cheapest bcrypt cost.
func TestDomainConfig() *DomainConfig {
	cfg := DefaultDomainConfig()
	cfg.SimulatedLatency = 0
	cfg.BcryptCost = 4
	return cfg
}
