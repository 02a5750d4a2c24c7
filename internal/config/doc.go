// Package config loads runtime settings for the admin console, the harness
// CLI, and the test-runner service.
//
// Sources are applied in order, later ones overriding earlier ones:
//
//	defaults -> JSON file (-c/-config) -> environment (.env aware) -> flags
//
// Each stage parses only the flags it owns (see internal/flagx), so the
// stages do not interfere with each other or with the standard flag package.
package config
