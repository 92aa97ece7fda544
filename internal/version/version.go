// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Differential rotation of arc endpoints, rotation profile cycling, SWAP URL listing
// 0.1.0 - Initial release: great-arc library, heliographic frame adapter, disk view TUI
