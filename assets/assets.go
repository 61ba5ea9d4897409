// Package assets embeds the level data and provides the TMX loader.
package assets

import "embed"

//go:embed levels/*.tmx
var FS embed.FS

// DefaultLevel is the shipped single-screen level.
const DefaultLevel = "levels/market.tmx"
