// Package assets bundles the level maps shipped with the game.
package assets

import "embed"

// Maps holds maps/level1.tmx through maps/level10.tmx.
//
//go:embed maps/*.tmx
var Maps embed.FS
