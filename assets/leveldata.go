package assets

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"

	cfg "github.com/pixeldrift/cartdash/config"
)

// PlatformDef describes one platform placed by the level.
type PlatformDef struct {
	X, Y, W, H float64
	Kind       cfg.PlatformKind
	Speed      float64
	Range      float64
}

// TokenDef describes one collectible token.
type TokenDef struct {
	X, Y float64
	Kind cfg.TokenKind
}

// PowerupDef describes one power-up pickup.
type PowerupDef struct {
	X, Y float64
	Kind cfg.PowerupKind
}

// EnemyDef describes one enemy spawn.
type EnemyDef struct {
	X, Y float64
	Kind cfg.EnemyKind
}

// RectDef is a plain placed rectangle.
type RectDef struct {
	X, Y, W, H float64
}

// LevelData is everything a scene needs to populate the playfield.
type LevelData struct {
	Name   string
	Width  int
	Height int

	Platforms []PlatformDef
	Tokens    []TokenDef
	Powerups  []PowerupDef
	Enemies   []EnemyDef
	Goal      RectDef
	SpawnX    float64
	SpawnY    float64
}

// LoadLevel parses a TMX file into LevelData. It takes an fs.FS so callers
// can pass the embedded FS or os.DirFS for external levels.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				data.Platforms = append(data.Platforms, PlatformDef{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
					Kind:  parsePlatformKind(o.Properties.GetString("kind")),
					Speed: o.Properties.GetFloat("speed"),
					Range: o.Properties.GetFloat("range"),
				})
			}
		case "Tokens":
			for _, o := range og.Objects {
				data.Tokens = append(data.Tokens, TokenDef{
					X: o.X, Y: o.Y,
					Kind: parseTokenKind(o.Properties.GetString("kind")),
				})
			}
		case "Powerups":
			for _, o := range og.Objects {
				kind, err := parsePowerupKind(o.Properties.GetString("kind"))
				if err != nil {
					return nil, fmt.Errorf("object %d: %w", o.ID, err)
				}
				data.Powerups = append(data.Powerups, PowerupDef{X: o.X, Y: o.Y, Kind: kind})
			}
		case "Enemies":
			for _, o := range og.Objects {
				kind, err := parseEnemyKind(o.Properties.GetString("kind"))
				if err != nil {
					return nil, fmt.Errorf("object %d: %w", o.ID, err)
				}
				data.Enemies = append(data.Enemies, EnemyDef{X: o.X, Y: o.Y, Kind: kind})
			}
		case "Goal":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.Goal = RectDef{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				data.SpawnX = og.Objects[0].X
				data.SpawnY = og.Objects[0].Y
			}
		}
	}

	if len(data.Platforms) == 0 {
		return nil, fmt.Errorf("level %s defines no platforms", tmxPath)
	}

	return data, nil
}

func parsePlatformKind(s string) cfg.PlatformKind {
	switch s {
	case "crumbling":
		return cfg.PlatformCrumbling
	case "moving":
		return cfg.PlatformMoving
	default:
		return cfg.PlatformNormal
	}
}

func parseTokenKind(s string) cfg.TokenKind {
	if s == "gem" {
		return cfg.TokenGem
	}
	return cfg.TokenCurrency
}

func parsePowerupKind(s string) (cfg.PowerupKind, error) {
	switch s {
	case "theme-booster":
		return cfg.PowerupThemeBooster, nil
	case "checkout-dash":
		return cfg.PowerupCheckoutDash, nil
	case "app-magnet":
		return cfg.PowerupAppMagnet, nil
	default:
		return 0, fmt.Errorf("unknown powerup kind %q", s)
	}
}

func parseEnemyKind(s string) (cfg.EnemyKind, error) {
	switch s {
	case "shuffler":
		return cfg.EnemyShuffler, nil
	case "kraken":
		return cfg.EnemyKraken, nil
	case "zombie":
		return cfg.EnemyZombie, nil
	default:
		return 0, fmt.Errorf("unknown enemy kind %q", s)
	}
}
