package config

// GameConfig is the root of the game configuration file.
type GameConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Layers     LayersConfig     `yaml:"layers"`
	Levels     []LevelConfig    `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage"`
}

type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	Zoom         float64 `yaml:"zoom"`
	Background   string  `yaml:"background"`
}

// PlayerConfig holds player movement and sprite frames. Frames are 0-based
// indices into the shared tile strip.
type PlayerConfig struct {
	Speed          float64         `yaml:"speed"`           // pixels per second
	DiagonalFactor float64         `yaml:"diagonal_factor"` // applied to both axes when moving diagonally
	BodyWidth      int             `yaml:"body_width"`
	BodyHeight     int             `yaml:"body_height"`
	IdleFrame      int             `yaml:"idle_frame"`
	Walk           AnimationConfig `yaml:"walk"`
	Boat           AnimationConfig `yaml:"boat"`
}

type AnimationConfig struct {
	First     int `yaml:"first"`
	Last      int `yaml:"last"`
	FrameRate int `yaml:"frame_rate"`
}

// EnemiesConfig configures roaming enemies. Bombs never move.
type EnemiesConfig struct {
	HovercraftSpeed float64 `yaml:"hovercraft_speed"` // pixels per second
	TurnInterval    float64 `yaml:"turn_interval"`    // seconds between direction changes
}

// LayersConfig names the layers, object groups and object types a level
// map is expected to carry.
type LayersConfig struct {
	Ground    string `yaml:"ground"`
	Water     string `yaml:"water"`
	Obstacles string `yaml:"obstacles"` // optional in maps
	Goal      string `yaml:"goal"`

	PlayerGroup string `yaml:"player_group"`
	LetterGroup string `yaml:"letter_group"`
	EnemyGroup  string `yaml:"enemy_group"`

	SpawnType      string `yaml:"spawn_type"`
	LetterType     string `yaml:"letter_type"`
	BombType       string `yaml:"bomb_type"`
	HovercraftType string `yaml:"hovercraft_type"`
}

// LevelConfig is one entry of the level catalog.
type LevelConfig struct {
	Number int    `yaml:"number"`
	Word   string `yaml:"word"`
	Map    string `yaml:"map"` // path inside the map filesystem
}

type DifficultyConfig struct {
	Default Difficulty                      `yaml:"default"`
	Presets map[Difficulty]DifficultyPreset `yaml:"presets"`
}

// DifficultyPreset scales enemy behavior. Both values are multipliers.
type DifficultyPreset struct {
	EnemySpeed   float64 `yaml:"enemy_speed"`
	TurnInterval float64 `yaml:"turn_interval"`
}

type StorageConfig struct {
	AppName string `yaml:"app_name"` // settings directory name
	DBPath  string `yaml:"db_path"`  // best-times database
}

// Level returns the catalog entry for a 1-based level number.
func (c *GameConfig) Level(number int) (LevelConfig, bool) {
	for _, l := range c.Levels {
		if l.Number == number {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// LevelCount returns the number of levels in the catalog.
func (c *GameConfig) LevelCount() int {
	return len(c.Levels)
}

// Preset returns the multipliers for d. Unknown presets behave like normal.
func (c *GameConfig) Preset(d Difficulty) DifficultyPreset {
	if p, ok := c.Difficulty.Presets[d]; ok {
		return p
	}
	return DifficultyPreset{EnemySpeed: 1, TurnInterval: 1}
}
