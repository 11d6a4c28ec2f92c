package progression

import "fmt"

// FloorInfo is a printable summary of a floor's parameters.
type FloorInfo struct {
	Floor           int      `json:"floor" yaml:"floor"`
	Tier            string   `json:"tier" yaml:"tier"`
	Difficulty      string   `json:"difficulty" yaml:"difficulty"`
	RoomCount       string   `json:"room_count" yaml:"room_count"`
	EnemyCount      string   `json:"enemy_count" yaml:"enemy_count"`
	MiniBossChance  string   `json:"mini_boss_chance" yaml:"mini_boss_chance"`
	Multiplier      float64  `json:"difficulty_multiplier" yaml:"difficulty_multiplier"`
	IsBossFloor     bool     `json:"is_boss_floor" yaml:"is_boss_floor"`
	AvailableBiomes []string `json:"available_biomes" yaml:"available_biomes"`
}

// Info summarises the parameters of a floor.
func Info(floor int) FloorInfo {
	p := ForFloor(floor)
	return FloorInfo{
		Floor:           floor,
		Tier:            p.Tier.String(),
		Difficulty:      p.Tier.Difficulty(),
		RoomCount:       p.RoomCount.String(),
		EnemyCount:      p.EnemyCount.String(),
		MiniBossChance:  fmt.Sprintf("%.0f%%", p.MiniBossChance*100),
		Multiplier:      p.DifficultyMultiplier,
		IsBossFloor:     p.IsBossFloor,
		AvailableBiomes: Biomes(floor),
	}
}
