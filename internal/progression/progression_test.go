package progression

import (
	"math/rand"
	"testing"
)

func TestForFloorTiers(t *testing.T) {
	tests := []struct {
		floor      int
		tier       Tier
		rooms      Range
		enemies    Range
		miniBoss   float64
		multiplier float64
	}{
		{1, TierTutorial, Range{4, 6}, Range{5, 8}, 0.1, 1.0},
		{10, TierTutorial, Range{4, 6}, Range{5, 8}, 0.1, 1.0},
		{11, TierEarly, Range{5, 8}, Range{8, 12}, 0.2, 1.2},
		{20, TierEarly, Range{5, 8}, Range{8, 12}, 0.2, 1.2},
		{21, TierMid, Range{7, 10}, Range{12, 18}, 0.3, 1.8},
		{40, TierMid, Range{7, 10}, Range{12, 18}, 0.3, 1.8},
		{41, TierLateMid, Range{8, 12}, Range{15, 22}, 0.4, 2.5},
		{70, TierLateMid, Range{8, 12}, Range{15, 22}, 0.4, 2.5},
		{71, TierEndgame, Range{10, 15}, Range{18, 30}, 0.5, 4.0},
		{100, TierEndgame, Range{10, 15}, Range{18, 30}, 0.5, 4.0},
		{250, TierEndgame, Range{10, 15}, Range{18, 30}, 0.5, 4.0},
	}

	for _, tt := range tests {
		p := ForFloor(tt.floor)
		if p.Tier != tt.tier {
			t.Errorf("floor %d: tier = %v, want %v", tt.floor, p.Tier, tt.tier)
		}
		if p.RoomCount != tt.rooms {
			t.Errorf("floor %d: rooms = %v, want %v", tt.floor, p.RoomCount, tt.rooms)
		}
		if p.EnemyCount != tt.enemies {
			t.Errorf("floor %d: enemies = %v, want %v", tt.floor, p.EnemyCount, tt.enemies)
		}
		if p.MiniBossChance != tt.miniBoss {
			t.Errorf("floor %d: mini-boss chance = %v, want %v", tt.floor, p.MiniBossChance, tt.miniBoss)
		}
		if p.DifficultyMultiplier != tt.multiplier {
			t.Errorf("floor %d: multiplier = %v, want %v", tt.floor, p.DifficultyMultiplier, tt.multiplier)
		}
	}
}

func TestForFloorIsPure(t *testing.T) {
	for floor := 1; floor <= 100; floor++ {
		a, b := ForFloor(floor), ForFloor(floor)
		if a.RoomCount != b.RoomCount || a.EnemyCount != b.EnemyCount || a.IsBossFloor != b.IsBossFloor {
			t.Fatalf("floor %d: parameters differ between calls", floor)
		}
	}
}

func TestIsBossFloor(t *testing.T) {
	tests := []struct {
		floor int
		want  bool
	}{
		{0, false},
		{1, false},
		{10, false},
		{11, true},
		{22, true},
		{33, true},
		{50, false},
		{99, true},
		{100, false},
		{-11, false},
	}

	for _, tt := range tests {
		if got := IsBossFloor(tt.floor); got != tt.want {
			t.Errorf("IsBossFloor(%d) = %v, want %v", tt.floor, got, tt.want)
		}
		if got := ForFloor(tt.floor).IsBossFloor; got != tt.want {
			t.Errorf("ForFloor(%d).IsBossFloor = %v, want %v", tt.floor, got, tt.want)
		}
	}
}

func TestRangeRoll(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := Range{Min: 3, Max: 5}
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := r.Roll(rng)
		if !r.Contains(v) {
			t.Fatalf("Roll returned %d outside %v", v, r)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all 3 values to appear, got %v", seen)
	}

	if got := (Range{Min: 4, Max: 4}).Roll(rng); got != 4 {
		t.Errorf("degenerate range rolled %d", got)
	}
}

func TestBiomeWeights(t *testing.T) {
	weightOf := func(weights []BiomeWeight, biome string) int {
		for _, w := range weights {
			if w.Biome == biome {
				return w.Weight
			}
		}
		return 0
	}

	early := BiomeWeights(5)
	if len(early) != 3 {
		t.Fatalf("tutorial floors should offer 3 biomes, got %d", len(early))
	}
	if weightOf(early, BiomeAstralVoid) != 0 {
		t.Error("astral void should not appear before floor 31")
	}

	if n := len(BiomeWeights(25)); n != 8 {
		t.Errorf("floors 11-30 should offer 8 biomes, got %d", n)
	}
	if weightOf(BiomeWeights(30), BiomeAstralVoid) != 0 {
		t.Error("astral void should not appear on floor 30")
	}

	late := BiomeWeights(50)
	if weightOf(late, BiomeAstralVoid) != 1 {
		t.Errorf("astral void weight on floor 50 = %d, want 1", weightOf(late, BiomeAstralVoid))
	}
	if weightOf(late, BiomeVampire) != 2 || weightOf(late, BiomeJungle) != 1 {
		t.Error("floors 31-70 should favour themed biomes")
	}

	if w := weightOf(BiomeWeights(90), BiomeAstralVoid); w != 3 {
		t.Errorf("astral void weight on floor 90 = %d, want 3", w)
	}
}

func TestPickBiomeDeterministic(t *testing.T) {
	weights := BiomeWeights(50)
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 20; i++ {
		a, b := PickBiome(weights, rng1), PickBiome(weights, rng2)
		if a != b {
			t.Fatalf("pick %d mismatch: %s != %s", i, a, b)
		}
		if a == "" {
			t.Fatal("PickBiome returned empty biome for non-empty weights")
		}
	}
}

func TestPickBiomeEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := PickBiome(nil, rng); got != "" {
		t.Errorf("PickBiome(nil) = %q, want empty", got)
	}
	if got := PickBiome([]BiomeWeight{{Biome: "snow", Weight: 0}}, rng); got != "" {
		t.Errorf("PickBiome(zero weights) = %q, want empty", got)
	}
}

func TestInfo(t *testing.T) {
	info := Info(22)
	if info.Tier != "Mid Game" || info.Difficulty != "Moderate" {
		t.Errorf("unexpected labels: %+v", info)
	}
	if info.RoomCount != "7-10" || info.EnemyCount != "12-18" {
		t.Errorf("unexpected ranges: %+v", info)
	}
	if info.MiniBossChance != "30%" {
		t.Errorf("MiniBossChance = %q, want 30%%", info.MiniBossChance)
	}
	if !info.IsBossFloor {
		t.Error("floor 22 should be a boss floor")
	}
	if len(info.AvailableBiomes) != 8 {
		t.Errorf("AvailableBiomes = %v", info.AvailableBiomes)
	}
}
