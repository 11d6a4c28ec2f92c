// Package quality scores generated floors. The Dungeon Quality Score (DQS)
// is a weighted blend of four metrics, each normalized to [0,1].
package quality

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonascend/internal/logger"
	"github.com/samdwyer/dungeonascend/internal/pathfinding"
	"github.com/samdwyer/dungeonascend/internal/telemetry"
	"github.com/samdwyer/dungeonascend/internal/world"
)

// Metric weights. They sum to 1.
const (
	WeightConnectivity = 0.35
	WeightResources    = 0.30
	WeightPathability  = 0.20
	WeightEfficiency   = 0.15
	PathabilityTarget  = 0.40
	OptimalDensityLow  = 0.20
	OptimalDensityHigh = 0.40
	MaxDensity         = 0.70
)

// Metrics are the four normalized sub-scores.
type Metrics struct {
	Pathability           float64 `json:"pathability" yaml:"pathability"`
	ResourceAccessibility float64 `json:"resource_accessibility" yaml:"resource_accessibility"`
	RoomConnectivity      float64 `json:"room_connectivity" yaml:"room_connectivity"`
	SpaceEfficiency       float64 `json:"space_efficiency" yaml:"space_efficiency"`
}

// Counts are the raw figures the metrics were derived from.
type Counts struct {
	Rooms               int `json:"rooms" yaml:"rooms"`
	ConnectedRooms      int `json:"connected_rooms" yaml:"connected_rooms"`
	Enemies             int `json:"enemies" yaml:"enemies"`
	Resources           int `json:"resources" yaml:"resources"`
	AccessibleResources int `json:"accessible_resources" yaml:"accessible_resources"`
	ReachableTiles      int `json:"reachable_tiles" yaml:"reachable_tiles"`
	TotalTiles          int `json:"total_tiles" yaml:"total_tiles"`
	RoomArea            int `json:"room_area" yaml:"room_area"`
}

// Report is the result of one evaluation.
type Report struct {
	Score      float64                `json:"dqs" yaml:"dqs"`
	Grade      Grade                  `json:"grade" yaml:"grade"`
	Metrics    Metrics                `json:"metrics" yaml:"metrics"`
	Counts     Counts                 `json:"counts" yaml:"counts"`
	Validation pathfinding.Validation `json:"-" yaml:"-"`
}

// Evaluate scores the dungeon's current state. Reachability is measured
// from the first room's center.
func Evaluate(ctx context.Context, d *world.Dungeon) *Report {
	_, span := telemetry.Tracer("quality").Start(ctx, "quality.evaluate")
	defer span.End()

	counts := Counts{
		Rooms:      len(d.Rooms),
		Enemies:    len(d.Enemies),
		Resources:  len(d.Resources),
		TotalTiles: d.TotalTiles(),
		RoomArea:   d.RoomArea(),
	}

	var validation pathfinding.Validation
	if len(d.Rooms) == 0 {
		validation = pathfinding.Validate(d, nil)
	} else {
		start := d.Rooms[0].Center()
		validation = pathfinding.ValidateSet(d, start, pathfinding.Reachable(d, start))
	}
	counts.ConnectedRooms = validation.ConnectedRooms
	counts.AccessibleResources = validation.AccessibleResources
	counts.ReachableTiles = validation.ReachableTiles

	report := Score(counts)
	report.Validation = validation

	span.SetAttributes(
		attribute.Int("dungeon.floor", d.FloorNumber),
		attribute.Int("dungeon.rooms", counts.Rooms),
		attribute.Float64("quality.dqs", report.Score),
		attribute.String("quality.grade", string(report.Grade)),
	)
	logger.Debug("Evaluated floor", "floor", d.FloorNumber, "dqs", report.Score, "grade", report.Grade)

	return report
}

// Score derives metrics, composite and grade from raw counts.
func Score(c Counts) *Report {
	m := Metrics{
		RoomConnectivity:      RoomConnectivity(c.ConnectedRooms, c.Rooms),
		ResourceAccessibility: ResourceAccessibility(c.AccessibleResources, c.Resources),
		Pathability:           Pathability(c.ReachableTiles, c.TotalTiles),
		SpaceEfficiency:       SpaceEfficiency(c.RoomArea, c.TotalTiles),
	}
	score := Composite(m)
	return &Report{
		Score:   score,
		Grade:   GradeFor(score),
		Metrics: m,
		Counts:  c,
	}
}

// RoomConnectivity is the fraction of rooms reached; zero without rooms.
func RoomConnectivity(connected, total int) float64 {
	if total == 0 {
		return 0
	}
	return clamp(float64(connected) / float64(total))
}

// ResourceAccessibility is the fraction of resources reached. A floor with
// no resources scores 1.
func ResourceAccessibility(accessible, total int) float64 {
	if total == 0 {
		return 1
	}
	return clamp(float64(accessible) / float64(total))
}

// Pathability saturates once PathabilityTarget of the grid is reachable.
func Pathability(reachable, total int) float64 {
	if total == 0 {
		return 0
	}
	ratio := float64(reachable) / float64(total)
	return clamp(ratio / PathabilityTarget)
}

// SpaceEfficiency rates room density: 1 inside the optimal band, rising
// linearly from 0 below it and decaying to 0 at MaxDensity above it.
func SpaceEfficiency(roomArea, total int) float64 {
	if total == 0 {
		return 0
	}
	density := float64(roomArea) / float64(total)
	switch {
	case density < OptimalDensityLow:
		return clamp(density / OptimalDensityLow)
	case density <= OptimalDensityHigh:
		return 1
	default:
		return clamp(1 - (density-OptimalDensityHigh)/(MaxDensity-OptimalDensityHigh))
	}
}

// Composite combines the metrics with the fixed weights.
func Composite(m Metrics) float64 {
	return clamp(WeightConnectivity*m.RoomConnectivity +
		WeightResources*m.ResourceAccessibility +
		WeightPathability*m.Pathability +
		WeightEfficiency*m.SpaceEfficiency)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// Format renders the report as a plain-text block.
func (r *Report) Format(d *world.Dungeon) string {
	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)
	biome := "UNKNOWN"
	if d.Biome != "" {
		biome = strings.ToUpper(d.Biome)
	}

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("DUNGEON QUALITY EVALUATION REPORT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Floor: %d\n", d.FloorNumber)
	fmt.Fprintf(&b, "Biome: %s\n", biome)
	fmt.Fprintf(&b, "Dimensions: %dx%d\n\n", d.Width, d.Height)
	fmt.Fprintf(&b, "OVERALL SCORE: %.3f [%s]\n", r.Score, r.Grade)
	fmt.Fprintf(&b, "Quality: %s\n\n", r.Grade.Description())

	b.WriteString("METRICS BREAKDOWN:\n" + thin + "\n")
	fmt.Fprintf(&b, "  Room Connectivity:       %.1f%% (%d/%d rooms)\n",
		r.Metrics.RoomConnectivity*100, r.Counts.ConnectedRooms, r.Counts.Rooms)
	fmt.Fprintf(&b, "  Resource Accessibility:  %.1f%% (%d/%d resources)\n",
		r.Metrics.ResourceAccessibility*100, r.Counts.AccessibleResources, r.Counts.Resources)
	fmt.Fprintf(&b, "  Pathability:             %.1f%% (%d reachable tiles)\n",
		r.Metrics.Pathability*100, r.Counts.ReachableTiles)
	fmt.Fprintf(&b, "  Space Efficiency:        %.1f%%\n\n", r.Metrics.SpaceEfficiency*100)

	b.WriteString("RAW STATISTICS:\n" + thin + "\n")
	fmt.Fprintf(&b, "  Total Rooms:             %d\n", r.Counts.Rooms)
	fmt.Fprintf(&b, "  Total Enemies:           %d\n", r.Counts.Enemies)
	fmt.Fprintf(&b, "  Total Resources:         %d\n", r.Counts.Resources)
	fmt.Fprintf(&b, "  Reachable Tiles:         %d\n\n", r.Counts.ReachableTiles)

	if r.Validation.Valid {
		b.WriteString("VALIDATION: PASSED\n")
	} else {
		b.WriteString("VALIDATION: FAILED\n")
		if r.Validation.Reason != "" {
			fmt.Fprintf(&b, "  - %s\n", r.Validation.Reason)
		}
	}
	b.WriteString(rule)
	return b.String()
}
