package app

import (
	"math/rand"

	"RpgTools/internal/world/entity"

	opensimplex "github.com/ojrac/opensimplex-go"
	"go.uber.org/zap"
)

// TerrainGenConfig 控制噪声地形生成。高度取值 0~1。
type TerrainGenConfig struct {
	Seed        int64 // 0 表示随机
	Mountain    entity.MountainID
	HillLevel   float64
	PeakLevel   float64
	Octaves     int
	Frequency   float64
	Persistence float64
}

func DefaultTerrainGenConfig(mountain entity.MountainID) TerrainGenConfig {
	return TerrainGenConfig{
		Mountain:    mountain,
		HillLevel:   0.6,
		PeakLevel:   0.8,
		Octaves:     4,
		Frequency:   0.15,
		Persistence: 0.5,
	}
}

// GenerateTerrain 用分形单纯形噪声给城镇的平原格子生成丘陵和山地。
//
// 已经是河流或其他山脉的格子保持不变。返回改动的格子数。
func (s *EditorService) GenerateTerrain(data *entity.RpgData, townID entity.TownID, cfg TerrainGenConfig) (int, error) {
	town, err := s.getTown(data, townID)
	if err != nil {
		return 0, err
	}
	if err := s.checkTerrain(data, entity.HillTerrain(cfg.Mountain)); err != nil {
		return 0, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	noise := opensimplex.NewNormalized(seed)
	m := town.Map()
	size := m.Size()
	changed := 0
	tiles := m.Tiles()
	for i := range tiles {
		if tiles[i].Terrain.Kind() != entity.TerrainPlain {
			continue
		}
		h := octaveNoise(noise, float64(size.ToX(i)), float64(size.ToY(i)), cfg.Octaves, cfg.Frequency, cfg.Persistence)
		switch {
		case h >= cfg.PeakLevel:
			tiles[i].Terrain = entity.MountainTerrain(cfg.Mountain)
		case h >= cfg.HillLevel:
			tiles[i].Terrain = entity.HillTerrain(cfg.Mountain)
		default:
			continue
		}
		changed++
	}
	if changed == 0 {
		return 0, nil
	}
	if mountain, ok := data.Mountains.GetMut(cfg.Mountain); ok {
		mountain.AddTown(townID)
	}
	s.changed(data, "generate_terrain", zap.Int("town", int(townID)), zap.Int64("seed", seed), zap.Int("changed", changed))
	return changed, nil
}

// octaveNoise 叠加多个频率的噪声，结果归一到 0~1。
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	total, amplitude, maxVal := 0.0, 1.0, 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
