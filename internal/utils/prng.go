// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"go-dungeon-arpg/internal/defs"

	"golang.org/x/image/math/f64"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в [min, max). При max <= min возвращает min.
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// Direction возвращает случайный единичный вектор на плоскости.
func (s *PRNGService) Direction() f64.Vec2 {
	angle := s.rng.Float64() * 2 * math.Pi
	sin, cos := math.Sincos(angle)
	return f64.Vec2{cos, sin}
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы выпадения
// и возвращает id артефакта. Пустая таблица даёт пустую строку.
func (s *PRNGService) ChooseWeighted(entries []defs.LootEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].ArtifactID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.ArtifactID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].ArtifactID
}
