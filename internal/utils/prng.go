// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService - это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// ChooseWeighted выполняет взвешенный случайный выбор: суммирует веса,
// выбирает число в этом диапазоне и находит индекс, которому оно соответствует.
// Элементы с весом <= 0 никогда не выбираются. Возвращает -1, если
// выбирать не из чего.
func (s *PRNGService) ChooseWeighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	r := s.rng.Float64() * total
	upto := 0.0
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		upto += w
		if r < upto {
			return i
		}
		last = i
	}
	// Сюда попадаем только из-за погрешности суммирования
	return last
}

// Sample возвращает k различных индексов из [0, n) в случайном порядке.
// Если k > n, возвращаются все n индексов.
func (s *PRNGService) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	perm := s.rng.Perm(n)
	return perm[:k]
}
