package usecase

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/room-search-microservice/internal/domain"
)

// roomImageCatalog - структура YAML каталога
type roomImageCatalog struct {
	Default []string            `yaml:"default"`
	Types   map[string][]string `yaml:"types"`
}

// RoomImageUseCase выдает изображения для карточек комнат из неизменяемого каталога
type RoomImageUseCase struct {
	byType   map[string][]string
	all      []string
	defaults []string
	pick     func(n int) int
	logger   *zap.Logger
}

// NewRoomImageUseCase разбирает YAML каталог. pick == nil - math/rand.
func NewRoomImageUseCase(catalogYAML []byte, pick func(n int) int, logger *zap.Logger) (*RoomImageUseCase, error) {
	var catalog roomImageCatalog
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		return nil, fmt.Errorf("parse room image catalog: %w", err)
	}
	if len(catalog.Default) == 0 {
		return nil, fmt.Errorf("room image catalog: default images are required")
	}

	if pick == nil {
		pick = rand.IntN
	}

	byType := make(map[string][]string, len(catalog.Types))
	for t, urls := range catalog.Types {
		key := strings.ToLower(strings.TrimSpace(t))
		if !domain.RoomType(key).Valid() {
			return nil, fmt.Errorf("room image catalog: unknown room type %q", t)
		}
		byType[key] = append([]string(nil), urls...)
	}

	// Все изображения без повторов в порядке типов
	seen := make(map[string]struct{})
	var all []string
	for _, rt := range domain.RoomTypes {
		for _, u := range byType[string(rt)] {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			all = append(all, u)
		}
	}

	logger.Info("Room image catalog loaded",
		zap.Int("types", len(byType)),
		zap.Int("images", len(all)))

	return &RoomImageUseCase{
		byType:   byType,
		all:      all,
		defaults: append([]string(nil), catalog.Default...),
		pick:     pick,
		logger:   logger,
	}, nil
}

// RandomImage возвращает случайное изображение для типа. Для неизвестного
// или пустого типа выбор идет из всех изображений, затем из изображений по умолчанию.
func (uc *RoomImageUseCase) RandomImage(roomType string) string {
	images := uc.byType[strings.ToLower(strings.TrimSpace(roomType))]
	if len(images) == 0 {
		images = uc.all
	}
	if len(images) == 0 {
		images = uc.defaults
	}
	return images[uc.pick(len(images))]
}

// ImagesByType возвращает копию каталога
func (uc *RoomImageUseCase) ImagesByType() map[string][]string {
	out := make(map[string][]string, len(uc.byType))
	for t, urls := range uc.byType {
		out[t] = append([]string(nil), urls...)
	}
	return out
}

// DefaultImages возвращает изображения по умолчанию
func (uc *RoomImageUseCase) DefaultImages() []string {
	return append([]string(nil), uc.defaults...)
}
