package worker

import (
	"context"
)

// Worker - фоновый процесс, читающий события из стрима
type Worker interface {
	// Start блокирует до остановки воркера или отмены контекста
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться после текущей пачки
	Stop() error

	// Name возвращает имя воркера
	Name() string
}
