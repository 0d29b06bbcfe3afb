package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/domain"
	"github.com/room-search-microservice/internal/domain/repository"
	"github.com/room-search-microservice/internal/pkg/metrics"
	"github.com/room-search-microservice/internal/worker"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second            // пауза после ошибки чтения
)

// Исходы обработки события для метрик
const (
	outcomeUpdated   = "updated"
	outcomeSkipped   = "skipped"
	outcomeNotFound  = "not_found"
	outcomeFailed    = "failed"
	outcomeMalformed = "malformed"
)

// Geocoder - операции шлюза геокодирования, нужные воркеру
type Geocoder interface {
	Geocode(ctx context.Context, address, country string) (*domain.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, coord *domain.Coordinate, country string) (*domain.GeocodeResult, error)
}

// AddressUpdater сохраняет результат геокодирования в объявлении
type AddressUpdater interface {
	UpdateAddress(ctx context.Context, id int64, address string, coord domain.Coordinate) error
}

// GeocodeWorker дополняет объявления недостающим адресом или координатами.
// Читает stream:room:geocode и публикует результат в stream:room:geocoded.
type GeocodeWorker struct {
	*worker.BaseWorker
	streamRepo     repository.StreamRepository
	geocoder       Geocoder
	rooms          AddressUpdater
	maxRetries     int
	retryDelay     time.Duration
	defaultCountry string
}

// NewGeocodeWorker создает новый GeocodeWorker
func NewGeocodeWorker(
	streamRepo repository.StreamRepository,
	geocoder Geocoder,
	rooms AddressUpdater,
	consumerGroup string,
	maxRetries int,
	defaultCountry string,
	logger *zap.Logger,
) *GeocodeWorker {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &GeocodeWorker{
		BaseWorker:     worker.NewBaseWorker("room-geocode", consumerGroup, logger),
		streamRepo:     streamRepo,
		geocoder:       geocoder,
		rooms:          rooms,
		maxRetries:     maxRetries,
		retryDelay:     500 * time.Millisecond,
		defaultCountry: defaultCountry,
	}
}

// SetRetryDelay меняет базовую паузу между повторами
func (w *GeocodeWorker) SetRetryDelay(d time.Duration) {
	w.retryDelay = d
}

// Start запускает воркер
func (w *GeocodeWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting GeocodeWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRoomGeocode, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.processBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Sleep(ctx, errorSleep)
			continue
		}

		if processed == 0 {
			w.Sleep(ctx, emptyQueueSleep)
		}
	}
}

// processBatch читает и обрабатывает пачку сообщений.
// Возвращает количество прочитанных сообщений.
func (w *GeocodeWorker) processBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(ctx, domain.StreamRoomGeocode, w.ConsumerGroup(), w.ConsumerName(), maxBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	w.Logger().Debug("Processing batch", zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		if w.processMessage(ctx, msg) {
			ackIDs = append(ackIDs, msg.ID)
		}
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamRoomGeocode, w.ConsumerGroup(), ackIDs); err != nil {
		// Не критично - сообщения будут переобработаны
		w.Logger().Error("Failed to ack messages", zap.Error(err))
	}

	return len(messages), nil
}

// processMessage обрабатывает одно сообщение. Возвращает true, если его нужно подтвердить.
// Не подтверждаются только сообщения, обработку которых прервала отмена контекста.
func (w *GeocodeWorker) processMessage(ctx context.Context, msg domain.StreamMessage) bool {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	event, err := parseEvent(msg)
	if err != nil {
		logger.Warn("Failed to parse message, skipping", zap.Error(err))
		metrics.WorkerEvents.WithLabelValues(outcomeMalformed).Inc()
		return true
	}
	logger = logger.With(zap.Int64("room_id", event.RoomID))

	result := domain.RoomGeocodedEvent{
		EventID: event.EventID,
		RoomID:  event.RoomID,
	}

	outcome, err := w.enrich(ctx, event, &result)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		result.Error = err.Error()
		logger.Warn("Room geocoding failed", zap.String("outcome", outcome), zap.Error(err))
	}
	metrics.WorkerEvents.WithLabelValues(outcome).Inc()

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamRoomGeocoded, result); err != nil {
		logger.Error("Failed to publish geocoded event", zap.Error(err))
	}

	return true
}

// enrich выбирает направление геокодирования и сохраняет результат
func (w *GeocodeWorker) enrich(ctx context.Context, event *domain.RoomGeocodeEvent, result *domain.RoomGeocodedEvent) (string, error) {
	country := event.Country
	if country == "" {
		country = w.defaultCountry
	}

	switch {
	case event.HasCoordinates() && event.HasAddress():
		return outcomeSkipped, nil

	case event.HasCoordinates():
		coord, err := domain.NewCoordinate(*event.Latitude, *event.Longitude)
		if err != nil {
			return outcomeMalformed, err
		}
		geo, err := w.withRetry(ctx, func() (*domain.GeocodeResult, error) {
			return w.geocoder.ReverseGeocode(ctx, &coord, country)
		})
		if err != nil {
			return classify(err), err
		}
		return w.store(ctx, event.RoomID, geo.FormattedAddress, coord, geo, result)

	case event.HasAddress():
		address := strings.TrimSpace(*event.Address)
		geo, err := w.withRetry(ctx, func() (*domain.GeocodeResult, error) {
			return w.geocoder.Geocode(ctx, address, country)
		})
		if err != nil {
			return classify(err), err
		}
		return w.store(ctx, event.RoomID, address, geo.Coordinate, geo, result)

	default:
		return outcomeMalformed, errors.New("event has neither address nor coordinates")
	}
}

func (w *GeocodeWorker) store(
	ctx context.Context,
	roomID int64,
	address string,
	coord domain.Coordinate,
	geo *domain.GeocodeResult,
	result *domain.RoomGeocodedEvent,
) (string, error) {
	lat, lng := coord.Lat, coord.Lng
	components := geo.AddressComponents
	result.Latitude = &lat
	result.Longitude = &lng
	result.FormattedAddress = geo.FormattedAddress
	result.Components = &components

	if err := w.rooms.UpdateAddress(ctx, roomID, address, coord); err != nil {
		return outcomeFailed, fmt.Errorf("update room address: %w", err)
	}
	result.AddressUpdated = true
	return outcomeUpdated, nil
}

// withRetry повторяет временные сбои провайдера до maxRetries раз с линейно растущей паузой
func (w *GeocodeWorker) withRetry(ctx context.Context, call func() (*domain.GeocodeResult, error)) (*domain.GeocodeResult, error) {
	for attempt := 0; ; attempt++ {
		geo, err := call()
		if err == nil && geo == nil {
			err = domain.NewGeocodingError(domain.GeocodeErrNotFound, "empty geocoding result", nil)
		}
		if err == nil || !retryable(err) || attempt >= w.maxRetries {
			return geo, err
		}

		w.Logger().Debug("Retrying geocoding",
			zap.Int("attempt", attempt+1),
			zap.String("kind", string(domain.GeocodeKind(err))))
		if !w.Sleep(ctx, time.Duration(attempt+1)*w.retryDelay) {
			return nil, err
		}
	}
}

func retryable(err error) bool {
	switch domain.GeocodeKind(err) {
	case domain.GeocodeErrTimeout, domain.GeocodeErrRateLimit, domain.GeocodeErrProvider:
		return true
	}
	return false
}

func classify(err error) string {
	if domain.IsAddressNotFound(err) {
		return outcomeNotFound
	}
	return outcomeFailed
}

func parseEvent(msg domain.StreamMessage) (*domain.RoomGeocodeEvent, error) {
	if msg.Data == "" {
		return nil, errors.New("empty message data")
	}

	var event domain.RoomGeocodeEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	if event.RoomID <= 0 {
		return nil, fmt.Errorf("invalid room_id: %d", event.RoomID)
	}
	return &event, nil
}
