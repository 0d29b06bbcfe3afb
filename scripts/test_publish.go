//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/room-search-microservice/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	roomID := flag.Int64("room", 1, "Room ID to geocode")
	address := flag.String("address", "", "Address to geocode (forward)")
	lat := flag.Float64("lat", 21.0245, "Latitude (reverse, used when -address is empty)")
	lng := flag.Float64("lng", 105.8412, "Longitude (reverse, used when -address is empty)")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.RoomGeocodeEvent{
		EventID: uuid.New(),
		RoomID:  *roomID,
		Country: "vn",
	}
	if *address != "" {
		event.Address = address
	} else {
		event.Latitude = lat
		event.Longitude = lng
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Читаем ответы только после публикации
	lastID, err := lastMessageID(ctx, client, domain.StreamRoomGeocoded)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", domain.StreamRoomGeocoded, err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamRoomGeocode,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamRoomGeocode)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.EventID)
	fmt.Printf("   Room ID: %d\n", event.RoomID)

	fmt.Printf("\nWaiting for response in %s...\n", domain.StreamRoomGeocoded)

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		streams, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamRoomGeocoded, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			log.Fatalf("Failed to read responses: %v", err)
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				lastID = msg.ID
				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var response domain.RoomGeocodedEvent
				if err := json.Unmarshal([]byte(raw), &response); err != nil {
					continue
				}
				if response.EventID != event.EventID {
					continue
				}

				pretty, _ := json.MarshalIndent(response, "", "  ")
				fmt.Printf("\nResponse received:\n%s\n", pretty)
				return
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}

func lastMessageID(ctx context.Context, client *redis.Client, stream string) (string, error) {
	msgs, err := client.XRevRangeN(ctx, stream, "+", "-", 1).Result()
	if err != nil {
		return "", err
	}
	if len(msgs) == 0 {
		return "0", nil
	}
	return msgs[0].ID, nil
}
