//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/airport-tracker/internal/domain"
	"github.com/redis/go-redis/v9"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	icao := flag.String("airport", "UUEE", "ICAO код аэропорта")
	hours := flag.Int("hours", 24, "глубина импорта в часах")
	group := flag.String("group", "flight-import-workers", "consumer group для проверки обработки")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.NewImportRequestEvent(*icao, *hours)
	if !event.Validate() {
		log.Fatalf("Invalid event: icao=%q hours=%d", event.ICAO, event.LookbackHours)
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamFlightImport,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamFlightImport)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Airport: %s, %dh\n", event.ICAO, event.LookbackHours)

	// Ждём, пока воркер подтвердит сообщение
	fmt.Printf("\nWaiting for group %s to ack...\n", *group)
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		pending, err := client.XPending(ctx, domain.StreamFlightImport, *group).Result()
		if err == nil && pending.Count == 0 {
			info, err := client.XInfoGroups(ctx, domain.StreamFlightImport).Result()
			if err == nil {
				for _, g := range info {
					if g.Name == *group && g.LastDeliveredID >= id {
						fmt.Printf("Processed by %s\n", *group)
						return
					}
				}
			}
		}
		time.Sleep(500 * time.Millisecond)
	}

	fmt.Printf("Timeout: message not processed in 30s\n")
}
