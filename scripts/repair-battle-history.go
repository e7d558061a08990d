package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pokebattle/battle-api/internal/redis"
	"github.com/pokebattle/battle-api/internal/repositories/battles"
)

func main() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client, err := redis.NewClient(addr, &redis.Options{DialTimeout: 5 * time.Second})
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	if err := redis.Ping(ctx, client); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", addr)
	fmt.Println("Scanning battle history...")

	report, err := battles.RepairRedis(ctx, client, false)
	if err != nil {
		log.Fatal("Scan failed:", err)
	}

	fmt.Printf("\nChecked %d battles\n", report.Checked)
	if report.Clean() {
		fmt.Println("No problems found!")
		return
	}

	printKeys("Corrupted records", report.Corrupted)
	printKeys("Battles missing from the time index", report.Unindexed)
	printKeys("Index entries without a battle", report.Orphaned)

	fmt.Print("\nDo you want to REPAIR these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	if _, err := battles.RepairRedis(ctx, client, true); err != nil {
		log.Fatal("Repair failed:", err)
	}
	fmt.Println("\nRepair complete!")
}

func printKeys(title string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, key := range keys {
		fmt.Printf("  - %s\n", key)
	}
}
