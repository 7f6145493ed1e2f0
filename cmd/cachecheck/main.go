// Command cachecheck reads a layout through the public endpoints twice and
// reports whether the second read was served from Redis.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"venuebuilder/internal/shared/config"
	"venuebuilder/internal/shared/constants"
	"venuebuilder/pkg/cache"

	"github.com/joho/godotenv"
)

type checkResult struct {
	Name     string
	Key      string
	Miss     time.Duration
	Hit      time.Duration
	Cached   bool
	Err      error
	DataSize int
}

func main() {
	baseURL := flag.String("base", "http://localhost:8080/api/v1", "API base URL")
	layoutID := flag.String("layout", "", "layout id to read")
	nodeID := flag.String("node", "", "optional node id to render")
	flag.Parse()

	if *layoutID == "" {
		fmt.Fprintln(os.Stderr, "usage: cachecheck -layout <id> [-node <id>] [-base <url>]")
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load()
	if err := cache.Init(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}); err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}
	defer cache.Close()
	fmt.Println("✅ Redis connection: OK")

	store := cache.NewService(cache.Client())
	ctx := context.Background()

	// Start cold so the first read is a guaranteed miss
	for _, pattern := range constants.BuildLayoutPattern(*layoutID) {
		if err := store.DeletePattern(ctx, pattern); err != nil {
			log.Fatalf("❌ failed to clear %s: %v", pattern, err)
		}
	}

	checks := []struct {
		name, path, key string
	}{
		{"Layout summary", "/venue-layouts/" + *layoutID + "/summary", constants.BuildLayoutSummaryKey(*layoutID)},
	}
	if *nodeID != "" {
		checks = append(checks, struct{ name, path, key string }{
			"Node render", "/venue-layouts/" + *layoutID + "/nodes/" + *nodeID, constants.BuildLayoutNodeKey(*layoutID, *nodeID),
		})
	}

	client := &http.Client{Timeout: 10 * time.Second}
	var results []checkResult
	for _, c := range checks {
		fmt.Printf("\n🔍 Testing: %s\n", c.name)
		r := checkResult{Name: c.name, Key: c.key}

		if r.Miss, r.DataSize, r.Err = timedGet(client, *baseURL+c.path); r.Err == nil {
			r.Cached = store.Exists(ctx, c.key)
			r.Hit, _, r.Err = timedGet(client, *baseURL+c.path)
		}
		results = append(results, r)
	}

	failed := report(results)
	if failed > 0 {
		os.Exit(1)
	}
}

func timedGet(client *http.Client, url string) (time.Duration, int, error) {
	start := time.Now()
	resp, err := client.Get(url)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	return time.Since(start), len(body), nil
}

func report(results []checkResult) int {
	fmt.Println("\n📊 Cache check report")
	fmt.Println("=====================")
	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Printf("❌ %s: %v\n", r.Name, r.Err)
		case !r.Cached:
			failed++
			fmt.Printf("❌ %s: key %s not written after first read\n", r.Name, r.Key)
		default:
			fmt.Printf("✅ %s: %d bytes, %v -> %v\n", r.Name, r.DataSize, r.Miss, r.Hit)
		}
	}
	return failed
}
