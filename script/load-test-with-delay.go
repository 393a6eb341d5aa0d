package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/dto"
	"golang.org/x/sync/errgroup"
)

// Scenario is one kind of call the load test issues
type Scenario struct {
	Name   string
	Path   string // Path below /api/v1/users/:userId
	Kind   string // Request kind, empty for trades
	Amount string
}

// Outcome is what one call produced
type Outcome struct {
	Scenario     string
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// Report aggregates outcomes
type Report struct {
	mu            sync.Mutex
	planned       int
	elapsed       time.Duration
	responseTimes []time.Duration
	byStatus      map[int]int
	byScenario    map[string]map[int]int
	transport     map[string]int
}

func newReport(planned int) *Report {
	return &Report{
		planned:       planned,
		responseTimes: make([]time.Duration, 0, planned),
		byStatus:      make(map[int]int),
		byScenario:    make(map[string]map[int]int),
		transport:     make(map[string]int),
	}
}

func (r *Report) add(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.Err != nil {
		r.transport[o.Err.Error()]++
		return
	}

	r.responseTimes = append(r.responseTimes, o.ResponseTime)
	r.byStatus[o.StatusCode]++
	if r.byScenario[o.Scenario] == nil {
		r.byScenario[o.Scenario] = make(map[int]int)
	}
	r.byScenario[o.Scenario][o.StatusCode]++
}

func (r *Report) completed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.responseTimes)
	for _, count := range r.transport {
		n += count
	}
	return n
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userIDsStr := flag.String("u", "1,2,3", "Comma-separated list of registered user IDs")
	assetID := flag.Uint64("asset", 1, "Asset ID to trade")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests of one worker in milliseconds")
	flag.Parse()

	userIDs := parseUserIDs(*userIDsStr)

	scenarios := []Scenario{
		{"buy-small", "buy", "", "0.5"},
		{"buy-large", "buy", "", "2"},
		{"sell-small", "sell", "", "0.5"},
		{"sell-large", "sell", "", "2"},
		{"deposit", "requests", "deposit", "250.00"},
		{"withdraw", "requests", "withdraw", "100.00"},
	}

	fmt.Printf("Load testing %s across users %v, asset %d\n", *baseURL, userIDs, *assetID)
	fmt.Printf("Concurrency: %d, requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	report := newReport(*totalRequests)
	jobs := make(chan struct{}, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go printProgress(ctx, report)

	client := &http.Client{Timeout: 10 * time.Second}
	started := time.Now()

	var group errgroup.Group
	for i := 0; i < *concurrency; i++ {
		group.Go(func() error {
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				userID := userIDs[rand.Intn(len(userIDs))]
				scenario := scenarios[rand.Intn(len(scenarios))]
				report.add(call(client, *baseURL, userID, *assetID, scenario))
			}
			return nil
		})
	}
	_ = group.Wait()

	report.elapsed = time.Since(started)
	cancel()
	report.print()
}

func parseUserIDs(raw string) []uint64 {
	var ids []uint64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		ids = []uint64{1}
	}
	return ids
}

func call(client *http.Client, baseURL string, userID, assetID uint64, scenario Scenario) Outcome {
	var payload any = dto.TradeRequest{AssetID: assetID, Amount: scenario.Amount}
	if scenario.Kind != "" {
		payload = dto.CreateRequestRequest{Kind: scenario.Kind, Amount: scenario.Amount}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Outcome{Scenario: scenario.Name, Err: err}
	}

	url := fmt.Sprintf("%s/api/v1/users/%d/%s", baseURL, userID, scenario.Path)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Outcome{Scenario: scenario.Name, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-ID", strconv.FormatUint(userID, 10))

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return Outcome{Scenario: scenario.Name, ResponseTime: elapsed, Err: err}
	}
	_ = resp.Body.Close()

	return Outcome{Scenario: scenario.Name, StatusCode: resp.StatusCode, ResponseTime: elapsed}
}

func printProgress(ctx context.Context, report *Report) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			done := report.completed()
			fmt.Printf("Progress: %d/%d (%.1f%%)\n", done, report.planned, float64(done)/float64(report.planned)*100)
		}
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func (r *Report) print() {
	times := slices.Clone(r.responseTimes)
	slices.Sort(times)

	var total time.Duration
	for _, d := range times {
		total += d
	}
	var avg time.Duration
	if len(times) > 0 {
		avg = total / time.Duration(len(times))
	}

	// 2xx are executed operations, 4xx are business rejections
	// (insufficient balance, oversell) and 5xx are failures
	var ok, rejected, failed int
	for status, count := range r.byStatus {
		switch {
		case status < 300:
			ok += count
		case status < 500:
			rejected += count
		default:
			failed += count
		}
	}
	for _, count := range r.transport {
		failed += count
	}

	seconds := r.elapsed.Seconds()
	fmt.Println("\n================= RESULTS =================")
	fmt.Printf("Requests:    %d in %.2f s\n", r.planned, seconds)
	fmt.Printf("Executed:    %d\n", ok)
	fmt.Printf("Rejected:    %d\n", rejected)
	fmt.Printf("Failed:      %d\n", failed)
	fmt.Printf("Handled TPS: %.2f\n", float64(ok+rejected)/seconds)

	fmt.Println("\n--------------- RESPONSE TIMES ---------------")
	fmt.Printf("avg %v  p50 %v  p90 %v  p95 %v  p99 %v\n",
		avg, percentile(times, 50), percentile(times, 90), percentile(times, 95), percentile(times, 99))
	if len(times) > 0 {
		fmt.Printf("min %v  max %v\n", times[0], times[len(times)-1])
	}

	fmt.Println("\n--------------- BY SCENARIO ---------------")
	names := make([]string, 0, len(r.byScenario))
	for name := range r.byScenario {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Printf("%-12s %v\n", name, r.byScenario[name])
	}

	if len(r.transport) > 0 {
		fmt.Println("\n--------------- TRANSPORT ERRORS ---------------")
		for msg, count := range r.transport {
			fmt.Printf("%-50s %d\n", msg, count)
		}
	}
}
