package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values must match configs/configs.yml and the expected results below.
const (
	latencyThreshold    = 10 // meters.aggregates[latency].threshold
	queueDepthThreshold = 5  // meters.aggregates[queue_depth].threshold
	latencyBatches      = 100
	queueDepthBatches   = 40
	requestBursts       = 50
	requestsPerBurst    = 20
)

// ### End - fixed configs

type sample struct {
	Meter string   `json:"meter"`
	Value *float64 `json:"value,omitempty"`
	Count *uint32  `json:"count,omitempty"`
}

type snapshot struct {
	Name    string   `json:"name"`
	Ready   bool     `json:"ready"`
	Rate    *float32 `json:"rate"`
	Min     *float64 `json:"min"`
	Avg     *float32 `json:"avg"`
	Max     *float64 `json:"max"`
	Summary string   `json:"summary"`
}

type expectedReport struct {
	meter string
	min   float64
	avg   float64
	max   float64
}

// main runs the e2e scenario: 001_batch_reports
//
// It drives a running opsmeter server with three kinds of traffic at once:
//   - sequential batches of `latency` values, exactly one threshold per request
//   - sequential batches of `queue_depth` integer values
//   - concurrent bursts of `requests` counts
//
// Samples of one meter are sent by a single goroutine so every request closes exactly one
// batch; the meters themselves are updated in parallel by the server.
//
// Expected results:
//   - latency: last batch is 990..999, so min:990ms, avg:994.5ms, max:999ms
//   - queue_depth: last batch is 195..199, so min 195, avg 197, max 199
//   - requests: ready with a positive rate once a window has closed after the bursts
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	parallel := 4

	fmt.Println("Starting e2e scenario: 001_batch_reports")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("LATENCY_BATCHES: %d\n", latencyBatches)
	fmt.Printf("QUEUE_DEPTH_BATCHES: %d\n", queueDepthBatches)
	fmt.Printf("REQUEST_BURSTS: %d x %d\n", requestBursts, requestsPerBurst)
	fmt.Println()

	client := &http.Client{Timeout: 30 * time.Second}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var acceptedRequest int64
	record := func(err error) {
		if err != nil {
			mu.Lock()
			errors = append(errors, err)
			mu.Unlock()
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return
		}
		atomic.AddInt64(&acceptedRequest, 1)
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		for batch := 0; batch < latencyBatches; batch++ {
			record(sendSamples(client, baseURL, valueBatch("latency", batch*latencyThreshold, latencyThreshold)))
		}
	}()
	go func() {
		defer wg.Done()
		for batch := 0; batch < queueDepthBatches; batch++ {
			record(sendSamples(client, baseURL, valueBatch("queue_depth", batch*queueDepthThreshold, queueDepthThreshold)))
		}
	}()

	workerChan := make(chan struct{}, parallel)
	for burst := 0; burst < requestBursts; burst++ {
		wg.Add(1)
		workerChan <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-workerChan }()
			record(sendSamples(client, baseURL, countBatch("requests", requestsPerBurst)))
		}()
	}

	wg.Wait()
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d requests failed\n", len(errors))
		os.Exit(1)
	}
	fmt.Printf("Accepted requests: %d\n", atomic.LoadInt64(&acceptedRequest))
	fmt.Println()

	// give the workers time to drain their partitions and close a rate window
	time.Sleep(1500 * time.Millisecond)

	expected := []expectedReport{
		{meter: "latency", min: 990, avg: 994.5, max: 999},
		{meter: "queue_depth", min: 195, avg: 197, max: 199},
	}
	failed := false
	for _, want := range expected {
		got, err := getSnapshot(client, baseURL, want.meter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s: %v\n", want.meter, err)
			failed = true
			continue
		}
		if !got.Ready || got.Min == nil || got.Avg == nil || got.Max == nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s: not ready: %+v\n", want.meter, got)
			failed = true
			continue
		}
		if *got.Min != want.min || *got.Max != want.max || math.Abs(float64(*got.Avg)-want.avg) > 1e-3 {
			fmt.Fprintf(os.Stderr, "ERROR: %s: got %s, want min %v avg %v max %v\n", want.meter, got.Summary, want.min, want.avg, want.max)
			failed = true
			continue
		}
		fmt.Printf("%s: %s\n", want.meter, got.Summary)
	}

	requests, err := getSnapshot(client, baseURL, "requests")
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "ERROR: requests: %v\n", err)
		failed = true
	case !requests.Ready || requests.Rate == nil:
		fmt.Fprintf(os.Stderr, "ERROR: requests: not ready: %+v\n", requests)
		failed = true
	default:
		// the rate of the last closed window; it may already be back to 0 if traffic stopped early
		fmt.Printf("requests: rate %.2f/s\n", *requests.Rate)
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func valueBatch(meter string, start, size int) []sample {
	samples := make([]sample, 0, size)
	for i := 0; i < size; i++ {
		v := float64(start + i)
		samples = append(samples, sample{Meter: meter, Value: &v})
	}
	return samples
}

func countBatch(meter string, size int) []sample {
	samples := make([]sample, 0, size)
	for i := 0; i < size; i++ {
		samples = append(samples, sample{Meter: meter})
	}
	return samples
}

func sendSamples(client *http.Client, baseURL string, samples []sample) error {
	jsonData, err := json.Marshal(samples)
	if err != nil {
		return fmt.Errorf("failed to encode samples: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/samples", bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}
	return nil
}

func getSnapshot(client *http.Client, baseURL, meter string) (*snapshot, error) {
	resp, err := client.Get(baseURL + "/meters/" + meter)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var out snapshot
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &out, nil
}
