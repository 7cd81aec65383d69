package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

var queries = []string{"nike", "adidas", "spotify", "sj", "apple", "hm", "zalando", "åhlens", "ica", "bok"}

var logos = []string{
	"https://img.meccdn.com/logos/nike.png",
	"https://img.meccdn.com/logos/adidas.png",
	"https://www.studentkortet.se/media/partner/sj.png",
}

type result struct {
	endpoint string
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

type loadTester struct {
	baseURL string
	client  *http.Client
}

func main() {
	baseURL := flag.String("url", "http://127.0.0.1:8080", "service base URL")
	workers := flag.Int("workers", 50, "concurrent workers")
	duration := flag.Duration("duration", 10*time.Second, "duration of each phase")
	flag.Parse()

	lt := &loadTester{
		baseURL: strings.TrimSuffix(*baseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        200,
				MaxIdleConnsPerHost: 200,
				IdleConnTimeout:     30 * time.Second,
				DialContext: (&net.Dialer{
					Timeout:   2 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
			},
		},
	}

	fmt.Println("=== Alumnirabatt Load Test ===")
	fmt.Printf("Target: %s | Workers: %d | Phase: %s\n\n", lt.baseURL, *workers, *duration)

	fmt.Print("Waiting for server... ")
	if !lt.waitHealthy(30) {
		fmt.Println("FAILED: server not responding")
		return
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Search (cold + cached) ---")
	lt.runPhase(*workers, *duration, func(rng *rand.Rand) result {
		return lt.doSearch(queries[rng.Intn(len(queries))])
	})

	fmt.Println("\n--- Phase 2: Logos (light/dark) ---")
	lt.runPhase(*workers, *duration, func(rng *rand.Rand) result {
		return lt.doLogo(logos[rng.Intn(len(logos))], rng.Intn(2) == 0)
	})

	fmt.Println("\n--- Phase 3: Mixed (80% search, 20% logo) ---")
	lt.runPhase(*workers, *duration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.8 {
			return lt.doSearch(queries[rng.Intn(len(queries))])
		}
		return lt.doLogo(logos[rng.Intn(len(logos))], rng.Intn(2) == 0)
	})
}

func (lt *loadTester) waitHealthy(attempts int) bool {
	for i := 0; i < attempts; i++ {
		resp, err := lt.client.Get(lt.baseURL + "/health")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(200 * time.Millisecond)
	}
	return false
}

func (lt *loadTester) runPhase(workers int, duration time.Duration, workFn func(rng *rand.Rand) result) {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	var mu sync.Mutex
	allResults := make(map[string]*stats)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		seed := time.Now().UnixNano() + int64(i)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			for ctx.Err() == nil {
				r := workFn(rng)
				mu.Lock()
				s, ok := allResults[r.endpoint]
				if !ok {
					s = &stats{}
					allResults[r.endpoint] = s
				}
				s.count++
				if r.err {
					s.errors++
				}
				s.latencies = append(s.latencies, r.latency)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	printResults(allResults, duration)
}

func (lt *loadTester) doSearch(q string) result {
	start := time.Now()
	resp, err := lt.client.Get(lt.baseURL + "/api/search?q=" + url.QueryEscape(q))
	if err != nil {
		return result{"GET /api/search", time.Since(start), true}
	}
	defer resp.Body.Close()

	var body struct {
		Results []json.RawMessage `json:"results"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)
	lat := time.Since(start)
	return result{"GET /api/search", lat, resp.StatusCode != http.StatusOK || decodeErr != nil || body.Results == nil}
}

func (lt *loadTester) doLogo(src string, dark bool) result {
	endpoint := "GET /api/logo"
	if dark {
		endpoint += " (dark)"
	}
	u := fmt.Sprintf("%s/api/logo?src=%s&dark=%t", lt.baseURL, url.QueryEscape(src), dark)

	start := time.Now()
	resp, err := lt.client.Get(u)
	if err != nil {
		return result{endpoint, time.Since(start), true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	lat := time.Since(start)
	return result{endpoint, lat, resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "image/png"}
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps, totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	slices.Sort(endpoints)

	fmt.Printf("\n  %-24s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 90))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors
		slices.Sort(s.latencies)

		fmt.Printf("  %-24s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	fmt.Println("  " + strings.Repeat("-", 90))
	if totalOps == 0 {
		fmt.Println("  no requests completed")
		return
	}
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, float64(totalOps)/duration.Seconds())
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
