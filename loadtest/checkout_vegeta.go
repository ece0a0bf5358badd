package main

// 下单接口压测工具：以固定速率向 POST /api/v1/orders 发请求，
// 购物车载荷从商品ID列表中随机挑选，结束后输出延迟分布汇总

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type cartEntry struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}

type orderPayload struct {
	Email   string               `json:"email"`
	Address string               `json:"address"`
	Phone   string               `json:"phone"`
	Cart    map[string]cartEntry `json:"cart"`
}

func main() {
	var (
		baseURL     = flag.String("base", "http://localhost:8080", "Shop server base URL")
		rps         = flag.Int("rate", 100, "Requests per second")
		duration    = flag.String("duration", "30s", "Attack duration (e.g. 10s, 1m)")
		productList = flag.String("products", "1,2,3", "Comma separated product IDs for cart payloads")
		outJSON     = flag.String("out", "vegeta_results.json", "Summary JSON output file")
	)
	flag.Parse()

	attackDuration, err := time.ParseDuration(*duration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid duration:", err)
		os.Exit(1)
	}

	var productIDs []int64
	for _, part := range strings.Split(*productList, ",") {
		var id int64
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "%d", &id); err == nil && id > 0 {
			productIDs = append(productIDs, id)
		}
	}
	if len(productIDs) == 0 {
		fmt.Fprintln(os.Stderr, "no valid product IDs")
		os.Exit(1)
	}

	targeter := func(tgt *vegeta.Target) error {
		pid := productIDs[rand.Intn(len(productIDs))]
		payload := orderPayload{
			Email:   fmt.Sprintf("loadtest+%d@example.com", rand.Intn(1000)),
			Address: "Load Test Street 1",
			Phone:   "+380000000000",
			Cart: map[string]cartEntry{
				fmt.Sprint(pid): {
					ID:       pid,
					Name:     fmt.Sprintf("product-%d", pid),
					Price:    float64(rand.Intn(100000)) / 100,
					Quantity: int32(1 + rand.Intn(3)),
				},
			},
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}

		tgt.Method = "POST"
		tgt.URL = *baseURL + "/api/v1/orders"
		tgt.Body = body
		tgt.Header = map[string][]string{"Content-Type": {"application/json"}}
		return nil
	}

	attacker := vegeta.NewAttacker()
	pacer := vegeta.Rate{Freq: *rps, Per: time.Second}

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, pacer, attackDuration, "checkout") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Printf("requests: %d  success: %.2f%%\n", metrics.Requests, metrics.Success*100)
	fmt.Printf("latency p50=%s p95=%s p99=%s max=%s\n",
		metrics.Latencies.P50, metrics.Latencies.P95, metrics.Latencies.P99, metrics.Latencies.Max)
	fmt.Printf("status codes: %v\n", metrics.StatusCodes)

	out, err := os.Create(*outJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create summary file:", err)
		os.Exit(1)
	}
	defer out.Close()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&metrics); err != nil {
		fmt.Fprintln(os.Stderr, "write summary:", err)
		os.Exit(1)
	}
}
