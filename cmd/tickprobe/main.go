package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"crypto-collector/internal/exchange"
)

// tickprobe fetches a single ticker and prints it. Useful for verifying
// exchange connectivity and symbol spelling without a database.
func main() {
	name := flag.String("exchange", "binance", "exchange name")
	baseURL := flag.String("url", "https://api.binance.com", "exchange REST base URL")
	symbol := flag.String("symbol", "BTC/USDT", "trading pair (BASE/QUOTE)")
	flag.Parse()

	client := exchange.NewClient(*name, *baseURL, exchange.WithTimeout(10*time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	ticker, err := client.GetTicker(ctx, *symbol)
	if err != nil {
		log.Fatalf("GetTicker failed: %v", err)
	}

	fmt.Printf("Exchange: %s\n", ticker.Exchange)
	fmt.Printf("Symbol:   %s\n", ticker.Symbol)
	fmt.Printf("Last:     %.8f\n", ticker.Last)
	if ticker.Bid != nil {
		fmt.Printf("Bid:      %.8f\n", *ticker.Bid)
	}
	if ticker.Ask != nil {
		fmt.Printf("Ask:      %.8f\n", *ticker.Ask)
	}
	if ticker.Bid != nil && ticker.Ask != nil {
		fmt.Printf("Spread:   %.8f\n", *ticker.Ask-*ticker.Bid)
	}
}
