// Command preview generates a synthetic series and prints it with its
// indicator columns. Handy for eyeballing generator and indicator output
// without starting the interactive editor.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"chartlab-go/src/generator"
	"chartlab-go/src/indicators"
	"chartlab-go/src/models"
	"chartlab-go/src/rng"
	"chartlab-go/src/timeframe"
)

func main() {
	n := 60
	seed := int64(42)
	gran := 1
	if len(os.Args) > 1 {
		v, err := strconv.Atoi(os.Args[1])
		if err != nil {
			log.Fatalf("bad bar count %q: %v", os.Args[1], err)
		}
		n = v
	}
	if len(os.Args) > 2 {
		v, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			log.Fatalf("bad seed %q: %v", os.Args[2], err)
		}
		seed = v
	}
	if len(os.Args) > 3 {
		v, err := strconv.Atoi(os.Args[3])
		if err != nil {
			log.Fatalf("bad granularity %q: %v", os.Args[3], err)
		}
		gran = v
	}

	params := generator.Params{
		StartPrice: 100,
		Drift:      0.0005,
		Volatility: 0.01,
		Substeps:   8,
	}
	base := generator.Generate(n, params, rng.NewSeeded(seed))
	display := timeframe.Aggregate(base, gran)
	snaps := indicators.NewCalculator().CalculateAll(display)

	fmt.Printf("%4s %8s %8s %8s %8s  %8s %8s %7s %8s\n",
		"idx", "open", "high", "low", "close", "sma", "ema", "rsi", "macd")
	for i, b := range display {
		fmt.Printf("%4d %8.2f %8.2f %8.2f %8.2f  %8s %8s %7s %8s\n",
			b.Index, b.Open, b.High, b.Low, b.Close,
			cell(snaps[i].SMA), cell(snaps[i].EMA), cell(snaps[i].RSI), cell(snaps[i].MACD))
	}
}

func cell(v float64) string {
	if !models.Defined(v) {
		return "--"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
