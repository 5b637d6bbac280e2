package main

import (
	"fmt"
	"os"
	"strings"

	"patternsmith/internal/core"
	"patternsmith/internal/render"
	"patternsmith/internal/store"
	"patternsmith/pkg/pattern"
)

// Sample measurements in cm.
var sampleMeasurements = pattern.Measurements{
	pattern.KeyChest:          102,
	pattern.KeyWaist:          86,
	pattern.KeyHip:            98,
	pattern.KeyNeck:           39,
	pattern.KeyShoulderLength: 45,
	pattern.KeyArmLength:      64,
	pattern.KeyBackLength:     75,
	pattern.KeyShirtLength:    76,
	pattern.KeyBicep:          34,
	pattern.KeyWrist:          17,
	pattern.KeyArmholeDepth:   22,
}

func main() {
	outDir := "patterns"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	logger := core.NewLogger("info", "console")
	st, err := store.New(outDir)
	if err != nil {
		fmt.Printf("❌ Failed to open pattern store: %v\n", err)
		os.Exit(1)
	}
	generator := core.NewGenerator(render.NewRenderer(), st, logger)

	fmt.Println("🧵 patternsmith Demo")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	for _, fit := range pattern.FitCategories {
		result, err := generator.Generate(&core.GenerateRequest{
			Measurements: sampleMeasurements,
			Fit:          fit,
			CustomerName: "Test User",
			GarmentStyle: "Men's Dress Shirt",
		})
		if err != nil {
			fmt.Printf("❌ Error generating %s fit: %v\n", fit, err)
			os.Exit(1)
		}

		fmt.Printf("✅ %s fit pattern generated: %s\n", fit.Label(), result.Filename)
		printPieces(result.Pieces)
		fmt.Println(strings.Repeat("-", 50))
	}
}

func printPieces(pieces []pattern.PatternPiece) {
	for _, p := range pieces {
		fmt.Printf("   %-15s %-16s %s\n", p.Name, p.Dimensions(), p.CuttingNote)
	}
}
