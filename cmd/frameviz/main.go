package main

import (
	"flag"
	"fmt"
	"os"

	"rigid3d/internal/frameviz"
)

func main() {
	// CLI flags
	sceneFile := flag.String("scene", "", "Path to scene.json file")
	output := flag.String("output", "", "Output image path, format by extension: .webp, .png, .tga")
	size := flag.Int("size", 0, "Output image size in pixels (default: 512)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	turntable := flag.Int("turntable", 0, "Render N views with the azimuth swept over 360 degrees")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	if *sceneFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -scene is required.")
		os.Exit(1)
	}

	scene, err := frameviz.Load(*sceneFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override the scene file
	scene.Resolve(frameviz.Flags{
		Output:      *output,
		Size:        *size,
		Supersample: *supersample,
	})

	if *turntable > 0 {
		results, err := frameviz.Turntable(scene, *turntable, *workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering turntable: %v\n", err)
			os.Exit(1)
		}
		failed := 0
		for _, r := range results {
			if r.Error != "" {
				failed++
				fmt.Fprintf(os.Stderr, "  step %d: %s\n", r.Step, r.Error)
			}
		}
		fmt.Printf("Rendered %d/%d views\n", len(results)-failed, len(results))
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	img, err := frameviz.Render(&scene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering scene: %v\n", err)
		os.Exit(1)
	}
	if err := frameviz.WriteImage(scene.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", scene.Output)
}
