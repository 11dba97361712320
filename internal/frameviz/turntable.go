package frameviz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// TurntableResult records the outcome of one rendered view.
type TurntableResult struct {
	Step       int     `json:"step"`
	AzimuthDeg float64 `json:"azimuth_deg"`
	Image      string  `json:"image"`
	Error      string  `json:"error,omitempty"`
}

// Turntable renders n views of the scene with the azimuth swept over a full
// revolution, using a worker pool. Views are written next to the scene's
// output path with a step suffix, and a manifest.json listing them is placed
// in the same directory.
func Turntable(s Scene, n, workers int) ([]TurntableResult, error) {
	if n <= 0 {
		return nil, errors.New("frameviz: turntable needs at least one step")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]TurntableResult, n)
	var rendered atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := rendered.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f views/sec\n", p, n, rate)
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = renderView(s, idx, n)
				rendered.Add(1)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	if err := writeManifest(filepath.Dir(s.Output), results); err != nil {
		return results, err
	}
	return results, nil
}

// renderView renders a single turntable step. The scene is copied by value;
// its frames are only read.
func renderView(s Scene, idx, n int) TurntableResult {
	view := s
	view.AzimuthDeg = s.AzimuthDeg + 360*float64(idx)/float64(n)

	ext := filepath.Ext(s.Output)
	view.Output = fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(s.Output, ext), idx, ext)

	res := TurntableResult{Step: idx, AzimuthDeg: view.AzimuthDeg, Image: view.Output}
	img, err := Render(&view)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if err := WriteImage(view.Output, img); err != nil {
		res.Error = err.Error()
	}
	return res
}

// writeManifest writes manifest.json to the output directory.
func writeManifest(dir string, results []TurntableResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return errors.Wrap(err, "frameviz: manifest")
	}
	return os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0644)
}
