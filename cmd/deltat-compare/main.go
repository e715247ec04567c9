// Command deltat-compare evaluates the compiled-in Delta-T table against
// an externally published reference series (e.g. IERS bulletins exported
// as CSV) and reports the mean offset and RMSE around that mean. The
// compiled table is authoritative; this tool only measures drift.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"go.ngs.io/ephemeris-api/internal/adapter/deltat"
	"go.ngs.io/ephemeris-api/internal/domain"
)

func main() {
	file := flag.String("file", "", "Path to reference CSV with header mjd,delta_t_seconds")
	verbose := flag.Bool("verbose", false, "Print the per-sample differences")
	flag.Parse()

	if *file == "" {
		log.Fatal("missing -file: path to a Delta-T reference CSV")
	}

	reference, err := deltat.NewReferenceLoader(*file).Load()
	if err != nil {
		log.Fatalf("failed to load reference series: %v", err)
	}

	diffs := make([]float64, len(reference))
	sum := 0.0
	for i, sample := range reference {
		computed := domain.DeltaT(sample.MJD)
		diffs[i] = computed - sample.Seconds
		sum += diffs[i]

		if *verbose {
			fmt.Printf("mjd=%10.1f reference=%9.4f computed=%9.4f diff=%+8.4f\n",
				sample.MJD, sample.Seconds, computed, diffs[i])
		}
	}

	mean := sum / float64(len(diffs))

	sumSq := 0.0
	maxAbs := 0.0
	for _, d := range diffs {
		dev := d - mean
		sumSq += dev * dev
		if math.Abs(d) > maxAbs {
			maxAbs = math.Abs(d)
		}
	}
	rmse := math.Sqrt(sumSq / float64(len(diffs)))

	fmt.Printf("samples:        %d\n", len(reference))
	fmt.Printf("span:           mjd %.1f .. %.1f\n", reference[0].MJD, reference[len(reference)-1].MJD)
	fmt.Printf("mean offset:    %+.4f s\n", mean)
	fmt.Printf("rmse (demeaned): %.4f s\n", rmse)
	fmt.Printf("max |diff|:     %.4f s\n", maxAbs)
}
