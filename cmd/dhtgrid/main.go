// Command dhtgrid prints the radial and spectral grids of a Hankel transform
// mode, a quick diagnostic when mapping field-solver layouts to spectral
// indices.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	algodht "github.com/cwbudde/algo-dht"
)

func main() {
	var (
		p    = flag.Int("p", 0, "transform order")
		m    = flag.Int("m", 0, "azimuthal mode (must be p-1, p or p+1)")
		nr   = flag.Int("nr", 16, "number of radial points")
		rmax = flag.Float64("rmax", 1.0, "domain edge radius")
	)
	flag.Parse()

	d, err := algodht.New(*p, *m, *nr, 1, *rmax, algodht.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dhtgrid: %v\n", err)
		os.Exit(1)
	}

	r, nu := d.R(), d.Nu()
	edge := *rmax
	fmt.Printf("order p=%d, azimuthal mode m=%d, Nr=%d, rmax=%g\n", *p, *m, *nr, edge)
	fmt.Printf("%4s  %14s  %14s  %14s\n", "i", "r", "nu", "bessel root")
	for i := range r {
		fmt.Printf("%4d  %14.8f  %14.8f  %14.8f\n", i, r[i], nu[i], 2*math.Pi*edge*nu[i])
	}
}
