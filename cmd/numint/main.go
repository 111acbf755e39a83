// numint integrates one of the test functions from the command line, using
// either the composite Newton-Cotes method or Gauss-Hermite quadrature, and
// exports the plot samples of the integrand.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
