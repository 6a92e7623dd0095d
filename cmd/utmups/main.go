// Command utmups converts between geodetic and UTM/UPS coordinates.
package main

import (
	"fmt"
	"os"

	"github.com/tzneal/utmups/utmupsutil"
)

func main() {
	if err := utmupsutil.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
