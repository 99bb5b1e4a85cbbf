// Command fieldguard runs the fieldguard analyzer as a standalone vet-like tool:
//
//	fieldguard ./...
//	go vet -vettool=$(which fieldguard) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/fieldguard"
)

func main() {
	singlechecker.Main(fieldguard.Analyzer)
}
