// Command campusnav finds shortest walking routes on the campus map.
//
//	campusnav                 interactive menu
//	campusnav nodes           list places
//	campusnav route A J       shortest route from A to J
//	campusnav reach J         places reachable from J
//	campusnav serve           JSON API on --addr
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
