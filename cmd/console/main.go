// Command console runs a Hack machine without a window. By default it
// boots the machine, waits for it to finish, and prints a range of RAM as
// index:value lines, exiting with the machine's own status. The -live and
// -monitor modes attach a terminal view to the machine while it runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/pcardune/hackvm/pkg/hack"
	"github.com/pcardune/hackvm/pkg/machine"
	"github.com/pcardune/hackvm/pkg/monitor"
	"github.com/pcardune/hackvm/pkg/terminal"
)

func main() {
	var (
		timeoutFlag = flag.Duration("timeout", 5*time.Second, "how long to wait for the machine to publish its RAM")
		demoFlag    = flag.Bool("demo", false, "run the built-in demo machine instead of a RAM image")
		liveFlag    = flag.Bool("live", false, "render the screen in the terminal instead of dumping memory")
		monitorFlag = flag.Bool("monitor", false, "open the interactive memory monitor instead of dumping memory")
		stepFlag    = flag.Int("step", 8, "pixels per character for -live")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <image.ram> [start [end]]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -demo [-live | -monitor]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	args := flag.Args()
	var m hack.Machine
	if *demoFlag {
		m = &machine.Demo{}
	} else {
		if len(args) < 1 {
			flag.Usage()
		}
		img, err := machine.LoadImage(args[0])
		if err != nil {
			log.Fatalf("loading RAM image: %v", err)
		}
		m = img
		args = args[1:]
	}

	start, end := parseRange(args)

	boot := hack.Start(m)
	ram, err := boot.WaitRAM(*timeoutFlag)
	if err != nil {
		log.Fatalf("boot: %v", err)
	}

	switch {
	case *monitorFlag:
		if err := monitor.New(ram).Run(); err != nil {
			log.Fatalf("monitor: %v", err)
		}
	case *liveFlag:
		stop := make(chan struct{})
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		go func() {
			<-sig
			close(stop)
		}()
		(&terminal.View{Step: *stepFlag}).Loop(ram, stop)
	default:
		// Synchronous path: let the machine finish before reading its
		// memory, then report its own status.
		code := boot.Wait()
		if err := hack.Dump(os.Stdout, ram, start, end); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(code)
	}
}

// parseRange interprets the positional start/end arguments: none dumps the
// first words of RAM, one dumps a single address, two dump [start, end).
func parseRange(args []string) (start, end int) {
	switch len(args) {
	case 0:
		return 0, hack.DefaultDumpLen
	case 1:
		start = atoiOrUsage(args[0])
		return start, start + 1
	case 2:
		return atoiOrUsage(args[0]), atoiOrUsage(args[1])
	default:
		flag.Usage()
		return 0, 0 // unreached
	}
}

func atoiOrUsage(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid address %q\n", s)
		os.Exit(2)
	}
	return n
}
