// Command desktop shows a running Hack machine's screen in a window and
// feeds keyboard events back into its memory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/howeyc/fsnotify"

	"github.com/pcardune/hackvm/pkg/hack"
	"github.com/pcardune/hackvm/pkg/input"
	"github.com/pcardune/hackvm/pkg/machine"
	"github.com/pcardune/hackvm/pkg/screen"
)

// keyMap translates window keys to the logical keys the encoder knows.
// Everything else is ignored on press.
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyArrowDown:  input.KeyDown,
}

type Game struct {
	ram      *hack.RAM
	renderer *screen.Renderer
	keys     *input.Encoder
	scale    int

	screenImg *ebiten.Image // reused 512×256 canvas
}

func (g *Game) Update() error {
	// Releases first: if one key goes up and another comes down in the
	// same frame, the press ends up in the register.
	for range inpututil.AppendJustReleasedKeys(nil) {
		g.keys.KeyUp(input.KeyNone)
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if lk, ok := keyMap[k]; ok {
			g.keys.KeyDown(lk)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		name := fmt.Sprintf("hack-%d.png", time.Now().Unix())
		if err := g.renderer.SaveScreenshot(g.ram, g.scale, name); err != nil {
			log.Printf("screenshot: %v", err)
		} else {
			log.Printf("saved %s", name)
		}
	}
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	if g.screenImg == nil {
		g.screenImg = ebiten.NewImage(hack.ScreenWidth, hack.ScreenHeight)
	}

	frame := g.renderer.Frame(g.ram)
	g.screenImg.WritePixels(frame.Pix)

	// Integer magnification; ebiten's default nearest filter keeps each
	// logical pixel a solid block.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	dst.DrawImage(g.screenImg, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return hack.ScreenWidth * g.scale, hack.ScreenHeight * g.scale
}

func main() {
	var (
		scaleFlag   = flag.Int("scale", 4, "integer screen magnification")
		timeoutFlag = flag.Duration("timeout", 5*time.Second, "how long to wait for the machine to publish its RAM")
		demoFlag    = flag.Bool("demo", false, "run the built-in demo machine instead of a RAM image")
		watchFlag   = flag.Bool("watch", false, "reload the RAM image whenever the file changes")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <image.ram>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -demo\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if *scaleFlag < 1 {
		log.Fatalf("scale must be positive, got %d", *scaleFlag)
	}

	var m hack.Machine
	if *demoFlag {
		m = &machine.Demo{}
	} else {
		if flag.NArg() != 1 {
			flag.Usage()
		}
		img, err := machine.LoadImage(flag.Arg(0))
		if err != nil {
			log.Fatalf("loading RAM image: %v", err)
		}
		m = img
	}

	// The machine runs on its own goroutine and is never joined: closing
	// the window exits the process and tears it down, and RAM needs no
	// flush.
	boot := hack.Start(m)
	ram, err := boot.WaitRAM(*timeoutFlag)
	if err != nil {
		log.Fatalf("boot: %v", err)
	}

	if *watchFlag && !*demoFlag {
		go watchImage(flag.Arg(0), ram)
	}

	game := &Game{
		ram:      ram,
		renderer: screen.NewRenderer(),
		keys:     input.NewEncoder(ram),
		scale:    *scaleFlag,
	}

	ebiten.SetWindowSize(hack.ScreenWidth*game.scale, hack.ScreenHeight*game.scale)
	ebiten.SetWindowTitle("Hack")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// watchImage reloads path into ram whenever the file changes, debounced so
// a half-written file is not picked up.
func watchImage(path string, ram *hack.RAM) {
	path = filepath.Clean(path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("watch: %v", err)
		return
	}
	defer watcher.Close()
	if err := watcher.Watch(filepath.Dir(path)); err != nil {
		log.Printf("watch: %v", err)
		return
	}

	var reload <-chan time.Time
	for {
		select {
		case <-reload:
			reload = nil
			words, err := hack.ReadImage(path)
			if err != nil {
				log.Printf("watch: %v", err)
				break
			}
			if len(words) > ram.Size() {
				words = words[:ram.Size()]
			}
			if err := ram.Load(words); err != nil {
				log.Printf("watch: %v", err)
				break
			}
			log.Printf("watch: reloaded %s", filepath.Base(path))
		case ev := <-watcher.Event:
			if ev.Name == path && !ev.IsAttrib() {
				reload = time.After(100 * time.Millisecond)
			}
		case err := <-watcher.Error:
			log.Printf("watch: %v", err)
		}
	}
}
