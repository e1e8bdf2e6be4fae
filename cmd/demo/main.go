// Command demo drives any of this module's systems (PET, VIC-20, C64,
// Apple IIe, Easy 6502) in an SDL2 window, following the teacher's
// vcs/vcs_main.go shape: parse flags, build an sdl.Surface-backed
// framebuffer, construct the machine, and loop Tick() as fast as it runs,
// calling Render() about every 1/60 s of wall time.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"time"

	"github.com/jmchacon/sys65/cpu"
	"github.com/jmchacon/sys65/keyboard"
	"github.com/jmchacon/sys65/platform"
	"github.com/jmchacon/sys65/system"
	"github.com/jmchacon/sys65/systems/appleiie"
	"github.com/jmchacon/sys65/systems/c64"
	"github.com/jmchacon/sys65/systems/easy6502"
	"github.com/jmchacon/sys65/systems/pet"
	"github.com/jmchacon/sys65/systems/vic20"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	machine = flag.String("machine", "easy6502", "Which system to run: pet, vic20, c64, appleiie, easy6502")
	scale   = flag.Int("scale", 4, "Scale factor to render the screen")
	rom     = flag.String("rom", "", "Path to a ROM/program image, meaning varies by machine")
	debug   = flag.Bool("debug", false, "If true, print each executed instruction")
)

// hostRand adapts math/rand to platform.Random.
type hostRand struct{ r *rand.Rand }

func (h *hostRand) Intn(n int) int { return h.r.Intn(n) }

// provider is the minimal platform.Provider this demo offers: no joystick
// or tape wiring, since those live in host-specific input plumbing this
// module's Non-goals exclude.
type provider struct{ rnd platform.Random }

func (p *provider) Joystick(int) platform.JoystickState { return platform.JoystickState{} }
func (p *provider) Tape() platform.TapeState             { return platform.TapeState{} }
func (p *provider) Rand() platform.Random                { return p.rnd }

func loadFile(path string) []byte {
	if path == "" {
		return nil
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatalf("can't load %s: %v", path, err)
	}
	return b
}

func build(name string, prov platform.Provider) (system.Handle, error) {
	switch name {
	case "pet":
		return pet.Init(&pet.Def{Provider: prov, Keys: keyboard.NewState[keyboard.Position]()})
	case "vic20":
		return vic20.Init(&vic20.Def{Provider: prov, Keys: keyboard.NewState[keyboard.Position]()})
	case "c64":
		return c64.Init(&c64.Def{Provider: prov, Keys: keyboard.NewState[keyboard.Position]()})
	case "appleiie":
		return appleiie.Init(&appleiie.Def{Provider: prov, Keys: keyboard.NewState[keyboard.Virtual]()})
	case "easy6502":
		return easy6502.Init(&easy6502.Def{ROM: loadFile(*rom), Provider: prov, Keys: keyboard.NewState[keyboard.Virtual]()})
	default:
		return nil, fmt.Errorf("unknown machine %q", name)
	}
}

func main() {
	flag.Parse()

	prov := &provider{rnd: &hostRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}}
	h, err := build(*machine, prov)
	if err != nil {
		log.Fatalf("can't init %s: %v", *machine, err)
	}
	if *debug {
		h.AttachTrace(func(te cpu.TraceEntry) {
			log.Printf("PC=%.4X op=%.2X", te.PC, te.Op)
		})
	}

	w, ht := h.FrameSize()

	sdl.Main(func() {
		if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
			log.Fatalf("can't init SDL: %v", err)
		}
		defer sdl.Quit()

		window, err := sdl.CreateWindow(
			fmt.Sprintf("sys65 - %s", *machine),
			sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
			int32(w**scale), int32(ht**scale), sdl.WINDOW_SHOWN)
		if err != nil {
			log.Fatalf("can't create window: %v", err)
		}
		defer window.Destroy()

		surface, err := window.GetSurface()
		if err != nil {
			log.Fatalf("can't get window surface: %v", err)
		}
		buf := make([]byte, w*ht)
		frameInterval := time.Second / 60
		last := time.Now()

		for {
			running := true
			for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
				if _, ok := ev.(*sdl.QuitEvent); ok {
					running = false
				}
			}
			if !running {
				return
			}
			if _, err := h.Tick(); err != nil {
				log.Printf("halted: %v", err)
				return
			}
			if time.Since(last) >= frameInterval {
				h.Render(buf)
				blit(surface, buf, w, ht, *scale)
				window.UpdateSurface()
				last = time.Now()
			}
		}
	})
}

// blit expands buf's one-byte-per-pixel palette indices into the window
// surface at the configured scale, following vcs_main.go's direct-pixel-poke
// idiom to avoid the per-pixel color.Color conversion overhead
// Surface.Set/image.Set would otherwise incur.
func blit(surface *sdl.Surface, buf []byte, w, h, scale int) {
	pixels := surface.Pixels()
	bpp := int(surface.Format.BytesPerPixel)
	pitch := int(surface.Pitch)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := buf[y*w+x]
			r, g, b := palette(idx)
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					py, px := y*scale+sy, x*scale+sx
					off := py*pitch + px*bpp
					if off+3 >= len(pixels) {
						continue
					}
					pixels[off+0] = b
					pixels[off+1] = g
					pixels[off+2] = r
					pixels[off+3] = 0xFF
				}
			}
		}
	}
}

// palette is a fixed 16-entry RGB table approximating the Commodore/Apple
// home-computer palettes these systems share a rendering convention with;
// indices beyond 16 wrap.
func palette(idx uint8) (r, g, b uint8) {
	var table = [16][3]uint8{
		{0, 0, 0}, {255, 255, 255}, {136, 0, 0}, {170, 255, 238},
		{204, 68, 204}, {0, 204, 85}, {0, 0, 170}, {238, 238, 119},
		{221, 136, 85}, {102, 68, 0}, {255, 119, 119}, {51, 51, 51},
		{119, 119, 119}, {170, 255, 102}, {0, 136, 255}, {187, 187, 187},
	}
	c := table[idx%16]
	return c[0], c[1], c[2]
}
