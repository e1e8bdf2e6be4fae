// Command disasm loads a flat binary image into RAM at an offset and
// disassembles it linearly from a starting PC, following the teacher
// lineage's disassembler command-line tool shape.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/jmchacon/sys65/disassembler"
	"github.com/jmchacon/sys65/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0000, "PC value to start disassembling")
	offset  = flag.Int("offset", 0x0000, "Offset into RAM to load the image at")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [-start_pc <PC> -offset <offset>] <filename>", os.Args[0])
	}

	ram, err := memory.NewBlock(&memory.BlockDef{Size: 1 << 16})
	if err != nil {
		log.Fatalf("can't initialize RAM: %v", err)
	}
	b, err := ioutil.ReadFile(flag.Args()[0])
	if err != nil {
		log.Fatalf("can't open %s: %v", flag.Args()[0], err)
	}
	max := (1 << 16) - *offset
	if len(b) > max {
		log.Printf("length %d at offset %d too long, truncating to 64k", len(b), *offset)
		b = b[:max]
	}
	for i, by := range b {
		ram.Write(uint16(*offset+i), by)
	}

	pc := uint16(*startPC)
	cnt := 0
	for cnt < len(b) {
		dis, n := disassembler.Step(pc, ram)
		pc += uint16(n)
		cnt += n
		fmt.Println(dis)
	}
}
