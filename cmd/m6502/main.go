package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/hexture/m6502/cpu"
	"github.com/hexture/m6502/memory"
)

var (
	imagePath   = flag.String("image", "", "binary image to load")
	org         = flag.Uint("org", 0x0600, "load address for the image")
	resetAddr   = flag.Uint("reset", 0, "entry point; 0 uses the reset vector from the image")
	cycleTarget = flag.Int("cycles", 0, "stop after at least this many cycles; 0 runs until halt")
	trace       = flag.Bool("trace", false, "print every executed instruction")
	nmos        = flag.Bool("no-bcd", false, "emulate the Ricoh 2A03 variant without decimal mode")
	prof        = flag.Bool("profile", false, "write a CPU profile to the current directory")
)

// tracer prints each instruction before it executes.
type tracer struct{}

func (tracer) BeforeExecute(c *cpu.CPU, in cpu.Instruction) bool {
	fmt.Printf("%04X  %-12s A:%02X X:%02X Y:%02X S:%02X %s CYC:%d\n",
		in.Addr, in.Mnemonic, in.Registers.A, in.Registers.X, in.Registers.Y,
		in.Registers.S, in.Flags.String(), in.Cycles)
	return true
}

func (tracer) Jam(c *cpu.CPU, opcode uint8, addr uint16) {
	fmt.Printf("%04X  jam: opcode %02X\n", addr, opcode)
}

func main() {
	flag.Parse()

	if *prof {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	image, err := os.ReadFile(*imagePath)
	if err != nil {
		log.Fatalf("couldn't read image: %s", err)
	}

	mapper := memory.NewMapper()
	mapper.Map(0x0000, 0xffff, memory.NewRAM(0x10000))
	mapper.Load(uint16(*org), image)

	model := cpu.MOS6502
	if *nmos {
		model = cpu.Ricoh2A03
	}

	c := cpu.New(model, mapper)
	if *trace {
		c.Attach(tracer{})
	}
	c.Reset()
	if *resetAddr != 0 {
		c.Reg.PC = uint16(*resetAddr)
	}

	if *cycleTarget > 0 {
		c.RunCycles(*cycleTarget)
	} else {
		for !c.Halted() {
			c.Step()
		}
	}

	fmt.Println(c.String())
}
