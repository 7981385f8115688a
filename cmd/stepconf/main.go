package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/edaniels/golog"
	"github.com/google/shlex"

	"stepconf/host/conn"
	"stepconf/tmc5160"
	"stepconf/tmcl"
	"stepconf/units"
)

var (
	device     = flag.String("device", "", "Serial device path (empty = autodetect USB ports)")
	moduleAddr = flag.Uint("module-addr", tmcl.DefaultModuleAddress, "TMCL module address")
	motor      = flag.Uint("motor", 0, "Motor channel on the evaluation board")

	steps = flag.Uint("steps", units.DefaultFullstepsPerTurn, "Motor fullsteps per turn")
	clock = flag.Uint("clock", units.DefaultClockHz, "Driver clock frequency in Hz")

	encoderTicks = flag.Int("encoder-ticks", 0, "ABN encoder ticks per turn (P/R value); 0 skips encoder configuration")
	decimalMode  = flag.Bool("decimal", false, "Use decimal encoder scaling instead of Q16.16")

	vstart = flag.Float64("vstart", 0.05, "Start velocity in rps")
	v1     = flag.Float64("v1", 0.7, "First phase threshold velocity in rps")
	vmax   = flag.Float64("vmax", 1.5, "Maximum velocity in rps")
	vstop  = flag.Float64("vstop", 0.05, "Stop velocity in rps")
	a1     = flag.Float64("a1", 100.0, "First phase acceleration in rps^2")
	amax   = flag.Float64("amax", 70.0, "Maximum acceleration in rps^2")
	d1     = flag.Float64("d1", 90.0, "Final deceleration in rps^2")
	dmax   = flag.Float64("dmax", 60.0, "Maximum deceleration in rps^2")
	noRamp = flag.Bool("no-ramp", false, "Skip ramp generator configuration")

	console = flag.Bool("console", false, "Drop into an interactive register console instead of configuring")
	debug   = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	logger := golog.NewLogger("stepconf")
	if *debug {
		logger = golog.NewDebugLogger("stepconf")
	}

	if err := run(logger); err != nil {
		logger.Fatal(err)
	}
}

func run(logger golog.Logger) error {
	session, err := conn.Connect(*device, uint8(*moduleAddr), logger)
	if err != nil {
		return err
	}
	defer session.Close()

	bus := tmcl.NewBus(session.Transport, uint8(*motor))
	dev, err := tmc5160.NewDevice(bus, tmc5160.Config{
		FullstepsPerTurn: uint32(*steps),
		ClockHz:          uint32(*clock),
	}, logger)
	if err != nil {
		return err
	}

	p := dev.Profile()
	fmt.Printf("Motor profile: %d fullsteps/turn, %d microsteps/fullstep (%d microsteps/turn), clock %d Hz\n",
		p.FullstepsPerTurn, p.MicrostepsPerFullstep, p.MicrostepsPerTurn(), p.ClockHz)

	if *console {
		return runConsole(dev, bus)
	}

	if *encoderTicks != 0 {
		if err := dev.ConfigureEncoder(*encoderTicks, *decimalMode); err != nil {
			return err
		}
	}

	if !*noRamp {
		ramp := units.RampProfile{
			VStart: *vstart, V1: *v1, VMax: *vmax, VStop: *vstop,
			A1: *a1, AMax: *amax, D1: *d1, DMax: *dmax,
		}
		if err := dev.ConfigureRamp(ramp); err != nil {
			return err
		}
	}

	fmt.Println("Ready.")
	return nil
}

func runConsole(dev *tmc5160.Device, bus *tmcl.Bus) error {
	fmt.Println("Register console (type 'help' for commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		args, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "quit", "exit", "q":
			return nil

		case "help", "?":
			printConsoleHelp()

		case "regs":
			names := make([]string, 0, len(tmc5160.Registers))
			for name := range tmc5160.Registers {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %-14s 0x%02X\n", name, tmc5160.Registers[name])
			}

		case "read":
			if len(args) != 2 {
				fmt.Println("usage: read <register>")
				continue
			}
			addr, ok := resolveRegister(args[1])
			if !ok {
				fmt.Printf("unknown register %q\n", args[1])
				continue
			}
			value, err := bus.ReadRegister(addr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("0x%02X = 0x%08X (%d)\n", addr, value, value)

		case "write":
			if len(args) != 3 {
				fmt.Println("usage: write <register> <value>")
				continue
			}
			addr, ok := resolveRegister(args[1])
			if !ok {
				fmt.Printf("unknown register %q\n", args[1])
				continue
			}
			value, err := strconv.ParseUint(args[2], 0, 32)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			if err := bus.WriteRegister(addr, uint32(value)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("0x%02X <- 0x%08X\n", addr, uint32(value))

		case "field":
			if len(args) != 2 && len(args) != 3 {
				fmt.Println("usage: field <name> [value]")
				continue
			}
			f, ok := tmc5160.FieldsByName[args[1]]
			if !ok {
				fmt.Printf("unknown field %q\n", args[1])
				continue
			}
			if len(args) == 2 {
				value, err := dev.ReadField(f)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					continue
				}
				fmt.Printf("%s = %d\n", f.Name, value)
				continue
			}
			value, err := strconv.ParseUint(args[2], 0, 32)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			if err := dev.WriteField(f, uint32(value)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("%s <- %d\n", f.Name, uint32(value))

		default:
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", args[0])
		}
	}

	return scanner.Err()
}

func resolveRegister(s string) (uint8, bool) {
	if addr, ok := tmc5160.Registers[s]; ok {
		return addr, true
	}
	if value, err := strconv.ParseUint(s, 0, 8); err == nil {
		return uint8(value), true
	}
	return 0, false
}

func printConsoleHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  regs                    - List known registers")
	fmt.Println("  read <register>         - Read a register (by name or address)")
	fmt.Println("  write <register> <val>  - Write a register")
	fmt.Println("  field <name> [val]      - Read or write a named register field")
	fmt.Println("  quit/exit/q             - Exit the console")
	fmt.Println()
}
