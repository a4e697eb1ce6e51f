package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/arenakit/arena"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [basic|fragmentation|realloc|strategies|all]",
		Short: "Run scripted allocation scenarios against a fresh pool",
		Long: `The demo command walks a fresh pool through scripted allocation
scenarios and prints the memory map and statistics after each step.

Example:
  memctl demo basic
  memctl demo all --pool-size 4096 --strategy best-fit
  memctl demo fragmentation --json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"basic", "fragmentation", "realloc", "strategies", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := "all"
			if len(args) == 1 {
				scenario = args[0]
			}
			return runDemo(scenario)
		},
	}
	return cmd
}

func runDemo(scenario string) error {
	switch scenario {
	case "basic":
		return demoBasic()
	case "fragmentation":
		return demoFragmentation()
	case "realloc":
		return demoRealloc()
	case "strategies":
		return demoStrategies()
	case "all":
		for _, run := range []func() error{demoBasic, demoFragmentation, demoRealloc, demoStrategies} {
			if err := run(); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown scenario %q", scenario)
	}
}

// newPool builds a pool from the global flags.
func newPool() (*arena.Pool, error) {
	s, err := arena.ParseStrategy(strategyName)
	if err != nil {
		return nil, err
	}
	p, err := arena.New(poolSize, s)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return p, nil
}

// report prints the pool's memory map and statistics.
func report(p *arena.Pool) error {
	if jsonOut {
		return printJSON(struct {
			Stats  arena.Stats
			Blocks []arena.BlockInfo
		}{p.Stats(), p.Blocks()})
	}
	if quiet {
		return nil
	}
	if err := p.WriteMemoryMap(os.Stdout); err != nil {
		return err
	}
	return p.WriteStats(os.Stdout)
}

func demoBasic() error {
	printHeader("BASIC ALLOCATION DEMO")

	p, err := newPool()
	if err != nil {
		return err
	}
	defer p.Close()

	refs := make([]arena.Ref, 0, 3)
	for _, size := range []int32{40, 50, 80} {
		ref, buf, err := p.Alloc(size)
		if err != nil {
			return err
		}
		for i := range buf {
			buf[i] = byte(i)
		}
		printInfo("[+] Allocated %d bytes at ref %#x\n", size, ref)
		refs = append(refs, ref)
	}
	if err := report(p); err != nil {
		return err
	}

	printInfo("\nFreeing middle block...\n")
	if err := p.Free(refs[1]); err != nil {
		return err
	}
	if err := report(p); err != nil {
		return err
	}

	printInfo("\nFreeing remaining blocks...\n")
	if err := p.Free(refs[0]); err != nil {
		return err
	}
	if err := p.Free(refs[2]); err != nil {
		return err
	}
	return report(p)
}

func demoFragmentation() error {
	printHeader("FRAGMENTATION DEMO")

	p, err := newPool()
	if err != nil {
		return err
	}
	defer p.Close()

	var refs [10]arena.Ref
	for i := range refs {
		if refs[i], _, err = p.Alloc(64); err != nil {
			return err
		}
	}

	printInfo("\nFreeing every other block...\n")
	for i := 0; i < len(refs); i += 2 {
		if err := p.Free(refs[i]); err != nil {
			return err
		}
	}
	if err := report(p); err != nil {
		return err
	}

	printInfo("\nFreeing the rest; coalescing reclaims the arena...\n")
	for i := 1; i < len(refs); i += 2 {
		if err := p.Free(refs[i]); err != nil {
			return err
		}
	}
	return report(p)
}

func demoRealloc() error {
	printHeader("REALLOCATION DEMO")

	p, err := newPool()
	if err != nil {
		return err
	}
	defer p.Close()

	ref, buf, err := p.Alloc(20)
	if err != nil {
		return err
	}
	for i := 0; i < 20; i++ {
		buf[i] = byte('a' + i%26)
	}
	printInfo("[+] Initial block: ref %#x, %d bytes\n", ref, len(buf))

	ref, buf, err = p.Realloc(ref, 40)
	if err != nil {
		return err
	}
	printInfo("[+] Grown block: ref %#x, %d bytes, payload %q...\n", ref, len(buf), buf[:20])

	if err := p.Free(ref); err != nil {
		return err
	}
	return report(p)
}

func demoStrategies() error {
	printHeader("STRATEGY COMPARISON")

	for _, s := range []arena.Strategy{arena.FirstFit, arena.BestFit, arena.WorstFit} {
		p, err := arena.New(poolSize, s)
		if err != nil {
			return err
		}

		// Same script under every strategy: three blocks, outer two freed,
		// then one mid-sized request.
		first, _, err := p.Alloc(100)
		if err != nil {
			p.Close()
			return err
		}
		if _, _, err = p.Alloc(200); err != nil {
			p.Close()
			return err
		}
		last, _, err := p.Alloc(50)
		if err != nil {
			p.Close()
			return err
		}
		if err := p.Free(last); err != nil {
			p.Close()
			return err
		}
		if err := p.Free(first); err != nil {
			p.Close()
			return err
		}
		if _, _, err = p.Alloc(80); err != nil {
			p.Close()
			return err
		}

		printInfo("\n%s: fragmentation %.2f%%\n", s, p.Stats().Fragmentation)
		if err := report(p); err != nil {
			p.Close()
			return err
		}
		p.Close()
	}
	return nil
}
