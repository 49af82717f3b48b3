package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeshift/maze"
	"github.com/katalvlaran/mazeshift/reach"
	"github.com/katalvlaran/mazeshift/shift"
)

// shiftStream is the DeriveSeed stream id for the mutation source.
const shiftStream = 1

// app carries parsed flags, the resolved config and the logger between
// the persistent pre-run and the command bodies.
type app struct {
	configPath string
	logLevel   string
	trace      bool

	width, height int
	seed          int64
	steps         int
	shiftSeed     int64
	start, goal   string

	cfg Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mazeshift",
		Short: "Generate perfect mazes and shift their walls without cutting off the goal",
		Long: `mazeshift builds a perfect maze with randomized Kruskal and can then
rewrite it step by step: each step closes one passage when that keeps the
goal reachable, and opens one closed wall.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.trace, "trace", false, "log every passage carved during generation")

	root.AddCommand(a.newGenerateCmd(), a.newShiftCmd())
	return root
}

func (a *app) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and print it",
		Args:  cobra.NoArgs,
		RunE:  a.runGenerate,
	}
	a.addMazeFlags(cmd)
	return cmd
}

func (a *app) newShiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Generate a maze, shift it repeatedly and print the result",
		Args:  cobra.NoArgs,
		RunE:  a.runShift,
	}
	a.addMazeFlags(cmd)
	cmd.Flags().IntVar(&a.steps, "steps", 0, "number of shifts to apply")
	cmd.Flags().Int64Var(&a.shiftSeed, "shift-seed", 0, "seed of the mutation stream (0 derives it from --seed)")
	cmd.Flags().StringVar(&a.start, "start", "", "start cell as x,y")
	cmd.Flags().StringVar(&a.goal, "goal", "", "goal cell as x,y")
	return cmd
}

func (a *app) addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&a.width, "width", 0, "maze width in cells")
	cmd.Flags().IntVar(&a.height, "height", 0, "maze height in cells")
	cmd.Flags().Int64Var(&a.seed, "seed", 0, "generation seed (0 picks one from the clock)")
}

// setup resolves config (defaults, file, flags) and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if err := a.applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Maze.Seed == 0 {
		cfg.Maze.Seed = time.Now().UnixNano()
	}
	if cfg.Shift.Seed == 0 {
		cfg.Shift.Seed = maze.DeriveSeed(cfg.Maze.Seed, shiftStream)
	}

	level, _ := parseLevel(cfg.Log.Level)
	if cfg.Log.Trace {
		level = slog.LevelDebug
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// applyFlags overlays only the flags the user actually set.
func (a *app) applyFlags(cmd *cobra.Command, cfg *Config) error {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("trace") {
		cfg.Log.Trace = a.trace
	}
	if flags.Changed("width") {
		cfg.Maze.Width = a.width
	}
	if flags.Changed("height") {
		cfg.Maze.Height = a.height
	}
	if flags.Changed("seed") {
		cfg.Maze.Seed = a.seed
	}
	if flags.Changed("steps") {
		cfg.Shift.Steps = a.steps
	}
	if flags.Changed("shift-seed") {
		cfg.Shift.Seed = a.shiftSeed
	}
	if flags.Changed("start") {
		p, err := parsePoint(a.start)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		cfg.Shift.Start = p
	}
	if flags.Changed("goal") {
		p, err := parsePoint(a.goal)
		if err != nil {
			return fmt.Errorf("--goal: %w", err)
		}
		cfg.Shift.Goal = &p
	}
	return nil
}

// generate builds the configured maze, tracing carves at debug level.
func (a *app) generate() (*maze.Grid, error) {
	var opts []maze.GenerateOption
	if a.cfg.Log.Trace {
		opts = append(opts, maze.WithOnCarve(func(e maze.Edge) {
			a.log.Debug("carved passage", slog.String("edge", e.String()))
		}))
	}
	g, err := maze.Generate(a.cfg.Maze.Width, a.cfg.Maze.Height, a.cfg.Maze.Seed, opts...)
	if err != nil {
		return nil, fmt.Errorf("generate maze: %w", err)
	}
	a.log.Info("maze generated",
		slog.Int("width", g.Width()),
		slog.Int("height", g.Height()),
		slog.Int64("seed", a.cfg.Maze.Seed),
		slog.Int("passages", g.PassageCount()),
	)
	return g, nil
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	g, err := a.generate()
	if err != nil {
		return err
	}
	res, err := reach.Search(g, maze.Point{})
	if err != nil {
		return fmt.Errorf("search maze: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, g)
	fmt.Fprintf(out, "size=%dx%d seed=%d passages=%d reached=%d\n",
		g.Width(), g.Height(), a.cfg.Maze.Seed, g.PassageCount(), res.Len())
	return nil
}

func (a *app) runShift(cmd *cobra.Command, _ []string) error {
	g, err := a.generate()
	if err != nil {
		return err
	}
	start := maze.Point{X: a.cfg.Shift.Start.X, Y: a.cfg.Shift.Start.Y}
	gp := a.cfg.GoalPoint()
	goal := maze.Point{X: gp.X, Y: gp.Y}

	sh, err := shift.New(g, start, goal, maze.NewRand(a.cfg.Shift.Seed),
		shift.WithOnClose(func(e maze.Edge) {
			a.log.Debug("passage closed", slog.String("edge", e.String()))
		}),
		shift.WithOnOpen(func(e maze.Edge) {
			a.log.Debug("wall opened", slog.String("edge", e.String()))
		}),
	)
	if err != nil {
		return fmt.Errorf("start shifting %s -> %s: %w", start, goal, err)
	}

	closed, opened := 0, 0
	for i := 0; i < a.cfg.Shift.Steps; i++ {
		res, err := sh.Step()
		if err != nil {
			return fmt.Errorf("shift step %d: %w", i+1, err)
		}
		if res.Closed != nil {
			closed++
		}
		if res.Opened != nil {
			opened++
		}
		a.log.Info("maze shifted",
			slog.Int("step", i+1),
			slog.Bool("closed", res.Closed != nil),
			slog.Bool("opened", res.Opened != nil),
			slog.Int("attempts", res.Attempts),
			slog.Int("passages", g.PassageCount()),
		)
	}

	res, err := reach.Search(g, start, reach.WithTarget(goal))
	if err != nil {
		return fmt.Errorf("search maze: %w", err)
	}
	pathLen := -1
	if path, err := res.PathTo(goal); err == nil {
		pathLen = len(path) - 1
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, g)
	fmt.Fprintf(out, "steps=%d closed=%d opened=%d passages=%d reachable=%t path=%d\n",
		sh.Steps(), closed, opened, g.PassageCount(), res.Reached(goal), pathLen)
	return nil
}

// parsePoint reads "x,y".
func parsePoint(s string) (PointConfig, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return PointConfig{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return PointConfig{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return PointConfig{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return PointConfig{X: x, Y: y}, nil
}
