package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/danielewski/Game-Of-Life/model"
	"github.com/danielewski/Game-Of-Life/utils"
)

var errInterrupted = errors.New("interrupted")

// continuer decides, before each generation is shown, whether the simulation goes on
type continuer interface {
	Continue(ctx context.Context) (bool, error)
}

// animator clears the screen and waits one frame before every generation
type animator struct {
	renderer *model.TerminalRenderer
	delay    time.Duration
}

func (a animator) Continue(ctx context.Context) (bool, error) {
	if err := a.renderer.Clear(); err != nil {
		return false, err
	}

	timer := time.NewTimer(a.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false, errors.Wrap(ctx.Err(), "[animator] frame wait abandoned")
	case <-timer.C:
		return true, nil
	}
}

// stepper asks the user before every generation
type stepper struct {
	prompter *utils.Prompter
}

func (s stepper) Continue(ctx context.Context) (bool, error) {
	more, err := s.prompter.MoreGenerationsPrompt(ctx)
	if errors.Cause(err) == utils.ErrInputClosed {
		return false, nil
	}
	return more, err
}

// chooseContinuer resolves the configured mode, asking the user when it is unset
func chooseContinuer(
	ctx context.Context,
	config utils.Config,
	prompter *utils.Prompter,
	renderer *model.TerminalRenderer,
) (continuer, error) {
	animate := config.Mode == utils.ModeAnimate
	if config.Mode == utils.ModeAsk {
		var err error
		if animate, err = prompter.AnimationPrompt(ctx); err != nil {
			return nil, errors.Wrap(err, "[chooseContinuer] failed to read mode")
		}
	}

	if animate {
		return animator{renderer: renderer, delay: config.FrameRate}, nil
	}
	return stepper{prompter: prompter}, nil
}

// layoutFromConfig converts configured patterns into placements, falling back to the default layout
func layoutFromConfig(config utils.Config) []model.Placement {
	if len(config.Patterns) == 0 {
		return model.DefaultLayout()
	}
	layout := make([]model.Placement, 0, len(config.Patterns))
	for _, p := range config.Patterns {
		layout = append(layout, model.Placement{Name: p.Name, Row: p.Row, Col: p.Col})
	}
	return layout
}

// initializeGame allocates both grids and seeds the current one
func initializeGame(config utils.Config) (*model.Buffers, error) {
	buffers := model.NewBuffers(config.Rows, config.Cols)
	if err := model.SeedLayout(buffers.Current(), layoutFromConfig(config)); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed grid")
	}
	return buffers, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d | Patterns: %d\n",
		grid.Rows(), grid.Cols(), grid.CountLivingCells(), len(layoutFromConfig(config)))
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// gameStatus describes the population and how it relates to recent generations.
// stable is true when the grid is extinct or repeats a recorded state.
func gameStatus(livingCells, period int) (status string, stable bool) {
	switch {
	case livingCells == 0:
		return "Extinct", true
	case period == 1:
		return "Still life", true
	case period > 1:
		return fmt.Sprintf("Oscillating (period %d)", period), true
	}
	return "Active", false
}

// session runs generations until the continuer or a configured limit stops it
type session struct {
	out      io.Writer
	config   utils.Config
	buffers  *model.Buffers
	renderer *model.TerminalRenderer
	history  *model.History
	stats    *utils.Stats
	next     continuer
}

func newSession(out io.Writer, config utils.Config, buffers *model.Buffers, next continuer) *session {
	return &session{
		out:      out,
		config:   config,
		buffers:  buffers,
		renderer: model.NewTerminalRenderer(out),
		history:  model.NewHistory(config.HistorySize),
		stats:    utils.NewStats(),
		next:     next,
	}
}

// displayGameStatus shows the current game status
func (s *session) displayGameStatus(generation, livingCells int, status string) {
	grid := s.buffers.Current()
	density := float64(livingCells) / float64(grid.Rows()*grid.Cols()) * 100
	fmt.Fprintf(s.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Fprintf(s.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Peak Pop: %d\n",
		s.stats.GenerationsPerSecond, s.stats.AveragePopulation, s.stats.PeakPopulation)
}

func (s *session) run(ctx context.Context) error {
	lastFrameTime := time.Now()

	for generation := 1; ; generation++ {
		if s.config.MaxGenerations > 0 && generation > s.config.MaxGenerations {
			fmt.Fprintf(s.out, "\n🏁 Reached maximum generations limit (%d)\n", s.config.MaxGenerations)
			return nil
		}

		more, err := s.next.Continue(ctx)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		current := s.buffers.Current()
		livingCells := current.CountLivingCells()
		period := s.history.Period(current)
		s.history.Record(current)

		frameStart := time.Now()
		s.stats.Update(generation, livingCells, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		status, stable := gameStatus(livingCells, period)

		fmt.Fprintf(s.out, "Generation %d (Press CTRL+C to quit)\n", generation)
		if s.config.ShowStats {
			s.displayGameStatus(generation, livingCells, status)
		}
		if err = s.renderer.Display(current); err != nil {
			return err
		}

		if stable && s.config.StopWhenStable {
			fmt.Fprintf(s.out, "\nStopping: grid is %s\n", status)
			return nil
		}

		s.buffers.Tick()
	}
}

// displayFinalStats summarises a finished or interrupted run
func (s *session) displayFinalStats() {
	fmt.Fprintf(s.out, "Final stats: %d generations in %.1f seconds\n",
		s.stats.TotalGenerations, s.stats.Runtime().Seconds())
	fmt.Fprintf(s.out, "Average: %.1f gen/sec, %.1f avg population\n",
		s.stats.GenerationsPerSecond, s.stats.AveragePopulation)
}

// play seeds the grid, picks the display mode and runs the simulation until it
// completes or a signal arrives on signals
func play(config utils.Config, in io.Reader, out io.Writer, signals <-chan os.Signal) error {
	buffers, err := initializeGame(config)
	if err != nil {
		return err
	}
	displayGameInfo(out, config, buffers.Current())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		prompter  = utils.NewPrompter(in, out)
		game      = newSession(out, config, buffers, nil)
	)

	eg.Go(func() error {
		select {
		case sig := <-signals:
			return errors.Wrapf(errInterrupted, "[play] received %s", sig)
		case <-egCtx.Done():
			return nil
		}
	})

	eg.Go(func() error {
		defer cancel()

		next, err := chooseContinuer(egCtx, config, prompter, game.renderer)
		if err != nil {
			return err
		}
		game.next = next
		return game.run(egCtx)
	})

	err = eg.Wait()
	switch {
	case errors.Cause(err) == errInterrupted:
		fmt.Fprintln(out, "\n🛑 Shutting down gracefully...")
		game.displayFinalStats()
		return nil
	case errors.Cause(err) == utils.ErrInputClosed:
		// no mode was chosen before input ended
	case err != nil:
		return err
	}

	fmt.Fprintln(out, "Simulation complete")
	game.displayFinalStats()
	return nil
}
