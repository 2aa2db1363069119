// Package shell is the interactive frontend: load a structure and a word
// list, solve, inspect domains, save the result.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/crossfill/crossfill/config"
	"github.com/crossfill/crossfill/grid"
	"github.com/crossfill/crossfill/render"
	"github.com/crossfill/crossfill/solver"
	"github.com/crossfill/crossfill/wordlist"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	g        *grid.Grid
	words    *wordlist.Set
	solution solver.Assignment
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcrossfill>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) loadStructure(path string) error {
	g, err := grid.Load(sc.cfg, path)
	if err != nil {
		return err
	}
	sc.g = g
	sc.solution = nil
	showMessage(fmt.Sprintf("loaded structure: %dx%d, %d slots",
		g.Height, g.Width, len(g.Slots())), sc.l.Stderr())
	return nil
}

func (sc *ShellController) loadWords(path string) error {
	words, err := wordlist.Load(sc.cfg, path)
	if err != nil {
		return err
	}
	sc.words = words
	sc.solution = nil
	showMessage(fmt.Sprintf("loaded %d words", words.Len()), sc.l.Stderr())
	return nil
}

func (sc *ShellController) newFiller() (*solver.Filler, error) {
	if sc.g == nil {
		return nil, errors.New("load a structure first (see `help`)")
	}
	if sc.words == nil {
		return nil, errors.New("load a word list first (see `help`)")
	}
	return solver.New(sc.g, sc.words, solver.Options{
		Randomize: sc.cfg.GetBool(config.Randomize),
	}), nil
}

func (sc *ShellController) solve() error {
	filler, err := sc.newFiller()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if timeout := sc.cfg.GetDuration(config.SolveTimeout); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	a, err := filler.Solve(ctx)
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		showMessage("No solution.", sc.l.Stderr())
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		showMessage("No solution found within the time limit.", sc.l.Stderr())
		return nil
	case err != nil:
		return err
	}
	sc.solution = a
	showMessage(render.Text(sc.g, a), sc.l.Stderr())
	return nil
}

func (sc *ShellController) show() error {
	if sc.solution == nil {
		return errors.New("nothing solved yet")
	}
	showMessage(render.Text(sc.g, sc.solution), sc.l.Stderr())
	return nil
}

func (sc *ShellController) save(path string) error {
	if sc.solution == nil {
		return errors.New("nothing solved yet")
	}
	if err := render.SavePNG(sc.g, sc.solution, path); err != nil {
		return err
	}
	showMessage("wrote "+path, sc.l.Stderr())
	return nil
}

// stats prunes a fresh domain store and prints a histogram of the domain
// sizes, without running the search.
func (sc *ShellController) stats() error {
	filler, err := sc.newFiller()
	if err != nil {
		return err
	}
	if err := filler.Propagate(); err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			showMessage("A domain emptied during propagation; the puzzle is unsatisfiable.", sc.l.Stderr())
			return nil
		}
		return err
	}
	showMessage("candidate words per slot after propagation:", sc.l.Stderr())
	return filler.FprintDomainHistogram(sc.l.Stderr())
}

func (sc *ShellController) set(fields []string) error {
	if len(fields) != 2 {
		return errors.New("usage: set <key> <value>")
	}
	sc.cfg.Set(fields[0], fields[1])
	showMessage(fmt.Sprintf("%s = %s", fields[0], fields[1]), sc.l.Stderr())
	return nil
}

func (sc *ShellController) dispatch(line string, sig chan os.Signal) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "load":
		if len(args) != 1 {
			return errors.New("usage: load <structure-file>")
		}
		return sc.loadStructure(args[0])
	case "words":
		if len(args) != 1 {
			return errors.New("usage: words <word-file>")
		}
		return sc.loadWords(args[0])
	case "solve":
		return sc.solve()
	case "show":
		return sc.show()
	case "save":
		if len(args) != 1 {
			return errors.New("usage: save <output.png>")
		}
		return sc.save(args[0])
	case "stats":
		return sc.stats()
	case "set":
		return sc.set(args)
	case "help":
		usage(sc.l.Stderr())
		return nil
	case "exit", "bye":
		sig <- syscall.SIGINT
		return errQuit
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		return nil
	}
}

var errQuit = errors.New("sending quit signal")

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		err = sc.dispatch(line, sig)
		if err == errQuit {
			break
		}
		if err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
