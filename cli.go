package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/bits"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"connect4-engine/c4board"
	"connect4-engine/config"
	"connect4-engine/engine"
)

func main() {
	cfg := config.NewConfig()
	difficulty := flag.String("difficulty", cfg.Difficulty.String(), "Easy, Medium, Hard, Expert or Insane")
	depth := flag.Int("depth", 0, "search depth in plies (overrides -difficulty)")
	side := flag.Int("engine", 2, "player the engine plays (1 or 2)")
	auto := flag.Bool("auto", false, "let the engine reply to every move without a go command")
	budget := flag.Duration("budget", 0, "time budget per engine move; enables iterative deepening")
	trace := flag.Bool("trace", false, "record the search tree for the tree command")
	cacheMB := flag.Int("cache", cfg.EvalCache, "evaluation cache size in MB (0 disables)")
	logLevel := flag.String("loglevel", "info", "debug, info, warn or error")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	d, err := config.ParseDifficulty(*difficulty)
	if err == nil {
		err = cfg.SetDifficulty(d)
	}
	if err == nil {
		err = cfg.SetLogLevel(*logLevel)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("bad-flags")
	}
	if *depth > 0 {
		cfg.Depth = *depth
		cfg.Difficulty = config.DifficultyFor(*depth)
	}
	cfg.EngineSide = c4board.Player(*side)
	cfg.AutoReply = *auto
	cfg.TimeBudget = *budget
	cfg.Trace = *trace
	cfg.EvalCache = *cacheMB
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("bad-flags")
	}

	s := newSession(cfg, os.Stdout, logger.Level(cfg.LogLevel))
	if err := s.run(os.Stdin); err != nil {
		logger.Fatal().Err(err).Msg("reading-input")
	}
}

// session is one interactive game driven by text commands.
type session struct {
	cfg  *config.Config
	game *c4board.Game
	out  io.Writer
	log  zerolog.Logger

	cache     *engine.EvalCache
	lastTrace *engine.SearchNode
}

func newSession(cfg *config.Config, out io.Writer, logger zerolog.Logger) *session {
	s := &session{
		cfg:  cfg,
		game: c4board.NewGame(),
		out:  out,
		log:  logger,
	}
	if cfg.EvalCache > 0 {
		s.cache = engine.NewEvalCache(cfg.EvalCache)
	}
	return s
}

func (s *session) info(format string, args ...any) {
	fmt.Fprintf(s.out, "info string "+format+"\n", args...)
}

// run reads commands until quit or end of input.
func (s *session) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		if quit := s.handle(tokens); quit {
			return nil
		}
	}
	return scanner.Err()
}

func (s *session) handle(tokens []string) (quit bool) {
	args := tokens[1:]
	switch strings.ToLower(tokens[0]) {
	case "quit":
		return true
	case "new":
		s.game.Restart()
		s.lastTrace = nil
		fmt.Fprintln(s.out, "ok")
		s.autoReply()
	case "show":
		s.show()
	case "move":
		s.move(args)
	case "undo":
		m, err := s.game.TakeBack()
		if err != nil {
			s.info("%v", err)
			return false
		}
		fmt.Fprintf(s.out, "undone %d by %v\n", m.Column, m.Player)
	case "go":
		s.think(args)
	case "eval":
		b := s.game.Board()
		p1, p2 := engine.EvaluateBreakdown(b)
		fmt.Fprintf(s.out, "eval %d (player 1 %d, player 2 %d)\n", p2-p1, p1, p2)
	case "lines":
		p1, p2 := s.game.Scores()
		fmt.Fprintf(s.out, "lines player 1 %d player 2 %d\n", p1, p2)
	case "tree":
		s.tree(args)
	case "difficulty":
		s.difficulty(args)
	case "board":
		s.setBoard(args)
	default:
		s.info("Unknown command: %s", strings.Join(tokens, " "))
	}
	return false
}

func (s *session) show() {
	fmt.Fprint(s.out, s.game.Board().String())
	fmt.Fprintf(s.out, "board %s\n", s.game.Board().Notation())
	if s.game.Over() {
		s.reportResult()
		return
	}
	fmt.Fprintf(s.out, "to move: %v\n", s.game.ToMove())
}

func (s *session) move(args []string) {
	if len(args) != 1 {
		s.info("Malformed move command")
		return
	}
	col, err := strconv.Atoi(args[0])
	if err != nil {
		s.info("Malformed move command; could not convert %q", args[0])
		return
	}
	if err := s.game.Play(col); err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintf(s.out, "played %d\n", col)
	if s.game.Over() {
		s.reportResult()
		return
	}
	s.autoReply()
}

// autoReply lets the engine move when it is its turn and AutoReply is on.
func (s *session) autoReply() {
	if s.cfg.AutoReply && !s.game.Over() && s.game.ToMove() == s.cfg.EngineSide {
		s.think(nil)
	}
}

func (s *session) reportError(err error) {
	var moveErr *c4board.MoveError
	switch {
	case errors.Is(err, c4board.ErrGameOver):
		s.info("Game is over")
	case errors.As(err, &moveErr) && errors.Is(err, c4board.ErrColumnFull):
		s.info("Column %d is full", moveErr.Column)
	case errors.As(err, &moveErr) && errors.Is(err, c4board.ErrInvalidColumn):
		s.info("Column %d is off the board", moveErr.Column)
	default:
		s.info("%v", err)
	}
}

func (s *session) reportResult() {
	p1, p2 := s.game.Scores()
	switch w := s.game.Winner(); w {
	case c4board.NoPlayer:
		fmt.Fprintf(s.out, "result draw %d-%d\n", p1, p2)
	default:
		fmt.Fprintf(s.out, "result %v wins %d-%d\n", w, p1, p2)
	}
}

// think searches for the side to move and plays the chosen column.
// Options: "depth N" and "trace".
func (s *session) think(args []string) {
	depth := s.cfg.Depth
	customDepth := false
	trace := s.cfg.Trace
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "depth":
			if i+1 >= len(args) {
				s.info("Malformed go command option depth")
				return
			}
			i++
			d, err := strconv.Atoi(args[i])
			if err != nil || d < 0 {
				s.info("Malformed go command option; could not convert depth")
				return
			}
			depth = d
			customDepth = true
		case "trace":
			trace = true
		default:
			s.info("Unknown go subcommand %s", args[i])
		}
	}

	if s.game.Over() {
		fmt.Fprintln(s.out, "bestmove (none)")
		s.reportResult()
		return
	}

	b := s.game.Board()
	maximizing := s.game.ToMove() == c4board.Player2
	start := time.Now()

	var res engine.Result
	var err error
	depthDone := depth
	if s.cfg.TimeBudget > 0 && !customDepth && !trace {
		th := engine.NewTimeHandler(s.cfg.TimeBudget)
		th.Logger = s.log
		th.Cache = s.cache
		var dr engine.DeepenResult
		dr, err = th.Deepen(b, depth, maximizing)
		res, depthDone = dr.Result, dr.Depth
	} else {
		var opts []engine.Option
		if trace {
			opts = append(opts, engine.WithTrace())
		}
		if s.cache != nil {
			opts = append(opts, engine.WithEvalCache(s.cache))
		}
		res, err = engine.Search(b, depth, maximizing, opts...)
	}
	if err != nil {
		s.log.Error().Err(err).Int("depth", depth).Msg("search-failed")
		s.info("Search failed: %v", err)
		return
	}
	elapsed := time.Since(start)
	s.lastTrace = res.Trace

	s.log.Debug().
		Int("depth", depthDone).
		Int("column", res.Column).
		Int("score", res.Score).
		Uint64("nodes", res.Stats.Nodes).
		Uint64("cutoffs", res.Stats.Cutoffs).
		Uint64("cache-hits", res.Stats.CacheHits).
		Dur("elapsed", elapsed).
		Msg("search-done")

	fmt.Fprintf(s.out, "info depth %d score %d nodes %d time %d\n",
		depthDone, res.Score, res.Stats.Nodes, elapsed.Milliseconds())
	if res.Column == engine.NoColumn {
		// depth 0: nothing was searched, so nothing is played
		fmt.Fprintln(s.out, "bestmove (none)")
		return
	}
	fmt.Fprintf(s.out, "bestmove %d\n", res.Column)
	if err := s.game.Play(res.Column); err != nil {
		s.reportError(err)
		return
	}
	if s.game.Over() {
		s.reportResult()
	}
}

func (s *session) tree(args []string) {
	if s.lastTrace == nil {
		s.info("No trace recorded; use go trace")
		return
	}
	maxDepth := 1
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil {
			s.info("Malformed tree command; could not convert %q", args[0])
			return
		}
		maxDepth = d
	}
	fmt.Fprintf(s.out, "nodes %d\n", s.lastTrace.Count())
	if err := s.lastTrace.Format(s.out, maxDepth); err != nil {
		s.log.Error().Err(err).Msg("tree-write-failed")
	}
}

func (s *session) difficulty(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "difficulty %v depth %d\n", s.cfg.Difficulty, s.cfg.Depth)
		return
	}
	d, err := config.ParseDifficulty(args[0])
	if err == nil {
		err = s.cfg.SetDifficulty(d)
	}
	if err != nil {
		s.info("%v", err)
		return
	}
	fmt.Fprintf(s.out, "difficulty %v depth %d\n", s.cfg.Difficulty, s.cfg.Depth)
}

// setBoard loads a position. The side to move is the optional second
// argument, otherwise whoever has fewer stones (player 1 on a tie).
func (s *session) setBoard(args []string) {
	if len(args) == 0 {
		s.info("Malformed board command")
		return
	}
	b, err := c4board.ParseBoard(args[0])
	if err != nil {
		s.info("%v", err)
		return
	}
	toMove := c4board.Player1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || !c4board.Player(n).Valid() {
			s.info("Malformed board command; side must be 1 or 2")
			return
		}
		toMove = c4board.Player(n)
	} else if bits.OnesCount64(b.Mask(c4board.Player1)) > bits.OnesCount64(b.Mask(c4board.Player2)) {
		toMove = c4board.Player2
	}
	s.game = c4board.NewGameFrom(b, toMove)
	s.lastTrace = nil
	fmt.Fprintln(s.out, "ok")
}

