// chesskit-archive manages a local archive of recorded chess games.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/chesskit/internal/board"
	"github.com/hailam/chesskit/internal/game"
	"github.com/hailam/chesskit/internal/storage"
)

var (
	dir     = flag.String("dir", "", "archive directory (default $CHESSKIT_ARCHIVE_DIR, then the platform data dir)")
	jobs    = flag.Int("jobs", runtime.NumCPU(), "maximum games replayed in parallel during import")
	version = flag.Int("version", 2, "file version written by export")
)

func usage() {
	out := flag.CommandLine.Output()

	fmt.Fprintf(out, "Usage: chesskit-archive [flags] <command> [args]\n\n")
	fmt.Fprintf(out, "Commands:\n")
	fmt.Fprintf(out, "  import <file>...   import .pgn or .json game files\n")
	fmt.Fprintf(out, "  list               list archived games\n")
	fmt.Fprintf(out, "  show <id>          print the board, captures and move log of a game\n")
	fmt.Fprintf(out, "  export <id> <file> write a game to a .json save file\n")
	fmt.Fprintf(out, "  delete <id>        remove a game from the archive\n")
	fmt.Fprintf(out, "  stats              print archive totals\n\n")
	fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	// Resolve the archive directory from flag, then environment, then
	// the platform default.
	archiveDir := *dir
	if archiveDir == "" {
		archiveDir = os.Getenv("CHESSKIT_ARCHIVE_DIR")
	}
	if archiveDir == "" {
		archiveDir = storage.DefaultDir()
	}

	store, err := storage.New(archiveDir)
	if err != nil {
		log.Fatal("could not open archive: ", err)
	}

	if err := run(store, args[0], args[1:]); err != nil {
		store.Close()
		log.Fatal(err)
	}

	if err := store.Close(); err != nil {
		log.Fatal(err)
	}
}

func run(store *storage.Storage, command string, args []string) error {
	switch command {
	case "import":
		return importFiles(store, args)
	case "list":
		return list(store)
	case "show":
		return show(store, args)
	case "export":
		return export(store, args)
	case "delete":
		return remove(store, args)
	case "stats":
		return stats(store)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func importFiles(store *storage.Storage, files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("import: no files given")
	}

	for _, file := range files {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".pgn":
			if err := importPGN(store, file); err != nil {
				return err
			}
		case ".json":
			if err := importRecord(store, file); err != nil {
				return err
			}
		default:
			return fmt.Errorf("import: unsupported file type %q", file)
		}
	}

	return nil
}

func importPGN(store *storage.Storage, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	pgnGames := game.ParsePGN(string(data))
	if len(pgnGames) == 0 {
		return fmt.Errorf("import: no games in %s", file)
	}

	// Every replay builds its own game, so games replay in parallel.
	replayed := make([]*game.Game, len(pgnGames))

	var group errgroup.Group

	group.SetLimit(*jobs)

	for i, pg := range pgnGames {
		i, pg := i, pg
		group.Go(func() error {
			g, err := game.ReplayPGN(pg)
			if err != nil {
				return fmt.Errorf("%s game %d: %w", file, i+1, err)
			}

			replayed[i] = g
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for i, g := range replayed {
		id := gameID(file, pgnGames[i], i)
		if err := store.SaveGame(id, g); err != nil {
			return err
		}
		log.Printf("imported %s", id)
	}

	return nil
}

func importRecord(store *storage.Storage, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	g, err := game.ParseRecord(data)
	if err != nil {
		return err
	}

	id := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	if err := store.SaveGame(id, g); err != nil {
		return err
	}
	log.Printf("imported %s", id)

	return nil
}

// gameID labels an imported game by its players when the PGN tags
// name them, falling back to the file name.
func gameID(file string, pg game.PGNGame, index int) string {
	white, black := pg.Tags["White"], pg.Tags["Black"]
	if white != "" && black != "" {
		return fmt.Sprintf("%s vs %s #%d", white, black, index+1)
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

	return fmt.Sprintf("%s-%d", base, index+1)
}

func list(store *storage.Storage) error {
	games, err := store.ListGames()
	if err != nil {
		return err
	}

	if len(games) == 0 {
		fmt.Println("archive is empty")
		return nil
	}

	for _, info := range games {
		fmt.Printf("%-40s  %s  %3d half moves\n", info.ID, info.Created.Format("2006-01-02"), info.Moves)
	}

	return nil
}

func show(store *storage.Storage, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("show: expected exactly one game id")
	}

	g, err := store.LoadGame(args[0])
	if err != nil {
		return err
	}

	b := g.Board()

	fmt.Println(b.String())
	fmt.Println()

	for _, team := range []board.Team{board.Black, board.White} {
		captures := b.Captures[team]
		if len(captures) == 0 {
			continue
		}

		symbols := make([]string, len(captures))
		for i, piece := range captures {
			symbols[i] = piece.Symbol()
		}
		fmt.Printf("%s lost: %s\n", team, strings.Join(symbols, " "))
	}

	for _, entry := range b.Elog {
		fmt.Println(strings.Join(entry, " "))
	}

	return nil
}

func export(store *storage.Storage, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("export: expected a game id and a file name")
	}

	g, err := store.LoadGame(args[0])
	if err != nil {
		return err
	}

	saved, err := g.Save(args[1], *version)
	if err != nil {
		return err
	}
	if !saved {
		return fmt.Errorf("export: %q has no board to save", args[0])
	}

	log.Printf("exported %s to %s", args[0], args[1])

	return nil
}

func remove(store *storage.Storage, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("delete: expected exactly one game id")
	}

	if err := store.DeleteGame(args[0]); err != nil {
		return err
	}

	log.Printf("deleted %s", args[0])

	return nil
}

func stats(store *storage.Storage) error {
	archiveStats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("games stored: %d\n", archiveStats.GamesStored)
	fmt.Printf("half moves:   %d\n", archiveStats.MovesStored)

	if !archiveStats.LastSaved.IsZero() {
		fmt.Printf("last saved:   %s\n", archiveStats.LastSaved.Format("2006-01-02 15:04:05"))
	}

	return nil
}
