// Command day9 solves the Advent of Code 2025 day 9 puzzle: the largest
// rectangle spanned by two red tiles, first anywhere, then inside the loop
// the red tiles outline.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/katalvlaran/aoc2025/rectypoly"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "day9"
	app.Usage = "largest rectangle between red tiles"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "input, i",
			Value: "input/input_d9.txt",
			Usage: "puzzle input, one \"col,row\" tile per line",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "log the winning corners",
		},
	}
	app.Action = run

	return app
}

func run(c *cli.Context) error {
	path := c.String("input")
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	tiles, err := rectypoly.ReadTiles(f)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	poly, err := rectypoly.NewRectyPoly(tiles)
	if err != nil {
		return errors.Wrap(err, "building polygon")
	}
	verbose := c.Bool("verbose")
	if verbose {
		log.Printf("read %d tiles from %s", len(tiles), path)
	}

	best, _ := rectypoly.BestRect(tiles)
	if verbose {
		log.Printf("part 1: corners %v and %v", best.A, best.B)
	}
	fmt.Fprintf(c.App.Writer, "Day 9 part 1: largest rect is %d\n", best.Area)

	inside, ok := poly.BestRectInside()
	if verbose {
		if ok {
			log.Printf("part 2: corners %v and %v", inside.A, inside.B)
		} else {
			log.Println("part 2: no rectangle fits inside the loop")
		}
	}
	fmt.Fprintf(c.App.Writer, "Day 9 part 2: largest rect inside is %d\n", inside.Area)

	return nil
}
