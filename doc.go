// Package aoc2025 collects the daily puzzle solvers for Advent of Code 2025.
//
// Each day lives on its own: a tiny driver under cmd/ reads the puzzle input,
// hands the parsed values to a library package and prints both answers.
//
// Packages:
//
//	rectypoly/ — rectilinear polygons over integer tiles: containment,
//	             boundary tests, edge crossings and the largest
//	             axis-aligned rectangle spanned by two vertices (day 9)
//	cmd/day9/  — command line driver for the day 9 puzzle
//
// Quick ASCII example (day 9 sample, '#' = vertex, 'X' = boundary):
//
//	..............
//	.......#XXX#..
//	.......X...X..
//	..#XXXX#...X..
//	..X........X..
//	..#XXXXXX#.X..
//	.........X.X..
//	.........#X#..
//	..............
//
//	go run ./cmd/day9 --input input/input_d9.txt
package aoc2025
