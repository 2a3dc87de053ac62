// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Command mc6809dasm disassembles a raw binary image of 6809 code.
// Grounded on go/chr2png/main.go's cli.App{Flags,Action} idiom, the
// teacher's one concrete usage site of gopkg.in/urfave/cli.v2.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go6809/mc6809/internal/disasm"
	"gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Name:    "mc6809dasm",
		Usage:   "Disassemble a raw MC6809 binary image",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "load address, e.g. 0x0000",
				Value:   "0x0000",
			},
			&cli.BoolFlag{
				Name:    "header",
				Aliases: []string{"H"},
				Usage:   "include the column header line",
				Value:   true,
			},
		},
		Action: func(c *cli.Context) error {
			args := c.Args()
			if args.Len() < 1 {
				cli.ShowAppHelp(c)
				return cli.Exit("missing binary file path", 86)
			}

			path := args.Get(0)
			data, err := os.ReadFile(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("reading %s: %v", path, err), 1)
			}

			start, err := parseAddr(c.String("start"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid --start: %v", err), 86)
			}

			listing, err := disasm.Disassemble(data, start)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			out := listing.String()
			if !c.Bool("header") {
				var kept []string
				for _, line := range strings.SplitAfter(out, "\n") {
					if !strings.HasPrefix(line, "ADDR ") {
						kept = append(kept, line)
					}
				}
				out = strings.Join(kept, "")
			}
			fmt.Print(out)
			return nil
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
