// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/memlz

// memlz is a demo command for the memlz codec: one-shot file compression
// with explicit paths, or frame streaming between stdin and stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/woozymasta/memlz"
)

// packetLen is the input chunk framed per StreamCompress call in streaming
// mode.
const packetLen = 1 << 20

var compressCommand = &cli.Command{
	Name:      "c",
	Aliases:   []string{"compress"},
	Usage:     "compress infile to outfile, or stdin to stdout when no files are given",
	ArgsUsage: "[infile outfile]",
	Action:    runCompress,
}

var decompressCommand = &cli.Command{
	Name:      "d",
	Aliases:   []string{"decompress"},
	Usage:     "decompress infile to outfile, or stdin to stdout when no files are given",
	ArgsUsage: "[infile outfile]",
	Action:    runDecompress,
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "memlz",
		Usage: "extremely fast word-hash compression",
		Commands: []*cli.Command{
			compressCommand,
			decompressCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCompress(ctx *cli.Context) error {
	switch ctx.NArg() {
	case 0:
		return streamCompress(os.Stdin, os.Stdout)
	case 2:
		in, err := os.ReadFile(ctx.Args().Get(0))
		if err != nil {
			return err
		}

		return os.WriteFile(ctx.Args().Get(1), memlz.Compress(nil, in), 0o644)
	default:
		return cli.Exit("usage: memlz c [infile outfile]", 1)
	}
}

func runDecompress(ctx *cli.Context) error {
	switch ctx.NArg() {
	case 0:
		return streamDecompress(os.Stdin, os.Stdout)
	case 2:
		in, err := os.ReadFile(ctx.Args().Get(0))
		if err != nil {
			return err
		}

		out, err := memlz.Decompress(nil, in)
		if err != nil {
			return err
		}

		return os.WriteFile(ctx.Args().Get(1), out, 0o644)
	default:
		return cli.Exit("usage: memlz d [infile outfile]", 1)
	}
}

// streamCompress frames packetLen chunks of r through one session onto w.
func streamCompress(r io.Reader, w io.Writer) error {
	var s memlz.State
	s.Reset()

	in := make([]byte, packetLen)
	out := make([]byte, memlz.MaxCompressedLen(packetLen))

	for {
		n, err := io.ReadFull(r, in)
		if n > 0 {
			if _, werr := w.Write(memlz.StreamCompress(out, in[:n], &s)); werr != nil {
				return werr
			}
		}

		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// streamDecompress reads frames from r and writes decoded packets to w,
// through one session, until the stream ends at a frame boundary.
func streamDecompress(r io.Reader, w io.Writer) error {
	var s memlz.State
	s.Reset()

	buf := make([]byte, memlz.MaxCompressedLen(packetLen))
	dst := make([]byte, packetLen)

	for {
		frame, err := memlz.ReadFrame(r, buf)
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		buf = frame

		// The peer may have framed larger packets than ours.
		need, err := memlz.DecompressedLen(frame)
		if err != nil {
			return err
		}

		if need > len(dst) {
			dst = make([]byte, need)
		}

		out, err := memlz.StreamDecompress(dst, frame, &s)
		if err != nil {
			return err
		}

		if _, err := w.Write(out); err != nil {
			return err
		}
	}
}
