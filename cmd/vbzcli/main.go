/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command vbzcli is a small front end over the vbz package: compress,
// decompress and inspect sized VBZ frames from the shell, the same role
// Kanzi's BlockCompressor/BlockDecompressor pair plays for the general
// block codec this module grew out of.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nanoporetech/vbz-go"
)

var log zerolog.Logger

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vbzcli",
		Short: "Compress and inspect VBZ frames",
	}

	root.AddCommand(compressCmd(), decompressCmd(), infoCmd())
	return root
}

// optionFlags binds the four fields of vbz.Options to a command's flag
// set, mirroring BlockCompressor's -t/-e/-b style option flags.
func optionFlags(cmd *cobra.Command) *vbz.Options {
	opts := &vbz.Options{}

	cmd.Flags().BoolVarP(&opts.PerformDeltaZigZag, "zigzag", "z", true, "apply delta + zig-zag transform before packing")
	cmd.Flags().Uint32VarP(&opts.IntegerSize, "integer-size", "s", 2, "input integer width in bytes (0, 1, 2 or 4)")
	cmd.Flags().Uint32VarP(&opts.ZstdCompressionLevel, "level", "l", 3, "zstd compression level (0 disables the entropy stage)")
	cmd.Flags().Uint32VarP(&opts.VBZVersion, "version", "V", vbz.DefaultVersion, "StreamVByte wire version (0 or 1)")

	return opts
}

func compressCmd() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress a raw integer stream into a sized VBZ frame",
	}

	opts := optionFlags(cmd)
	cmd.Flags().StringVarP(&in, "input", "i", "", "input file (required)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (required)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	cmd.RunE = func(*cobra.Command, []string) error {
		invocation := uuid.New()
		logger := log.With().Str("invocation", invocation.String()).Str("cmd", "compress").Logger()

		src, err := os.ReadFile(in)
		if err != nil {
			logger.Error().Err(err).Msg("failed to read input")
			return err
		}

		maxSize := vbz.MaxCompressedSize(uint32(len(src)), *opts)
		if vbz.IsError(maxSize) {
			return fmt.Errorf("vbz: %s", vbz.ErrorString(maxSize))
		}

		dst := make([]byte, maxSize)
		n := vbz.CompressSized(src, dst, *opts)
		if vbz.IsError(n) {
			return fmt.Errorf("vbz: %s", vbz.ErrorString(n))
		}

		if err := os.WriteFile(out, dst[:n], 0o644); err != nil {
			logger.Error().Err(err).Msg("failed to write output")
			return err
		}

		logger.Info().
			Int("input_bytes", len(src)).
			Uint32("output_bytes", n).
			Msg("compressed")

		return nil
	}

	return cmd
}

func decompressCmd() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Decompress a sized VBZ frame back into a raw integer stream",
	}

	opts := optionFlags(cmd)
	cmd.Flags().StringVarP(&in, "input", "i", "", "input file (required)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (required)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	cmd.RunE = func(*cobra.Command, []string) error {
		invocation := uuid.New()
		logger := log.With().Str("invocation", invocation.String()).Str("cmd", "decompress").Logger()

		src, err := os.ReadFile(in)
		if err != nil {
			logger.Error().Err(err).Msg("failed to read input")
			return err
		}

		size := vbz.DecompressedSize(src, *opts)
		if vbz.IsError(size) {
			return fmt.Errorf("vbz: %s", vbz.ErrorString(size))
		}

		dst := make([]byte, size)
		n := vbz.DecompressSized(src, dst, *opts)
		if vbz.IsError(n) {
			return fmt.Errorf("vbz: %s", vbz.ErrorString(n))
		}

		if err := os.WriteFile(out, dst[:n], 0o644); err != nil {
			logger.Error().Err(err).Msg("failed to write output")
			return err
		}

		logger.Info().
			Int("input_bytes", len(src)).
			Uint32("output_bytes", n).
			Msg("decompressed")

		return nil
	}

	return cmd
}

func infoCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the original size recorded in a sized VBZ frame's header",
	}

	opts := optionFlags(cmd)
	cmd.Flags().StringVarP(&in, "input", "i", "", "input file (required)")
	cmd.MarkFlagRequired("input")

	cmd.RunE = func(*cobra.Command, []string) error {
		src, err := os.ReadFile(in)
		if err != nil {
			return err
		}

		size := vbz.DecompressedSize(src, *opts)
		if vbz.IsError(size) {
			return fmt.Errorf("vbz: %s", vbz.ErrorString(size))
		}

		fmt.Printf("frame_bytes=%d original_bytes=%d\n", len(src), size)
		return nil
	}

	return cmd
}
