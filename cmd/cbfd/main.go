package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/ajroetker/go-cbf"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	stdout  = flag.Bool("c", false, "Write all output to stdout. Multiple input files will be concatenated")
	out     = flag.String("o", "", "Write output to another file. Single input file only")
	asFloat = flag.Bool("float", false, "Write float32 values instead of int32")
	cumsum  = flag.Bool("cumsum", false, "Integrate deltas into absolute intensities before writing")
	verify  = flag.Bool("verify", false, "Cross-check against the sequential decoder, but do not write output")
	quiet   = flag.Bool("q", false, "Don't write any output to terminal, except errors")
	cpu     = flag.Int("cpu", runtime.GOMAXPROCS(0), "Decode using this amount of goroutines per stage")
	help    = flag.Bool("help", false, "Display help")

	version = "(dev)"
)

const (
	gzExt   = ".gz"
	zstdExt = ".zst"
	rawExt  = ".raw"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 || *help {
		_, _ = fmt.Fprintf(os.Stderr, "cbfd byte-offset decoder v%v.\n\n", version)
		_, _ = fmt.Fprintln(os.Stderr, `Usage: cbfd [options] file1 file2

Decodes files holding the binary section of one byte-offset compressed CBF
frame. Files ending in '`+gzExt+`' or '`+zstdExt+`' are decompressed first.
Output is little-endian int32 (or float32 with -float) written to the input
name with '`+rawExt+`' appended, unless -o or -c is given.

Options:`)
		flag.PrintDefaults()
		os.Exit(0)
	}
	if *out != "" && len(args) > 1 {
		exitErr(errors.New("-o can only be used with a single input file"))
	}

	opts := options{
		float:  *asFloat,
		cumsum: *cumsum,
		dec:    cbf.NewDecoder(&cbf.DecodeOptions{Workers: *cpu}),
	}
	*quiet = *quiet || *stdout

	for _, filename := range args {
		start := time.Now()
		src, err := readPayload(filename)
		exitErr(err)

		if *verify {
			st, err := verifyPayload(opts.dec, src)
			exitErr(err)
			if !*quiet {
				fmt.Fprintf(os.Stderr, "%s: OK, %d bytes -> %d elements, %d escape regions\n", filename, st.Bytes, st.Elements, st.Regions)
			}
			continue
		}

		var w io.Writer
		var closeFn func() error
		switch {
		case *stdout:
			w = os.Stdout
		default:
			dstFilename := *out
			if dstFilename == "" {
				dstFilename = outputName(filename)
			}
			f, err := os.Create(dstFilename)
			exitErr(err)
			w, closeFn = f, f.Close
		}

		n, err := decodeTo(w, src, opts)
		exitErr(err)
		if closeFn != nil {
			exitErr(closeFn())
		}
		if !*quiet {
			elapsed := time.Since(start)
			mbps := float64(len(src)) / (1 << 20) / elapsed.Seconds()
			fmt.Fprintf(os.Stderr, "%s: %d bytes -> %d elements [%.02f MB/s]\n", filename, len(src), n, mbps)
		}
	}
}

type options struct {
	float  bool
	cumsum bool
	dec    *cbf.Decoder
}

// readPayload reads a whole file, removing a gzip or zstd wrapper when the
// name says so.
func readPayload(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readAll(f, filename)
}

func readAll(r io.Reader, filename string) ([]byte, error) {
	switch {
	case strings.HasSuffix(filename, gzExt):
		zr, err := gzip.NewReader(bufio.NewReader(r))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case strings.HasSuffix(filename, zstdExt):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	return io.ReadAll(r)
}

// outputName strips a compression suffix and appends rawExt.
func outputName(filename string) string {
	for _, ext := range []string{gzExt, zstdExt} {
		filename = strings.TrimSuffix(filename, ext)
	}
	return filename + rawExt
}

// decodeTo decodes src and writes the values to w, returning the element
// count.
func decodeTo(w io.Writer, src []byte, opts options) (int, error) {
	deltas, err := opts.dec.Decode(src)
	if err != nil {
		return 0, err
	}
	if opts.cumsum {
		cbf.Integrate(deltas, 0)
	}

	bw := bufio.NewWriterSize(w, 1<<20)
	var buf [4]byte
	for _, v := range deltas {
		u := uint32(v)
		if opts.float {
			u = math.Float32bits(float32(v))
		}
		binary.LittleEndian.PutUint32(buf[:], u)
		if _, err := bw.Write(buf[:]); err != nil {
			return 0, err
		}
	}
	return len(deltas), bw.Flush()
}

// verifyPayload decodes src with both decoders and fails on any difference.
func verifyPayload(dec *cbf.Decoder, src []byte) (cbf.Stats, error) {
	got, err := dec.Decode(src)
	if err != nil {
		return cbf.Stats{}, err
	}
	want := cbf.DecodeSequential(src)
	if !slices.Equal(got, want) {
		i := 0
		for i < min(len(got), len(want)) && got[i] == want[i] {
			i++
		}
		return cbf.Stats{}, fmt.Errorf("mismatch at element %d (parallel %d elements, sequential %d)", i, len(got), len(want))
	}
	return dec.Analyze(src)
}

func exitErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
		os.Exit(2)
	}
}
