// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command arith-bench times the element-wise kernels on the current CPU
// and checks that the vectorized and scalar paths agree.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unsafe"

	"github.com/apache/arrow-dataframe"
	"github.com/apache/arrow-dataframe/compute"
	"github.com/apache/arrow-dataframe/internal/cpu"
	"github.com/docopt/docopt-go"
	"github.com/goccy/go-json"
	"github.com/zeebo/xxh3"
	"golang.org/x/xerrors"
)

const usage = `Arithmetic kernel benchmark.
Usage:
  arith-bench -h | --help
  arith-bench [--type=TYPE] [--op=OP] [--len=N] [--iters=K] [--no-simd] [--json]
Options:
  -h --help     Show this screen.
  --type=TYPE   Element type: int8, int16, int32, int64, uint8, uint16, uint32,
                uint64, float32 or float64 [default: int32].
  --op=OP       Operator: add, subtract, multiply, divide, modulo, and, or, xor
                [default: add].
  --len=N       Elements per buffer; 0 sizes the buffers to the L2 cache [default: 0].
  --iters=K     Timed iterations per mode [default: 100].
  --no-simd     Only run the scalar kernels.
  --json        Print the report as JSON.`

type config struct {
	Type   string
	Op     string
	Len    int
	Iters  int
	NoSIMD bool
	JSON   bool
}

type modeResult struct {
	Lanes     int     `json:"lanes"`
	NsPerElem float64 `json:"ns_per_element"`
	Digest    string  `json:"digest"`
}

type report struct {
	Type   string      `json:"type"`
	Op     string      `json:"op"`
	Len    int         `json:"len"`
	Iters  int         `json:"iters"`
	CPU    string      `json:"cpu"`
	Level  string      `json:"dispatch_level"`
	SIMD   *modeResult `json:"simd,omitempty"`
	Scalar *modeResult `json:"scalar"`
}

type numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

func parseArgs(argv []string) (config, error) {
	opts, err := docopt.ParseArgs(usage, argv, "")
	if err != nil {
		return config{}, err
	}

	var cfg config
	if cfg.Type, err = opts.String("--type"); err != nil {
		return cfg, err
	}
	if cfg.Op, err = opts.String("--op"); err != nil {
		return cfg, err
	}
	if cfg.Len, err = opts.Int("--len"); err != nil {
		return cfg, xerrors.Errorf("--len: %w", err)
	}
	if cfg.Iters, err = opts.Int("--iters"); err != nil {
		return cfg, xerrors.Errorf("--iters: %w", err)
	}
	cfg.NoSIMD, _ = opts.Bool("--no-simd")
	cfg.JSON, _ = opts.Bool("--json")

	if cfg.Len < 0 || cfg.Iters < 1 {
		return cfg, xerrors.New("--len must be non-negative and --iters positive")
	}
	return cfg, nil
}

func run(cfg config) (*report, error) {
	op, ok := compute.ParseBinaryOp(strings.ToLower(cfg.Op))
	if !ok {
		return nil, xerrors.Errorf("unknown operator %q", cfg.Op)
	}

	switch strings.ToLower(cfg.Type) {
	case "int8":
		return bench[int8](cfg, op, dataframe.PrimitiveTypes.Int8)
	case "int16":
		return bench[int16](cfg, op, dataframe.PrimitiveTypes.Int16)
	case "int32":
		return bench[int32](cfg, op, dataframe.PrimitiveTypes.Int32)
	case "int64":
		return bench[int64](cfg, op, dataframe.PrimitiveTypes.Int64)
	case "uint8":
		return bench[uint8](cfg, op, dataframe.PrimitiveTypes.Uint8)
	case "uint16":
		return bench[uint16](cfg, op, dataframe.PrimitiveTypes.Uint16)
	case "uint32":
		return bench[uint32](cfg, op, dataframe.PrimitiveTypes.Uint32)
	case "uint64":
		return bench[uint64](cfg, op, dataframe.PrimitiveTypes.Uint64)
	case "float32":
		return bench[float32](cfg, op, dataframe.PrimitiveTypes.Float32)
	case "float64":
		return bench[float64](cfg, op, dataframe.PrimitiveTypes.Float64)
	}
	return nil, xerrors.Errorf("unknown element type %q", cfg.Type)
}

// bufferLen sizes two inputs and an output to fit in the L2 cache when
// the user did not pick a length.
func bufferLen(requested int, elemSize uintptr) int {
	if requested > 0 {
		return requested
	}
	return cpu.CacheSizes()[1] / (3 * int(elemSize))
}

func fill[T numeric](n int) (left, right []T) {
	left, right = make([]T, n), make([]T, n)
	for i := range left {
		left[i] = T(i*7 + 3)
		right[i] = T(i%13 + 1)
	}
	return left, right
}

func digest[T any](vals []T) string {
	if len(vals) == 0 {
		return fmt.Sprintf("%016x", xxh3.Hash(nil))
	}
	var zero T
	raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vals))), len(vals)*int(unsafe.Sizeof(zero)))
	return fmt.Sprintf("%016x", xxh3.Hash(raw))
}

func timeMode[T numeric](e compute.Engine[T], op compute.BinaryOp, iters int, left, right, out []T) (*modeResult, error) {
	// warm up and surface errors before timing
	if err := e.ArrArr(op, left, right, out); err != nil {
		return nil, xerrors.Errorf("%s %s: %w", e.DataType(), op, err)
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := e.ArrArr(op, left, right, out); err != nil {
			return nil, err
		}
	}
	elapsed := time.Since(start)

	res := &modeResult{Lanes: e.Lanes(), Digest: digest(out)}
	if n := len(out) * iters; n > 0 {
		res.NsPerElem = float64(elapsed.Nanoseconds()) / float64(n)
	}
	return res, nil
}

func bench[T numeric](cfg config, op compute.BinaryOp, dt dataframe.DataType) (*report, error) {
	var zero T
	n := bufferLen(cfg.Len, unsafe.Sizeof(zero))
	left, right := fill[T](n)
	out := make([]T, n)

	rep := &report{
		Type:  dt.String(),
		Op:    op.String(),
		Len:   n,
		Iters: cfg.Iters,
		CPU:   cpu.BrandName(),
		Level: cpu.Level().String(),
	}

	scalar, err := compute.NewEngine[T](dt, compute.Options{NoSIMD: true})
	if err != nil {
		return nil, err
	}
	if rep.Scalar, err = timeMode(scalar, op, cfg.Iters, left, right, out); err != nil {
		return nil, err
	}
	if cfg.NoSIMD {
		return rep, nil
	}

	simd, err := compute.NewEngine[T](dt, compute.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if rep.SIMD, err = timeMode(simd, op, cfg.Iters, left, right, out); err != nil {
		return nil, err
	}
	if rep.SIMD.Digest != rep.Scalar.Digest {
		return rep, xerrors.Errorf("%s %s: vector result %s does not match scalar result %s",
			dt, op, rep.SIMD.Digest, rep.Scalar.Digest)
	}
	return rep, nil
}

func printText(rep *report) {
	fmt.Printf("CPU: %s (%s)\n", rep.CPU, rep.Level)
	fmt.Printf("%s %s over %d elements, %d iterations\n", rep.Type, rep.Op, rep.Len, rep.Iters)
	fmt.Printf("  scalar: %8.3f ns/elem  lanes=%-3d digest=%s\n", rep.Scalar.NsPerElem, rep.Scalar.Lanes, rep.Scalar.Digest)
	if rep.SIMD != nil {
		fmt.Printf("  simd:   %8.3f ns/elem  lanes=%-3d digest=%s\n", rep.SIMD.NsPerElem, rep.SIMD.Lanes, rep.SIMD.Digest)
		if rep.SIMD.NsPerElem > 0 {
			fmt.Printf("  speedup: %.2fx\n", rep.Scalar.NsPerElem/rep.SIMD.NsPerElem)
		}
	}
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	rep, err := run(cfg)
	if rep != nil {
		if cfg.JSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(rep); encErr != nil {
				fmt.Fprintln(os.Stderr, "error encoding report:", encErr)
			}
		} else {
			printText(rep)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}
