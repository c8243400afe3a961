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

package compute

import (
	"fmt"
	"sync"

	"github.com/apache/arrow-dataframe"
	"github.com/apache/arrow-dataframe/compute/internal/kernels"
	"github.com/apache/arrow-dataframe/decimal128"
	"github.com/apache/arrow-dataframe/internal/cpu"
	"github.com/apache/arrow-dataframe/internal/debug"
)

// handlerCache memoizes one handler per element type. Handlers for the
// fixed kinds are built exactly once. Parameterized types are keyed by
// their full value, so a cached handler always reports the type it was
// requested for. Every entry is immutable once stored.
type handlerCache struct {
	noSIMD bool

	once     [dataframe.DECIMAL128 + 1]sync.Once
	handlers [dataframe.DECIMAL128 + 1]any

	timestamps sync.Map // dataframe.TimestampType -> *kernels.Handler[dataframe.Timestamp]
	decimals   sync.Map // dataframe.Decimal128Type -> *kernels.Handler[decimal128.Num]
}

var (
	simdHandlers   = &handlerCache{}
	scalarHandlers = &handlerCache{noSIMD: true}
)

func cacheFor(opts Options) *handlerCache {
	if opts.NoSIMD {
		return scalarHandlers
	}
	return simdHandlers
}

type capable interface {
	DataType() dataframe.DataType
	Capabilities() kernels.Capability
}

func unsupportedType(dt dataframe.DataType) error {
	if dt == nil {
		return fmt.Errorf("%w: <nil>", dataframe.ErrUnsupportedType)
	}
	return fmt.Errorf("%w: %s", dataframe.ErrUnsupportedType, dt)
}

func lanesOf[T any](c *handlerCache) int {
	if c.noSIMD {
		return 1
	}
	return cpu.Lanes[T]()
}

func newFixedHandler(c *handlerCache, dt dataframe.DataType) any {
	switch dt.ID() {
	case dataframe.BOOL:
		return kernels.NewBooleanHandler()
	case dataframe.INT8:
		return kernels.NewIntegerHandler[int8](dt, lanesOf[int8](c))
	case dataframe.UINT8:
		return kernels.NewIntegerHandler[uint8](dt, lanesOf[uint8](c))
	case dataframe.INT16:
		return kernels.NewIntegerHandler[int16](dt, lanesOf[int16](c))
	case dataframe.UINT16:
		return kernels.NewIntegerHandler[uint16](dt, lanesOf[uint16](c))
	case dataframe.INT32:
		return kernels.NewIntegerHandler[int32](dt, lanesOf[int32](c))
	case dataframe.UINT32:
		return kernels.NewIntegerHandler[uint32](dt, lanesOf[uint32](c))
	case dataframe.INT64:
		return kernels.NewIntegerHandler[int64](dt, lanesOf[int64](c))
	case dataframe.UINT64:
		return kernels.NewIntegerHandler[uint64](dt, lanesOf[uint64](c))
	case dataframe.FLOAT32:
		return kernels.NewFloatHandler[float32, uint32](dt, lanesOf[float32](c))
	case dataframe.FLOAT64:
		return kernels.NewFloatHandler[float64, uint64](dt, lanesOf[float64](c))
	}
	return nil
}

func logBuilt(dt dataframe.DataType, h any, noSIMD bool) {
	debug.Log(func() string {
		mode := cpu.Level().String()
		if noSIMD {
			mode = "scalar"
		}
		return fmt.Sprintf("compute: built %s handler (%s, %s)", dt, h.(capable).Capabilities(), mode)
	})
}

// loadOrBuild returns the handler stored under key in m, building it on a
// miss. Racing builders produce equivalent handlers; the first one stored
// wins.
func (c *handlerCache) loadOrBuild(m *sync.Map, key any, build func() any) any {
	if h, ok := m.Load(key); ok {
		return h
	}
	h, loaded := m.LoadOrStore(key, build())
	if !loaded {
		logBuilt(h.(capable).DataType(), h, c.noSIMD)
	}
	return h
}

func (c *handlerCache) lookup(dt dataframe.DataType) (any, error) {
	if dt == nil {
		return nil, unsupportedType(dt)
	}

	switch id := dt.ID(); id {
	case dataframe.BOOL, dataframe.INT8, dataframe.UINT8, dataframe.INT16, dataframe.UINT16,
		dataframe.INT32, dataframe.UINT32, dataframe.INT64, dataframe.UINT64,
		dataframe.FLOAT32, dataframe.FLOAT64:
		c.once[id].Do(func() {
			c.handlers[id] = newFixedHandler(c, dt)
			logBuilt(dt, c.handlers[id], c.noSIMD)
		})
		return c.handlers[id], nil

	case dataframe.TIMESTAMP:
		ts, ok := dt.(*dataframe.TimestampType)
		if !ok || ts == nil || ts.Unit < dataframe.Nanosecond || ts.Unit > dataframe.Second {
			return nil, unsupportedType(dt)
		}
		key := *ts
		return c.loadOrBuild(&c.timestamps, key, func() any {
			return kernels.NewTimestampHandler(&key)
		}), nil

	case dataframe.DECIMAL128:
		dec, ok := dt.(*dataframe.Decimal128Type)
		if !ok || dec == nil {
			return nil, unsupportedType(dt)
		}
		if err := dec.Validate(); err != nil {
			return nil, err
		}
		key := *dec
		return c.loadOrBuild(&c.decimals, key, func() any {
			return kernels.NewDecimalHandler(&key, lanesOf[decimal128.Num](c))
		}), nil
	}
	return nil, unsupportedType(dt)
}

func resolve[T any](c *handlerCache, dt dataframe.DataType) (*kernels.Handler[T], error) {
	h, err := c.lookup(dt)
	if err != nil {
		return nil, err
	}
	out, ok := h.(*kernels.Handler[T])
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: %s elements cannot be handled as %T",
			dataframe.ErrUnsupportedType, dt, zero)
	}
	return out, nil
}

// Resolve returns the handler for elements of type T described by dt. It
// fails with dataframe.ErrUnsupportedType when dt is not a supported kind
// or T is not the Go type dt's elements are stored as:
//
//	bool                  dataframe.BOOL
//	int8 ... uint64       the matching integer Type
//	float32, float64      dataframe.FLOAT32, dataframe.FLOAT64
//	dataframe.Timestamp   *dataframe.TimestampType
//	decimal128.Num        *dataframe.Decimal128Type
//
// Handlers are built on first use and shared afterwards.
func Resolve[T any](dt dataframe.DataType) (*kernels.Handler[T], error) {
	return resolve[T](simdHandlers, dt)
}

// Capabilities reports the operator groups supported for dt.
func Capabilities(dt dataframe.DataType) (Capability, error) {
	h, err := simdHandlers.lookup(dt)
	if err != nil {
		return 0, err
	}
	return h.(capable).Capabilities(), nil
}

// Supports reports whether op can be applied to elements of type dt.
func Supports(dt dataframe.DataType, op Operator) bool {
	caps, err := Capabilities(dt)
	return err == nil && caps.Has(op.Capability())
}
