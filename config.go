//
//  Copyright 2026 The Burgerlib authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package burgerlib

import "sync"

// Config is the handle all filesystem operations in this package take,
// either explicitly or (through Cfg) implicitly. It bundles the active
// PlatformAdapter, the prefix registry, the IO queue and the copy-buffer
// pool.
type Config struct {
	adapter  PlatformAdapter
	prefixes *PrefixRegistry
	queue    *IOQueue
	logger   Logger
	bufPool  *sync.Pool
	bufSize  int
}

// NewConfig returns a Config with no PlatformAdapter set; callers must call
// SetPlatformAdapter before using any operation that needs native paths.
// Tests that don't want to share the process-wide Cfg construct their own
// Config through this instead.
func NewConfig() *Config {
	const bufSize = 32 * 1024

	cfg := &Config{
		prefixes: NewPrefixRegistry(),
		logger:   noopLogger{},
		bufSize:  bufSize,
	}

	cfg.bufPool = &sync.Pool{New: func() any {
		buf := make([]byte, cfg.bufSize)

		return &buf
	}}

	cfg.queue = NewIOQueue()

	return cfg
}

// Cfg is the process-wide configuration, populated by FileManager's Init
// lifecycle. Most callers use the package-level FileManager functions,
// which operate on Cfg implicitly.
var Cfg *Config //nolint:gochecknoglobals // process-wide state, one filesystem per process.

// Cfg is assigned in init rather than in its declaration: NewConfig reaches
// AbsPathOf, which refers back to Cfg, so a declaration initializer would be
// an initialization cycle.
func init() { //nolint:gochecknoinits // see above.
	Cfg = NewConfig()
}

// PlatformAdapter returns the adapter this Config delegates native-path
// operations to, or nil if none has been set.
func (cfg *Config) PlatformAdapter() PlatformAdapter {
	return cfg.adapter
}

// SetPlatformAdapter installs the adapter used for native-path conversion
// and host filesystem calls.
func (cfg *Config) SetPlatformAdapter(adapter PlatformAdapter) {
	cfg.adapter = adapter
}

// Prefixes returns this Config's prefix registry.
func (cfg *Config) Prefixes() *PrefixRegistry {
	return cfg.prefixes
}

// Queue returns this Config's asynchronous IO queue.
func (cfg *Config) Queue() *IOQueue {
	return cfg.queue
}

// Logger returns the Logger callers may use for diagnostics.
func (cfg *Config) Logger() Logger {
	return cfg.logger
}

// SetLogger installs a Logger, overriding the default no-op implementation.
func (cfg *Config) SetLogger(logger Logger) {
	if logger == nil {
		logger = noopLogger{}
	}

	cfg.logger = logger
}

// getBuf borrows a copy buffer from the pool, for use by FileManager.CopyFile.
func (cfg *Config) getBuf() *[]byte {
	return cfg.bufPool.Get().(*[]byte) //nolint:forcetypeassert // pool only ever holds *[]byte.
}

func (cfg *Config) putBuf(buf *[]byte) {
	cfg.bufPool.Put(buf)
}
