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

import (
	"strconv"

	"github.com/valyala/fastrand"
)

// RndPathOpts parameterizes a random Burgerlib path/directory-tree
// generator that produces well-formed Burgerlib paths
// (":label:dir-1:dir-2:file-3.bin:") suitable for exercising DirSearch,
// IOQueue FIFO ordering and Filename.AbsPath across many table cases.
type RndPathOpts struct {
	NbDirs      int // NbDirs is the number of directories.
	NbFiles     int // NbFiles is the number of files.
	MaxFileSize int // MaxFileSize is the maximum size of a generated file, in bytes.
	MaxDepth    int // MaxDepth is the maximum nesting depth of the tree.
}

// RndDir describes one generated directory.
type RndDir struct {
	Path  string // Burgerlib path, ending in a colon.
	Depth int
}

// RndFile describes one generated file.
type RndFile struct {
	Path string // Burgerlib path, ending in a colon.
	Size int
}

// RndPathGen is a random Burgerlib path generator, built on
// github.com/valyala/fastrand instead of math/rand: fastrand's generator
// needs no mutex, which matters here since table-driven tests often
// generate many independent trees concurrently across subtests.
type RndPathGen struct {
	opts  RndPathOpts
	dirs  []*RndDir
	files []*RndFile
}

// NewRndPathGen returns a new generator. Negative option fields are
// clamped to zero.
func NewRndPathGen(opts RndPathOpts) *RndPathGen {
	if opts.NbDirs < 0 {
		opts.NbDirs = 0
	}

	if opts.NbFiles < 0 {
		opts.NbFiles = 0
	}

	if opts.MaxDepth < 0 {
		opts.MaxDepth = 0
	}

	if opts.MaxFileSize < 0 {
		opts.MaxFileSize = 0
	}

	return &RndPathGen{opts: opts}
}

// GenTree populates Dirs and Files with a random tree rooted at volume,
// e.g. ":TestVol:". Calling GenTree a second time is a no-op.
func (g *RndPathGen) GenTree(volume string) {
	if g.dirs != nil {
		return
	}

	nameIdx := 0
	name := func(prefix string) string {
		nameIdx++

		return prefix + "-" + strconv.Itoa(nameIdx)
	}

	root := &RndDir{Path: endWithColon(volume)}
	parents := make([]*RndDir, 1, 10) //nolint:mnd // small fixed head-room for the frontier slice.
	parents[0] = root

	dirs := make([]*RndDir, g.opts.NbDirs)

	for i := 0; i < g.opts.NbDirs; i++ {
		parent := parents[fastrand.Uint32n(uint32(len(parents)))] //nolint:gosec // path-length bound, not a security use.
		path := parent.Path + name("dir") + string(PathSeparator)
		depth := parent.Depth + 1

		dir := &RndDir{Path: path, Depth: depth}
		dirs[i] = dir

		if depth < g.opts.MaxDepth {
			parents = append(parents, dir)
		}
	}

	g.dirs = dirs

	if g.opts.NbFiles == 0 {
		return
	}

	files := make([]*RndFile, g.opts.NbFiles)

	for i := 0; i < g.opts.NbFiles; i++ {
		parent := parents[fastrand.Uint32n(uint32(len(parents)))] //nolint:gosec // path-length bound, not a security use.
		fileName := parent.Path + name("file") + ".bin" + string(PathSeparator)

		size := 0
		if g.opts.MaxFileSize > 0 {
			size = int(fastrand.Uint32n(uint32(g.opts.MaxFileSize))) //nolint:gosec // bounded by MaxFileSize.
		}

		files[i] = &RndFile{Path: fileName, Size: size}
	}

	g.files = files
}

// CreateDirs creates every generated directory under cfg.
func (g *RndPathGen) CreateDirs(cfg *Config, volume string) ErrorCode {
	g.GenTree(volume)

	for _, dir := range g.dirs {
		if ec := CreateDirectoryPath(cfg, dir.Path); ec != Ok {
			return ec
		}
	}

	return Ok
}

// CreateFiles creates every generated directory and file under cfg, filling
// each file with pseudo-random bytes.
func (g *RndPathGen) CreateFiles(cfg *Config, volume string) ErrorCode {
	if ec := g.CreateDirs(cfg, volume); ec != Ok {
		return ec
	}

	buf := make([]byte, g.opts.MaxFileSize)
	for i := range buf {
		buf[i] = byte(fastrand.Uint32n(256)) //nolint:mnd,gosec // fills a scratch buffer for test fixtures.
	}

	for _, file := range g.files {
		if ec := SaveFile(cfg, file.Path, buf[:file.Size]); ec != Ok {
			return ec
		}
	}

	return Ok
}

// Dirs returns the generated directories.
func (g *RndPathGen) Dirs() []*RndDir { return g.dirs }

// Files returns the generated files.
func (g *RndPathGen) Files() []*RndFile { return g.files }
