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

// Package auto selects the default burgerlib.PlatformAdapter for the host
// Go is built for, via build tags rather than branching on runtime.GOOS, so
// exactly one per-OS adapter is linked into a given build. Root-package
// code never imports this package; callers that want automatic platform
// detection instead of wiring an adapter explicitly import platform/auto
// and call Default().
package auto
